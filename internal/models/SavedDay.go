package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrMalformedSave = errors.New("malformed save file")

// SavedDay is the on-disk shape of a saved lookup: a JSON array holding the
// raw current weather payload followed by the raw forecast payload.
type SavedDay struct {
	Weather  json.RawMessage
	Forecast json.RawMessage
}

func (d SavedDay) MarshalJSON() ([]byte, error) {
	return json.Marshal([]json.RawMessage{d.Weather, d.Forecast})
}

func (d *SavedDay) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedSave, err)
	}
	if len(parts) != 2 {
		return fmt.Errorf("%w: expected 2 entries, got %d", ErrMalformedSave, len(parts))
	}
	d.Weather, d.Forecast = parts[0], parts[1]
	return nil
}
