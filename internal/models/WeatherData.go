package models

import (
	"encoding/json"
	"fmt"
)

// CurrentWeather is the current-conditions payload of the provider.
type CurrentWeather struct {
	Cod      LooseString `json:"cod"`
	Message  LooseString `json:"message"`
	Name     string      `json:"name"`
	Dt       int64       `json:"dt"`
	Timezone int64       `json:"timezone"`
	Sys      struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Main    MainMetrics `json:"main"`
	Wind    Wind        `json:"wind"`
	Weather []Condition `json:"weather"`

	Raw json.RawMessage `json:"-"`
}

type Wind struct {
	Speed float64 `json:"speed"`
	Deg   float64 `json:"deg"`
}

func (w CurrentWeather) PrimaryCondition() Condition {
	if len(w.Weather) == 0 {
		return Condition{}
	}
	return w.Weather[0]
}

// ParseCurrentWeather decodes a current weather payload and keeps the raw bytes for saving.
func ParseCurrentWeather(data []byte) (CurrentWeather, error) {
	var w CurrentWeather
	if err := json.Unmarshal(data, &w); err != nil {
		return CurrentWeather{}, fmt.Errorf("failed to parse current weather: %w", err)
	}
	w.Raw = append(json.RawMessage(nil), data...)
	return w, nil
}

// LooseString accepts both JSON strings and numbers. The provider reports
// "cod" as 200 on one endpoint and "200" on the other.
type LooseString string

func (s *LooseString) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = LooseString(v)
		return nil
	}
	if string(data) == "null" {
		*s = ""
		return nil
	}
	*s = LooseString(data)
	return nil
}

func (s LooseString) String() string {
	return string(s)
}

// IsError reports whether a status code signals a failed request.
func (s LooseString) IsError() bool {
	return s != "" && s != "200"
}
