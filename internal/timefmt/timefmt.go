package timefmt

import (
	"errors"
	"fmt"
	"time"
)

// Mode selects one of the fixed layouts supported by Normalizer.Format.
type Mode string

const (
	ModeFull      Mode = "full"
	ModeDate      Mode = "date"
	ModeShortDate Mode = "short_date"
	ModeHours     Mode = "hours"
	ModeDay       Mode = "day"
	ModeTime      Mode = "time"
)

const clockLayout = "15:04"

var ErrInvalidFormatMode = errors.New("wrong type of datetime mode")

var layouts = map[Mode]string{
	ModeFull:      "02.01.06 - 15:04",
	ModeDate:      "02.01.06",
	ModeShortDate: "02.01",
	ModeHours:     "15",
	ModeDay:       "02",
	ModeTime:      clockLayout,
}

// Normalizer renders unix timestamps as wall-clock strings in a single zone.
// The zero value renders in the host's local zone.
type Normalizer struct {
	loc *time.Location
}

// NewNormalizer returns a Normalizer rendering in loc, or in time.Local when loc is nil.
func NewNormalizer(loc *time.Location) *Normalizer {
	return &Normalizer{loc: loc}
}

// ViewerNormalizer renders in the zone of the machine the program runs on.
func ViewerNormalizer() *Normalizer {
	return NewNormalizer(time.Local)
}

// LocationNormalizer renders in a fixed zone built from a provider-reported UTC offset.
func LocationNormalizer(offsetSeconds int64) *Normalizer {
	return NewNormalizer(time.FixedZone(OffsetToLabel(offsetSeconds), int(offsetSeconds)))
}

func (n *Normalizer) Location() *time.Location {
	if n == nil || n.loc == nil {
		return time.Local
	}
	return n.loc
}

// Time converts a unix timestamp into the normalizer's zone.
func (n *Normalizer) Time(ts int64) time.Time {
	return time.Unix(ts, 0).In(n.Location())
}

// Format renders ts using the layout registered for mode.
func (n *Normalizer) Format(ts int64, mode Mode) (string, error) {
	layout, ok := layouts[mode]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormatMode, mode)
	}
	return n.Time(ts).Format(layout), nil
}

// OffsetToLabel renders an offset as "UTC+H.00".
// Hours are truncated toward zero and the plus sign is only written for
// non-negative offsets, so -1800 renders as "UTC0.00".
func OffsetToLabel(offsetSeconds int64) string {
	sign := "+"
	if offsetSeconds < 0 {
		sign = ""
	}
	return fmt.Sprintf("UTC%s%d.00", sign, offsetSeconds/3600)
}

// CurrentLocalTime returns HH:MM of now shifted by the location offset.
func CurrentLocalTime(now time.Time, offsetSeconds int64) string {
	return time.Unix(now.Unix()+offsetSeconds, 0).UTC().Format(clockLayout)
}

// EventLocalTime returns HH:MM for an event timestamp (sunrise, sunset) re-based
// by the skew between the location's current wall clock and the report time.
func EventLocalTime(eventTS, offsetSeconds, referenceTS int64, now time.Time) string {
	delta := now.Unix() + offsetSeconds - referenceTS
	return time.Unix(eventTS+delta, 0).UTC().Format(clockLayout)
}
