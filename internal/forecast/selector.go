package forecast

import (
	"errors"
	"fmt"
	"strconv"

	"weather-desk/internal/models"
	"weather-desk/internal/timefmt"
)

const (
	DefaultHourMin = 12
	DefaultHourMax = 16
)

var ErrEmptySeries = errors.New("forecast series is empty")

// DayComparison decides how two samples are recognised as the same day.
type DayComparison string

const (
	// CompareDayOfMonth compares the bare day of month. A series crossing a
	// month boundary never opens a new day after the 31st (or 30th, ...).
	CompareDayOfMonth DayComparison = "day_of_month"
	// CompareCalendarDate compares year, month and day.
	CompareCalendarDate DayComparison = "calendar_date"
)

func ParseDayComparison(s string) (DayComparison, error) {
	switch c := DayComparison(s); c {
	case CompareDayOfMonth, CompareCalendarDate:
		return c, nil
	case "":
		return CompareDayOfMonth, nil
	default:
		return "", fmt.Errorf("unknown day comparison %q", s)
	}
}

// Selector reduces a 3-hourly series to one representative sample per day.
type Selector struct {
	normalizer *timefmt.Normalizer
	comparison DayComparison
}

type Option func(*Selector)

// WithNormalizer sets the zone days and hours are read in.
func WithNormalizer(n *timefmt.Normalizer) Option {
	return func(s *Selector) {
		s.normalizer = n
	}
}

func WithDayComparison(c DayComparison) Option {
	return func(s *Selector) {
		s.comparison = c
	}
}

// NewSelector returns a selector reading days in the viewer's local zone and
// comparing them by day of month unless told otherwise.
func NewSelector(opts ...Option) *Selector {
	s := &Selector{
		normalizer: timefmt.ViewerNormalizer(),
		comparison: CompareDayOfMonth,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type daySelection struct {
	index int
	day   int
	hour  int
}

// SelectDays keeps the samples whose hour lies strictly inside
// (hourMin, hourMax) on each day of the series, in input order.
//
// The active day only moves forward: it is replaced when a sample's day is
// greater than the active one, after that sample has been checked against
// the previous active day. Days without an in-window sample are skipped.
func (s *Selector) SelectDays(series []models.ForecastRecord, hourMin, hourMax int) ([]models.ForecastRecord, error) {
	if len(series) == 0 {
		return nil, ErrEmptySeries
	}

	days := make([]daySelection, 0, len(series))
	for i, record := range series {
		sel, err := s.annotate(i, record)
		if err != nil {
			return nil, err
		}
		days = append(days, sel)
	}

	selected := make([]models.ForecastRecord, 0, len(series)/8+1)
	active := days[0]
	for _, d := range days {
		if d.day == active.day && hourMin < d.hour && d.hour < hourMax {
			selected = append(selected, series[d.index])
		}
		if d.day > active.day {
			active = d
		}
	}

	return selected, nil
}

func (s *Selector) annotate(index int, record models.ForecastRecord) (daySelection, error) {
	hour, err := s.formatInt(record.Dt, timefmt.ModeHours)
	if err != nil {
		return daySelection{}, err
	}

	var day int
	switch s.comparison {
	case CompareCalendarDate:
		y, m, d := s.normalizer.Time(record.Dt).Date()
		day = y*10000 + int(m)*100 + d
	default:
		day, err = s.formatInt(record.Dt, timefmt.ModeDay)
		if err != nil {
			return daySelection{}, err
		}
	}

	return daySelection{index: index, day: day, hour: hour}, nil
}

func (s *Selector) formatInt(ts int64, mode timefmt.Mode) (int, error) {
	str, err := s.normalizer.Format(ts, mode)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(str)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s of %d: %w", mode, ts, err)
	}
	return v, nil
}

// SelectDays runs the default selector: viewer zone, day-of-month comparison.
func SelectDays(series []models.ForecastRecord, hourMin, hourMax int) ([]models.ForecastRecord, error) {
	return NewSelector().SelectDays(series, hourMin, hourMax)
}
