package forecast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-desk/internal/models"
	"weather-desk/internal/timefmt"
)

// threeHourly builds n samples 3 hours apart starting at start.
func threeHourly(start time.Time, n int) []models.ForecastRecord {
	series := make([]models.ForecastRecord, 0, n)
	for i := 0; i < n; i++ {
		ts := start.Add(time.Duration(i) * 3 * time.Hour)
		series = append(series, models.ForecastRecord{
			Dt:    ts.Unix(),
			DtTxt: ts.UTC().Format("2006-01-02 15:04:05"),
			Main:  models.MainMetrics{TempMax: float64(10 + i%8), TempMin: float64(i % 8)},
			Weather: []models.Condition{
				{Main: "Clouds", Icon: "04d"},
			},
		})
	}
	return series
}

func utcSelector(opts ...Option) *Selector {
	return NewSelector(append([]Option{WithNormalizer(timefmt.NewNormalizer(time.UTC))}, opts...)...)
}

func TestSelectDays_EmptySeries(t *testing.T) {
	_, err := utcSelector().SelectDays(nil, DefaultHourMin, DefaultHourMax)
	assert.ErrorIs(t, err, ErrEmptySeries)

	_, err = SelectDays([]models.ForecastRecord{}, DefaultHourMin, DefaultHourMax)
	assert.ErrorIs(t, err, ErrEmptySeries)
}

func TestSelectDays_FiveDays(t *testing.T) {
	start := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	series := threeHourly(start, 40)

	got, err := utcSelector().SelectDays(series, DefaultHourMin, DefaultHourMax)
	require.NoError(t, err)
	require.Len(t, got, 5)

	for i, record := range got {
		ts := time.Unix(record.Dt, 0).UTC()
		assert.Equal(t, 15, ts.Hour())
		assert.Equal(t, 6+i, ts.Day())
		if i > 0 {
			assert.Greater(t, record.Dt, got[i-1].Dt)
		}
	}
}

func TestSelectDays_KeepsRecordContent(t *testing.T) {
	start := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	series := threeHourly(start, 8)

	got, err := utcSelector().SelectDays(series, DefaultHourMin, DefaultHourMax)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, series[5], got[0])
}

func TestSelectDays_DayWithoutWindowSample(t *testing.T) {
	start := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	series := threeHourly(start, 40)

	// drop the 15:00 sample of the 8th
	var filtered []models.ForecastRecord
	for _, record := range series {
		ts := time.Unix(record.Dt, 0).UTC()
		if ts.Day() == 8 && ts.Hour() == 15 {
			continue
		}
		filtered = append(filtered, record)
	}

	got, err := utcSelector().SelectDays(filtered, DefaultHourMin, DefaultHourMax)
	require.NoError(t, err)
	require.Len(t, got, 4)

	for _, record := range got {
		assert.NotEqual(t, 8, time.Unix(record.Dt, 0).UTC().Day())
	}
}

func TestSelectDays_BoundsAreExclusive(t *testing.T) {
	start := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	series := threeHourly(start, 8)

	got, err := utcSelector().SelectDays(series, 12, 15)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = utcSelector().SelectDays(series, 11, 16)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSelectDays_SeriesStartingAfterWindow(t *testing.T) {
	start := time.Date(2024, 5, 6, 18, 0, 0, 0, time.UTC)
	series := threeHourly(start, 40)

	got, err := utcSelector().SelectDays(series, DefaultHourMin, DefaultHourMax)
	require.NoError(t, err)
	// the 6th has no sample inside the window, the 11th ends at 15:00
	require.Len(t, got, 5)
	assert.Equal(t, 7, time.Unix(got[0].Dt, 0).UTC().Day())
	assert.Equal(t, 11, time.Unix(got[4].Dt, 0).UTC().Day())
}

func TestSelectDays_MonthRolloverFoldsNewMonth(t *testing.T) {
	start := time.Date(2024, 5, 30, 0, 0, 0, 0, time.UTC)
	series := threeHourly(start, 40)

	got, err := utcSelector().SelectDays(series, DefaultHourMin, DefaultHourMax)
	require.NoError(t, err)

	// 1, 2 and 3 June never compare greater than 31, so they stay in the
	// bucket of the 31st and are never selected.
	require.Len(t, got, 2)
	assert.Equal(t, 30, time.Unix(got[0].Dt, 0).UTC().Day())
	assert.Equal(t, 31, time.Unix(got[1].Dt, 0).UTC().Day())
}

func TestSelectDays_CalendarDateHandlesRollover(t *testing.T) {
	start := time.Date(2024, 5, 30, 0, 0, 0, 0, time.UTC)
	series := threeHourly(start, 40)

	got, err := utcSelector(WithDayComparison(CompareCalendarDate)).SelectDays(series, DefaultHourMin, DefaultHourMax)
	require.NoError(t, err)
	require.Len(t, got, 5)

	wantDays := []int{30, 31, 1, 2, 3}
	for i, record := range got {
		ts := time.Unix(record.Dt, 0).UTC()
		assert.Equal(t, wantDays[i], ts.Day())
		assert.Equal(t, 15, ts.Hour())
	}
}

func TestSelectDays_CalendarDateYearRollover(t *testing.T) {
	start := time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC)
	series := threeHourly(start, 40)

	got, err := utcSelector(WithDayComparison(CompareCalendarDate)).SelectDays(series, DefaultHourMin, DefaultHourMax)
	require.NoError(t, err)
	assert.Len(t, got, 5)
}

func TestSelectDays_LocationZoneBucketing(t *testing.T) {
	start := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	series := threeHourly(start, 40)

	selector := NewSelector(WithNormalizer(timefmt.LocationNormalizer(9 * 3600)))
	got, err := selector.SelectDays(series, DefaultHourMin, DefaultHourMax)
	require.NoError(t, err)
	require.Len(t, got, 5)

	for _, record := range got {
		// 15:00 at UTC+9
		assert.Equal(t, 6, time.Unix(record.Dt, 0).UTC().Hour())
	}
}

func TestSelectDays_ViewerZoneDiffersFromLocation(t *testing.T) {
	start := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	series := threeHourly(start, 40)

	viewer := NewSelector(WithNormalizer(timefmt.NewNormalizer(time.FixedZone("viewer", 2*3600))))
	got, err := viewer.SelectDays(series, DefaultHourMin, DefaultHourMax)
	require.NoError(t, err)
	require.NotEmpty(t, got)

	for _, record := range got {
		// 14:00 at UTC+2
		assert.Equal(t, 12, time.Unix(record.Dt, 0).UTC().Hour())
	}
}

func TestParseDayComparison(t *testing.T) {
	c, err := ParseDayComparison("")
	require.NoError(t, err)
	assert.Equal(t, CompareDayOfMonth, c)

	c, err = ParseDayComparison("calendar_date")
	require.NoError(t, err)
	assert.Equal(t, CompareCalendarDate, c)

	_, err = ParseDayComparison("week")
	assert.Error(t, err)
}
