package weather

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"weather-desk/internal/country"
	"weather-desk/internal/forecast"
	"weather-desk/internal/models"
	"weather-desk/internal/repositories"
	"weather-desk/internal/timefmt"
	"weather-desk/pkg/logger"
)

const (
	iconURLFormat   = "https://openweathermap.org/img/wn/%s@2x.png"
	todayLabel      = "today"
	defaultMaxDays  = 5
	noForecastLabel = "no forecast data available"
)

var ErrEmptyCity = errors.New("city name cannot be empty")

// BucketZone is the zone forecast samples are grouped into days in.
type BucketZone string

const (
	BucketViewer   BucketZone = "viewer"
	BucketLocation BucketZone = "location"
)

// Clock returns the current time. It is read once per report.
type Clock func() time.Time

type Options struct {
	HourMin       int
	HourMax       int
	MaxDays       int
	BucketZone    BucketZone
	DayComparison forecast.DayComparison
	// Viewer is the zone dates are shown in; time.Local when nil.
	Viewer *time.Location
	Clock  Clock
}

// WeatherService builds reports from live lookups and from saved days.
type WeatherService struct {
	repo   repositories.WeatherRepository
	saves  *repositories.SaveStore
	opts   Options
	viewer *timefmt.Normalizer
	l      *logger.Logger
}

func NewWeatherService(
	repo repositories.WeatherRepository,
	saves *repositories.SaveStore,
	opts Options,
	l *logger.Logger,
) *WeatherService {
	if opts.HourMin == 0 && opts.HourMax == 0 {
		opts.HourMin, opts.HourMax = forecast.DefaultHourMin, forecast.DefaultHourMax
	}
	if opts.MaxDays <= 0 {
		opts.MaxDays = defaultMaxDays
	}
	if opts.BucketZone == "" {
		opts.BucketZone = BucketViewer
	}
	if opts.DayComparison == "" {
		opts.DayComparison = forecast.CompareDayOfMonth
	}
	if opts.Viewer == nil {
		opts.Viewer = time.Local
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	return &WeatherService{
		repo:   repo,
		saves:  saves,
		opts:   opts,
		viewer: timefmt.NewNormalizer(opts.Viewer),
		l:      l,
	}
}

// Lookup fetches current weather and forecast for city and renders a report.
func (s *WeatherService) Lookup(ctx context.Context, city string) (models.Report, error) {
	current, fc, err := s.fetch(ctx, city)
	if err != nil {
		return models.Report{}, err
	}

	return s.BuildReport(current, fc)
}

// Random looks up one of the built-in cities.
func (s *WeatherService) Random(ctx context.Context) (models.Report, error) {
	return s.Lookup(ctx, RandomCity())
}

// Save fetches city and stores both payloads, returning the file path.
func (s *WeatherService) Save(ctx context.Context, city string) (string, error) {
	current, fc, err := s.fetch(ctx, city)
	if err != nil {
		return "", err
	}

	date, err := s.viewer.Format(current.Dt, timefmt.ModeDate)
	if err != nil {
		return "", err
	}

	name := repositories.SaveFileName(date, current.Name, current.Sys.Country)

	return s.saves.Save(name, models.SavedDay{Weather: current.Raw, Forecast: fc.Raw})
}

// Open renders a report from a save in the saves directory.
func (s *WeatherService) Open(name string) (models.Report, error) {
	day, err := s.saves.Load(name)
	if err != nil {
		return models.Report{}, err
	}

	return s.reportFromSave(day)
}

// OpenFile renders a report from a save anywhere on disk.
func (s *WeatherService) OpenFile(path string) (models.Report, error) {
	day, err := s.saves.LoadFile(path)
	if err != nil {
		return models.Report{}, err
	}

	return s.reportFromSave(day)
}

func (s *WeatherService) ListSaves() ([]string, error) {
	return s.saves.List()
}

func (s *WeatherService) fetch(ctx context.Context, city string) (models.CurrentWeather, models.Forecast, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return models.CurrentWeather{}, models.Forecast{}, ErrEmptyCity
	}

	s.l.Info("starting weather lookup", map[string]any{
		"city":     city,
		"provider": s.repo.Name(),
	})

	var (
		current models.CurrentWeather
		fc      models.Forecast
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		current, err = s.repo.FetchCurrent(gctx, city)
		return err
	})

	g.Go(func() error {
		var err error
		fc, err = s.repo.FetchForecast(gctx, city)
		if errors.Is(err, repositories.ErrProvider) {
			// current weather can still be shown
			s.l.Warning("forecast rejected by provider", map[string]any{"city": city, "err": err.Error()})
			return nil
		}
		return err
	})

	if err := g.Wait(); err != nil {
		s.l.Error(err, map[string]any{"city": city})
		return models.CurrentWeather{}, models.Forecast{}, errors.Wrapf(err, "lookup %q", city)
	}

	return current, fc, nil
}

func (s *WeatherService) reportFromSave(day models.SavedDay) (models.Report, error) {
	current, err := models.ParseCurrentWeather(day.Weather)
	if err != nil {
		return models.Report{}, err
	}

	if err = repositories.CheckStatus(current.Cod, current.Message); err != nil {
		return models.Report{}, err
	}

	fc, err := models.ParseForecast(day.Forecast)
	if err != nil {
		return models.Report{}, err
	}

	return s.BuildReport(current, fc)
}

// BuildReport renders current weather and the selected forecast days.
// A rejected or empty forecast leaves Days empty and sets Warning.
func (s *WeatherService) BuildReport(current models.CurrentWeather, fc models.Forecast) (models.Report, error) {
	now := s.opts.Clock()

	date, err := s.viewer.Format(current.Dt, timefmt.ModeShortDate)
	if err != nil {
		return models.Report{}, err
	}

	cond := current.PrimaryCondition()

	report := models.Report{
		City:        current.Name,
		Country:     country.Name(current.Sys.Country),
		Timezone:    timefmt.OffsetToLabel(current.Timezone),
		Date:        date,
		Time:        timefmt.CurrentLocalTime(now, current.Timezone),
		Description: cond.Description,
		Temperature: celsius(current.Main.Temp),
		Humidity:    fmt.Sprintf("%d%%", round(current.Main.Humidity)),
		Pressure:    decimal(current.Main.Pressure) + "hPa",
		Wind:        decimal(current.Wind.Speed) + "m/s",
		Sunrise:     timefmt.EventLocalTime(current.Sys.Sunrise, current.Timezone, current.Dt, now),
		Sunset:      timefmt.EventLocalTime(current.Sys.Sunset, current.Timezone, current.Dt, now),
		Icon:        IconURL(cond.Icon),
		Days:        []models.DayReport{},
	}

	if err = repositories.CheckStatus(fc.Cod, fc.Message); err != nil {
		report.Warning = err.Error()
		return report, nil
	}

	days, err := s.forecastDays(fc, now)
	if errors.Is(err, forecast.ErrEmptySeries) {
		s.l.Warning("empty forecast series", map[string]any{"city": current.Name})
		report.Warning = noForecastLabel
		return report, nil
	}
	if err != nil {
		return models.Report{}, err
	}

	report.Days = days

	s.l.Info("report built", map[string]any{
		"city": report.City,
		"days": len(report.Days),
	})

	return report, nil
}

func (s *WeatherService) forecastDays(fc models.Forecast, now time.Time) ([]models.DayReport, error) {
	normalizer := s.viewer
	if s.opts.BucketZone == BucketLocation {
		normalizer = timefmt.LocationNormalizer(fc.City.Timezone)
	}

	selector := forecast.NewSelector(
		forecast.WithNormalizer(normalizer),
		forecast.WithDayComparison(s.opts.DayComparison),
	)

	records, err := selector.SelectDays(fc.List, s.opts.HourMin, s.opts.HourMax)
	if err != nil {
		return nil, err
	}

	if len(records) > s.opts.MaxDays {
		records = records[:s.opts.MaxDays]
	}

	today, err := normalizer.Format(now.Unix(), timefmt.ModeShortDate)
	if err != nil {
		return nil, err
	}

	days := make([]models.DayReport, 0, len(records))
	for i, record := range records {
		date, err := normalizer.Format(record.Dt, timefmt.ModeShortDate)
		if err != nil {
			return nil, err
		}
		if i == 0 && date == today {
			date = todayLabel
		}

		cond := record.PrimaryCondition()
		days = append(days, models.DayReport{
			Timestamp:   record.Dt,
			Date:        date,
			Temperature: celsius(record.Main.TempMax),
			Weather:     cond.Main,
			Icon:        IconURL(cond.Icon),
		})
	}

	return days, nil
}

// IconURL returns the 2x PNG of a provider icon id.
func IconURL(icon string) string {
	if icon == "" {
		return ""
	}
	return fmt.Sprintf(iconURLFormat, icon)
}

func round(v float64) int {
	return int(math.RoundToEven(v))
}

func celsius(v float64) string {
	return fmt.Sprintf("%d°C", round(v))
}

func decimal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
