package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"weather-desk/config"
	"weather-desk/internal/models"
	"weather-desk/pkg/logger"
)

const (
	OpenWeatherBaseURL = "https://api.openweathermap.org/data/2.5"

	currentPath  = "/weather"
	forecastPath = "/forecast"
)

// OpenWeatherRepository talks to the OpenWeatherMap 2.5 API.
type OpenWeatherRepository struct {
	BaseURL string
	APIKey  string
	Lang    string
	Units   string

	client  *resty.Client
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
	backoff BackoffConfig
	l       *logger.Logger
}

func NewOpenWeatherRepository(cfg config.OpenWeatherConfig, l *logger.Logger) *OpenWeatherRepository {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = OpenWeatherBaseURL
	}

	return &OpenWeatherRepository{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  strings.TrimSpace(cfg.APIKey),
		Lang:    cfg.Lang,
		Units:   cfg.Units,
		client:  resty.New().SetTimeout(cfg.RequestTimeout()),
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.Burst),
		breaker: newCircuitBreaker("openweather"),
		backoff: BackoffConfig{
			MaxRetries:      cfg.MaxRetries,
			InitialInterval: 500 * time.Millisecond,
			MaxInterval:     5 * time.Second,
		},
		l: l,
	}
}

func (o *OpenWeatherRepository) Name() string {
	return "openweathermap"
}

func (o *OpenWeatherRepository) FetchCurrent(ctx context.Context, city string) (models.CurrentWeather, error) {
	body, err := o.get(ctx, currentPath, city)
	if err != nil {
		return models.CurrentWeather{}, err
	}

	weather, err := models.ParseCurrentWeather(body)
	if err != nil {
		return models.CurrentWeather{}, err
	}

	if err = CheckStatus(weather.Cod, weather.Message); err != nil {
		return weather, fmt.Errorf("current weather for %q: %w", city, err)
	}

	return weather, nil
}

func (o *OpenWeatherRepository) FetchForecast(ctx context.Context, city string) (models.Forecast, error) {
	body, err := o.get(ctx, forecastPath, city)
	if err != nil {
		return models.Forecast{}, err
	}

	forecast, err := models.ParseForecast(body)
	if err != nil {
		return models.Forecast{}, err
	}

	if err = CheckStatus(forecast.Cod, forecast.Message); err != nil {
		return forecast, fmt.Errorf("forecast for %q: %w", city, err)
	}

	o.l.Debug("parsed forecast response", map[string]any{
		"city":  city,
		"items": len(forecast.List),
	})

	return forecast, nil
}

func (o *OpenWeatherRepository) get(ctx context.Context, path, city string) ([]byte, error) {
	if o.APIKey == "" {
		return nil, ErrEmptyAPIKey
	}

	if err := o.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}

	o.l.Info("making openweather API request", map[string]any{
		"path": path,
		"city": city,
	})

	resp, err := doWithResilience(ctx, o.backoff, o.breaker, func(ctx context.Context) (*resty.Response, error) {
		return o.client.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"q":     city,
				"lang":  o.Lang,
				"units": o.Units,
				"appid": o.APIKey,
			}).
			Get(o.BaseURL + path)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to do request: %w", err)
	}

	o.l.Info("received openweather API response", map[string]any{
		"path":       path,
		"status":     resp.StatusCode(),
		"statusText": resp.Status(),
	})

	return resp.Body(), nil
}
