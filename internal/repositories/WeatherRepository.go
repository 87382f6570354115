package repositories

import (
	"context"
	"errors"
	"fmt"

	"weather-desk/internal/models"
)

var (
	ErrProvider    = errors.New("weather provider error")
	ErrEmptyAPIKey = errors.New("API key cannot be empty")
)

// WeatherRepository fetches the raw payloads a report is built from.
type WeatherRepository interface {
	Name() string
	FetchCurrent(ctx context.Context, city string) (models.CurrentWeather, error)
	FetchForecast(ctx context.Context, city string) (models.Forecast, error)
}

// ProviderError is a failure reported by the provider in the payload itself,
// e.g. {"cod":"404","message":"city not found"}.
type ProviderError struct {
	Code    string
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s (code %s)", e.Message, e.Code)
}

func (e *ProviderError) Is(target error) bool {
	return target == ErrProvider
}

// CheckStatus turns an error status of a payload into a ProviderError.
func CheckStatus(cod, message models.LooseString) error {
	if !cod.IsError() {
		return nil
	}
	return &ProviderError{Code: cod.String(), Message: message.String()}
}
