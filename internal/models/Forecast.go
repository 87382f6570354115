package models

import (
	"encoding/json"
	"fmt"
)

// Forecast is the 3-hourly forecast payload of the provider.
type Forecast struct {
	Cod     LooseString      `json:"cod"`
	Message LooseString      `json:"message"`
	List    []ForecastRecord `json:"list"`
	City    ForecastCity     `json:"city"`

	Raw json.RawMessage `json:"-"`
}

type ForecastCity struct {
	Name     string `json:"name"`
	Country  string `json:"country"`
	Timezone int64  `json:"timezone"`
	Sunrise  int64  `json:"sunrise"`
	Sunset   int64  `json:"sunset"`
}

// ForecastRecord is one sample of the forecast series.
type ForecastRecord struct {
	Dt      int64       `json:"dt"`
	DtTxt   string      `json:"dt_txt,omitempty"`
	Main    MainMetrics `json:"main"`
	Weather []Condition `json:"weather"`
}

type MainMetrics struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  float64 `json:"pressure"`
	Humidity  float64 `json:"humidity"`
}

type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// PrimaryCondition returns the first weather condition, or the zero value.
func (r ForecastRecord) PrimaryCondition() Condition {
	if len(r.Weather) == 0 {
		return Condition{}
	}
	return r.Weather[0]
}

// ParseForecast decodes a forecast payload and keeps the raw bytes for saving.
func ParseForecast(data []byte) (Forecast, error) {
	var f Forecast
	if err := json.Unmarshal(data, &f); err != nil {
		return Forecast{}, fmt.Errorf("failed to parse forecast: %w", err)
	}
	f.Raw = append(json.RawMessage(nil), data...)
	return f, nil
}
