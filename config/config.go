package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "config/config.yaml"

type Config struct {
	App         AppConfig         `yaml:"app" envconfig:"APP"`
	Server      ServerConfig      `yaml:"server" envconfig:"SERVER"`
	OpenWeather OpenWeatherConfig `yaml:"openweather" envconfig:"OPENWEATHER"`
	Forecast    ForecastConfig    `yaml:"forecast" envconfig:"FORECAST"`
	Saves       SavesConfig       `yaml:"saves" envconfig:"SAVES"`
	Log         LogConfig         `yaml:"log" envconfig:"LOG"`
}

type AppConfig struct {
	Name    string `yaml:"name" validate:"required"`
	Version string `yaml:"version" validate:"required"`
	Env     string `yaml:"env" validate:"required,oneof=development staging production test"`
}

type ServerConfig struct {
	Port         string `yaml:"port" validate:"required,numeric"`
	ReadTimeout  int    `yaml:"read_timeout" split_words:"true" validate:"gt=0"`
	WriteTimeout int    `yaml:"write_timeout" split_words:"true" validate:"gt=0"`
	IdleTimeout  int    `yaml:"idle_timeout" split_words:"true" validate:"gt=0"`
}

type OpenWeatherConfig struct {
	BaseURL       string  `yaml:"base_url" split_words:"true" validate:"required,url"`
	APIKey        string  `yaml:"api_key,omitempty" split_words:"true"`
	Lang          string  `yaml:"lang" validate:"required"`
	Units         string  `yaml:"units" validate:"oneof=standard metric imperial"`
	Timeout       int     `yaml:"timeout" validate:"gt=0"`
	RatePerSecond float64 `yaml:"rate_per_second" split_words:"true" validate:"gt=0"`
	Burst         int     `yaml:"burst" validate:"gt=0"`
	MaxRetries    int     `yaml:"max_retries" split_words:"true" validate:"gte=0"`
}

type ForecastConfig struct {
	HourMin       int    `yaml:"hour_min" split_words:"true" validate:"gte=-1,lte=23"`
	HourMax       int    `yaml:"hour_max" split_words:"true" validate:"gte=0,lte=24"`
	BucketZone    string `yaml:"bucket_zone" split_words:"true" validate:"oneof=viewer location"`
	DayComparison string `yaml:"day_comparison" split_words:"true" validate:"oneof=day_of_month calendar_date"`
}

type SavesConfig struct {
	Dir string `yaml:"dir" validate:"required"`
}

type LogConfig struct {
	Level     string `yaml:"level" validate:"oneof=debug info warn error"`
	Format    string `yaml:"format" validate:"oneof=json console"`
	SentryDSN string `yaml:"sentry_dsn,omitempty" split_words:"true"`
}

// ConfigProvider loads and validates a Config.
type ConfigProvider interface {
	Load() (*Config, error)
	Validate(config *Config) error
}

// FileConfigProvider reads a YAML file, then overlays environment variables.
// A missing file is not an error: defaults and environment still apply.
type FileConfigProvider struct {
	path     string
	validate *validator.Validate
}

func NewFileConfigProvider(path string) *FileConfigProvider {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &FileConfigProvider{
		path:     path,
		validate: v,
	}
}

// NewConfig loads .env (if any), then the YAML file named by CONFIG_PATH or
// config/config.yaml, then the environment.
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}

	return NewConfigWithProvider(NewFileConfigProvider(path))
}

func NewConfigWithProvider(provider ConfigProvider) (*Config, error) {
	cnf, err := provider.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err = provider.Validate(cnf); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cnf, nil
}

func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:    "weather-desk",
			Version: "1.0.0",
			Env:     "development",
		},
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  10,
			WriteTimeout: 10,
			IdleTimeout:  120,
		},
		OpenWeather: OpenWeatherConfig{
			BaseURL:       "https://api.openweathermap.org/data/2.5",
			Lang:          "pl",
			Units:         "metric",
			Timeout:       10,
			RatePerSecond: 1,
			Burst:         2,
			MaxRetries:    2,
		},
		Forecast: ForecastConfig{
			HourMin:       12,
			HourMax:       16,
			BucketZone:    "viewer",
			DayComparison: "day_of_month",
		},
		Saves: SavesConfig{
			Dir: "saves",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

func (p *FileConfigProvider) Load() (*Config, error) {
	cnf := Default()

	if err := p.loadFromFile(cnf); err != nil {
		return nil, err
	}

	if err := envconfig.Process("", cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	return cnf, nil
}

func (p *FileConfigProvider) loadFromFile(cnf *Config) error {
	yamlData, err := os.ReadFile(p.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", p.path, err)
	}

	if err = yaml.Unmarshal(yamlData, cnf); err != nil {
		return fmt.Errorf("failed to parse YAML config %s: %w", p.path, err)
	}

	return nil
}

func (p *FileConfigProvider) Validate(cnf *Config) error {
	if err := p.validate.Struct(cnf); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return describe(verrs[0])
		}
		return err
	}

	if cnf.Forecast.HourMin >= cnf.Forecast.HourMax {
		return errors.New("forecast.hour_min must be lower than forecast.hour_max")
	}

	return nil
}

// describe turns a validator error into "section.field ..." wording.
func describe(fe validator.FieldError) error {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")

	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", field)
	case "oneof":
		return fmt.Errorf("%s must be one of [%s], got %q", field, fe.Param(), fe.Value())
	case "gt", "gte", "lte":
		return fmt.Errorf("%s must be %s %s, got %v", field, fe.Tag(), fe.Param(), fe.Value())
	default:
		return fmt.Errorf("%s is not a valid %s", field, fe.Tag())
	}
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

func (c *OpenWeatherConfig) RequestTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

func (c *ServerConfig) Timeouts() (read, write, idle time.Duration) {
	return time.Duration(c.ReadTimeout) * time.Second,
		time.Duration(c.WriteTimeout) * time.Second,
		time.Duration(c.IdleTimeout) * time.Second
}
