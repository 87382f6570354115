package http

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	_ "weather-desk/docs"
	"weather-desk/internal/models"
	"weather-desk/pkg/logger"
)

// WeatherService is what the HTTP routes need from the weather service.
type WeatherService interface {
	Lookup(ctx context.Context, city string) (models.Report, error)
	Random(ctx context.Context) (models.Report, error)
	Save(ctx context.Context, city string) (string, error)
	Open(name string) (models.Report, error)
	ListSaves() ([]string, error)
}

type routes struct {
	service  WeatherService
	validate *validator.Validate
	l        *logger.Logger
}

func NewRouter(
	app *fiber.App,
	weatherService WeatherService,
	l *logger.Logger,
) {
	r := &routes{
		service:  weatherService,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		l:        l,
	}

	// Swagger documentation, served from the registered docs package
	app.Get("/swagger/*", swagger.New(swagger.Config{
		DeepLinking: true,
	}))

	// API routes
	app.Get("/weather", r.handleWeatherCall)
	app.Get("/weather/random", r.handleRandomCall)

	saves := app.Group("/saves")
	saves.Get("/", r.handleListSaves)
	saves.Post("/", r.handleSaveCall)
	saves.Get("/:name", r.handleOpenSave)
}
