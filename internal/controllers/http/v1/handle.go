package http

import (
	"net/url"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"weather-desk/internal/repositories"
	"weather-desk/internal/services/weather"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"Missing required parameter: city"`
}

// SaveResponse names the file a lookup was saved to
type SaveResponse struct {
	File string `json:"file" example:"06.05.24-Kraków-PL.json"`
}

// SavesResponse lists saved days
type SavesResponse struct {
	Saves []string `json:"saves"`
}

type cityQuery struct {
	City string `query:"city" validate:"required,max=100"`
}

// GetWeather godoc
// @Summary Get current weather and forecast
// @Description Looks up current conditions and one forecast sample per day for a city
// @Tags Weather
// @Produce json
// @Param city query string true "City name" example(Kraków)
// @Success 200 {object} models.Report "Successful response"
// @Failure 400 {object} ErrorResponse "Bad request - missing city"
// @Failure 502 {object} ErrorResponse "Provider rejected the request"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /weather [get]
func (r *routes) handleWeatherCall(c *fiber.Ctx) error {
	city, err := r.parseCity(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}

	report, err := r.service.Lookup(c.Context(), city)
	if err != nil {
		return r.fail(c, err, map[string]any{"city": city})
	}

	return c.JSON(report)
}

// GetRandomWeather godoc
// @Summary Get weather for a random city
// @Tags Weather
// @Produce json
// @Success 200 {object} models.Report "Successful response"
// @Failure 502 {object} ErrorResponse "Provider rejected the request"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /weather/random [get]
func (r *routes) handleRandomCall(c *fiber.Ctx) error {
	report, err := r.service.Random(c.Context())
	if err != nil {
		return r.fail(c, err, nil)
	}

	return c.JSON(report)
}

// SaveWeather godoc
// @Summary Save current weather and forecast
// @Description Fetches a city and stores both provider payloads as a dated file
// @Tags Saves
// @Produce json
// @Param city query string true "City name" example(Kraków)
// @Success 201 {object} SaveResponse "Saved"
// @Failure 400 {object} ErrorResponse "Bad request - missing city"
// @Failure 502 {object} ErrorResponse "Provider rejected the request"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /saves [post]
func (r *routes) handleSaveCall(c *fiber.Ctx) error {
	city, err := r.parseCity(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}

	path, err := r.service.Save(c.Context(), city)
	if err != nil {
		return r.fail(c, err, map[string]any{"city": city})
	}

	return c.Status(fiber.StatusCreated).JSON(SaveResponse{File: filepath.Base(path)})
}

// ListSaves godoc
// @Summary List saved days
// @Tags Saves
// @Produce json
// @Success 200 {object} SavesResponse "Saved files"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /saves [get]
func (r *routes) handleListSaves(c *fiber.Ctx) error {
	names, err := r.service.ListSaves()
	if err != nil {
		return r.fail(c, err, nil)
	}

	return c.JSON(SavesResponse{Saves: names})
}

// OpenSave godoc
// @Summary Render a saved day
// @Description Rebuilds a report from a saved file. Times are computed against the current clock.
// @Tags Saves
// @Produce json
// @Param name path string true "Save file name" example(06.05.24-Kraków-PL.json)
// @Success 200 {object} models.Report "Successful response"
// @Failure 400 {object} ErrorResponse "Invalid save name"
// @Failure 404 {object} ErrorResponse "Save not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /saves/{name} [get]
func (r *routes) handleOpenSave(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "Invalid save name"})
	}

	report, err := r.service.Open(name)
	if err != nil {
		return r.fail(c, err, map[string]any{"save": name})
	}

	return c.JSON(report)
}

func (r *routes) parseCity(c *fiber.Ctx) (string, error) {
	var q cityQuery
	if err := c.QueryParser(&q); err != nil {
		return "", errors.Wrap(err, "invalid query")
	}

	if err := r.validate.Struct(q); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && verrs[0].Tag() == "required" {
			return "", errors.New("Missing required parameter: city")
		}
		return "", errors.New("Invalid parameter: city")
	}

	return q.City, nil
}

// fail maps service errors onto status codes.
func (r *routes) fail(c *fiber.Ctx, err error, fields map[string]any) error {
	status := statusOf(err)
	if status >= fiber.StatusInternalServerError {
		r.l.Error(err, fields)
	} else {
		r.l.Warning(err.Error(), fields)
	}

	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		msg = "Internal server error"
	}

	return c.Status(status).JSON(ErrorResponse{Error: msg})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, weather.ErrEmptyCity),
		errors.Is(err, repositories.ErrInvalidSaveName):
		return fiber.StatusBadRequest
	case errors.Is(err, repositories.ErrSaveNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, repositories.ErrProvider):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
