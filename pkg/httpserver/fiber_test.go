package httpserver

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-desk/config"
)

func TestInitFiberServer_HealthEndpoints(t *testing.T) {
	app := InitFiberServer("test-app", config.Default().Server)

	for _, path := range []string{"/manage/health", "/manage/ready"} {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)
	}
}

func TestInitFiberServer_RecoversFromPanic(t *testing.T) {
	app := InitFiberServer("test-app", config.Default().Server)
	app.Get("/boom", func(c *fiber.Ctx) error {
		panic("boom")
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestInitFiberServer_Config(t *testing.T) {
	cnf := config.Default().Server
	app := InitFiberServer("test-app", cnf)

	read, write, idle := cnf.Timeouts()
	assert.Equal(t, "test-app", app.Config().AppName)
	assert.Equal(t, read, app.Config().ReadTimeout)
	assert.Equal(t, write, app.Config().WriteTimeout)
	assert.Equal(t, idle, app.Config().IdleTimeout)
}
