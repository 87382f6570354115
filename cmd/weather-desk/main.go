package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-desk/config"
	"weather-desk/internal/cli"
	v1 "weather-desk/internal/controllers/http/v1"
	"weather-desk/internal/forecast"
	"weather-desk/internal/repositories"
	"weather-desk/internal/services/weather"
	"weather-desk/pkg/httpserver"
	"weather-desk/pkg/logger"
	"weather-desk/pkg/observe"
)

const shutdownTimeout = 30 * time.Second

// @title Weather Desk API
// @version 1.0.0
// @description Current weather and a one-sample-per-day forecast for a city, with saved lookups.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Weather
// @tag.description Current weather and forecast lookups
// @tag.name Saves
// @tag.description Saved days
func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cnf, err := config.NewConfig()
	if err != nil {
		log.Printf("config: %s", err)
		return 1
	}

	var (
		hook  *observe.SentryHook
		hooks []io.Writer
	)
	if cnf.Log.SentryDSN != "" {
		hook = observe.NewSentryHook(cnf.App.Env, cnf.App.Name, 0, cnf.IsDevelopment(), cnf.Log.SentryDSN)
		hooks = append(hooks, hook)
	}

	l, err := logger.New(logger.Options{
		AppName: cnf.App.Name,
		AppEnv:  cnf.App.Env,
		Level:   cnf.Log.Level,
		Format:  cnf.Log.Format,
		Hooks:   hooks,
	}, os.Stderr)
	if err != nil {
		log.Printf("logger: %s", err)
		return 1
	}
	if hook != nil {
		hook.SetLogger(l)
	}
	defer func() {
		if hook != nil {
			hook.Flush()
		}
		_ = l.Stop()
	}()

	service, err := newService(cnf, l)
	if err != nil {
		l.Error(err, map[string]any{"stage": "weather service"})
		return 1
	}

	root := cli.New(service, func(ctx context.Context) error {
		return serve(ctx, cnf, service, l)
	}, l)

	if err = cli.Execute(ctx, root); err != nil {
		l.Debug("command failed", map[string]any{"err": err.Error()})
		return 1
	}

	return 0
}

func newService(cnf *config.Config, l *logger.Logger) (*weather.WeatherService, error) {
	comparison, err := forecast.ParseDayComparison(cnf.Forecast.DayComparison)
	if err != nil {
		return nil, err
	}

	repo := repositories.NewOpenWeatherRepository(cnf.OpenWeather, l)
	saves := repositories.NewSaveStore(cnf.Saves.Dir, l)

	return weather.NewWeatherService(repo, saves, weather.Options{
		HourMin:       cnf.Forecast.HourMin,
		HourMax:       cnf.Forecast.HourMax,
		BucketZone:    weather.BucketZone(cnf.Forecast.BucketZone),
		DayComparison: comparison,
	}, l), nil
}

func serve(ctx context.Context, cnf *config.Config, service v1.WeatherService, l *logger.Logger) error {
	app := httpserver.InitFiberServer(cnf.App.Name, cnf.Server)

	v1.NewRouter(
		app,
		service,
		l,
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(":" + cnf.Server.Port)
	}()

	l.Info("application started successfully", map[string]any{"port": cnf.Server.Port})

	select {
	case err := <-errCh:
		if err != nil {
			l.Error(err, map[string]any{"port": cnf.Server.Port})
		}
		return err
	case <-ctx.Done():
		l.Warning("stopping application services")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	return app.ShutdownWithContext(shutdownCtx)
}
