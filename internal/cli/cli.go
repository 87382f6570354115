package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"weather-desk/internal/models"
	"weather-desk/internal/repositories"
	"weather-desk/pkg/logger"
)

const defaultWatchInterval = 10 * time.Minute

// Service is what the commands need from the weather service.
type Service interface {
	Lookup(ctx context.Context, city string) (models.Report, error)
	Random(ctx context.Context) (models.Report, error)
	Save(ctx context.Context, city string) (string, error)
	Open(name string) (models.Report, error)
	OpenFile(path string) (models.Report, error)
	ListSaves() ([]string, error)
}

// ServeFunc runs the HTTP API until ctx is done.
type ServeFunc func(ctx context.Context) error

func New(service Service, serve ServeFunc, l *logger.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "weather-desk",
		Short:         "Current weather and a day-by-day forecast for a city",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.AddCommand(
		lookupCmd(service),
		randomCmd(service),
		saveCmd(service),
		openCmd(service),
		savesCmd(service),
		watchCmd(service, l),
		serveCmd(serve),
	)

	return root
}

// Execute runs the command tree and prints a failure the way the user sees it.
func Execute(ctx context.Context, root *cobra.Command) error {
	err := root.ExecuteContext(ctx)
	if err != nil {
		root.PrintErrf("There was problem: %s\n", Message(err))
	}
	return err
}

// Message returns the text shown to the user for err. Provider failures show
// the provider's own message.
func Message(err error) string {
	var pe *repositories.ProviderError
	if errors.As(err, &pe) && pe.Message != "" {
		return pe.Message
	}
	return err.Error()
}

func lookupCmd(service Service) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <city...>",
		Short: "Show current weather and forecast for a city",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := service.Lookup(cmd.Context(), cityArg(args))
			if err != nil {
				return err
			}

			return Render(cmd.OutOrStdout(), report)
		},
	}
}

func randomCmd(service Service) *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Show the weather for a random city",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := service.Random(cmd.Context())
			if err != nil {
				return err
			}

			return Render(cmd.OutOrStdout(), report)
		},
	}
}

func saveCmd(service Service) *cobra.Command {
	return &cobra.Command{
		Use:   "save <city...>",
		Short: "Fetch a city and save it for later",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := service.Save(cmd.Context(), cityArg(args))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved to %s\n", path)
			return nil
		},
	}
}

func openCmd(service Service) *cobra.Command {
	return &cobra.Command{
		Use:   "open <file>",
		Short: "Show a saved day, by save name or path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				report models.Report
				err    error
			)

			if _, statErr := os.Stat(args[0]); statErr == nil {
				report, err = service.OpenFile(args[0])
			} else {
				report, err = service.Open(args[0])
			}
			if err != nil {
				return err
			}

			return Render(cmd.OutOrStdout(), report)
		},
	}
}

func savesCmd(service Service) *cobra.Command {
	return &cobra.Command{
		Use:   "saves",
		Short: "List saved days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := service.ListSaves()
			if err != nil {
				return err
			}

			if len(names) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No saves yet")
				return nil
			}

			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func serveCmd(serve ServeFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if serve == nil {
				return errors.New("serve is not available")
			}
			return serve(cmd.Context())
		},
	}
}

func cityArg(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
