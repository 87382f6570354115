package cli

import (
	"context"
	"errors"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/spf13/cobra"

	"weather-desk/pkg/logger"
)

var errBadInterval = errors.New("--every must be positive")

func watchCmd(service Service, l *logger.Logger) *cobra.Command {
	var every time.Duration

	cmd := &cobra.Command{
		Use:   "watch <city...>",
		Short: "Refresh the weather for a city periodically until interrupted",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if every <= 0 {
				return errBadInterval
			}

			city := cityArg(args)
			out := cmd.OutOrStdout()

			return watch(cmd.Context(), every, l, func(ctx context.Context) {
				report, err := service.Lookup(ctx, city)
				if err != nil {
					cmd.PrintErrf("There was problem: %s\n", Message(err))
					return
				}
				if err = Render(out, report); err != nil {
					l.Error(err, map[string]any{"city": city})
				}
			})
		},
	}

	cmd.Flags().DurationVar(&every, "every", defaultWatchInterval, "refresh interval")

	return cmd
}

// watch runs job right away and then every interval until ctx is done.
func watch(ctx context.Context, every time.Duration, l *logger.Logger, job func(ctx context.Context)) error {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()

	_, err := s.Every(every).Do(func() {
		l.Debug("running watch job", map[string]any{"every": every.String()})
		job(ctx)
	})
	if err != nil {
		return err
	}

	s.StartAsync()
	<-ctx.Done()
	s.Stop()

	return nil
}
