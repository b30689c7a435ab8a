package commands

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/humblebees/bankjournal/pkg/config"
	"github.com/humblebees/bankjournal/pkg/cron"
)

func newWatchCommand() *cobra.Command {
	var schedule string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Sweep the input directory on a schedule and process new statements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if schedule == "" {
				schedule = cfg.Watch.Schedule
			}

			logger := newLogger()
			scheduler := cron.NewScheduler(schedule, func(ctx context.Context) {
				sweep(ctx, cfg, logger)
			}, logger)

			if err := scheduler.Start(); err != nil {
				return err
			}
			scheduler.RunNow()

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
			<-stop

			<-scheduler.Stop().Done()
			return nil
		},
	}

	cmd.Flags().StringVar(&schedule, "schedule", "", "cron schedule (defaults to WATCH_SCHEDULE)")

	return cmd
}

// sweep processes whatever currently sits in the input directory. Outputs
// are rewritten in place; the pipeline is deterministic so reruns are
// harmless.
func sweep(ctx context.Context, cfg *config.Config, logger *slog.Logger) {
	paths, err := collectStatements(cfg.Paths.InputDir)
	if err != nil {
		logger.Warn("sweep skipped", slog.Any("error", err))
		return
	}
	if len(paths) == 0 {
		logger.Debug("sweep found no statements", slog.String("dir", cfg.Paths.InputDir))
		return
	}
	if err := runProcess(ctx, cfg, paths, cfg.Paths.OutputDir, logger); err != nil {
		logger.Error("sweep failed", slog.Any("error", err))
	}
}
