package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"recap/internal/watcher"
)

func newWatchCommand(app *appOptions) *cobra.Command {
	flags := &pipelineFlags{}
	var maxConcurrent int

	cmd := &cobra.Command{
		Use:   "watch <dir>",
		Short: "Watch a directory and process recordings as they arrive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}

			cfg, err := app.loadConfig()
			if err != nil {
				return err
			}
			log := app.newLogger(cfg, nil)

			proc, err := buildProcessor(cfg, log)
			if err != nil {
				return err
			}

			handler := func(ctx context.Context, filePath string) error {
				_, err := proc.Process(ctx, filePath, opts)
				return err
			}

			w, err := watcher.New(args[0], handler, log, maxConcurrent)
			if err != nil {
				return err
			}
			defer w.Stop()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := w.Start(ctx); err != nil && err != context.Canceled {
				return err
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&maxConcurrent, "max-concurrent", 1, "recordings processed at the same time")
	return cmd
}
