package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"recap/internal/batch"
)

func newBatchCommand(app *appOptions) *cobra.Command {
	flags := &pipelineFlags{}
	var timeoutHours int
	var noLog bool

	cmd := &cobra.Command{
		Use:   "batch [dir]",
		Short: "Process every .mov and .mp4 recording in a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			opts, err := flags.options()
			if err != nil {
				return err
			}

			cfg, err := app.loadConfig()
			if err != nil {
				return err
			}
			if timeoutHours > 0 {
				cfg.Batch.FileTimeoutHours = timeoutHours
			}

			log := app.newLogger(cfg, nil)
			if !noLog {
				logFile, err := os.OpenFile(cfg.Batch.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
				if err != nil {
					return fmt.Errorf("open batch log: %w", err)
				}
				defer logFile.Close()
				log = app.newLogger(cfg, logFile)
			}

			proc, err := buildProcessor(cfg, log)
			if err != nil {
				return err
			}

			summary, err := batch.New(cfg, proc, log).Run(cmd.Context(), dir, opts)
			if err != nil {
				return err
			}
			if len(summary.Results) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), summary.Table())
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&timeoutHours, "timeout", 0, "per-file timeout in hours (default from config)")
	cmd.Flags().BoolVar(&noLog, "no-log", false, "do not append to the batch log file")
	return cmd
}
