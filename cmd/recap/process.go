package main

import (
	"github.com/spf13/cobra"
)

func newProcessCommand(app *appOptions) *cobra.Command {
	flags := &pipelineFlags{}

	cmd := &cobra.Command{
		Use:   "process <file>",
		Short: "Transcribe and summarize a single recording",
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

			_, err = proc.Process(cmd.Context(), args[0], opts)
			return err
		},
	}

	flags.register(cmd)
	return cmd
}
