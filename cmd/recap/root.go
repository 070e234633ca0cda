package main

import (
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"recap/internal/config"
	"recap/internal/diarize"
	"recap/internal/llm"
	"recap/internal/logger"
	"recap/internal/media"
	"recap/internal/pipeline"
	"recap/internal/transcribe"
	"recap/pkg/executor"
)

type appOptions struct {
	configPath string
	verbose    bool
}

func newRootCommand() *cobra.Command {
	app := &appOptions{}

	rootCmd := &cobra.Command{
		Use:           "recap",
		Short:         "Transcribe, refine, and summarize recorded conversations",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&app.configPath, "config", "c", "", "configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newProcessCommand(app))
	rootCmd.AddCommand(newBatchCommand(app))
	rootCmd.AddCommand(newWatchCommand(app))
	rootCmd.AddCommand(newDownscaleCommand(app))

	return rootCmd
}

const defaultConfigFile = "recap.yaml"

// loadConfig loads the config file (explicit flag, then ./recap.yaml,
// then built-in defaults) and resolves API keys from the environment. A
// .env file is honored the way the recording scripts always did.
func (a *appOptions) loadConfig() (*config.Config, error) {
	_ = godotenv.Load()

	var (
		cfg *config.Config
		err error
	)
	switch {
	case a.configPath != "":
		cfg, err = config.Load(a.configPath)
	case fileExists(defaultConfigFile):
		cfg, err = config.Load(defaultConfigFile)
	default:
		cfg = config.Default()
	}
	if err != nil {
		return nil, err
	}

	cfg.ResolveEnv()
	return cfg, nil
}

func (a *appOptions) newLogger(cfg *config.Config, extra io.Writer) logger.Logger {
	level := cfg.Logging.Level
	if a.verbose {
		level = "debug"
	}
	if extra != nil {
		return logger.NewWithWriter(level, io.MultiWriter(os.Stdout, extra))
	}
	return logger.New(level)
}

// buildProcessor wires the pipeline from its parts.
func buildProcessor(cfg *config.Config, log logger.Logger) (pipeline.Processor, error) {
	client, err := llm.NewClient(cfg.LLM)
	if err != nil {
		return nil, err
	}

	exec := executor.New()
	conv := media.New(cfg.FFmpeg, exec, log)
	diar := diarize.New(cfg.Diarize, exec, log)
	stt := transcribe.New(cfg.Whisper, exec, log)
	text := llm.NewService(client, cfg.LLM, log)

	return pipeline.New(conv, diar, stt, text, log), nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
