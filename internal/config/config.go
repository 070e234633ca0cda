package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Whisper Whisper `yaml:"whisper"`
	Diarize Diarize `yaml:"diarize"`
	FFmpeg  FFmpeg  `yaml:"ffmpeg"`
	LLM     LLM     `yaml:"llm"`
	Logging Logging `yaml:"logging"`
	Batch   Batch   `yaml:"batch"`
}

type Whisper struct {
	BinaryPath string `yaml:"binary_path"`
	ModelPath  string `yaml:"model_path"`
	Threads    int    `yaml:"threads"`
	BestOf     int    `yaml:"best_of"`
}

// Diarize configures the external speaker-diarization command. The command
// receives the audio path as its last argument and must print RTTM lines
// on stdout.
type Diarize struct {
	BinaryPath string   `yaml:"binary_path"`
	ExtraArgs  []string `yaml:"extra_args"`
}

type FFmpeg struct {
	BinaryPath string `yaml:"binary_path"`
}

type LLM struct {
	Provider      string `yaml:"provider"` // "openai" or "gemini"
	RefineModel   string `yaml:"refine_model"`
	SummaryModel  string `yaml:"summary_model"`
	FilenameModel string `yaml:"filename_model"`
	GeminiModel   string `yaml:"gemini_model"`

	// Escalating per-attempt timeouts, in seconds.
	RefineTimeouts  []int `yaml:"refine_timeouts"`
	SummaryTimeouts []int `yaml:"summary_timeouts"`
	FilenameTimeout int   `yaml:"filename_timeout"`

	MaxChunkChars int `yaml:"max_chunk_chars"`

	// Resolved from the environment, never from YAML.
	OpenAIKey  string   `yaml:"-"`
	GeminiKeys []string `yaml:"-"`
}

type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type Batch struct {
	FileTimeoutHours int    `yaml:"file_timeout_hours"`
	LogFile          string `yaml:"log_file"`
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Default returns a config with every default applied, for running
// without a config file.
func Default() *Config {
	cfg := &Config{}
	// Validate never fails on the zero value; it only fills defaults.
	_ = cfg.Validate()
	return cfg
}

func (c *Config) Validate() error {
	if len(c.LLM.RefineTimeouts) > 1 && !ascending(c.LLM.RefineTimeouts) {
		return fmt.Errorf("llm.refine_timeouts must be increasing")
	}
	if len(c.LLM.SummaryTimeouts) > 1 && !ascending(c.LLM.SummaryTimeouts) {
		return fmt.Errorf("llm.summary_timeouts must be increasing")
	}
	switch c.LLM.Provider {
	case "", "openai", "gemini":
	default:
		return fmt.Errorf("llm.provider must be openai or gemini, got %q", c.LLM.Provider)
	}

	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Whisper.ModelPath == "" {
		c.Whisper.ModelPath = "models/ggml-large-v3.bin"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 8
	}
	if c.Whisper.BestOf == 0 {
		c.Whisper.BestOf = 5
	}
	if c.Diarize.BinaryPath == "" {
		c.Diarize.BinaryPath = "diarize"
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.LLM.Provider == "" {
		c.LLM.Provider = "openai"
	}
	if c.LLM.RefineModel == "" {
		c.LLM.RefineModel = "gpt-4.1-mini"
	}
	if c.LLM.SummaryModel == "" {
		c.LLM.SummaryModel = "gpt-4o"
	}
	if c.LLM.FilenameModel == "" {
		c.LLM.FilenameModel = "gpt-4o"
	}
	if c.LLM.GeminiModel == "" {
		c.LLM.GeminiModel = "gemini-2.5-flash"
	}
	if len(c.LLM.RefineTimeouts) == 0 {
		c.LLM.RefineTimeouts = []int{120, 180, 240}
	}
	if len(c.LLM.SummaryTimeouts) == 0 {
		c.LLM.SummaryTimeouts = []int{180, 240, 300}
	}
	if c.LLM.FilenameTimeout == 0 {
		c.LLM.FilenameTimeout = 60
	}
	if c.LLM.MaxChunkChars == 0 {
		c.LLM.MaxChunkChars = 6000
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Batch.FileTimeoutHours == 0 {
		c.Batch.FileTimeoutHours = 12
	}
	if c.Batch.LogFile == "" {
		c.Batch.LogFile = "recap_batch.log"
	}

	return nil
}

// ResolveEnv pulls API credentials from the environment. Keys are
// deliberately not part of the YAML file.
func (c *Config) ResolveEnv() {
	c.LLM.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	if keys := os.Getenv("GEMINI_API_KEYS"); keys != "" {
		for _, k := range strings.Split(keys, ",") {
			if k = strings.TrimSpace(k); k != "" {
				c.LLM.GeminiKeys = append(c.LLM.GeminiKeys, k)
			}
		}
	} else if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.LLM.GeminiKeys = []string{key}
	}
}

func ascending(xs []int) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i] < xs[i-1] {
			return false
		}
	}
	return true
}
