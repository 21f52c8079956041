package config

import (
	"fmt"
	"os"
)

type Config struct {
	Whisper WhisperConfig `yaml:"whisper"`
	LLM     LLMConfig     `yaml:"llm"`
	Paths   PathsConfig   `yaml:"paths"`
	Logging LoggingConfig `yaml:"logging"`
	Report  ReportConfig  `yaml:"report"`
}

type WhisperConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ModelPath  string `yaml:"model_path"`
	Language   string `yaml:"language"`
	Threads    int    `yaml:"threads"`
}

// LLMConfig holds the completion provider settings. The API key is never
// read from the config file, only from the environment.
type LLMConfig struct {
	Model      string `yaml:"model"`
	APIKey     string `yaml:"-"`
	APIBase    string `yaml:"api_base"`
	APIVersion string `yaml:"api_version"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type ReportConfig struct {
	Docx bool `yaml:"docx"`
}

// ApplyEnv overlays environment values onto the config. Environment
// variables win over file values for the keys they cover.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("OPENROUTER_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv("LLM_API_BASE"); v != "" {
		c.LLM.APIBase = v
	}
	if v := os.Getenv("LLM_API_VERSION"); v != "" {
		c.LLM.APIVersion = v
	}
	if v := os.Getenv("FOLDER"); v != "" {
		c.Paths.Input = v
	}
}

func (c *Config) Validate() error {
	if c.LLM.APIKey == "" {
		return fmt.Errorf("llm api key is required (set OPENROUTER_API_KEY)")
	}
	if c.LLM.Model == "" {
		return fmt.Errorf("llm.model is required (set LLM_MODEL)")
	}

	if c.Paths.Input == "" {
		c.Paths.Input = "inputs"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "outputs"
	}
	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Whisper.ModelPath == "" {
		c.Whisper.ModelPath = "models/ggml-turbo.bin"
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "id"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}

	return nil
}
