package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Silverls96/transcript-summarizer/internal/completion"
	"github.com/Silverls96/transcript-summarizer/internal/config"
	"github.com/Silverls96/transcript-summarizer/internal/logger"
	"github.com/Silverls96/transcript-summarizer/internal/runner"
	"github.com/Silverls96/transcript-summarizer/internal/transcriber"
	"github.com/Silverls96/transcript-summarizer/internal/watcher"
	"github.com/Silverls96/transcript-summarizer/internal/writer"
	"github.com/Silverls96/transcript-summarizer/pkg/executor"
)

const defaultConfigPath = "config.yaml"

func main() {
	var (
		audioMode  bool
		textMode   bool
		watchMode  bool
		configPath string
	)

	flag.BoolVar(&audioMode, "audio", false, "Process audio files in the configured input folder")
	flag.BoolVar(&textMode, "text", false, "Process the listed text files (paths follow the flags)")
	flag.BoolVar(&watchMode, "watch", false, "Watch the input folder and process new audio files as they arrive")
	flag.StringVar(&configPath, "config", defaultConfigPath, "Path to YAML config file")
	flag.Parse()

	modes := 0
	for _, m := range []bool{audioMode, textMode, watchMode} {
		if m {
			modes++
		}
	}
	if modes != 1 {
		fmt.Fprintln(os.Stderr, "exactly one of -audio, -text or -watch is required")
		flag.Usage()
		os.Exit(2)
	}
	if textMode && flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "-text requires at least one file path")
		os.Exit(2)
	}

	// Load .env if present
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "No .env file found, falling back to environment variables")
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	exec := executor.New()
	tr := transcriber.New(cfg.Whisper, exec, log)
	comp := completion.New(cfg.LLM, log)

	w, err := writer.New(cfg.Paths.Output)
	if err != nil {
		log.Error(ctx, "Failed to prepare output folder: %v", err)
		os.Exit(1)
	}
	log.Info(ctx, "Writing outputs to: %s", w.Dir())

	run := runner.New(cfg, tr, comp, w, log)

	switch {
	case audioMode:
		log.Info(ctx, "Processing audio files in %s", cfg.Paths.Input)
		if _, err := run.RunAudio(ctx); err != nil {
			log.Error(ctx, "Batch failed: %v", err)
			os.Exit(1)
		}

	case textMode:
		log.Info(ctx, "Processing text files for response generation")
		if _, err := run.RunText(ctx, flag.Args()); err != nil {
			log.Error(ctx, "Batch failed: %v", err)
			os.Exit(1)
		}

	case watchMode:
		handler := func(ctx context.Context, path string) error {
			return run.Process(ctx, path).Err
		}
		wt, err := watcher.New(cfg.Paths.Input, handler, log)
		if err != nil {
			log.Error(ctx, "Failed to create watcher: %v", err)
			os.Exit(1)
		}
		defer wt.Stop()

		if err := wt.Start(ctx); err != nil && err != context.Canceled {
			log.Error(ctx, "Watcher error: %v", err)
			os.Exit(1)
		}
	}

	log.Info(ctx, "Processing completed")
}

// loadConfig reads the config file when it exists. The default path is
// optional so the tool can run from environment variables alone; an
// explicitly given path must exist.
func loadConfig(path string) (*config.Config, error) {
	if path == defaultConfigPath {
		if _, err := os.Stat(path); err != nil {
			return &config.Config{}, nil
		}
	}
	return config.Load(path)
}
