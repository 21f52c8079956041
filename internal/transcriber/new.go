package transcriber

import (
	"github.com/Silverls96/transcript-summarizer/internal/config"
	"github.com/Silverls96/transcript-summarizer/internal/logger"
	"github.com/Silverls96/transcript-summarizer/pkg/executor"
)

type implTranscriber struct {
	cfg      config.WhisperConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Transcriber that drives a local whisper.cpp binary.
func New(cfg config.WhisperConfig, exec executor.Executor, log logger.Logger) Transcriber {
	return &implTranscriber{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
