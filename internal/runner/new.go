package runner

import (
	"github.com/Silverls96/transcript-summarizer/internal/completion"
	"github.com/Silverls96/transcript-summarizer/internal/config"
	"github.com/Silverls96/transcript-summarizer/internal/logger"
	"github.com/Silverls96/transcript-summarizer/internal/transcriber"
	"github.com/Silverls96/transcript-summarizer/internal/writer"
)

type implRunner struct {
	cfg         *config.Config
	transcriber transcriber.Transcriber
	completer   completion.Completer
	writer      writer.Writer
	logger      logger.Logger
}

// New creates a Runner wired with the two clients and the output writer.
func New(cfg *config.Config, tr transcriber.Transcriber, comp completion.Completer, w writer.Writer, log logger.Logger) Runner {
	return &implRunner{
		cfg:         cfg,
		transcriber: tr,
		completer:   comp,
		writer:      w,
		logger:      log,
	}
}
