package transcriber

import (
	"context"
	"time"
)

// Result holds a finished transcription and how long it took to produce.
type Result struct {
	Text     string
	Duration time.Duration
}

// Transcriber converts an audio file into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (Result, error)
}
