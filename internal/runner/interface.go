package runner

import (
	"context"

	"github.com/Silverls96/transcript-summarizer/internal/writer"
)

// Result is the outcome of processing one input item: a written record with
// its destination paths, or a classified failure. A failed item never stops
// the batch.
type Result struct {
	Item   string
	Record *writer.Record
	Paths  writer.Paths
	Err    error
}

// Failed reports whether the item ended in an error.
func (r Result) Failed() bool {
	return r.Err != nil
}

// Runner turns a list of inputs into an ordered list of Results.
type Runner interface {
	// RunAudio transcribes every recognized audio file in the configured
	// input folder and generates a response for each transcript.
	RunAudio(ctx context.Context) ([]Result, error)

	// RunText generates a response for each listed text file, using the
	// file's full content as the prompt.
	RunText(ctx context.Context, paths []string) ([]Result, error)

	// Process handles a single audio file. Used by watch mode.
	Process(ctx context.Context, audioPath string) Result
}
