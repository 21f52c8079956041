package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Transcribe runs whisper.cpp against the audio file and returns the plain
// text transcript. The transcript is written to a per-call temp directory so
// concurrent-safe output naming is never a concern for the caller.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath string) (Result, error) {
	info, err := os.Stat(audioPath)
	if err != nil {
		return Result{}, &TranscriptionError{Path: audioPath, Err: err}
	}
	if info.IsDir() {
		return Result{}, &TranscriptionError{Path: audioPath, Err: fmt.Errorf("is a directory")}
	}

	tmpDir, err := os.MkdirTemp("", "transcribe-*")
	if err != nil {
		return Result{}, &TranscriptionError{Path: audioPath, Err: fmt.Errorf("create temp dir: %w", err)}
	}
	defer os.RemoveAll(tmpDir)

	// Whisper appends .txt to the output prefix
	outputPrefix := filepath.Join(tmpDir, "transcript")

	// -m: model path
	// -f: input audio file
	// -otxt: plain text output
	// -l: force language (prevents hallucination)
	// -t: number of threads
	// -np: suppress progress prints
	args := []string{
		"-m", t.cfg.ModelPath,
		"-f", audioPath,
		"-otxt",
		"-l", t.cfg.Language,
		"-t", strconv.Itoa(t.cfg.Threads),
		"-np",
		"--output-file", outputPrefix,
	}

	t.logger.Info(ctx, "Transcribing: %s", audioPath)

	start := time.Now()
	if _, err := t.executor.Execute(ctx, t.cfg.BinaryPath, args...); err != nil {
		return Result{}, &TranscriptionError{Path: audioPath, Err: err}
	}
	elapsed := time.Since(start)

	data, err := os.ReadFile(outputPrefix + ".txt")
	if err != nil {
		return Result{}, &TranscriptionError{Path: audioPath, Err: fmt.Errorf("read transcript: %w", err)}
	}

	text := strings.TrimSpace(string(data))
	t.logger.Debug(ctx, "Transcription finished in %s (%d chars)", elapsed, len(text))

	return Result{Text: text, Duration: elapsed}, nil
}
