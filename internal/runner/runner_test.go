package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Silverls96/transcript-summarizer/internal/completion"
	"github.com/Silverls96/transcript-summarizer/internal/config"
	"github.com/Silverls96/transcript-summarizer/internal/logger"
	"github.com/Silverls96/transcript-summarizer/internal/transcriber"
	"github.com/Silverls96/transcript-summarizer/internal/writer"
)

// fakeTranscriber returns the file's base name as its transcript, or fails
// for paths listed in failOn.
type fakeTranscriber struct {
	failOn map[string]bool
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, audioPath string) (transcriber.Result, error) {
	if f.failOn[filepath.Base(audioPath)] {
		return transcriber.Result{}, &transcriber.TranscriptionError{Path: audioPath, Err: fmt.Errorf("decode failed")}
	}
	return transcriber.Result{
		Text:     "transcript of " + filepath.Base(audioPath),
		Duration: 100 * time.Millisecond,
	}, nil
}

// fakeCompleter echoes the prompt back and records every prompt it saw.
type fakeCompleter struct {
	prompts []string
	err     error
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt string) (completion.Result, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return completion.Result{}, f.err
	}
	return completion.Result{
		Text:     "response to: " + prompt,
		Duration: 50 * time.Millisecond,
	}, nil
}

func newTestRunner(t *testing.T, inputDir string, tr transcriber.Transcriber, comp completion.Completer) (Runner, string) {
	t.Helper()

	outputRoot := t.TempDir()
	log := logger.New("error", "console")

	w, err := writer.New(outputRoot)
	if err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{
		LLM:   config.LLMConfig{APIKey: "sk-test", Model: "gpt-4o-mini"},
		Paths: config.PathsConfig{Input: inputDir, Output: outputRoot},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}

	return New(cfg, tr, comp, w, log), w.Dir()
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunAudio(t *testing.T) {
	inputDir := t.TempDir()
	writeFile(t, inputDir, "a.wav", "audio")
	writeFile(t, inputDir, "b.wav", "audio")
	writeFile(t, inputDir, "notes.txt", "not audio")

	r, runDir := newTestRunner(t, inputDir, &fakeTranscriber{}, &fakeCompleter{})

	results, err := r.RunAudio(context.Background())
	if err != nil {
		t.Fatalf("RunAudio() error = %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	for _, res := range results {
		if res.Failed() {
			t.Errorf("item %s failed: %v", res.Item, res.Err)
		}
		if res.Record.Transcript == "" {
			t.Errorf("item %s has empty transcript", res.Item)
		}
		if _, err := os.Stat(res.Paths.Response); err != nil {
			t.Errorf("response file missing for %s: %v", res.Item, err)
		}
	}

	// Stable name order
	if filepath.Base(results[0].Item) != "a.wav" || filepath.Base(results[1].Item) != "b.wav" {
		t.Errorf("unexpected order: %s, %s", results[0].Item, results[1].Item)
	}

	if _, err := os.Stat(filepath.Join(runDir, "transcripts")); err != nil {
		t.Errorf("transcripts dir missing: %v", err)
	}
}

func TestRunAudioBatchResilience(t *testing.T) {
	inputDir := t.TempDir()
	writeFile(t, inputDir, "a.wav", "audio")
	writeFile(t, inputDir, "b.wav", "") // corrupt
	writeFile(t, inputDir, "c.wav", "audio")

	tr := &fakeTranscriber{failOn: map[string]bool{"b.wav": true}}
	r, _ := newTestRunner(t, inputDir, tr, &fakeCompleter{})

	results, err := r.RunAudio(context.Background())
	if err != nil {
		t.Fatalf("RunAudio() error = %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(results))
	}

	if results[0].Failed() {
		t.Errorf("a.wav should succeed: %v", results[0].Err)
	}

	if !results[1].Failed() {
		t.Error("b.wav should fail")
	}
	var terr *transcriber.TranscriptionError
	if !errors.As(results[1].Err, &terr) {
		t.Errorf("b.wav error type = %T, want *TranscriptionError", results[1].Err)
	}

	// The corrupt file must not prevent processing of subsequent items
	if results[2].Failed() {
		t.Errorf("c.wav should succeed after b.wav failed: %v", results[2].Err)
	}
}

func TestRunAudioEmptyFolder(t *testing.T) {
	r, _ := newTestRunner(t, t.TempDir(), &fakeTranscriber{}, &fakeCompleter{})

	results, err := r.RunAudio(context.Background())
	if err != nil {
		t.Fatalf("RunAudio() on empty folder error = %v", err)
	}
	if len(results) != 0 {
		t.Errorf("len(results) = %d, want 0", len(results))
	}
}

func TestRunAudioMissingFolder(t *testing.T) {
	r, _ := newTestRunner(t, filepath.Join(t.TempDir(), "missing"), &fakeTranscriber{}, &fakeCompleter{})

	if _, err := r.RunAudio(context.Background()); err == nil {
		t.Error("RunAudio() should fail for a missing input folder")
	}
}

func TestRunAudioCompletionFailure(t *testing.T) {
	inputDir := t.TempDir()
	writeFile(t, inputDir, "a.wav", "audio")

	comp := &fakeCompleter{err: &completion.CompletionError{Provider: "test", Err: fmt.Errorf("network down")}}
	r, _ := newTestRunner(t, inputDir, &fakeTranscriber{}, comp)

	results, err := r.RunAudio(context.Background())
	if err != nil {
		t.Fatalf("RunAudio() error = %v", err)
	}

	if len(results) != 1 || !results[0].Failed() {
		t.Fatal("completion failure should be recorded in the item result")
	}
	var cerr *completion.CompletionError
	if !errors.As(results[0].Err, &cerr) {
		t.Errorf("error type = %T, want *CompletionError", results[0].Err)
	}
}

func TestRunAudioDocxReport(t *testing.T) {
	inputDir := t.TempDir()
	writeFile(t, inputDir, "a.wav", "audio")

	log := logger.New("error", "console")
	w, err := writer.New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{
		LLM:    config.LLMConfig{APIKey: "sk-test", Model: "gpt-4o-mini"},
		Paths:  config.PathsConfig{Input: inputDir},
		Report: config.ReportConfig{Docx: true},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}

	r := New(cfg, &fakeTranscriber{}, &fakeCompleter{}, w, log)
	if _, err := r.RunAudio(context.Background()); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(filepath.Join(w.Dir(), "report.docx")); err != nil {
		t.Errorf("report.docx missing: %v", err)
	}
}

func TestRunText(t *testing.T) {
	dir := t.TempDir()
	q1 := writeFile(t, dir, "q1.txt", "Hello")
	q2 := filepath.Join(dir, "q2.txt") // missing

	comp := &fakeCompleter{}
	r, runDir := newTestRunner(t, dir, &fakeTranscriber{}, comp)

	results, err := r.RunText(context.Background(), []string{q1, q2})
	if err != nil {
		t.Fatalf("RunText() error = %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}

	if results[0].Failed() {
		t.Errorf("q1.txt should succeed: %v", results[0].Err)
	}
	if results[0].Record.Transcript != "" {
		t.Error("text-mode record should not carry a transcript")
	}

	if !results[1].Failed() {
		t.Error("missing q2.txt should fail")
	}
	var ferr *FileAccessError
	if !errors.As(results[1].Err, &ferr) {
		t.Errorf("q2.txt error type = %T, want *FileAccessError", results[1].Err)
	}

	// Summary lists only the successful file
	data, err := os.ReadFile(filepath.Join(runDir, "text_processing_summary.txt"))
	if err != nil {
		t.Fatalf("summary missing: %v", err)
	}
	if !strings.Contains(string(data), "q1.txt") {
		t.Errorf("summary does not mention q1.txt: %q", string(data))
	}
	if strings.Contains(string(data), "q2.txt") {
		t.Errorf("summary should not mention failed q2.txt: %q", string(data))
	}
}

func TestRunTextPromptIsolation(t *testing.T) {
	dir := t.TempDir()
	q1 := writeFile(t, dir, "q1.txt", "first question")
	q2 := writeFile(t, dir, "q2.txt", "second question")

	comp := &fakeCompleter{}
	r, _ := newTestRunner(t, dir, &fakeTranscriber{}, comp)

	if _, err := r.RunText(context.Background(), []string{q1, q2}); err != nil {
		t.Fatal(err)
	}

	if len(comp.prompts) != 2 {
		t.Fatalf("len(prompts) = %d, want 2", len(comp.prompts))
	}
	if comp.prompts[0] != "first question" {
		t.Errorf("prompt[0] = %q", comp.prompts[0])
	}
	// No item's content leaks into another item's prompt
	if strings.Contains(comp.prompts[1], "first question") {
		t.Errorf("prompt[1] contains earlier item content: %q", comp.prompts[1])
	}
}

func TestRunTextRejectsNonTextFile(t *testing.T) {
	dir := t.TempDir()
	bin := writeFile(t, dir, "audio.wav", "binary")

	r, _ := newTestRunner(t, dir, &fakeTranscriber{}, &fakeCompleter{})

	results, err := r.RunText(context.Background(), []string{bin})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || !results[0].Failed() {
		t.Fatal("non-.txt file should be rejected")
	}
	var ferr *FileAccessError
	if !errors.As(results[0].Err, &ferr) {
		t.Errorf("error type = %T, want *FileAccessError", results[0].Err)
	}
}
