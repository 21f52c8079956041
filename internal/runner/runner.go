package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Silverls96/transcript-summarizer/internal/writer"
)

// RunAudio processes every recognized audio file in the configured input
// folder, strictly in order. One item is fully processed before the next
// begins; a failed item is recorded in its Result and the batch continues.
func (r *implRunner) RunAudio(ctx context.Context) ([]Result, error) {
	files, err := discoverAudioFiles(r.cfg.Paths.Input)
	if err != nil {
		return nil, fmt.Errorf("list input folder %s: %w", r.cfg.Paths.Input, err)
	}

	if len(files) == 0 {
		r.logger.Info(ctx, "No audio files found in %s", r.cfg.Paths.Input)
		return nil, nil
	}

	r.logger.Info(ctx, "Found %d audio files in %s", len(files), r.cfg.Paths.Input)

	results := make([]Result, 0, len(files))
	for i, path := range files {
		r.logger.Info(ctx, "[%d/%d] Processing: %s", i+1, len(files), path)

		res := r.Process(ctx, path)
		if res.Failed() {
			r.logger.Error(ctx, "Failed to process %s: %v", path, res.Err)
		}
		results = append(results, res)
	}

	r.finishRun(ctx, results)
	return results, nil
}

// Process runs the full pipeline for one audio file: transcribe, complete,
// write.
func (r *implRunner) Process(ctx context.Context, audioPath string) Result {
	res := Result{Item: audioPath}

	transcript, err := r.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		res.Err = err
		return res
	}
	r.logger.Info(ctx, "Transcription: %s", transcript.Text)

	response, err := r.completer.Complete(ctx, transcript.Text)
	if err != nil {
		res.Err = err
		return res
	}
	r.logger.Info(ctx, "Assistant response: %s", response.Text)

	rec := &writer.Record{
		Source:            audioPath,
		Transcript:        transcript.Text,
		TranscriptionTime: transcript.Duration,
		Response:          response.Text,
		ResponseTime:      response.Duration,
	}

	paths, err := r.writer.Write(rec)
	if err != nil {
		res.Err = err
		return res
	}

	r.logger.Info(ctx, "Record saved: %s", paths.Response)
	res.Record = rec
	res.Paths = paths
	return res
}

// RunText processes an explicit ordered list of text files. Each file's
// content becomes its own prompt; nothing from one item leaks into another.
func (r *implRunner) RunText(ctx context.Context, paths []string) ([]Result, error) {
	results := make([]Result, 0, len(paths))
	var summary []writer.SummaryEntry

	for i, path := range paths {
		r.logger.Info(ctx, "[%d/%d] Processing text file: %s", i+1, len(paths), path)

		res := r.processText(ctx, path, &summary)
		if res.Failed() {
			r.logger.Error(ctx, "Failed to process %s: %v", path, res.Err)
		}
		results = append(results, res)
	}

	if len(summary) > 0 {
		if path, err := r.writer.WriteSummary(summary); err != nil {
			r.logger.Error(ctx, "Failed to write summary: %v", err)
		} else {
			r.logger.Info(ctx, "Summary saved: %s", path)
		}
	}

	r.finishRun(ctx, results)
	return results, nil
}

func (r *implRunner) processText(ctx context.Context, path string, summary *[]writer.SummaryEntry) Result {
	res := Result{Item: path}

	if strings.ToLower(filepath.Ext(path)) != ".txt" {
		res.Err = &FileAccessError{Path: path, Err: fmt.Errorf("not a text file")}
		return res
	}

	data, err := os.ReadFile(path)
	if err != nil {
		res.Err = &FileAccessError{Path: path, Err: err}
		return res
	}

	text := strings.TrimSpace(string(data))
	r.logger.Info(ctx, "Text content: %s", text)

	response, err := r.completer.Complete(ctx, text)
	if err != nil {
		res.Err = err
		return res
	}
	r.logger.Info(ctx, "Assistant response: %s", response.Text)

	rec := &writer.Record{
		Source:       path,
		Response:     response.Text,
		ResponseTime: response.Duration,
	}

	paths, err := r.writer.Write(rec)
	if err != nil {
		res.Err = err
		return res
	}

	*summary = append(*summary, writer.SummaryEntry{File: path, Text: text})
	res.Record = rec
	res.Paths = paths
	return res
}

// finishRun logs the batch tally and renders the optional docx report over
// the successful records.
func (r *implRunner) finishRun(ctx context.Context, results []Result) {
	var records []*writer.Record
	failed := 0
	for _, res := range results {
		if res.Failed() {
			failed++
			continue
		}
		records = append(records, res.Record)
	}

	r.logger.Info(ctx, "Batch complete: %d success, %d failed", len(records), failed)

	if !r.cfg.Report.Docx || len(records) == 0 {
		return
	}

	if path, err := r.writer.WriteReport(records); err != nil {
		r.logger.Error(ctx, "Failed to write report: %v", err)
	} else {
		r.logger.Info(ctx, "Report saved: %s", path)
	}
}
