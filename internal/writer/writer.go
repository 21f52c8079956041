package writer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	transcriptsDir = "transcripts"
	responsesDir   = "responses"
)

// Dir returns the run directory all outputs are written into.
func (w *implWriter) Dir() string {
	return w.runDir
}

// Write persists one record: a transcript file when the record carries a
// transcript, and a response file. Destination folders are created on
// demand.
func (w *implWriter) Write(rec *Record) (Paths, error) {
	base := w.uniqueName(rec.Source)

	var paths Paths

	if rec.Transcript != "" {
		dir := filepath.Join(w.runDir, transcriptsDir)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return Paths{}, &WriteError{Path: dir, Err: err}
		}

		path := filepath.Join(dir, base+"_transcription.txt")
		content := fmt.Sprintf("Transcription Time: %.2f seconds\n%s\n",
			rec.TranscriptionTime.Seconds(), rec.Transcript)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return Paths{}, &WriteError{Path: path, Err: err}
		}
		paths.Transcript = path
	}

	dir := filepath.Join(w.runDir, responsesDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Paths{}, &WriteError{Path: dir, Err: err}
	}

	path := filepath.Join(dir, base+"_response.txt")
	content := fmt.Sprintf("Response Generation Time: %.2f seconds\n%s\n",
		rec.ResponseTime.Seconds(), rec.Response)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return Paths{}, &WriteError{Path: path, Err: err}
	}
	paths.Response = path
	return paths, nil
}

// uniqueName derives a destination base name from the source path. When the
// same base name shows up twice in one run it gets an index suffix instead
// of silently overwriting the earlier record.
func (w *implWriter) uniqueName(source string) string {
	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	w.used[base]++
	if n := w.used[base]; n > 1 {
		return fmt.Sprintf("%s-%d", base, n)
	}
	return base
}
