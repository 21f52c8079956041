package writer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// WriteSummary emits the text-mode run summary listing every successfully
// processed text file and its prompt content.
func (w *implWriter) WriteSummary(entries []SummaryEntry) (string, error) {
	if len(entries) == 0 {
		return "", nil
	}

	var b strings.Builder
	b.WriteString("Text processing summary\n")
	fmt.Fprintf(&b, "Processed at: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Total files processed: %d\n\n", len(entries))

	for _, e := range entries {
		fmt.Fprintf(&b, "File: %s\n", filepath.Base(e.File))
		fmt.Fprintf(&b, "Text: %s\n\n", e.Text)
	}

	path := filepath.Join(w.runDir, "text_processing_summary.txt")
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", &WriteError{Path: path, Err: err}
	}

	return path, nil
}
