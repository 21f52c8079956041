package writer

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

type implWriter struct {
	runDir string
	used   map[string]int
}

// New creates a Writer rooted at a fresh timestamped run directory under
// outputRoot. Reruns therefore never overwrite earlier results. Fails when
// the output root itself is unwritable, which callers treat as fatal.
func New(outputRoot string) (Writer, error) {
	runDir := filepath.Join(outputRoot, time.Now().Format("run-20060102-150405"))
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return nil, fmt.Errorf("create run directory: %w", err)
	}

	return &implWriter{
		runDir: runDir,
		used:   make(map[string]int),
	}, nil
}
