package writer

import "time"

// Record is the durable artifact for one processed input item.
// Transcript and TranscriptionTime are empty for text-mode items.
type Record struct {
	Source            string
	Transcript        string
	TranscriptionTime time.Duration
	Response          string
	ResponseTime      time.Duration
}

// Paths are the destination files a record was written to.
type Paths struct {
	Transcript string
	Response   string
}

// SummaryEntry describes one processed text file for the run summary.
type SummaryEntry struct {
	File string
	Text string
}

// Writer persists output records under a per-run destination folder.
type Writer interface {
	Write(rec *Record) (Paths, error)
	WriteSummary(entries []SummaryEntry) (string, error)
	WriteReport(records []*Record) (string, error)
	Dir() string
}
