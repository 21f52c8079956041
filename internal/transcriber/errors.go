package transcriber

import "fmt"

// TranscriptionError reports a failure to transcribe a single audio file.
type TranscriptionError struct {
	Path string
	Err  error
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("transcribe %s: %v", e.Path, e.Err)
}

func (e *TranscriptionError) Unwrap() error {
	return e.Err
}
