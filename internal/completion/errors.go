package completion

import "fmt"

// CompletionError reports a failed completion call: authentication,
// network, or a malformed provider response.
type CompletionError struct {
	Provider string
	Err      error
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("completion via %s: %v", e.Provider, e.Err)
}

func (e *CompletionError) Unwrap() error {
	return e.Err
}
