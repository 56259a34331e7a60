package pipeline

import "errors"

// terminalError marks a failure that retrying cannot fix, such as an
// unreadable or undecodable media file.
type terminalError struct {
	err error
}

func (e *terminalError) Error() string { return e.err.Error() }
func (e *terminalError) Unwrap() error { return e.err }

// Terminal wraps err so the retry policy gives up immediately.
func Terminal(err error) error {
	if err == nil {
		return nil
	}
	return &terminalError{err: err}
}

// IsTerminal reports whether err (or anything it wraps) is terminal.
func IsTerminal(err error) bool {
	var t *terminalError
	return errors.As(err, &t)
}
