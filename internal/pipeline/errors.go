package pipeline

import "errors"

// Error kinds returned by Run. Every failure is terminal; match with errors.Is.
var (
	ErrInvalidOptions        = errors.New("invalid options")
	ErrSourceUnreadable      = errors.New("source unreadable")
	ErrSourceReadInterrupted = errors.New("source read interrupted")
	ErrOutputUnwritable      = errors.New("output unwritable")
)
