package errs

import "errors"

// Errors shared between the notifier adapter and the usecase layer
var (
	ErrNotifierRejected    = errors.New("notifier rejected the message")
	ErrNotifierUnavailable = errors.New("notifier unavailable")
)
