package source

import "github.com/pkg/errors"

var (
	// ErrNotFound indicates the artifact does not exist. Not retryable.
	ErrNotFound = errors.New("artifact not found")

	// ErrTransient indicates a network or service failure. Retry may help,
	// but retries are the caller's call, never this package's.
	ErrTransient = errors.New("transient source error")
)

// IsNotFound reports whether err is (or wraps) ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
