package fastcdc

import (
	"errors"
	"fmt"
	"io"
)

// ConfigError reports a violated construction-time bound. Bound names the
// specific constraint (e.g. "min_size", "min_size<=avg_size") so callers
// can report a precise diagnostic rather than a generic "invalid config".
type ConfigError struct {
	Bound string
	Got   uint64
	Limit uint64
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("fastcdc: invalid configuration: %s (got %d, limit %d)", e.Bound, e.Got, e.Limit)
}

// NewConfigError builds a ConfigError for the given bound name.
func NewConfigError(bound string, got, limit uint64) error {
	return &ConfigError{Bound: bound, Got: got, Limit: limit}
}

// IOError wraps a read failure surfaced by a streaming driver's underlying
// byte source. Errors.Unwrap exposes the original error for errors.Is/As.
type IOError struct {
	Err error
}

func (e *IOError) Error() string { return fmt.Sprintf("fastcdc: read error: %v", e.Err) }
func (e *IOError) Unwrap() error { return e.Err }

// NewIOError wraps a reader error from a streaming driver.
func NewIOError(err error) error {
	return &IOError{Err: err}
}

// ErrEmpty is returned by a streaming driver's first Next call when the
// underlying source produced zero bytes before any chunk could be formed.
// It wraps io.EOF so a caller looping on errors.Is(err, io.EOF) still
// terminates correctly; errors.Is(err, ErrEmpty) lets a caller distinguish
// "nothing was ever read" from "the sequence ended after N chunks".
var ErrEmpty = fmt.Errorf("fastcdc: empty source: %w", io.EOF)

// IsEmpty reports whether err indicates a source that never produced any
// data, as opposed to a normal end-of-sequence reached after chunks were
// already emitted.
func IsEmpty(err error) bool {
	return errors.Is(err, ErrEmpty)
}
