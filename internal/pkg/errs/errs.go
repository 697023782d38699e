// Package errs wraps cockroachdb/errors and defines the classes that decide
// how a failure is reported to API callers.
package errs

import (
	"errors"
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

// Error classes attached by the usecase layer with Mark. The message shown to
// callers always comes from the marked error, never from the class.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrStorage    = errors.New("storage operation failed")
)

func New(msg string) error { return cr.New(msg) }

func Newf(format string, args ...any) error { return cr.Newf(format, args...) }

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches class to err without changing its message. A nil err yields
// the class itself.
func Mark(err error, class error) error {
	if err == nil {
		return class
	}
	return cr.Mark(err, class)
}

// Is understands both standard wrapping and cockroachdb marks.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

// Classify returns the class attached to err. Unclassified errors are storage failures.
func Classify(err error) error {
	for _, class := range []error{ErrValidation, ErrNotFound, ErrConflict} {
		if Is(err, class) {
			return class
		}
	}
	return ErrStorage
}

// StackLines renders the first limit lines of err's verbose form for logging.
func StackLines(err error, limit int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if limit > 0 && len(lines) > limit {
		lines = lines[:limit]
	}
	return lines
}
