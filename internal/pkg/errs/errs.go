package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

// marked keeps both the cause and the marker on the unwrap chain so
// errors.Is and errors.As reach either one.
type marked struct {
	cause error
	mark  error
}

func (m *marked) Error() string   { return m.cause.Error() }
func (m *marked) Unwrap() []error { return []error{m.cause, m.mark} }

// Mark makes err match markErr under errors.Is while keeping its message,
// any tagged Kind it carries, and a stack trace.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.WithStackDepth(&marked{cause: err, mark: markErr}, 1)
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
