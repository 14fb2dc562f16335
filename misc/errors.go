package misc

import (
	"errors"
	"fmt"

	"github.com/BrugadaSyndrome/bslogger"
)

const (
	Configuration Kind = iota
	Resource
	IO
)

// Kind classifies a failure so the caller can report it.
type Kind int

func (k Kind) String() string {
	return []string{
		"Configuration", "Resource", "IO",
	}[k]
}

// Error carries the kind of failure and the operation that failed.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s error: %s", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s error: %s: %s", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func ConfigurationError(op string, format string, values ...interface{}) error {
	return &Error{Kind: Configuration, Op: op, Err: fmt.Errorf(format, values...)}
}

func ResourceError(op string, err error) error {
	return &Error{Kind: Resource, Op: op, Err: err}
}

func IOError(op string, err error) error {
	return &Error{Kind: IO, Op: op, Err: err}
}

// IsKind reports whether err, or anything it wraps, is a *Error of kind k.
func IsKind(err error, k Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == k
	}
	return false
}

// CheckError logs err as fatal, which exits the process with a non-zero
// status. A nil err is ignored.
func CheckError(err error, logger bslogger.Logger) {
	if err != nil {
		logger.Fatal(err.Error())
	}
}
