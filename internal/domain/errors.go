package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for parse failures. ParseError wraps exactly one of these.
var (
	ErrInvalidLine      = errors.New("invalid record line")
	ErrInvalidDelimiter = errors.New("invalid delimiter")
	ErrFieldCount       = errors.New("unexpected field count")
	ErrInvalidGender    = errors.New("invalid gender")
	ErrInvalidDate      = errors.New("invalid date format")
	ErrInvalidFilePath  = errors.New("invalid file path")
)

// Sentinel errors for broad classification outside parsing.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid config")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindParse         ErrorKind = "parse"
	KindResource      ErrorKind = "resource"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindStorage       ErrorKind = "storage"
	KindNotFound      ErrorKind = "not_found"
)

// ParseError reports bad record data. Msg always states what was expected and,
// where there is something to show, what was found.
type ParseError struct {
	Err  error  // one of the Err* parse sentinels
	Msg  string // human readable, e.g. "expected 5 fields, found 6"
	Path string // optional: file the line came from
	Line int    // optional: 1-based line number within Path
}

func newParseError(sentinel error, format string, args ...any) *ParseError {
	return &ParseError{Err: sentinel, Msg: fmt.Sprintf(format, args...)}
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}

	msg := e.Msg
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	switch {
	case e.Path != "" && e.Line > 0:
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, msg)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %s", e.Line, msg)
	case e.Path != "":
		return fmt.Sprintf("%s: %s", e.Path, msg)
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
// A ParseError anywhere in the chain counts as KindParse.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) && oe.Kind == kind {
		return true
	}
	if kind == KindParse {
		var pe *ParseError
		return errors.As(err, &pe)
	}
	return false
}

// IsParseError reports whether err is bad data rather than a bad environment.
func IsParseError(err error) bool {
	return IsKind(err, KindParse)
}

// IsResourceError reports whether err came from accessing the input resource.
func IsResourceError(err error) bool {
	return IsKind(err, KindResource)
}
