package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrArity is matched by errors.Is for every *ArityError.
	ErrArity = errors.New("wrong number of tokens")

	// ErrMalformed is returned for lines that are not valid records.
	ErrMalformed = errors.New("malformed line")
)

// ParseError indicates that a token could not be coerced to its declared type.
//
// The underlying strconv error can be accessed via errors.Unwrap.
type ParseError struct {
	Field string
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ArityError reports a token list of the wrong length.
type ArityError struct {
	Kind     string
	Expected int
	Actual   int
	Tokens   []string
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s expected %d args, got %d: [%s]", e.Kind, e.Expected, e.Actual, strings.Join(e.Tokens, " "))
}

// Is lets errors.Is(err, ErrArity) match any ArityError.
func (e *ArityError) Is(target error) bool { return target == ErrArity }

// DataError is the error kind surfaced by every ledger read, write or decode.
//
// Op names the failing operation ("read", "write", "decode", "config").
// Path and Line locate the offending input when known. The cause is
// available through errors.Unwrap.
type DataError struct {
	Op   string
	Path string
	Line int
	Msg  string
	Err  error
}

func (e *DataError) Error() string {
	var b strings.Builder
	if e.Msg != "" {
		b.WriteString(e.Msg)
	} else {
		b.WriteString(e.Op)
		b.WriteString(" failed")
	}
	if e.Path != "" {
		b.WriteString(" in ")
		b.WriteString(e.Path)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, " (line %d)", e.Line)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *DataError) Unwrap() error { return e.Err }

// NewDecodeError wraps a token decoding failure as a DataError.
func NewDecodeError(err error) error {
	if err == nil {
		return nil
	}
	var de *DataError
	if errors.As(err, &de) {
		return err
	}
	return &DataError{Op: "decode", Err: err}
}

// IsDataError reports whether err is or wraps a *DataError.
func IsDataError(err error) bool {
	var de *DataError
	return errors.As(err, &de)
}
