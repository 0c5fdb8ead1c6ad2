package translator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Ssajaia/universal-data-translator/format"
)

// Kind classifies conversion failures.
type Kind int

const (
	EmptyInput Kind = iota + 1
	UnknownFormat
	ValidationFailed
	ParseFailed
	UnsupportedFormat
	SerializeFailed
)

var (
	ErrEmptyInput        = errors.New("empty input")
	ErrUnknownFormat     = errors.New("unknown format")
	ErrValidation        = errors.New("validation failed")
	ErrParse             = errors.New("parse failed")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrSerialize         = errors.New("serialize failed")
)

func (k Kind) String() string {
	if err := k.sentinel(); err != nil {
		return err.Error()
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) sentinel() error {
	switch k {
	case EmptyInput:
		return ErrEmptyInput
	case UnknownFormat:
		return ErrUnknownFormat
	case ValidationFailed:
		return ErrValidation
	case ParseFailed:
		return ErrParse
	case UnsupportedFormat:
		return ErrUnsupportedFormat
	case SerializeFailed:
		return ErrSerialize
	}
	return nil
}

// Direction tells whether an error concerns the input or the output side
// of a conversion.
type Direction int

const (
	NoDirection Direction = iota
	Input
	Output
)

func (d Direction) String() string {
	switch d {
	case Input:
		return "input"
	case Output:
		return "output"
	}
	return ""
}

// Error is returned by every failing operation of this package.
type Error struct {
	Kind      Kind
	Format    format.Format
	Direction Direction
	Reason    string
	Err       error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	var qual []string
	if e.Direction != NoDirection {
		qual = append(qual, e.Direction.String())
	}
	if e.Format != format.UnknownFormat {
		qual = append(qual, e.Format.Title())
	}
	if len(qual) > 0 {
		b.WriteString(" (" + strings.Join(qual, " ") + ")")
	}
	if e.Reason != "" {
		b.WriteString(": " + e.Reason)
	}
	return b.String()
}

func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func newError(k Kind, f format.Format, err error) *Error {
	e := &Error{Kind: k, Format: f, Err: err}
	if err != nil {
		e.Reason = err.Error()
	}
	return e
}
