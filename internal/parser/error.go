package parser

import (
	"fmt"
	"strings"
)

// Kind classifies a parse failure. The user-facing message depends only on the kind.
type Kind int

const (
	KindUnknown Kind = iota
	KindLogic
	KindNotFound
	KindOpen
	KindOrder
)

func (k Kind) String() string {
	switch k {
	case KindLogic:
		return "logic"
	case KindNotFound:
		return "not found"
	case KindOpen:
		return "open"
	case KindOrder:
		return "order"
	default:
		return "unknown"
	}
}

func (k Kind) Message() string {
	switch k {
	case KindLogic:
		return "Internal logic error!"
	case KindNotFound:
		return "Data file not found!"
	case KindOpen:
		return "Can't open data file!"
	case KindOrder:
		return "Primes are not in ascending, non-duplicate order!"
	default:
		return "Unknown error!"
	}
}

// Sentinels for errors.Is. Any *Error matches the sentinel of its kind.
var (
	ErrUnknown  = &Error{Kind: KindUnknown}
	ErrLogic    = &Error{Kind: KindLogic}
	ErrNotFound = &Error{Kind: KindNotFound}
	ErrOpen     = &Error{Kind: KindOpen}
	ErrOrder    = &Error{Kind: KindOrder}
)

type Error struct {
	Kind Kind
	Path string
	Line int
	Err  error
}

func NewError(kind Kind, err error) *Error {
	return &Error{
		Kind: kind,
		Err:  err,
	}
}

func (e *Error) Error() string {
	return e.Kind.Message()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.Kind == e.Kind
}

// Detail describes the failure with its location and cause, for logs.
func (e *Error) Detail() string {
	var b strings.Builder

	b.WriteString(e.Kind.String())
	b.WriteString(" error")

	if e.Path != "" {
		fmt.Fprintf(&b, " in %q", e.Path)
	}

	if e.Line > 0 {
		fmt.Fprintf(&b, " at line %d", e.Line)
	}

	if e.Err != nil {
		fmt.Fprintf(&b, ": %s", e.Err)
	}

	return b.String()
}
