package lifecycle

import (
	"errors"
	"fmt"
)

// Kind classifies bridge failures
type Kind int

const (
	KindBootstrap Kind = iota + 1
	KindInstantiation
	KindContract
	KindKernelPrepare
	KindKernelOperation
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindBootstrap:
		return "bootstrap failure"
	case KindInstantiation:
		return "instantiation failure"
	case KindContract:
		return "contract violation"
	case KindKernelPrepare:
		return "kernel prepare failure"
	case KindKernelOperation:
		return "kernel operation failure"
	default:
		return "unknown failure"
	}
}

// Sentinels for errors.Is matching by kind
var (
	ErrBootstrap         = &Error{Kind: KindBootstrap}
	ErrInstantiation     = &Error{Kind: KindInstantiation}
	ErrContractViolation = &Error{Kind: KindContract}
	ErrKernelPrepare     = &Error{Kind: KindKernelPrepare}
	ErrKernelOperation   = &Error{Kind: KindKernelOperation}
)

// Error is a classified bridge failure. Err holds the original cause.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

// Errorf builds an *Error whose cause is formatted like fmt.Errorf.
func Errorf(kind Kind, op string, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

// Wrap classifies cause under kind.
func Wrap(kind Kind, op string, cause error) *Error {
	return &Error{Kind: kind, Op: op, Err: cause}
}

func (e *Error) Error() string {
	switch {
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	case e.Op != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Op)
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports a match when target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
