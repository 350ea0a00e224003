package pixfunc

import (
	"errors"
	"fmt"
)

var (
	// ErrArity is matched by errors returned when a function receives the
	// wrong number of sources.
	ErrArity = errors.New("wrong number of sources")

	// ErrUnsupportedType is matched by errors returned when a function does
	// not accept the source data type.
	ErrUnsupportedType = errors.New("unsupported source data type")

	ErrUnknownFunc = errors.New("unknown pixel function")
)

// ArityError reports a call with the wrong number of sources.
type ArityError struct {
	Func  string
	Got   int
	Arity Arity
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s: got %d sources, want %s", e.Func, e.Got, e.Arity)
}

func (e *ArityError) Is(target error) bool {
	return target == ErrArity
}

// TypeError reports a source data type a function cannot handle.
type TypeError struct {
	Func string
	Type DataType
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: %s sources are not supported", e.Func, e.Type)
}

func (e *TypeError) Is(target error) bool {
	return target == ErrUnsupportedType
}

// Arity is the number of sources a function accepts.
// Max < 0 means there is no upper limit.
type Arity struct {
	Min, Max int
}

// Exactly returns the arity of a function taking n sources.
func Exactly(n int) Arity { return Arity{Min: n, Max: n} }

// AtLeast returns the arity of a function taking n or more sources.
func AtLeast(n int) Arity { return Arity{Min: n, Max: -1} }

// Accepts reports whether n sources are acceptable.
func (a Arity) Accepts(n int) bool {
	return n >= a.Min && (a.Max < 0 || n <= a.Max)
}

func (a Arity) String() string {
	switch {
	case a.Max < 0:
		return fmt.Sprintf(">=%d", a.Min)
	case a.Min == a.Max:
		return fmt.Sprintf("%d", a.Min)
	default:
		return fmt.Sprintf("%d-%d", a.Min, a.Max)
	}
}

func (a Arity) check(name string, srcs [][]byte) error {
	if !a.Accepts(len(srcs)) {
		return &ArityError{Func: name, Got: len(srcs), Arity: a}
	}
	return nil
}

func realOnly(name string, t DataType) error {
	if t.IsComplex() {
		return &TypeError{Func: name, Type: t}
	}
	return nil
}
