package jsonconfig

import (
	"errors"
	"strings"
)

// Error kinds. Every error returned by this package matches exactly one of
// these with errors.Is.
var (
	// ErrStructural indicates a document whose shape is wrong, or a node that
	// is not an object where one is required.
	ErrStructural = errors.New("structural error")

	// ErrMissingField indicates that a required field is absent.
	ErrMissingField = errors.New("missing field")

	// ErrTypeMismatch indicates a JSON value of the wrong kind.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrUnresolvedConstant indicates a constant reference that does not
	// resolve: malformed, unregistered type tag, or undefined name.
	ErrUnresolvedConstant = errors.New("unresolved constant")

	// ErrUnknownNamespace indicates a property whose id does not carry a
	// known namespace prefix.
	ErrUnknownNamespace = errors.New("unknown namespace")

	// ErrIO indicates the input could not be opened or read.
	ErrIO = errors.New("i/o error")

	// ErrJSONSyntax indicates the input is not well-formed JSON.
	ErrJSONSyntax = errors.New("json syntax error")
)

// FieldError is one problem found while compiling a document.
type FieldError struct {
	// Kind is one of the Err* sentinels.
	Kind error

	// Field is the JSON field the problem was found in, if any.
	Field string

	// Message is the human-readable description.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return e.Message
}

// Unwrap returns the kind and, when set, the cause.
func (e *FieldError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind, e.Cause}
	}
	return []error{e.Kind}
}

func newFieldError(kind error, field, msg string) *FieldError {
	return &FieldError{Kind: kind, Field: field, Message: msg}
}

// ErrorList accumulates the problems of one load, in discovery order.
type ErrorList []*FieldError

// Add appends err.
func (l *ErrorList) Add(err *FieldError) {
	*l = append(*l, err)
}

// Len returns the number of recorded errors.
func (l ErrorList) Len() int {
	return len(l)
}

// Messages returns the message of every recorded error.
func (l ErrorList) Messages() []string {
	out := make([]string, len(l))
	for i, e := range l {
		out[i] = e.Message
	}
	return out
}

// LoadError is the consolidated failure of a load.
type LoadError struct {
	// File is the path of the document, empty for stream input.
	File string

	// Errors lists every problem found, in discovery order.
	Errors ErrorList
}

// Error returns the newline-joined messages.
func (e *LoadError) Error() string {
	return strings.Join(e.Errors.Messages(), "\n")
}

// Unwrap exposes every recorded error to errors.Is and errors.As.
func (e *LoadError) Unwrap() []error {
	out := make([]error, len(e.Errors))
	for i, fe := range e.Errors {
		out[i] = fe
	}
	return out
}

// Has reports whether any recorded error is of the given kind.
func (e *LoadError) Has(kind error) bool {
	for _, fe := range e.Errors {
		if errors.Is(fe.Kind, kind) {
			return true
		}
	}
	return false
}

func documentError(file string, kind error, msg string, cause error) *LoadError {
	return &LoadError{
		File:   file,
		Errors: ErrorList{{Kind: kind, Message: msg, Cause: cause}},
	}
}
