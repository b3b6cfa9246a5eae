package constants

import "errors"

var (
	// ErrUnknownType is returned when a reference names an unregistered type tag.
	ErrUnknownType = errors.New("unrecognized constant type")

	// ErrUndefinedConstant is returned when a resolver has no value for a name.
	ErrUndefinedConstant = errors.New("constant not defined")
)
