package difflib

import "errors"

var (
	// ErrInvalidArgument is returned for options or inputs that can never
	// produce a diff, e.g. a negative context size.
	ErrInvalidArgument = errors.New("difflib: invalid argument")

	// ErrOutOfRange is returned when a caller asks for a range outside of a
	// sequence. It signals a usage bug rather than bad input data.
	ErrOutOfRange = errors.New("difflib: out of range")
)
