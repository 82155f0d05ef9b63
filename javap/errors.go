package javap

import (
	"errors"
	"strings"
)

var (
	ErrMissingCompiledFrom = errors.New(`javap output does not start with "Compiled from"`)
	ErrMissingClosingBrace = errors.New(`javap output does not end with "}"`)
	ErrMalformedHeader     = errors.New("malformed class header")
	ErrMalformedSignature  = errors.New("malformed member signature")
)

// UnknownMemberError is returned when an allow-list names members the class
// does not have.
type UnknownMemberError struct {
	Names []string
}

func (e *UnknownMemberError) Error() string {
	if len(e.Names) == 1 {
		return "unknown method or field: " + e.Names[0]
	}
	return "unknown methods or fields: " + strings.Join(e.Names, ", ")
}
