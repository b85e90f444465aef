package container

import (
	"errors"
	"fmt"
)

// ErrInvalidEncoding indicates that an input string is not valid UTF-8.
var ErrInvalidEncoding = errors.New("invalid UTF-8 byte sequence")

// Role names the input sequence an element belongs to.
type Role uint8

const (
	// RoleSubject marks the sequence searched in.
	RoleSubject Role = iota

	// RolePattern marks the sequence searched for.
	RolePattern
)

// String returns the argument name of the role.
func (r Role) String() string {
	switch r {
	case RoleSubject:
		return "subject"
	case RolePattern:
		return "pattern"
	default:
		return fmt.Sprintf("Role(%d)", r)
	}
}

// EncodingError reports the first invalid element found during container
// construction.
type EncodingError struct {
	Role  Role
	Index int
}

// Error implements the error interface
func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s[%d]: %v", e.Role, e.Index, ErrInvalidEncoding)
}

// Unwrap returns ErrInvalidEncoding
func (e *EncodingError) Unwrap() error {
	return ErrInvalidEncoding
}
