package entity

import (
	"errors"
	"strings"
)

var (
	ErrDuplicateEmail   = errors.New("an order with this email already exists")
	ErrConfigPathNotSet = errors.New("CONFIG_PATH not set and -config flag not provided")
)

// ValidationError carries every field-level message produced for a
// rejected submission. It is a business verdict, never a process
// fault, and it never reaches the store.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "invalid order data: " + strings.Join(e.Messages, "; ")
}
