package config

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable configuration error code.
type Code string

// Configuration error codes.
const (
	ErrCodeInvalidAlphabet              Code = "INVALID_ALPHABET"
	ErrCodeIncompatiblePartitionNewline Code = "INCOMPATIBLE_PARTITION_NEWLINE"
	ErrCodeInvalidPattern               Code = "INVALID_PATTERN"
	ErrCodeInvalidOption                Code = "INVALID_OPTION"
	ErrCodeInvalidConfigFile            Code = "INVALID_CONFIG_FILE"
)

// Error is a configuration error with a code and optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

func newError(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

func wrapError(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// IsCode reports whether err has the given error code anywhere in its chain.
func IsCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// InvalidAlphabetError builds an error for the custom sort type used without alphabet.
func InvalidAlphabetError(where string) error {
	return newError(ErrCodeInvalidAlphabet, "%s: alphabet must not be empty when type is %q", where, SortTypeCustom)
}

// IncompatiblePartitionNewlineError builds an error for partitionByNewLine combined with
// newline enforcement.
func IncompatiblePartitionNewlineError(where string) error {
	return newError(
		ErrCodeIncompatiblePartitionNewline,
		"%s: partitionByNewLine cannot be used together with newlinesBetween",
		where,
	)
}
