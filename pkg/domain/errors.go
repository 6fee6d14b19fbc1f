package domain

import (
	"errors"
	"fmt"
)

var (
	ErrToolNotFound   = errors.New("tool not found")
	ErrActionNotFound = errors.New("action not found")
	ErrDuplicateTool  = errors.New("duplicate tool id")

	ErrInvalidInput         = errors.New("invalid input format")
	ErrUnsupportedOperation = errors.New("unsupported operation")
	ErrComputation          = errors.New("runtime computation error")
)

type ErrorKind string

const (
	ErrorKind_InvalidInput         ErrorKind = "invalid_input_format"
	ErrorKind_UnsupportedOperation ErrorKind = "unsupported_operation"
	ErrorKind_Computation          ErrorKind = "runtime_computation_error"
)

// ToolError is a failure a widget renders in place of its output.
// Error returns the message verbatim so front ends can show it as-is.
type ToolError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *ToolError) Error() string {
	return e.Message
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel of the error's kind.
func (e *ToolError) Is(target error) bool {
	switch e.Kind {
	case ErrorKind_InvalidInput:
		return target == ErrInvalidInput
	case ErrorKind_UnsupportedOperation:
		return target == ErrUnsupportedOperation
	case ErrorKind_Computation:
		return target == ErrComputation
	}

	return false
}

func NewInvalidInputError(format string, args ...any) *ToolError {
	return &ToolError{Kind: ErrorKind_InvalidInput, Message: fmt.Sprintf(format, args...)}
}

func NewUnsupportedOperationError(format string, args ...any) *ToolError {
	return &ToolError{Kind: ErrorKind_UnsupportedOperation, Message: fmt.Sprintf(format, args...)}
}

func NewComputationError(err error, format string, args ...any) *ToolError {
	return &ToolError{Kind: ErrorKind_Computation, Message: fmt.Sprintf(format, args...), Err: err}
}

// WrapInvalidInput keeps err as the cause and uses message as the text shown to the user.
func WrapInvalidInput(err error, message string) *ToolError {
	return &ToolError{Kind: ErrorKind_InvalidInput, Message: message, Err: err}
}

// AsToolError converts any error into a *ToolError. Errors that are not
// already tool errors are treated as computation failures.
func AsToolError(err error) *ToolError {
	if err == nil {
		return nil
	}

	var toolErr *ToolError
	if errors.As(err, &toolErr) {
		return toolErr
	}

	return &ToolError{Kind: ErrorKind_Computation, Message: err.Error(), Err: err}
}
