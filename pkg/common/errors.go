package common

import "fmt"

// BenchError is the base error type for all phonebench failures.
type BenchError struct {
	Code    string
	Message string
	Err     error
}

func (e *BenchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BenchError) Unwrap() error {
	return e.Err
}

// ParseError is returned when a directory line has no whitespace separator.
type ParseError struct {
	BenchError
	Line int
}

// NotFoundError is returned when an input source cannot be opened.
type NotFoundError struct {
	BenchError
}

// InvalidInputError is returned for bad configuration or arguments.
type InvalidInputError struct {
	BenchError
}

func NewParseError(line int, message string, err error) *ParseError {
	return &ParseError{
		BenchError: BenchError{Code: "parse_error", Message: fmt.Sprintf("line %d: %s", line, message), Err: err},
		Line:       line,
	}
}

func NewNotFoundError(message string, err error) *NotFoundError {
	return &NotFoundError{BenchError{Code: "not_found", Message: message, Err: err}}
}

func NewInvalidInputError(message string, err error) *InvalidInputError {
	return &InvalidInputError{BenchError{Code: "invalid_input", Message: message, Err: err}}
}
