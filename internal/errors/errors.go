package errors

import (
	"fmt"
	"strings"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WithCode adds an error code to an existing error
func WithCode(code string, err error) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    code,
			Message: appErr.Message,
			Cause:   appErr.Cause,
		}
	}
	return &AppError{
		Code:    code,
		Message: err.Error(),
		Cause:   err,
	}
}

// GetCode returns the error code if it's an AppError, otherwise returns "UNKNOWN"
func GetCode(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return "UNKNOWN"
}

// Is reports whether the error carries the given code.
func Is(err error, code string) bool {
	return GetCode(err) == code
}

// Predefined error codes
const (
	CodeReadFailure    = "READ_FAILURE"
	CodeDecodeFailure  = "DECODE_FAILURE"
	CodeMissingColumns = "MISSING_COLUMNS"
	CodeConfigInvalid  = "CONFIG_INVALID"
	CodeInvalidInput   = "INVALID_INPUT"
	CodeInternalError  = "INTERNAL_ERROR"
)

// Common error constructors

// ReadFailure marks input bytes that could not be read at all.
func ReadFailure(cause error) *AppError {
	return &AppError{
		Code:    CodeReadFailure,
		Message: "failed to read uploaded file",
		Cause:   cause,
	}
}

// DecodeFailure marks bytes that were read but could not be parsed as a
// supported spreadsheet format.
func DecodeFailure(cause error) *AppError {
	return &AppError{
		Code:    CodeDecodeFailure,
		Message: "file could not be parsed as a spreadsheet",
		Cause:   cause,
	}
}

// MissingColumns marks a decoded workbook that lacks required headers.
// The message names the missing columns so the user can fix the file.
func MissingColumns(columns []string) *AppError {
	return New(CodeMissingColumns,
		fmt.Sprintf("required column(s) missing: %s", strings.Join(columns, ", ")))
}

func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message)
}

func InternalError(message string) *AppError {
	return New(CodeInternalError, message)
}
