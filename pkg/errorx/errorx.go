// Package errorx provides business errors carrying an application code.
package errorx

import (
	"errors"
	"fmt"
	"net/http"
)

// CodeError is an error with a business code attached.
// It implements the error interface, supports wrapping an underlying error
// and is recognized by errors.Is/errors.As.
type CodeError struct {
	Code  int    // business code
	Msg   string // message returned to the caller
	cause error  // wrapped underlying error
}

// Error implements the standard error interface.
// With an underlying cause the format is "msg: cause", otherwise just msg.
func (e *CodeError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.cause)
	}
	return e.Msg
}

// Unwrap supports errors.Is/errors.As traversal.
func (e *CodeError) Unwrap() error {
	return e.cause
}

// New creates a CodeError.
func New(code int, msg string) *CodeError {
	return &CodeError{
		Code: code,
		Msg:  msg,
	}
}

// Newf creates a CodeError with a formatted message.
func Newf(code int, format string, args ...any) *CodeError {
	return &CodeError{
		Code: code,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// Wrap attaches a business code and message to an underlying error.
// Usage: errorx.Wrap(err, CodeNotFound, "event not found")
func Wrap(err error, code int, msg string) *CodeError {
	return &CodeError{
		Code:  code,
		Msg:   msg,
		cause: err,
	}
}

// Wrapf wraps an underlying error with a formatted message.
func Wrapf(err error, code int, format string, args ...any) *CodeError {
	return &CodeError{
		Code:  code,
		Msg:   fmt.Sprintf(format, args...),
		cause: err,
	}
}

// GetCode extracts the business code from an error chain,
// falling back to CodeServerBusy for unknown errors.
func GetCode(err error) int {
	var codeErr *CodeError
	if errors.As(err, &codeErr) {
		return codeErr.Code
	}
	return CodeServerBusy
}

// Business code constants.
const (
	CodeSuccess      = 1000 // ok
	CodeInvalidParam = 1001 // malformed or self-referential input
	CodeBadRequest   = 1002 // business rule violation
	CodeUnauthorized = 1003 // missing/invalid credentials or not a participant
	CodeForbidden    = 1004 // caller lacks the required role
	CodeNotFound     = 1005 // referenced entity does not exist
	CodeConflict     = 1006 // uniqueness constraint fired despite a pre-check
	CodeServerBusy   = 1007 // internal failure
	CodeDBError      = 1010 // database error
	CodeCacheError   = 1011 // cache error
)

// Predefined instances, directly returnable and usable with errors.Is.
var (
	ErrInvalidParam = New(CodeInvalidParam, "invalid request parameters")
	ErrServerBusy   = New(CodeServerBusy, "server busy, try again later")
)

// HTTPStatus maps a business code to the HTTP status the handler layer
// responds with. Unknown codes map to 500.
func HTTPStatus(code int) int {
	switch code {
	case CodeSuccess:
		return http.StatusOK
	case CodeInvalidParam, CodeBadRequest:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// IsNotFound reports whether the error chain is a not-found condition
// (including gorm.ErrRecordNotFound wrapped by the repository layer).
func IsNotFound(err error) bool {
	var codeErr *CodeError
	if errors.As(err, &codeErr) && codeErr.Code == CodeNotFound {
		return true
	}
	return err != nil && err.Error() == "record not found"
}

// IsConflict reports whether the error chain is a uniqueness conflict.
func IsConflict(err error) bool {
	var codeErr *CodeError
	return errors.As(err, &codeErr) && codeErr.Code == CodeConflict
}
