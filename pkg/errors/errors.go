// Package errors provides structured error types for ganttline.
//
// The geometry packages never fail; errors come from the edges of the
// system: reading chart files, validating charts and options, converting
// SVG to raster formats, and serving HTTP requests. Those edges report
// failures with a machine-readable [Code]. The CLI prints the message and
// the server maps the code to a status with [HTTPStatus].
//
//	err := errors.New(errors.ErrCodeUnknownTask, "task %q depends on unknown task %q", id, dep)
//	if errors.Is(err, errors.ErrCodeUnknownTask) {
//	    ...
//	}
//	err = errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies an error.
type Code string

const (
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidViewMode Code = "INVALID_VIEW_MODE"
	ErrCodeInvalidRelation Code = "INVALID_RELATION"
	ErrCodeInvalidChart    Code = "INVALID_CHART"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"
	ErrCodeTooLarge        Code = "TOO_LARGE"

	ErrCodeUnknownTask  Code = "UNKNOWN_TASK"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// statuses maps codes to HTTP statuses; unlisted codes are 500.
var statuses = map[Code]int{
	ErrCodeInvalidInput:    http.StatusBadRequest,
	ErrCodeInvalidFormat:   http.StatusBadRequest,
	ErrCodeInvalidViewMode: http.StatusBadRequest,
	ErrCodeInvalidRelation: http.StatusBadRequest,
	ErrCodeInvalidChart:    http.StatusBadRequest,
	ErrCodeUnknownTask:     http.StatusBadRequest,
	ErrCodeTooLarge:        http.StatusRequestEntityTooLarge,
	ErrCodeFileNotFound:    http.StatusNotFound,
	ErrCodeUnsupported:     http.StatusNotImplemented,
}

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	s := string(e.Code) + ": " + e.Message
	if e.Cause != nil {
		s += ": " + e.Cause.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return Wrap(code, nil, format, args...)
}

// Wrap is [New] with a cause that stays reachable through errors.Unwrap.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// find returns the outermost *Error in err's chain.
func find(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// Is reports whether the outermost *Error in err's chain has code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode returns the code of the outermost *Error in err's chain, or ""
// when there is none.
func GetCode(err error) Code {
	if e, ok := find(err); ok {
		return e.Code
	}
	return ""
}

// UserMessage returns the message of a coded error without its code, or
// err.Error() for any other error.
func UserMessage(err error) string {
	if e, ok := find(err); ok {
		return e.Message
	}
	return err.Error()
}

// HTTPStatus maps an error to the status code the render API responds with.
func HTTPStatus(err error) int {
	if s, ok := statuses[GetCode(err)]; ok {
		return s
	}
	return http.StatusInternalServerError
}
