package repo

import "errors"

// Code classifies an operation outcome so the transport layer can map it
// onto a status code without inspecting message text.
type Code int

const (
	CodeNone Code = iota
	CodeBadRequest
	CodeNotFound
	CodeForbidden
)

// Error is the typed failure returned by every repository operation.
// Operations either succeed fully or return one of these; the repository
// never panics on bad input.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string { return e.Message }

func badRequest(msg string) *Error { return &Error{Code: CodeBadRequest, Message: msg} }
func notFound(msg string) *Error   { return &Error{Code: CodeNotFound, Message: msg} }
func forbidden(msg string) *Error  { return &Error{Code: CodeForbidden, Message: msg} }

// CodeOf extracts the outcome code from err, or CodeNone when err did not
// originate here.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeNone
}
