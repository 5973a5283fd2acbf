package apperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Kind is the closed set of error classes the API can produce. Handlers and
// services never decide a status code from message text; the kind alone
// determines it.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindInternal
)

// Machine-readable codes carried in the error envelope.
const (
	CodeBadRequest        = "BAD_REQUEST"
	CodeValidation        = "VALIDATION_ERROR"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeForbidden         = "FORBIDDEN"
	CodeTokenExpired      = "TOKEN_EXPIRED"
	CodeInvalidToken      = "INVALID_TOKEN"
	CodeUserNotFound      = "USER_NOT_FOUND"
	CodeUserExists        = "USER_ALREADY_EXISTS"
	CodeUserSuspended     = "USER_SUSPENDED"
	CodeNotFound          = "NOT_FOUND"
	CodeDuplicateEntry    = "DUPLICATE_ENTRY"
	CodeFileTooLarge      = "FILE_TOO_LARGE"
	CodeUnsupportedFile   = "UNSUPPORTED_FILE_TYPE"
	CodeInstagramAPIError = "INSTAGRAM_API_ERROR"
	CodeInternal          = "INTERNAL_ERROR"
	CodeRouteNotFound     = "ROUTE_NOT_FOUND"
)

type Error struct {
	Kind    Kind
	Code    string
	Message string
	Details interface{}
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Status maps the kind to its HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation:
		return fiber.StatusBadRequest
	case KindUnauthorized:
		return fiber.StatusUnauthorized
	case KindForbidden:
		return fiber.StatusForbidden
	case KindNotFound:
		return fiber.StatusNotFound
	case KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

func Validation(message string) *Error {
	return New(KindValidation, CodeValidation, message)
}

func BadRequest(message string) *Error {
	return New(KindValidation, CodeBadRequest, message)
}

func Unauthorized(code, message string) *Error {
	return New(KindUnauthorized, code, message)
}

func Forbidden(code, message string) *Error {
	return New(KindForbidden, code, message)
}

func NotFound(message string) *Error {
	return New(KindNotFound, CodeNotFound, message)
}

func Conflict(code, message string) *Error {
	return New(KindConflict, code, message)
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Code: CodeInternal, Message: "internal server error", Err: err}
}

// WithDetails attaches structured context for the error envelope.
func (e *Error) WithDetails(details interface{}) *Error {
	out := *e
	out.Details = details
	return &out
}

// From normalizes any error into an *Error; unknown errors become internal.
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Internal(err)
}
