package graph

import (
	"github.com/sirupsen/logrus"
)

// Error codes surfaced in the "code" entry of each GraphQL error.
const (
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeForbidden       = "FORBIDDEN"
	CodeNotFound        = "NOT_FOUND"
	CodeBadUserInput    = "BAD_USER_INPUT"
	CodeInternal        = "INTERNAL_SERVER_ERROR"
)

// Error is a domain error with a human-readable message and a wire code. It
// implements graphql-go's gqlerrors.ExtendedError so the code travels in the
// error extensions without leaking internals.
type Error struct {
	Message string
	Code    string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.Code}
}

var (
	ErrNotAuthenticated = &Error{Message: "Not authenticated", Code: CodeUnauthenticated}
	ErrNotAuthorized    = &Error{Message: "Not authorized", Code: CodeForbidden}
)

func notFound(entity string) *Error {
	return &Error{Message: entity + " not found", Code: CodeNotFound}
}

func badInput(message string) *Error {
	return &Error{Message: message, Code: CodeBadUserInput}
}

// internalError logs the underlying cause and returns a generic error so
// database details never reach the client.
func internalError(err error) *Error {
	logrus.WithError(err).Error("Resolver failed")
	return &Error{Message: "Internal server error", Code: CodeInternal}
}
