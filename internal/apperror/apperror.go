// Package apperror defines the failures the API can answer with. Every
// failure that reaches the HTTP layer is, or is classified into, an *Error
// whose Kind decides the response.
package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

type Kind int

const (
	// KindInternal is anything the API could not classify.
	KindInternal Kind = iota
	// KindBadInput is malformed client input rejected by the store, such as
	// an identifier that is not an integer.
	KindBadInput
	// KindBadRequest is a business-rule violation on the request, such as a
	// missing required field.
	KindBadRequest
	// KindNotFound is a well-formed reference to a row that does not exist.
	KindNotFound
	// KindRouteNotFound means no route matched the request.
	KindRouteNotFound
)

func (k Kind) String() string {
	switch k {
	case KindBadInput:
		return "bad_input"
	case KindBadRequest:
		return "bad_request"
	case KindNotFound:
		return "not_found"
	case KindRouteNotFound:
		return "route_not_found"
	default:
		return "internal"
	}
}

// Messages shared by handlers, services and tests.
const (
	MsgBadRequest      = "Bad request"
	MsgPathNotFound    = "Path not found"
	MsgInternal        = "Internal server error"
	MsgBodyMissing     = "Comment body is missing"
	MsgIncVotesMissing = "Votes increment is missing"
)

// Entity names used in not-found messages.
const (
	EntityReview   = "Review"
	EntityComment  = "Comment"
	EntityUsername = "Username"
)

type Error struct {
	Kind   Kind
	Status int
	Msg    string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches on Kind and Msg so callers can compare against a constructor,
// e.g. errors.Is(err, apperror.NotFound(apperror.EntityReview)).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Msg == t.Msg
}

func BadInput(err error) *Error {
	return &Error{Kind: KindBadInput, Status: http.StatusBadRequest, Msg: MsgBadRequest, Err: err}
}

func BadRequest(msg string) *Error {
	return &Error{Kind: KindBadRequest, Status: http.StatusBadRequest, Msg: msg}
}

// NotFound builds "<entity> not found".
func NotFound(entity string) *Error {
	return &Error{Kind: KindNotFound, Status: http.StatusNotFound, Msg: entity + " not found"}
}

func RouteNotFound() *Error {
	return &Error{Kind: KindRouteNotFound, Status: http.StatusNotFound, Msg: MsgPathNotFound}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Status: http.StatusInternalServerError, Msg: MsgInternal, Err: err}
}

// PostgreSQL SQLSTATEs treated as malformed client input.
const (
	pgInvalidTextRepresentation = "22P02"
	pgNumericValueOutOfRange    = "22003"
)

// FromStorage turns a store-side malformed-input error into BadInput and
// returns any other error unchanged.
func FromStorage(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgInvalidTextRepresentation, pgNumericValueOutOfRange:
			return BadInput(err)
		}
	}
	return err
}

// As returns the *Error in err's chain, if any.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
