package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error so handlers can map it to a response code without
// inspecting message text.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindValidation
	KindAuthorization
	KindNotFound
	KindStoreWrite
	KindStoreRead
	KindAggregate
)

type Error struct {
	kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.err
}

func (e *Error) Kind() Kind {
	return e.kind
}

func newError(kind Kind, format string, args ...any) *Error {
	var wrapped error
	for _, arg := range args {
		if err, ok := arg.(error); ok {
			wrapped = err
		}
	}

	return &Error{
		kind: kind,
		msg:  fmt.Sprintf(format, args...),
		err:  wrapped,
	}
}

func Validationf(format string, args ...any) error {
	return newError(KindValidation, format, args...)
}

func Authorizationf(format string, args ...any) error {
	return newError(KindAuthorization, format, args...)
}

func NotFoundf(format string, args ...any) error {
	return newError(KindNotFound, format, args...)
}

func StoreWritef(format string, args ...any) error {
	return newError(KindStoreWrite, format, args...)
}

func StoreReadf(format string, args ...any) error {
	return newError(KindStoreRead, format, args...)
}

func Aggregatef(format string, args ...any) error {
	return newError(KindAggregate, format, args...)
}

// KindOf returns the classification of err, or KindUnknown for plain errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}

	return KindUnknown
}

func IsValidation(err error) bool    { return KindOf(err) == KindValidation }
func IsAuthorization(err error) bool { return KindOf(err) == KindAuthorization }
func IsNotFound(err error) bool      { return KindOf(err) == KindNotFound }
func IsStoreWrite(err error) bool    { return KindOf(err) == KindStoreWrite }
func IsStoreRead(err error) bool     { return KindOf(err) == KindStoreRead }
func IsAggregate(err error) bool     { return KindOf(err) == KindAggregate }

// HTTPStatus maps an error classification to the response code entry points
// should answer with. Unknown errors become an internal server error.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation, KindAggregate:
		return http.StatusBadRequest
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindStoreWrite, KindStoreRead:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
