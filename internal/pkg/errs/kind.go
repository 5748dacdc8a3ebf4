package errs

import (
	"errors"
	"maps"
)

// Kind tags business-rule failures so callers can branch on them without
// string matching.
type Kind string

const (
	KindNotFound             Kind = "NOT_FOUND"
	KindUnauthorized         Kind = "UNAUTHORIZED"
	KindAlreadyCancelled     Kind = "ALREADY_CANCELLED"
	KindDuplicateReservation Kind = "DUPLICATE_RESERVATION"
	KindEventFull            Kind = "EVENT_FULL"
	KindEventNotBookable     Kind = "EVENT_NOT_BOOKABLE"
	KindDeadlinePassed       Kind = "DEADLINE_PASSED"
	KindInvalidToken         Kind = "INVALID_TOKEN"
	KindTokenExpired         Kind = "TOKEN_EXPIRED"
	KindValidation           Kind = "VALIDATION"
)

type Error struct {
	Kind    Kind
	Message string
	Detail  map[string]any
}

func Tagged(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func (e *Error) Error() string {
	return e.Message
}

// Is ignores Detail, so a copy made by WithDetail still satisfies
// errors.Is against the package-level sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Message == e.Message
}

func (e *Error) WithDetail(key string, value any) *Error {
	detail := make(map[string]any, len(e.Detail)+1)
	maps.Copy(detail, e.Detail)
	detail[key] = value
	return &Error{Kind: e.Kind, Message: e.Message, Detail: detail}
}

func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

func DetailOf(err error) map[string]any {
	var e *Error
	if errors.As(err, &e) {
		return e.Detail
	}
	return nil
}

// MessageOf returns the tagged message without any wrapping context.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return ""
}
