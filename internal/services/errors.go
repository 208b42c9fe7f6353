package services

import "errors"

// Kind classifies a service failure so handlers can map it to a transport code.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindForbidden
	KindInvalidState
	KindConflict
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func errNotFound(msg string) *Error     { return &Error{Kind: KindNotFound, Message: msg} }
func errForbidden(msg string) *Error    { return &Error{Kind: KindForbidden, Message: msg} }
func errInvalidState(msg string) *Error { return &Error{Kind: KindInvalidState, Message: msg} }
func errConflict(msg string) *Error     { return &Error{Kind: KindConflict, Message: msg} }

// KindOf returns the failure kind, or 0 for errors that did not originate from
// a service precondition (e.g. database faults, which propagate unchanged).
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
