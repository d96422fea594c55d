// Package apperr defines the application error taxonomy. Services return
// these instead of raw store errors so handlers can map them to HTTP
// statuses without string matching.
package apperr

import "errors"

type Kind int

const (
	KindValidation Kind = iota // malformed input or business-rule violation
	KindConflict               // duplicate unique key
	KindNotFound               // referenced entity absent
	KindAuth                   // bad credentials or invalid token
)

type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func Validation(msg string) error { return &Error{Kind: KindValidation, Msg: msg} }
func Conflict(msg string) error   { return &Error{Kind: KindConflict, Msg: msg} }
func NotFound(msg string) error   { return &Error{Kind: KindNotFound, Msg: msg} }
func Auth(msg string) error       { return &Error{Kind: KindAuth, Msg: msg} }

func is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

func IsValidation(err error) bool { return is(err, KindValidation) }
func IsConflict(err error) bool   { return is(err, KindConflict) }
func IsNotFound(err error) bool   { return is(err, KindNotFound) }
func IsAuth(err error) bool       { return is(err, KindAuth) }
