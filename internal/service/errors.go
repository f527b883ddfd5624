package service

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const MsgInternal = "Internal Server Error"

// Error carries a message that is safe to show to the client.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }
func (e *Error) Unwrap() error { return e.Kind }

func validation(msg string) error { return &Error{Kind: ErrValidation, Msg: msg} }
func notFound(msg string) error   { return &Error{Kind: ErrNotFound, Msg: msg} }

// Message returns the client-facing text for err, masking anything that is not a known kind.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return MsgInternal
}
