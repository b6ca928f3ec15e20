package api

import "fmt"

// ErrorKind separates the two remote failure classes the UI must report
// differently: a request that never produced a response, and a response
// that carried an application error payload.
type ErrorKind int

const (
	ErrNetwork ErrorKind = iota
	ErrRemote
)

type Error struct {
	Kind    ErrorKind
	Status  int    // HTTP status for ErrRemote, zero otherwise
	Message string // server-supplied message when available
	Err     error  // underlying transport error for ErrNetwork
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrNetwork:
		return fmt.Sprintf("network error: %v", e.Err)
	default:
		if e.Message != "" {
			return e.Message
		}
		return fmt.Sprintf("remote error: status %d", e.Status)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// UserMessage is the text surfaced to the user. Network failures get a
// fixed connection message; remote failures pass the server's wording
// through when it supplied one.
func (e *Error) UserMessage() string {
	if e.Kind == ErrNetwork {
		return "Connection error. Please try again."
	}
	if e.Message != "" {
		return e.Message
	}
	return "Request failed. Please try again."
}

func networkErr(err error) *Error {
	return &Error{Kind: ErrNetwork, Err: err}
}

func remoteErr(status int, message string) *Error {
	return &Error{Kind: ErrRemote, Status: status, Message: message}
}
