package rpc

import (
	"github.com/stellar/go/support/errors"
)

// Kind tells where a call failed.
type Kind int

const (
	// KindOther covers local failures: endpoint parsing, request
	// construction, body reads, decoding and missing fields.
	KindOther Kind = iota
	// KindAPI covers failures of the send/receive step itself.
	KindAPI
)

func (k Kind) String() string {
	switch k {
	case KindAPI:
		return "api"
	default:
		return "other"
	}
}

// Error is returned by every fallible step of a call. Err carries the
// message together with the underlying cause.
type Error struct {
	Kind      Kind
	Retryable bool
	Err       error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewOther returns a non-retryable local error without an underlying cause.
func NewOther(message string) error {
	return &Error{Kind: KindOther, Err: errors.New(message)}
}

// WrapOther wraps err as a local failure.
func WrapOther(err error, message string, retryable bool) error {
	return &Error{Kind: KindOther, Retryable: retryable, Err: errors.Wrap(err, message)}
}

// WrapAPI wraps err as a failure of the remote call.
func WrapAPI(err error, message string, retryable bool) error {
	return &Error{Kind: KindAPI, Retryable: retryable, Err: errors.Wrap(err, message)}
}
