package luxrpc

import (
	"github.com/sebamiro/luxrpc/internal/rpc"
	"github.com/stellar/go/support/errors"
)

// Error is returned by every call of this package. Retryable tells the
// caller's retry policy whether the same call may succeed later.
type Error = rpc.Error

// Kind of an Error
type Kind = rpc.Kind

const (
	KindOther = rpc.KindOther
	KindAPI   = rpc.KindAPI
)

var (
	errTxUndecided = errors.New("transaction status still undecided")
	errUnhealthy   = errors.New("node reported unhealthy")
)

// IsRetryable reports whether err, or an error it wraps, is a retryable *Error.
func IsRetryable(err error) bool {
	return rpc.IsRetryable(err)
}
