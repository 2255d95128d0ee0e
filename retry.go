package luxrpc

import (
	"github.com/cenkalti/backoff/v4"
)

// RetryWith runs op under the policy b until it succeeds, b gives up, or op
// fails with an error that is not retryable.
func RetryWith[T any](b backoff.BackOff, op func() (T, error)) (T, error) {
	return backoff.RetryWithData(func() (T, error) {
		res, err := op()
		if err != nil && !IsRetryable(err) {
			return res, backoff.Permanent(err)
		}
		return res, err
	}, b)
}

// Retry runs op with exponential backoff, at most maxRetries times after the
// first attempt.
//
//	resp, err := luxrpc.Retry(3, client.GetHeight)
func Retry[T any](maxRetries uint64, op func() (T, error)) (T, error) {
	return RetryWith(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries), op)
}
