package kafka

import (
	"context"
	"time"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/errors"
)

// call runs a blocking sarama call bounded by timeout. The call is abandoned, not aborted,
// when ctx ends first: its result is discarded once it returns.
func call[T any](ctx context.Context, timeout time.Duration, fn func() (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		value T
		err   error
	}
	done := make(chan result, 1)
	go func() {
		value, err := fn()
		done <- result{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	case r := <-done:
		return r.value, r.err
	}
}

func run(ctx context.Context, timeout time.Duration, fn func() error) error {
	_, err := call(ctx, timeout, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}

// classify keeps nil errors nil, FromOperationError returns a typed nil
func classify(err error, reason string, values ...interface{}) error {
	if err == nil {
		return nil
	}
	return errors.FromOperationError(err, reason, values...)
}
