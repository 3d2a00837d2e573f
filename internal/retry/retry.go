// Package retry повторяет операцию с паузами между попытками.
// Используется только для доставки событий в webhook.
package retry

import (
	"context"
	"errors"
	"time"
)

var defaultDelays = []time.Duration{500 * time.Millisecond, 1 * time.Second, 2 * time.Second}

type Operation func(ctx context.Context) error

// Policy Attempts включает первую попытку. Если Delays короче Attempts-1,
// для оставшихся пауз берется последний элемент.
type Policy struct {
	Attempts  int
	Delays    []time.Duration
	Retryable func(error) bool
}

// Permanent помечает ошибку как не подлежащую повтору
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

func (p Policy) delay(attempt int) time.Duration {
	delays := p.Delays
	if delays == nil {
		delays = defaultDelays
	}
	if len(delays) == 0 {
		return 0
	}
	if attempt >= len(delays) {
		return delays[len(delays)-1]
	}
	return delays[attempt]
}

func (p Policy) retryable(err error) bool {
	var perm *permanentError
	if errors.As(err, &perm) {
		return false
	}
	if p.Retryable == nil {
		return true
	}
	return p.Retryable(err)
}

// Do возвращает nil после первой удачной попытки или последнюю ошибку
func Do(ctx context.Context, p Policy, op Operation) error {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		err := op(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		if !p.retryable(err) || i == attempts-1 {
			break
		}

		timer := time.NewTimer(p.delay(i))
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return errors.Join(lastErr, ctx.Err())
		}
	}

	var perm *permanentError
	if errors.As(lastErr, &perm) {
		return perm.err
	}
	return lastErr
}
