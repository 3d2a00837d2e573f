package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTransient = errors.New("transient")

func fastPolicy(attempts int) Policy {
	return Policy{Attempts: attempts, Delays: []time.Duration{time.Millisecond}}
}

func TestDo_SucceedsAfterRetries(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastPolicy(3), func(context.Context) error {
		calls++
		if calls < 3 {
			return errTransient
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_ReturnsLastError(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastPolicy(2), func(context.Context) error {
		calls++
		return errTransient
	})

	require.ErrorIs(t, err, errTransient)
	assert.Equal(t, 2, calls)
}

func TestDo_Permanent(t *testing.T) {
	errBad := errors.New("bad request")
	calls := 0
	err := Do(context.Background(), fastPolicy(5), func(context.Context) error {
		calls++
		return Permanent(errBad)
	})

	require.ErrorIs(t, err, errBad)
	assert.Equal(t, 1, calls)
	assert.Nil(t, Permanent(nil))
}

func TestDo_RetryableFilter(t *testing.T) {
	p := fastPolicy(5)
	p.Retryable = func(err error) bool { return errors.Is(err, errTransient) }

	calls := 0
	err := Do(context.Background(), p, func(context.Context) error {
		calls++
		return errors.New("other")
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := Policy{Attempts: 3, Delays: []time.Duration{time.Hour}}

	err := Do(ctx, p, func(context.Context) error {
		cancel()
		return errTransient
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, errTransient)
}

func TestPolicy_Delay(t *testing.T) {
	p := Policy{Delays: []time.Duration{time.Second, 2 * time.Second}}
	assert.Equal(t, time.Second, p.delay(0))
	assert.Equal(t, 2*time.Second, p.delay(1))
	assert.Equal(t, 2*time.Second, p.delay(5))

	assert.Equal(t, defaultDelays[0], Policy{}.delay(0))
	assert.Equal(t, time.Duration(0), Policy{Delays: []time.Duration{}}.delay(0))
}
