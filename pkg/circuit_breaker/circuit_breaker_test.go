package circuit_breaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/book-swap-service/pkg/circuit_breaker"
)

var errService = errors.New("service error")

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func Test_circuitBreaker_Call(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	cb := circuit_breaker.New(circuit_breaker.Config{
		RecordLength:     4,
		Timeout:          time.Second,
		Percentile:       0.5,
		RecoveryRequests: 2,
	}, circuit_breaker.WithClock(clock.now))

	ok := func() error { return nil }
	failing := func() error { return errService }

	for i := 0; i < 4; i++ {
		require.NoError(t, cb.Call(ok))
	}
	require.Equal(t, circuit_breaker.Closed, cb.State())

	require.ErrorIs(t, cb.Call(failing), errService)
	require.Equal(t, circuit_breaker.Closed, cb.State())
	require.ErrorIs(t, cb.Call(failing), errService)
	require.Equal(t, circuit_breaker.Open, cb.State())

	called := false
	err := cb.Call(func() error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, circuit_breaker.ErrOpenCB)
	require.False(t, called)

	clock.advance(2 * time.Second)
	require.NoError(t, cb.Call(ok))
	require.Equal(t, circuit_breaker.HalfOpen, cb.State())
	require.NoError(t, cb.Call(ok))
	require.Equal(t, circuit_breaker.Closed, cb.State())

	require.ErrorIs(t, cb.Call(failing), errService)
	require.ErrorIs(t, cb.Call(failing), errService)
	require.Equal(t, circuit_breaker.Open, cb.State())

	clock.advance(2 * time.Second)
	require.ErrorIs(t, cb.Call(failing), errService)
	require.Equal(t, circuit_breaker.Open, cb.State())
	require.ErrorIs(t, cb.Call(ok), circuit_breaker.ErrOpenCB)

	cb.Reset()
	require.Equal(t, circuit_breaker.Closed, cb.State())
}

func Test_circuitBreaker_FailureIf(t *testing.T) {
	errDomain := errors.New("not found")
	cb := circuit_breaker.New(circuit_breaker.Config{
		RecordLength:     2,
		Timeout:          time.Minute,
		Percentile:       0.5,
		RecoveryRequests: 1,
	}, circuit_breaker.WithFailureIf(func(err error) bool {
		return !errors.Is(err, errDomain)
	}))

	for i := 0; i < 10; i++ {
		require.ErrorIs(t, cb.Call(func() error { return errDomain }), errDomain)
	}
	require.Equal(t, circuit_breaker.Closed, cb.State())

	require.ErrorIs(t, cb.Call(func() error { return errService }), errService)
	require.Equal(t, circuit_breaker.Open, cb.State())
	require.Equal(t, "open", cb.State().String())
}
