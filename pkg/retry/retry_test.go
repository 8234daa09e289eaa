package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/book-swap-service/pkg/retry"
)

var (
	errTransient = errors.New("transient")
	errPermanent = errors.New("permanent")
)

func Test_Do_SuccessNoRetries(t *testing.T) {
	calls := 0
	err := retry.Do(context.Background(), func(context.Context) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 1, calls)
}

func Test_Do_RetriesTransientUntilSuccess(t *testing.T) {
	calls := 0
	err := retry.Do(context.Background(), func(context.Context) error {
		calls++
		if calls < 3 {
			return errTransient
		}
		return nil
	}, retry.WithBaseDelay(time.Millisecond), retry.WithMaxAttempts(5))
	require.NoError(t, err)
	require.Equal(t, 3, calls)
}

func Test_Do_PermanentFailsFast(t *testing.T) {
	calls := 0
	err := retry.Do(context.Background(), func(context.Context) error {
		calls++
		return errPermanent
	}, retry.WithBaseDelay(time.Millisecond), retry.WithRetryIf(func(err error) bool {
		return errors.Is(err, errTransient)
	}))
	require.ErrorIs(t, err, errPermanent)
	require.Equal(t, 1, calls)
}

func Test_Do_MaxAttemptsReached(t *testing.T) {
	calls := 0
	err := retry.Do(context.Background(), func(context.Context) error {
		calls++
		return errTransient
	}, retry.WithBaseDelay(time.Millisecond), retry.WithMaxAttempts(4), retry.WithJitterFactor(0))
	require.ErrorIs(t, err, errTransient)
	require.Equal(t, 4, calls)
}

func Test_Do_ContextCanceledDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := retry.Do(ctx, func(context.Context) error {
		calls++
		cancel()
		return errTransient
	}, retry.WithBaseDelay(time.Second))
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 1, calls)
}

func Test_Options_Validation(t *testing.T) {
	fn := func(context.Context) error { return nil }
	require.ErrorIs(t, retry.Do(context.Background(), fn, retry.WithMaxAttempts(0)), retry.ErrInvalidMaxAttempts)
	require.ErrorIs(t, retry.Do(context.Background(), fn, retry.WithBaseDelay(-time.Second)), retry.ErrNegativeBaseDelay)
	require.ErrorIs(t, retry.Do(context.Background(), fn, retry.WithJitterFactor(1.5)), retry.ErrInvalidJitterFactor)
	require.ErrorIs(t, retry.Do(context.Background(), fn, retry.WithRetryIf(nil)), retry.ErrNilClassifier)
}
