package repository

import (
	"context"
	"database/sql/driver"
	"net"
	"syscall"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/book-swap-service/pkg/circuit_breaker"
	"github.com/Astemirdum/book-swap-service/swap/internal/errs"
)

func testPolicy(timeout time.Duration) *Policy {
	return NewPolicy(timeout, circuit_breaker.Config{
		RecordLength:     4,
		Timeout:          time.Minute,
		Percentile:       0.5,
		RecoveryRequests: 1,
	}, zap.NewNop())
}

func TestPolicy_Timeout(t *testing.T) {
	t.Parallel()
	p := testPolicy(20 * time.Millisecond)

	err := p.Do(context.Background(), "slow", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	require.ErrorIs(t, err, errs.ErrStoreUnavailable)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPolicy_Classification(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		err    error
		target error
	}{
		{name: "ok"},
		{name: "domain passthrough", err: errs.NotFound("book"), target: errs.ErrNotFound},
		{name: "bad conn", err: driver.ErrBadConn, target: errs.ErrStoreUnavailable},
		{name: "dial refused", err: &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED}, target: errs.ErrStoreUnavailable},
		{name: "deadline", err: errors.Wrap(context.DeadlineExceeded, "query"), target: errs.ErrStoreUnavailable},
		{name: "admin shutdown", err: &pgconn.PgError{Code: pgerrcode.AdminShutdown}, target: errs.ErrStoreUnavailable},
		{name: "syntax", err: &pgconn.PgError{Code: pgerrcode.SyntaxError}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := testPolicy(time.Second).Do(context.Background(), "op", func(context.Context) error {
				return tt.err
			})
			switch {
			case tt.err == nil:
				require.NoError(t, err)
			case tt.target == nil:
				require.Error(t, err)
				require.False(t, errs.IsDomain(err))
				require.NotErrorIs(t, err, errs.ErrStoreUnavailable)
			default:
				require.ErrorIs(t, err, tt.target)
			}
		})
	}
}

func TestPolicy_BreakerOpens(t *testing.T) {
	t.Parallel()
	p := testPolicy(time.Second)
	ctx := context.Background()

	var calls int
	failing := func(context.Context) error {
		calls++
		return driver.ErrBadConn
	}
	for i := 0; i < 4; i++ {
		require.ErrorIs(t, p.Do(ctx, "op", failing), errs.ErrStoreUnavailable)
	}
	before := calls
	err := p.Do(ctx, "op", failing)
	require.ErrorIs(t, err, errs.ErrStoreUnavailable)
	require.ErrorIs(t, err, circuit_breaker.ErrOpenCB)
	require.Equal(t, before, calls)
}

func TestPolicy_DomainErrorsKeepBreakerClosed(t *testing.T) {
	t.Parallel()
	p := testPolicy(time.Second)
	for i := 0; i < 10; i++ {
		err := p.Do(context.Background(), "op", func(context.Context) error {
			return errs.InvalidState("swap already decided")
		})
		require.ErrorIs(t, err, errs.ErrInvalidState)
	}
	require.Equal(t, circuit_breaker.Closed, p.cb.State())
}

func TestUniqueViolation(t *testing.T) {
	t.Parallel()
	err := errors.Wrap(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: onePendingOfferConstraint}, "insert")
	require.True(t, uniqueViolation(err, onePendingOfferConstraint))
	require.True(t, uniqueViolation(err, ""))
	require.False(t, uniqueViolation(err, oneReviewConstraint))
	require.False(t, uniqueViolation(errors.New("boom"), ""))
}
