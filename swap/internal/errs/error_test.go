package errs_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/book-swap-service/swap/internal/errs"
)

func TestHTTPStatus(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "auth", err: errs.ErrAuthRequired, code: http.StatusUnauthorized},
		{name: "invalid", err: errs.Invalid("offered book is not yours"), code: http.StatusBadRequest},
		{name: "state", err: errs.InvalidState("swap already decided"), code: http.StatusConflict},
		{name: "not found", err: errs.NotFound("swap"), code: http.StatusNotFound},
		{name: "forbidden", err: errs.Forbidden("only the owner"), code: http.StatusForbidden},
		{name: "unavailable", err: errs.Unavailable(context.DeadlineExceeded), code: http.StatusServiceUnavailable},
		{name: "unknown", err: errors.New("boom"), code: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.code, errs.HTTPStatus(tt.err))
		})
	}
}

func TestReasonsKeepSentinel(t *testing.T) {
	err := errs.Invalid("offered book is not yours")
	require.ErrorIs(t, err, errs.ErrInvalidRequest)
	require.Equal(t, "offered book is not yours: invalid request", err.Error())
	require.True(t, errs.IsDomain(err))
}

func TestUnavailable(t *testing.T) {
	err := errs.Unavailable(context.DeadlineExceeded)
	require.ErrorIs(t, err, errs.ErrStoreUnavailable)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Equal(t, "store unavailable", err.Error())
	require.False(t, errs.IsDomain(err))
	require.True(t, errs.IsTimeout(err))
}
