package cover_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/book-swap-service/pkg/circuit_breaker"
	"github.com/Astemirdum/book-swap-service/swap/internal/model"
	"github.com/Astemirdum/book-swap-service/swap/internal/repository/memory"
	"github.com/Astemirdum/book-swap-service/swap/internal/service/cover"
)

func ptr[T any](v T) *T { return &v }

var cbCfg = circuit_breaker.Config{RecordLength: 10, Timeout: time.Second, Percentile: 0.9, RecoveryRequests: 1}

func TestFetcher_Backfill(t *testing.T) {
	t.Parallel()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.Method != http.MethodHead || r.URL.Query().Get("default") != "false" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.URL.Path == "/b/isbn/9780441013593-M.jpg" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	ctx := context.Background()
	store := memory.New()
	known, err := store.CreateBook(ctx, model.Book{Title: "Dune", ISBN: ptr("9780441013593")})
	require.NoError(t, err)
	unknown, err := store.CreateBook(ctx, model.Book{Title: "Zine", ISBN: ptr("0000000000")})
	require.NoError(t, err)
	noISBN, err := store.CreateBook(ctx, model.Book{Title: "Notes"})
	require.NoError(t, err)

	f := cover.NewFetcher(cover.Config{Enabled: true, BaseURL: srv.URL + "/", RPS: 100}, cbCfg, store, srv.Client(), zap.NewNop())
	f.Backfill(ctx, []model.Book{known, unknown, noISBN})

	require.EqualValues(t, 2, hits.Load())

	got, err := store.GetBook(ctx, known.ID)
	require.NoError(t, err)
	require.NotNil(t, got.CoverURL)
	require.Equal(t, srv.URL+"/b/isbn/9780441013593-M.jpg", *got.CoverURL)

	got, err = store.GetBook(ctx, unknown.ID)
	require.NoError(t, err)
	require.Nil(t, got.CoverURL)
}

func TestFetcher_ServerErrorsAreSwallowed(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	ctx := context.Background()
	store := memory.New()
	book, err := store.CreateBook(ctx, model.Book{Title: "Dune", ISBN: ptr("9780441013593")})
	require.NoError(t, err)

	f := cover.NewFetcher(cover.Config{BaseURL: srv.URL, RPS: 100}, cbCfg, store, srv.Client(), zap.NewNop())
	require.NotPanics(t, func() { f.Backfill(ctx, []model.Book{book}) })

	got, err := store.GetBook(ctx, book.ID)
	require.NoError(t, err)
	require.Nil(t, got.CoverURL)
}

func TestFetcher_RemembersMissingCovers(t *testing.T) {
	t.Parallel()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	ctx := context.Background()
	store := memory.New()
	book, err := store.CreateBook(ctx, model.Book{Title: "Zine", ISBN: ptr("0000000000")})
	require.NoError(t, err)

	tests := []struct {
		name     string
		ttl      time.Duration
		wantHits int32
	}{
		{name: "skipped within ttl", ttl: time.Hour, wantHits: 1},
		{name: "looked up again once expired", ttl: 0, wantHits: 2},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			hits.Store(0)
			f := cover.NewFetcher(cover.Config{BaseURL: srv.URL, RPS: 100, MissTTL: tt.ttl}, cbCfg, store, srv.Client(), zap.NewNop())
			f.Backfill(ctx, []model.Book{book})
			f.Backfill(ctx, []model.Book{book})
			require.Equal(t, tt.wantHits, hits.Load())
		})
	}
}
