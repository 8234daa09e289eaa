// Package cover fills in missing book covers from the Open Library covers API.
package cover

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/Astemirdum/book-swap-service/pkg/circuit_breaker"
	"github.com/Astemirdum/book-swap-service/swap/internal/model"
)

const (
	concurrency    = 4
	requestTimeout = 5 * time.Second
)

type Config struct {
	Enabled bool          `envconfig:"COVER_ENABLED" default:"true"`
	BaseURL string        `envconfig:"COVER_BASE_URL" default:"https://covers.openlibrary.org"`
	RPS     rate.Limit    `envconfig:"COVER_RPS" default:"5"`
	// MissTTL is how long an ISBN without a cover is skipped before it is looked up again.
	MissTTL time.Duration `envconfig:"COVER_MISS_TTL" default:"24h"`
}

type Store interface {
	SetCoverURL(ctx context.Context, bookID, coverURL string) error
}

type Fetcher struct {
	log     *zap.Logger
	repo    Store
	client  *http.Client
	baseURL string
	limiter *rate.Limiter
	cb      circuit_breaker.CircuitBreaker
	missTTL time.Duration
	now     func() time.Time

	inflight sync.Map
	missing  sync.Map // isbn -> time.Time of the 404
}

func NewFetcher(cfg Config, cbCfg circuit_breaker.Config, repo Store, client *http.Client, log *zap.Logger) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: requestTimeout}
	}
	return &Fetcher{
		log:     log.Named("cover"),
		repo:    repo,
		client:  client,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		limiter: rate.NewLimiter(cfg.RPS, concurrency),
		cb:      circuit_breaker.New(cbCfg),
		missTTL: cfg.MissTTL,
		now:     time.Now,
	}
}

// Backfill looks up covers for books with an ISBN and no cover. Failures are logged and skipped.
func (f *Fetcher) Backfill(ctx context.Context, books []model.Book) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, b := range books {
		b := b
		if b.ISBN == nil || b.CoverURL != nil || f.knownMissing(*b.ISBN) {
			continue
		}
		if _, busy := f.inflight.LoadOrStore(b.ID, struct{}{}); busy {
			continue
		}
		g.Go(func() error {
			defer f.inflight.Delete(b.ID)
			if err := f.fill(ctx, b.ID, *b.ISBN); err != nil {
				f.log.Debug("cover lookup", zap.String("book", b.ID), zap.String("isbn", *b.ISBN), zap.Error(err))
			}
			return nil
		})
	}
	_ = g.Wait()
}

func (f *Fetcher) fill(ctx context.Context, bookID, isbn string) error {
	if err := f.limiter.Wait(ctx); err != nil {
		return err
	}
	coverURL := f.URL(isbn)
	var found bool
	err := f.cb.Call(func() error {
		var err error
		found, err = f.exists(ctx, coverURL)
		return err
	})
	if err != nil {
		return err
	}
	if !found {
		f.missing.Store(isbn, f.now())
		return nil
	}
	return f.repo.SetCoverURL(ctx, bookID, coverURL)
}

func (f *Fetcher) knownMissing(isbn string) bool {
	v, ok := f.missing.Load(isbn)
	if !ok {
		return false
	}
	if f.now().Sub(v.(time.Time)) < f.missTTL {
		return true
	}
	f.missing.Delete(isbn)
	return false
}

// URL is the medium-size cover location for isbn.
func (f *Fetcher) URL(isbn string) string {
	return fmt.Sprintf("%s/b/isbn/%s-M.jpg", f.baseURL, url.PathEscape(isbn))
}

func (f *Fetcher) exists(ctx context.Context, coverURL string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, coverURL+"?default=false", nil)
	if err != nil {
		return false, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		return true, nil
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("cover lookup: unexpected status %d", resp.StatusCode)
	}
}
