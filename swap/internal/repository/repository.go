package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"net"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/book-swap-service/pkg/circuit_breaker"
	"github.com/Astemirdum/book-swap-service/swap/internal/errs"
)

type Repository interface {
	BookRepository
	SwapRepository
	NotificationRepository
	ReviewRepository
}

type repository struct {
	db     *sqlx.DB
	policy *Policy
	log    *zap.Logger
}

func NewRepository(db *sqlx.DB, policy *Policy, log *zap.Logger) (*repository, error) {
	if db == nil {
		return nil, errors.New("nil database connection")
	}
	return &repository{
		db:     db,
		policy: policy,
		log:    log.Named("repo"),
	}, nil
}

var _ Repository = (*repository)(nil)

const (
	booksTableName         = `books`
	swapsTableName         = `book_swaps`
	historyTableName       = `swap_history`
	notificationsTableName = `notifications`
	reviewsTableName       = `reviews`

	onePendingOfferConstraint = `book_swaps_one_pending_offer`
	oneReviewConstraint       = `reviews_book_user_key`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func notFound(err error, what string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return errs.NotFound(what)
	}
	return err
}

func uniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgerrcode.UniqueViolation && (constraint == "" || pgErr.ConstraintName == constraint)
}

// Policy is applied to every store call: a bounded timeout plus a circuit breaker.
// Timeouts, connectivity failures and an open breaker all surface as errs.ErrStoreUnavailable.
type Policy struct {
	timeout time.Duration
	cb      circuit_breaker.CircuitBreaker
	log     *zap.Logger
}

func NewPolicy(timeout time.Duration, cbCfg circuit_breaker.Config, log *zap.Logger) *Policy {
	return &Policy{
		timeout: timeout,
		cb:      circuit_breaker.New(cbCfg, circuit_breaker.WithFailureIf(isInfraFailure)),
		log:     log.Named("store"),
	}
}

func (p *Policy) Do(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err := p.cb.Call(func() error { return fn(ctx) })
	switch {
	case err == nil:
		return nil
	case errs.IsDomain(err):
		return err
	case errors.Is(err, circuit_breaker.ErrOpenCB), isInfraFailure(err):
		p.log.Warn("store unavailable", zap.String("op", op), zap.Error(err))
		return errs.Unavailable(err)
	default:
		p.log.Error("store call failed", zap.String("op", op), zap.Error(err))
		return errors.Wrap(err, op)
	}
}

func isInfraFailure(err error) bool {
	if err == nil || errs.IsDomain(err) {
		return false
	}
	if errs.IsTimeout(err) || errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	if pgconn.Timeout(err) || pgconn.SafeToRetry(err) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgerrcode.IsConnectionException(pgErr.Code) ||
			pgerrcode.IsInsufficientResources(pgErr.Code) ||
			pgerrcode.IsOperatorIntervention(pgErr.Code)
	}
	return false
}
