package notify

import (
	"context"
	"sync"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/book-swap-service/pkg/kafka"
	"github.com/Astemirdum/book-swap-service/pkg/retry"
	"github.com/Astemirdum/book-swap-service/swap/internal/errs"
	"github.com/Astemirdum/book-swap-service/swap/internal/model"
	"github.com/Astemirdum/book-swap-service/swap/internal/repository"
)

const (
	defaultEmitTimeout = 5 * time.Second
	defaultAttempts    = 3
	defaultBaseDelay   = 100 * time.Millisecond
)

// Dispatcher persists notifications on behalf of lifecycle operations.
// Emit never fails or blocks its caller: delivery runs in the background, retries,
// falls back to the kafka queue, then logs and drops.
type Dispatcher struct {
	log      *zap.Logger
	repo     repository.NotificationRepository
	producer sarama.SyncProducer

	timeout   time.Duration
	attempts  int
	baseDelay time.Duration
	now       func() time.Time

	wg sync.WaitGroup
}

type DispatcherOption func(*Dispatcher)

// WithProducer enables the queue fallback. A nil producer disables it.
func WithProducer(producer sarama.SyncProducer) DispatcherOption {
	return func(d *Dispatcher) {
		d.producer = producer
	}
}

func WithRetry(attempts int, baseDelay time.Duration) DispatcherOption {
	return func(d *Dispatcher) {
		d.attempts = attempts
		d.baseDelay = baseDelay
	}
}

func WithEmitTimeout(timeout time.Duration) DispatcherOption {
	return func(d *Dispatcher) {
		d.timeout = timeout
	}
}

func NewDispatcher(repo repository.NotificationRepository, log *zap.Logger, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		log:       log.Named("notify"),
		repo:      repo,
		timeout:   defaultEmitTimeout,
		attempts:  defaultAttempts,
		baseDelay: defaultBaseDelay,
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Dispatcher) Emit(ctx context.Context, userID string, typ model.NotificationType, title, message, relatedSwapID string) {
	n := model.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      typ,
		Title:     title,
		Message:   message,
		CreatedAt: d.now(),
	}
	if relatedSwapID != "" {
		n.RelatedSwapID = &relatedSwapID
	}

	// The request may finish before the notification is stored.
	ctx = context.WithoutCancel(ctx)
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.deliver(ctx, n)
	}()
}

// Wait blocks until every emitted notification has been stored, queued or dropped.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) deliver(ctx context.Context, n model.Notification) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	err := d.Persist(ctx, n)
	if err == nil {
		return
	}
	var swapID string
	if n.RelatedSwapID != nil {
		swapID = *n.RelatedSwapID
	}
	log := d.log.With(zap.String("user", n.UserID), zap.String("type", string(n.Type)), zap.String("swap", swapID))
	log.Warn("persist notification", zap.Error(err))

	if d.producer != nil {
		qErr := kafka.Publish(d.producer, kafka.NotificationTopic, n.UserID, n)
		if qErr == nil {
			log.Info("notification queued for later delivery", zap.String("id", n.ID))
			return
		}
		err = errors.Wrap(qErr, "queue fallback")
	}
	log.Error("notification dropped", zap.String("id", n.ID), zap.Error(err))
}

// Persist stores n, retrying while the store is unavailable. Inserts are idempotent by id.
func (d *Dispatcher) Persist(ctx context.Context, n model.Notification) error {
	return retry.Do(ctx, func(ctx context.Context) error {
		return d.repo.InsertNotification(ctx, n)
	},
		retry.WithMaxAttempts(d.attempts),
		retry.WithBaseDelay(d.baseDelay),
		retry.WithRetryIf(func(err error) bool { return errors.Is(err, errs.ErrStoreUnavailable) }),
	)
}
