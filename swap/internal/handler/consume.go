package handler

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/book-swap-service/pkg/kafka"
	"github.com/Astemirdum/book-swap-service/pkg/retry"
	"github.com/Astemirdum/book-swap-service/swap/internal/model"
)

type persistFunc func(ctx context.Context, n model.Notification) error

const (
	persistTimeout        = 10 * time.Second
	defaultPersistTries   = 5
	defaultPersistBackoff = time.Second
)

// Consumer drains notifications that were queued while the store was unavailable.
type Consumer struct {
	persist persistFunc
	log     *zap.Logger
	ready   chan struct{}

	attempts  int
	baseDelay time.Duration
}

type ConsumerOption func(*Consumer)

func WithPersistRetry(attempts int, baseDelay time.Duration) ConsumerOption {
	return func(c *Consumer) {
		c.attempts = attempts
		c.baseDelay = baseDelay
	}
}

func NewConsumer(persist persistFunc, log *zap.Logger, opts ...ConsumerOption) *Consumer {
	c := &Consumer{
		persist:   persist,
		log:       log.Named("consumer"),
		ready:     make(chan struct{}),
		attempts:  defaultPersistTries,
		baseDelay: defaultPersistBackoff,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ready is closed once the first session is set up.
func (consumer *Consumer) Ready() <-chan struct{} {
	return consumer.ready
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	select {
	case <-consumer.ready:
	default:
		close(consumer.ready)
	}
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited.
func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var n model.Notification
			if err := kafka.Decode(message.Value, &n); err != nil || n.UserID == "" {
				consumer.log.Error("drop malformed notification", zap.Error(err), zap.ByteString("value", message.Value))
				session.MarkMessage(message, "")
				continue
			}

			err := retry.Do(session.Context(), func(ctx context.Context) error {
				ctx, cancel := context.WithTimeout(ctx, persistTimeout)
				defer cancel()
				return consumer.persist(ctx, n)
			}, retry.WithMaxAttempts(consumer.attempts), retry.WithBaseDelay(consumer.baseDelay))
			if err != nil && session.Context().Err() != nil {
				return nil
			}
			if err != nil {
				// Offsets are cumulative: marking anything after this message would commit past it.
				// Ending the claim tears the session down and the group resumes from this offset.
				consumer.log.Error("persist queued notification", zap.String("id", n.ID), zap.Error(err))
				return errors.Wrapf(err, "persist notification %s at offset %d", n.ID, message.Offset)
			}

			consumer.log.Debug("notification delivered",
				zap.String("id", n.ID), zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
