package notify

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Astemirdum/book-swap-service/swap/internal/errs"
	"github.com/Astemirdum/book-swap-service/swap/internal/model"
	"github.com/Astemirdum/book-swap-service/swap/internal/repository"
)

// Inbox is the recipient's view of their notifications.
type Inbox struct {
	log  *zap.Logger
	repo repository.NotificationRepository
}

func NewInbox(repo repository.NotificationRepository, log *zap.Logger) *Inbox {
	return &Inbox{
		log:  log.Named("inbox"),
		repo: repo,
	}
}

func (s *Inbox) ListNotifications(ctx context.Context, userID string, unreadOnly bool) ([]model.Notification, error) {
	if userID == "" {
		return nil, errs.ErrAuthRequired
	}
	return s.repo.ListNotifications(ctx, userID, unreadOnly)
}

// MarkRead is idempotent; notifications of other users look missing.
func (s *Inbox) MarkRead(ctx context.Context, userID, notificationID string) error {
	if userID == "" {
		return errs.ErrAuthRequired
	}
	if _, err := uuid.Parse(notificationID); err != nil {
		return errs.NotFound("notification")
	}
	found, err := s.repo.MarkNotificationRead(ctx, userID, notificationID)
	if err != nil {
		return err
	}
	if !found {
		return errs.NotFound("notification")
	}
	return nil
}

func (s *Inbox) UnreadCount(ctx context.Context, userID string) (model.UnreadCount, error) {
	if userID == "" {
		return model.UnreadCount{}, errs.ErrAuthRequired
	}
	count, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return model.UnreadCount{}, err
	}
	return model.UnreadCount{Count: count}, nil
}
