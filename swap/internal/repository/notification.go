package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/Astemirdum/book-swap-service/swap/internal/model"
)

var notificationColumns = []string{
	"id", "user_id", "type", "title", "message", "related_swap_id", "read_at", "created_at",
}

func (r *repository) InsertNotification(ctx context.Context, n model.Notification) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	q, args, err := qb.Insert(notificationsTableName).
		Columns(notificationColumns...).
		Values(n.ID, n.UserID, n.Type, n.Title, n.Message, n.RelatedSwapID, n.ReadAt, n.CreatedAt).
		Suffix("on conflict (id) do nothing").
		ToSql()
	if err != nil {
		return err
	}
	return r.policy.Do(ctx, "InsertNotification", func(ctx context.Context) error {
		_, err := r.db.ExecContext(ctx, q, args...)
		return err
	})
}

func (r *repository) ListNotifications(ctx context.Context, userID string, unreadOnly bool) ([]model.Notification, error) {
	sb := qb.Select(notificationColumns...).
		From(notificationsTableName).
		Where(sq.Eq{"user_id": userID})
	if unreadOnly {
		sb = sb.Where(sq.Eq{"read_at": nil})
	}
	q, args, err := sb.OrderBy("created_at desc").ToSql()
	if err != nil {
		return nil, err
	}
	items := make([]model.Notification, 0)
	err = r.policy.Do(ctx, "ListNotifications", func(ctx context.Context) error {
		return r.db.SelectContext(ctx, &items, q, args...)
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) MarkNotificationRead(ctx context.Context, userID, notificationID string) (bool, error) {
	q, args, err := qb.Update(notificationsTableName).
		Set("read_at", sq.Expr("coalesce(read_at, now())")).
		Where(sq.Eq{"id": notificationID, "user_id": userID}).
		ToSql()
	if err != nil {
		return false, err
	}
	var found bool
	err = r.policy.Do(ctx, "MarkNotificationRead", func(ctx context.Context) error {
		res, err := r.db.ExecContext(ctx, q, args...)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		found = n == 1
		return err
	})
	return found, err
}

func (r *repository) CountUnread(ctx context.Context, userID string) (int, error) {
	q, args, err := qb.Select("count(*)").
		From(notificationsTableName).
		Where(sq.Eq{"user_id": userID, "read_at": nil}).
		ToSql()
	if err != nil {
		return 0, err
	}
	var count int
	err = r.policy.Do(ctx, "CountUnread", func(ctx context.Context) error {
		return r.db.GetContext(ctx, &count, q, args...)
	})
	return count, err
}
