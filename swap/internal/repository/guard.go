package repository

import (
	"context"

	"github.com/Astemirdum/book-swap-service/swap/internal/model"
)

// Guard runs every call of next through policy. The postgres repository applies its
// policy itself; Guard gives other adapters the same timeout and breaker behaviour.
func Guard(next Repository, policy *Policy) Repository {
	return &guarded{next: next, policy: policy}
}

type guarded struct {
	next   Repository
	policy *Policy
}

func call[T any](ctx context.Context, p *Policy, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	var out T
	err := p.Do(ctx, op, func(ctx context.Context) error {
		var err error
		out, err = fn(ctx)
		return err
	})
	return out, err
}

func (g *guarded) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	return call(ctx, g.policy, "CreateBook", func(ctx context.Context) (model.Book, error) {
		return g.next.CreateBook(ctx, book)
	})
}

func (g *guarded) GetBook(ctx context.Context, bookID string) (model.Book, error) {
	return call(ctx, g.policy, "GetBook", func(ctx context.Context) (model.Book, error) {
		return g.next.GetBook(ctx, bookID)
	})
}

func (g *guarded) ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	return call(ctx, g.policy, "ListBooks", func(ctx context.Context) ([]model.Book, error) {
		return g.next.ListBooks(ctx, filter)
	})
}

func (g *guarded) UpdateDescription(ctx context.Context, bookID string, description *string) (model.Book, error) {
	return call(ctx, g.policy, "UpdateDescription", func(ctx context.Context) (model.Book, error) {
		return g.next.UpdateDescription(ctx, bookID, description)
	})
}

func (g *guarded) SetAvailability(ctx context.Context, bookID string, available bool) (model.Book, error) {
	return call(ctx, g.policy, "SetAvailability", func(ctx context.Context) (model.Book, error) {
		return g.next.SetAvailability(ctx, bookID, available)
	})
}

func (g *guarded) SetCoverURL(ctx context.Context, bookID, coverURL string) error {
	return g.policy.Do(ctx, "SetCoverURL", func(ctx context.Context) error {
		return g.next.SetCoverURL(ctx, bookID, coverURL)
	})
}

func (g *guarded) InsertSwapRequest(ctx context.Context, swap model.SwapRequest, history []model.SwapHistory) (string, error) {
	return call(ctx, g.policy, "InsertSwapRequest", func(ctx context.Context) (string, error) {
		return g.next.InsertSwapRequest(ctx, swap, history)
	})
}

func (g *guarded) GetSwapRequest(ctx context.Context, swapID string) (model.SwapRequest, error) {
	return call(ctx, g.policy, "GetSwapRequest", func(ctx context.Context) (model.SwapRequest, error) {
		return g.next.GetSwapRequest(ctx, swapID)
	})
}

func (g *guarded) UpdateSwapStatus(ctx context.Context, upd model.StatusUpdate) (bool, error) {
	return call(ctx, g.policy, "UpdateSwapStatus", func(ctx context.Context) (bool, error) {
		return g.next.UpdateSwapStatus(ctx, upd)
	})
}

func (g *guarded) QuerySwapRequestsForBooks(ctx context.Context, bookIDs []string) ([]model.SwapRequest, error) {
	return call(ctx, g.policy, "QuerySwapRequestsForBooks", func(ctx context.Context) ([]model.SwapRequest, error) {
		return g.next.QuerySwapRequestsForBooks(ctx, bookIDs)
	})
}

func (g *guarded) HasPendingOffer(ctx context.Context, bookOfferedID string) (bool, error) {
	return call(ctx, g.policy, "HasPendingOffer", func(ctx context.Context) (bool, error) {
		return g.next.HasPendingOffer(ctx, bookOfferedID)
	})
}

func (g *guarded) FindActiveRequest(ctx context.Context, requesterID, bookRequestedID string) (bool, error) {
	return call(ctx, g.policy, "FindActiveRequest", func(ctx context.Context) (bool, error) {
		return g.next.FindActiveRequest(ctx, requesterID, bookRequestedID)
	})
}

func (g *guarded) ListSwaps(ctx context.Context, filter model.SwapFilter) ([]model.SwapRequest, error) {
	return call(ctx, g.policy, "ListSwaps", func(ctx context.Context) ([]model.SwapRequest, error) {
		return g.next.ListSwaps(ctx, filter)
	})
}

func (g *guarded) InsertSwapHistory(ctx context.Context, rows []model.SwapHistory) error {
	return g.policy.Do(ctx, "InsertSwapHistory", func(ctx context.Context) error {
		return g.next.InsertSwapHistory(ctx, rows)
	})
}

func (g *guarded) ListSwapHistory(ctx context.Context, userID string) ([]model.SwapHistory, error) {
	return call(ctx, g.policy, "ListSwapHistory", func(ctx context.Context) ([]model.SwapHistory, error) {
		return g.next.ListSwapHistory(ctx, userID)
	})
}

func (g *guarded) CompleteSwap(ctx context.Context, swapID, actorID string, clearAvailability bool) (model.CompleteResult, error) {
	return call(ctx, g.policy, "CompleteSwap", func(ctx context.Context) (model.CompleteResult, error) {
		return g.next.CompleteSwap(ctx, swapID, actorID, clearAvailability)
	})
}

func (g *guarded) InsertNotification(ctx context.Context, n model.Notification) error {
	return g.policy.Do(ctx, "InsertNotification", func(ctx context.Context) error {
		return g.next.InsertNotification(ctx, n)
	})
}

func (g *guarded) ListNotifications(ctx context.Context, userID string, unreadOnly bool) ([]model.Notification, error) {
	return call(ctx, g.policy, "ListNotifications", func(ctx context.Context) ([]model.Notification, error) {
		return g.next.ListNotifications(ctx, userID, unreadOnly)
	})
}

func (g *guarded) MarkNotificationRead(ctx context.Context, userID, notificationID string) (bool, error) {
	return call(ctx, g.policy, "MarkNotificationRead", func(ctx context.Context) (bool, error) {
		return g.next.MarkNotificationRead(ctx, userID, notificationID)
	})
}

func (g *guarded) CountUnread(ctx context.Context, userID string) (int, error) {
	return call(ctx, g.policy, "CountUnread", func(ctx context.Context) (int, error) {
		return g.next.CountUnread(ctx, userID)
	})
}

func (g *guarded) GetReview(ctx context.Context, bookID, userID string) (model.Review, error) {
	return call(ctx, g.policy, "GetReview", func(ctx context.Context) (model.Review, error) {
		return g.next.GetReview(ctx, bookID, userID)
	})
}

func (g *guarded) InsertReview(ctx context.Context, review model.Review) (model.Review, error) {
	return call(ctx, g.policy, "InsertReview", func(ctx context.Context) (model.Review, error) {
		return g.next.InsertReview(ctx, review)
	})
}

func (g *guarded) UpdateReview(ctx context.Context, review model.Review) (model.Review, error) {
	return call(ctx, g.policy, "UpdateReview", func(ctx context.Context) (model.Review, error) {
		return g.next.UpdateReview(ctx, review)
	})
}

func (g *guarded) ListReviews(ctx context.Context, bookID string) ([]model.Review, error) {
	return call(ctx, g.policy, "ListReviews", func(ctx context.Context) ([]model.Review, error) {
		return g.next.ListReviews(ctx, bookID)
	})
}

func (g *guarded) ReviewSummary(ctx context.Context, bookID string) (model.ReviewSummary, error) {
	return call(ctx, g.policy, "ReviewSummary", func(ctx context.Context) (model.ReviewSummary, error) {
		return g.next.ReviewSummary(ctx, bookID)
	})
}
