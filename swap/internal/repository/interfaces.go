package repository

import (
	"context"

	"github.com/Astemirdum/book-swap-service/swap/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=interfaces.go -destination=mocks/mock.go

type BookRepository interface {
	CreateBook(ctx context.Context, book model.Book) (model.Book, error)
	GetBook(ctx context.Context, bookID string) (model.Book, error)
	ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error)
	UpdateDescription(ctx context.Context, bookID string, description *string) (model.Book, error)
	SetAvailability(ctx context.Context, bookID string, available bool) (model.Book, error)
	SetCoverURL(ctx context.Context, bookID, coverURL string) error
}

type SwapRepository interface {
	InsertSwapRequest(ctx context.Context, swap model.SwapRequest, history []model.SwapHistory) (string, error)
	GetSwapRequest(ctx context.Context, swapID string) (model.SwapRequest, error)
	// UpdateSwapStatus returns false when the row is no longer in upd.Expected.
	UpdateSwapStatus(ctx context.Context, upd model.StatusUpdate) (bool, error)
	QuerySwapRequestsForBooks(ctx context.Context, bookIDs []string) ([]model.SwapRequest, error)
	HasPendingOffer(ctx context.Context, bookOfferedID string) (bool, error)
	FindActiveRequest(ctx context.Context, requesterID, bookRequestedID string) (bool, error)
	ListSwaps(ctx context.Context, filter model.SwapFilter) ([]model.SwapRequest, error)
	InsertSwapHistory(ctx context.Context, rows []model.SwapHistory) error
	ListSwapHistory(ctx context.Context, userID string) ([]model.SwapHistory, error)
	// CompleteSwap is a single atomic routine: status, completed_at and history in one transaction.
	CompleteSwap(ctx context.Context, swapID, actorID string, clearAvailability bool) (model.CompleteResult, error)
}

type NotificationRepository interface {
	InsertNotification(ctx context.Context, n model.Notification) error
	ListNotifications(ctx context.Context, userID string, unreadOnly bool) ([]model.Notification, error)
	MarkNotificationRead(ctx context.Context, userID, notificationID string) (bool, error)
	CountUnread(ctx context.Context, userID string) (int, error)
}

type ReviewRepository interface {
	GetReview(ctx context.Context, bookID, userID string) (model.Review, error)
	InsertReview(ctx context.Context, review model.Review) (model.Review, error)
	UpdateReview(ctx context.Context, review model.Review) (model.Review, error)
	ListReviews(ctx context.Context, bookID string) ([]model.Review, error)
	ReviewSummary(ctx context.Context, bookID string) (model.ReviewSummary, error)
}
