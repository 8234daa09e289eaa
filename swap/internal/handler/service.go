package handler

import (
	"context"

	"github.com/Astemirdum/book-swap-service/swap/internal/model"
	"github.com/Astemirdum/book-swap-service/swap/internal/service/catalog"
	"github.com/Astemirdum/book-swap-service/swap/internal/service/lifecycle"
	"github.com/Astemirdum/book-swap-service/swap/internal/service/notify"
	"github.com/Astemirdum/book-swap-service/swap/internal/service/review"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CatalogService interface {
	ListAvailableBooks(ctx context.Context, viewerID string) ([]model.BookWithSwapInfo, error)
	GetBookState(ctx context.Context, bookID, viewerID string) (model.BookWithSwapInfo, error)
	CreateBook(ctx context.Context, ownerID string, req model.CreateBookRequest) (model.Book, error)
	ListMyBooks(ctx context.Context, ownerID string) ([]model.Book, error)
	UpdateDescription(ctx context.Context, ownerID, bookID, description string) (model.Book, error)
	SetAvailability(ctx context.Context, ownerID, bookID string, available bool) (model.Book, error)
}

type LifecycleService interface {
	CreateSwapRequest(ctx context.Context, requesterID, bookRequestedID, bookOfferedID string) (model.SwapRequest, error)
	HandleSwapRequest(ctx context.Context, swapID, reviewerID string, action model.Action) (model.SwapRequest, error)
	CancelSwapRequest(ctx context.Context, swapID, requesterID, reason string) (model.SwapRequest, error)
	CompleteSwap(ctx context.Context, swapID, actorID string) (model.SwapRequest, error)
	GetSwap(ctx context.Context, swapID, actorID string) (model.SwapRequest, error)
	ListSwaps(ctx context.Context, actorID string, direction model.Direction, status model.Status) ([]model.SwapRequest, error)
	ListHistory(ctx context.Context, actorID string) ([]model.SwapHistory, error)
}

type InboxService interface {
	ListNotifications(ctx context.Context, userID string, unreadOnly bool) ([]model.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID string) error
	UnreadCount(ctx context.Context, userID string) (model.UnreadCount, error)
}

type ReviewService interface {
	SubmitReview(ctx context.Context, bookID, userID string, req model.SubmitReviewRequest) (model.Review, error)
	ListReviews(ctx context.Context, bookID string) (model.BookReviews, error)
}

var (
	_ CatalogService   = (*catalog.Service)(nil)
	_ LifecycleService = (*lifecycle.Service)(nil)
	_ InboxService     = (*notify.Inbox)(nil)
	_ ReviewService    = (*review.Service)(nil)
)
