// Package memory is an in-process store with the same semantics as the postgres repository.
// It backs local runs with STORE_DRIVER=memory and the service tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Astemirdum/book-swap-service/swap/internal/errs"
	"github.com/Astemirdum/book-swap-service/swap/internal/model"
	"github.com/Astemirdum/book-swap-service/swap/internal/repository"
)

type Store struct {
	mu            sync.RWMutex
	books         map[string]model.Book
	swaps         map[string]model.SwapRequest
	history       []model.SwapHistory
	notifications map[string]model.Notification
	reviews       map[string]model.Review
	now           func() time.Time
}

var _ repository.Repository = (*Store)(nil)

func New() *Store {
	return &Store{
		books:         make(map[string]model.Book),
		swaps:         make(map[string]model.SwapRequest),
		notifications: make(map[string]model.Notification),
		reviews:       make(map[string]model.Review),
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func alive(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errs.Unavailable(err)
	}
	return nil
}

func (s *Store) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	if err := alive(ctx); err != nil {
		return model.Book{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	book.ID = uuid.NewString()
	book.CreatedAt = s.now()
	book.UpdatedAt = book.CreatedAt
	s.books[book.ID] = book
	return book, nil
}

func (s *Store) GetBook(ctx context.Context, bookID string) (model.Book, error) {
	if err := alive(ctx); err != nil {
		return model.Book{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	book, ok := s.books[bookID]
	if !ok {
		return model.Book{}, errs.NotFound("book")
	}
	return book, nil
}

func (s *Store) ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ids map[string]struct{}
	if filter.IDs != nil {
		ids = make(map[string]struct{}, len(filter.IDs))
		for _, id := range filter.IDs {
			ids[id] = struct{}{}
		}
	}
	items := make([]model.Book, 0)
	for _, b := range s.books {
		if ids != nil {
			if _, ok := ids[b.ID]; !ok {
				continue
			}
		}
		if filter.OwnerID != "" && b.OwnerID != filter.OwnerID {
			continue
		}
		if filter.ExcludeOwnerID != "" && b.OwnerID == filter.ExcludeOwnerID {
			continue
		}
		if filter.AvailableOnly && !b.AvailableForSwap {
			continue
		}
		if filter.MissingCover && (b.CoverURL != nil || b.ISBN == nil) {
			continue
		}
		items = append(items, b)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID < items[j].ID
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	if filter.Limit > 0 && len(items) > filter.Limit {
		items = items[:filter.Limit]
	}
	return items, nil
}

func (s *Store) UpdateDescription(ctx context.Context, bookID string, description *string) (model.Book, error) {
	return s.updateBook(ctx, bookID, func(b *model.Book) { b.Description = description })
}

func (s *Store) SetAvailability(ctx context.Context, bookID string, available bool) (model.Book, error) {
	return s.updateBook(ctx, bookID, func(b *model.Book) { b.AvailableForSwap = available })
}

func (s *Store) SetCoverURL(ctx context.Context, bookID, coverURL string) error {
	_, err := s.updateBook(ctx, bookID, func(b *model.Book) { b.CoverURL = &coverURL })
	return err
}

func (s *Store) updateBook(ctx context.Context, bookID string, fn func(b *model.Book)) (model.Book, error) {
	if err := alive(ctx); err != nil {
		return model.Book{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[bookID]
	if !ok {
		return model.Book{}, errs.NotFound("book")
	}
	fn(&book)
	book.UpdatedAt = s.now()
	s.books[bookID] = book
	return book, nil
}

func (s *Store) InsertSwapRequest(ctx context.Context, swap model.SwapRequest, history []model.SwapHistory) (string, error) {
	if err := alive(ctx); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, other := range s.swaps {
		if other.Status == model.StatusPending && other.BookOfferedID == swap.BookOfferedID {
			return "", errs.Invalid("offered book already backs a pending request")
		}
	}
	if swap.ID == "" {
		swap.ID = uuid.NewString()
	}
	swap.UpdatedAt = swap.CreatedAt
	s.swaps[swap.ID] = swap
	for _, h := range history {
		h.SwapID = swap.ID
		s.appendHistory(h)
	}
	return swap.ID, nil
}

func (s *Store) GetSwapRequest(ctx context.Context, swapID string) (model.SwapRequest, error) {
	if err := alive(ctx); err != nil {
		return model.SwapRequest{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	swap, ok := s.swaps[swapID]
	if !ok {
		return model.SwapRequest{}, errs.NotFound("swap request")
	}
	return swap, nil
}

func (s *Store) UpdateSwapStatus(ctx context.Context, upd model.StatusUpdate) (bool, error) {
	if err := alive(ctx); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	swap, ok := s.swaps[upd.SwapID]
	if !ok || swap.Status != upd.Expected {
		return false, nil
	}
	at := upd.At
	swap.Status = upd.Next
	swap.UpdatedAt = at
	switch upd.Next {
	case model.StatusApproved:
		swap.ApprovedAt = &at
	case model.StatusDenied:
		swap.DeniedAt = &at
	case model.StatusCancelled:
		swap.CancelledAt = &at
		swap.CancelReason = upd.CancelReason
	case model.StatusCompleted:
		swap.CompletedAt = &at
	}
	s.swaps[swap.ID] = swap
	for _, h := range upd.History {
		s.appendHistory(h)
	}
	return true, nil
}

func (s *Store) QuerySwapRequestsForBooks(ctx context.Context, bookIDs []string) ([]model.SwapRequest, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	want := make(map[string]struct{}, len(bookIDs))
	for _, id := range bookIDs {
		want[id] = struct{}{}
	}
	items := make([]model.SwapRequest, 0)
	for _, sw := range s.swaps {
		if _, ok := want[sw.BookRequestedID]; ok {
			items = append(items, sw)
		}
	}
	sortSwaps(items)
	return items, nil
}

func (s *Store) HasPendingOffer(ctx context.Context, bookOfferedID string) (bool, error) {
	if err := alive(ctx); err != nil {
		return false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sw := range s.swaps {
		if sw.BookOfferedID == bookOfferedID && sw.Status == model.StatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) FindActiveRequest(ctx context.Context, requesterID, bookRequestedID string) (bool, error) {
	if err := alive(ctx); err != nil {
		return false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sw := range s.swaps {
		if sw.RequesterID != requesterID || sw.BookRequestedID != bookRequestedID {
			continue
		}
		if sw.Status == model.StatusPending || sw.Status == model.StatusApproved {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) ListSwaps(ctx context.Context, filter model.SwapFilter) ([]model.SwapRequest, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]model.SwapRequest, 0)
	for _, sw := range s.swaps {
		switch filter.Direction {
		case model.DirectionIncoming:
			if sw.OwnerID != filter.UserID {
				continue
			}
		case model.DirectionOutgoing:
			if sw.RequesterID != filter.UserID {
				continue
			}
		default:
			if !sw.IsParticipant(filter.UserID) {
				continue
			}
		}
		if filter.Status != "" && sw.Status != filter.Status {
			continue
		}
		items = append(items, sw)
	}
	sortSwaps(items)
	return items, nil
}

func (s *Store) InsertSwapHistory(ctx context.Context, rows []model.SwapHistory) error {
	if err := alive(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, h := range rows {
		s.appendHistory(h)
	}
	return nil
}

func (s *Store) ListSwapHistory(ctx context.Context, userID string) ([]model.SwapHistory, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]model.SwapHistory, 0)
	for i := len(s.history) - 1; i >= 0; i-- {
		if s.history[i].UserID == userID {
			items = append(items, s.history[i])
		}
	}
	return items, nil
}

func (s *Store) CompleteSwap(ctx context.Context, swapID, actorID string, clearAvailability bool) (model.CompleteResult, error) {
	if err := alive(ctx); err != nil {
		return model.CompleteResult{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	swap, ok := s.swaps[swapID]
	switch {
	case !ok:
		return model.CompleteResult{Outcome: model.CompleteNotFound}, nil
	case !swap.IsParticipant(actorID):
		return model.CompleteResult{Outcome: model.CompleteForbidden, Status: swap.Status}, nil
	case swap.Status != model.StatusApproved:
		return model.CompleteResult{Outcome: model.CompleteInvalidState, Status: swap.Status}, nil
	}

	at := s.now()
	swap.Status = model.StatusCompleted
	swap.CompletedAt = &at
	swap.UpdatedAt = at
	s.swaps[swapID] = swap
	for _, h := range model.HistoryPair(swap, model.HistoryCompleted, model.HistoryCompleted, at) {
		s.appendHistory(h)
	}
	if clearAvailability {
		for _, id := range []string{swap.BookRequestedID, swap.BookOfferedID} {
			if b, ok := s.books[id]; ok {
				b.AvailableForSwap = false
				b.UpdatedAt = at
				s.books[id] = b
			}
		}
	}
	return model.CompleteResult{Outcome: model.CompleteOK, Status: model.StatusCompleted, CompletedAt: &at}, nil
}

func (s *Store) InsertNotification(ctx context.Context, n model.Notification) error {
	if err := alive(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if _, ok := s.notifications[n.ID]; ok {
		return nil
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = s.now()
	}
	s.notifications[n.ID] = n
	return nil
}

func (s *Store) ListNotifications(ctx context.Context, userID string, unreadOnly bool) ([]model.Notification, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]model.Notification, 0)
	for _, n := range s.notifications {
		if n.UserID != userID || (unreadOnly && n.ReadAt != nil) {
			continue
		}
		items = append(items, n)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

func (s *Store) MarkNotificationRead(ctx context.Context, userID, notificationID string) (bool, error) {
	if err := alive(ctx); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notifications[notificationID]
	if !ok || n.UserID != userID {
		return false, nil
	}
	if n.ReadAt == nil {
		at := s.now()
		n.ReadAt = &at
		s.notifications[notificationID] = n
	}
	return true, nil
}

func (s *Store) CountUnread(ctx context.Context, userID string) (int, error) {
	if err := alive(ctx); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	for _, n := range s.notifications {
		if n.UserID == userID && n.ReadAt == nil {
			count++
		}
	}
	return count, nil
}

func reviewKey(bookID, userID string) string {
	return bookID + "/" + userID
}

func (s *Store) GetReview(ctx context.Context, bookID, userID string) (model.Review, error) {
	if err := alive(ctx); err != nil {
		return model.Review{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.reviews[reviewKey(bookID, userID)]
	if !ok {
		return model.Review{}, errs.NotFound("review")
	}
	return r, nil
}

func (s *Store) InsertReview(ctx context.Context, review model.Review) (model.Review, error) {
	if err := alive(ctx); err != nil {
		return model.Review{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	key := reviewKey(review.BookID, review.UserID)
	if _, ok := s.reviews[key]; ok {
		return model.Review{}, errs.InvalidState("review already exists")
	}
	review.ID = uuid.NewString()
	review.CreatedAt = s.now()
	review.UpdatedAt = review.CreatedAt
	s.reviews[key] = review
	return review, nil
}

func (s *Store) UpdateReview(ctx context.Context, review model.Review) (model.Review, error) {
	if err := alive(ctx); err != nil {
		return model.Review{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	key := reviewKey(review.BookID, review.UserID)
	cur, ok := s.reviews[key]
	if !ok {
		return model.Review{}, errs.NotFound("review")
	}
	cur.Rating = review.Rating
	cur.ReviewText = review.ReviewText
	cur.UpdatedAt = s.now()
	s.reviews[key] = cur
	return cur, nil
}

func (s *Store) ListReviews(ctx context.Context, bookID string) ([]model.Review, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]model.Review, 0)
	for _, r := range s.reviews {
		if r.BookID == bookID {
			items = append(items, r)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].UpdatedAt.After(items[j].UpdatedAt) })
	return items, nil
}

func (s *Store) ReviewSummary(ctx context.Context, bookID string) (model.ReviewSummary, error) {
	items, err := s.ListReviews(ctx, bookID)
	if err != nil {
		return model.ReviewSummary{}, err
	}
	var sum model.ReviewSummary
	for _, r := range items {
		sum.AverageRating += float64(r.Rating)
	}
	sum.TotalCount = len(items)
	if sum.TotalCount > 0 {
		sum.AverageRating /= float64(sum.TotalCount)
	}
	return sum, nil
}

func (s *Store) appendHistory(h model.SwapHistory) {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	s.history = append(s.history, h)
}

func sortSwaps(items []model.SwapRequest) {
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
}
