package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Astemirdum/book-swap-service/swap/internal/errs"
	"github.com/Astemirdum/book-swap-service/swap/internal/model"
	"github.com/Astemirdum/book-swap-service/swap/internal/repository"
)

type Store interface {
	repository.BookRepository
	QuerySwapRequestsForBooks(ctx context.Context, bookIDs []string) ([]model.SwapRequest, error)
}

// CoverBackfiller looks up missing covers. It must not block the caller for long.
type CoverBackfiller interface {
	Backfill(ctx context.Context, books []model.Book)
}

type Service struct {
	log    *zap.Logger
	repo   Store
	covers CoverBackfiller
}

func NewService(repo Store, covers CoverBackfiller, log *zap.Logger) *Service {
	return &Service{
		log:    log.Named("catalog"),
		repo:   repo,
		covers: covers,
	}
}

// ListAvailableBooks returns the swappable books other users own, projected for viewerID.
// An empty viewerID lists every available book as requestable.
func (s *Service) ListAvailableBooks(ctx context.Context, viewerID string) ([]model.BookWithSwapInfo, error) {
	books, err := s.repo.ListBooks(ctx, model.BookFilter{AvailableOnly: true, ExcludeOwnerID: viewerID})
	if err != nil {
		return nil, err
	}
	s.backfill(books)

	items := make([]model.BookWithSwapInfo, 0, len(books))
	if viewerID == "" {
		for _, b := range books {
			items = append(items, model.BookWithSwapInfo{Book: b, ViewerState: model.StateCanRequest})
		}
		return items, nil
	}

	ids := make([]string, 0, len(books))
	for _, b := range books {
		ids = append(ids, b.ID)
	}
	reqs, err := s.repo.QuerySwapRequestsForBooks(ctx, ids)
	if err != nil {
		return nil, err
	}
	byBook := make(map[string][]model.SwapRequest, len(books))
	for _, r := range reqs {
		if r.RequesterID == viewerID {
			byBook[r.BookRequestedID] = append(byBook[r.BookRequestedID], r)
		}
	}
	for _, b := range books {
		own := byBook[b.ID]
		if hasCompleted(own) {
			continue
		}
		latest := latestRequest(own, viewerID)
		items = append(items, model.BookWithSwapInfo{
			Book:        b,
			ViewerSwap:  latest,
			ViewerState: ViewerState(b, viewerID, own),
		})
	}
	return items, nil
}

// ViewerState derives the action a viewer can take on a book from their own requests against it.
func ViewerState(book model.Book, viewerID string, requests []model.SwapRequest) model.ButtonState {
	if !book.AvailableForSwap {
		return model.StateNotAvailable
	}
	latest := latestRequest(requests, viewerID)
	if latest == nil || latest.BookRequestedID != book.ID {
		return model.StateCanRequest
	}
	switch latest.Status {
	case model.StatusPending:
		return model.StateSwapRequested
	case model.StatusApproved:
		return model.StateSwapApproved
	case model.StatusDenied:
		return model.StateSwapDenied
	case model.StatusCompleted:
		return model.StateSwapCompleted
	default:
		return model.StateCanRequest
	}
}

func (s *Service) GetBookState(ctx context.Context, bookID, viewerID string) (model.BookWithSwapInfo, error) {
	book, err := s.getBook(ctx, bookID)
	if err != nil {
		return model.BookWithSwapInfo{}, err
	}
	info := model.BookWithSwapInfo{Book: book, ViewerState: ViewerState(book, "", nil)}
	if viewerID == "" || book.OwnerID == viewerID {
		return info, nil
	}
	reqs, err := s.repo.QuerySwapRequestsForBooks(ctx, []string{bookID})
	if err != nil {
		return model.BookWithSwapInfo{}, err
	}
	info.ViewerSwap = latestRequest(reqs, viewerID)
	info.ViewerState = ViewerState(book, viewerID, reqs)
	return info, nil
}

func (s *Service) CreateBook(ctx context.Context, ownerID string, req model.CreateBookRequest) (model.Book, error) {
	if ownerID == "" {
		return model.Book{}, errs.ErrAuthRequired
	}
	book := model.Book{
		Title:            strings.TrimSpace(req.Title),
		Author:           strings.TrimSpace(req.Author),
		ISBN:             trimmed(req.ISBN),
		Genres:           model.NormalizeGenres(req.Genres),
		Description:      trimmed(req.Description),
		Condition:        req.Condition,
		OwnerID:          ownerID,
		Location:         strings.TrimSpace(req.Location),
		AvailableForSwap: req.AvailableForSwap == nil || *req.AvailableForSwap,
	}
	switch {
	case book.Title == "":
		return model.Book{}, errs.Invalid("title is required")
	case book.Author == "":
		return model.Book{}, errs.Invalid("author is required")
	case book.Location == "":
		return model.Book{}, errs.Invalid("location is required")
	}
	created, err := s.repo.CreateBook(ctx, book)
	if err != nil {
		return model.Book{}, err
	}
	s.log.Info("book created", zap.String("book", created.ID), zap.String("owner", ownerID))
	s.backfill([]model.Book{created})
	return created, nil
}

func (s *Service) ListMyBooks(ctx context.Context, ownerID string) ([]model.Book, error) {
	if ownerID == "" {
		return nil, errs.ErrAuthRequired
	}
	return s.repo.ListBooks(ctx, model.BookFilter{OwnerID: ownerID})
}

func (s *Service) UpdateDescription(ctx context.Context, ownerID, bookID, description string) (model.Book, error) {
	if _, err := s.ownedBook(ctx, ownerID, bookID); err != nil {
		return model.Book{}, err
	}
	return s.repo.UpdateDescription(ctx, bookID, trimmed(&description))
}

func (s *Service) SetAvailability(ctx context.Context, ownerID, bookID string, available bool) (model.Book, error) {
	book, err := s.ownedBook(ctx, ownerID, bookID)
	if err != nil {
		return model.Book{}, err
	}
	if book.AvailableForSwap == available {
		return book, nil
	}
	return s.repo.SetAvailability(ctx, bookID, available)
}

func (s *Service) ownedBook(ctx context.Context, ownerID, bookID string) (model.Book, error) {
	if ownerID == "" {
		return model.Book{}, errs.ErrAuthRequired
	}
	book, err := s.getBook(ctx, bookID)
	if err != nil {
		return model.Book{}, err
	}
	if book.OwnerID != ownerID {
		return model.Book{}, errs.Forbidden("only the owner can change a book")
	}
	return book, nil
}

func (s *Service) getBook(ctx context.Context, bookID string) (model.Book, error) {
	if _, err := uuid.Parse(bookID); err != nil {
		return model.Book{}, errs.NotFound("book")
	}
	return s.repo.GetBook(ctx, bookID)
}

func (s *Service) backfill(books []model.Book) {
	if s.covers == nil {
		return
	}
	missing := make([]model.Book, 0)
	for _, b := range books {
		if b.CoverURL == nil && b.ISBN != nil {
			missing = append(missing, b)
		}
	}
	if len(missing) == 0 {
		return
	}
	go s.covers.Backfill(context.Background(), missing)
}

func latestRequest(requests []model.SwapRequest, viewerID string) *model.SwapRequest {
	var latest *model.SwapRequest
	for i := range requests {
		r := requests[i]
		if r.RequesterID != viewerID {
			continue
		}
		if latest == nil || r.CreatedAt.After(latest.CreatedAt) {
			latest = &r
		}
	}
	return latest
}

func hasCompleted(requests []model.SwapRequest) bool {
	for _, r := range requests {
		if r.Status == model.StatusCompleted {
			return true
		}
	}
	return false
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
