package review

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/book-swap-service/swap/internal/errs"
	"github.com/Astemirdum/book-swap-service/swap/internal/model"
	"github.com/Astemirdum/book-swap-service/swap/internal/repository"
)

const (
	DefaultMinTextLength = 10
	maxTextLength        = 5000
	minRating            = 1
	maxRating            = 5
)

type Store interface {
	GetBook(ctx context.Context, bookID string) (model.Book, error)
	repository.ReviewRepository
}

type Service struct {
	log           *zap.Logger
	repo          Store
	minTextLength int
}

func NewService(repo Store, minTextLength int, log *zap.Logger) *Service {
	if minTextLength <= 0 {
		minTextLength = DefaultMinTextLength
	}
	return &Service{
		log:           log.Named("review"),
		repo:          repo,
		minTextLength: minTextLength,
	}
}

// SubmitReview creates the user's review of a book or replaces the one they already wrote.
func (s *Service) SubmitReview(ctx context.Context, bookID, userID string, req model.SubmitReviewRequest) (model.Review, error) {
	if userID == "" {
		return model.Review{}, errs.ErrAuthRequired
	}
	text := strings.TrimSpace(req.ReviewText)
	switch n := utf8.RuneCountInString(text); {
	case req.Rating < minRating || req.Rating > maxRating:
		return model.Review{}, errs.Invalid(fmt.Sprintf("rating must be between %d and %d", minRating, maxRating))
	case n < s.minTextLength:
		return model.Review{}, errs.Invalid(fmt.Sprintf("review must be at least %d characters", s.minTextLength))
	case n > maxTextLength:
		return model.Review{}, errs.Invalid(fmt.Sprintf("review must be at most %d characters", maxTextLength))
	}
	if err := s.checkBook(ctx, bookID); err != nil {
		return model.Review{}, err
	}

	rv := model.Review{BookID: bookID, UserID: userID, Rating: req.Rating, ReviewText: text}
	_, err := s.repo.GetReview(ctx, bookID, userID)
	switch {
	case err == nil:
		return s.repo.UpdateReview(ctx, rv)
	case !errors.Is(err, errs.ErrNotFound):
		return model.Review{}, err
	}

	created, err := s.repo.InsertReview(ctx, rv)
	if errors.Is(err, errs.ErrInvalidState) {
		// a concurrent submit by the same user won the insert
		return s.repo.UpdateReview(ctx, rv)
	}
	if err != nil {
		return model.Review{}, err
	}
	s.log.Debug("review created", zap.String("book", bookID), zap.String("user", userID))
	return created, nil
}

func (s *Service) ListReviews(ctx context.Context, bookID string) (model.BookReviews, error) {
	if err := s.checkBook(ctx, bookID); err != nil {
		return model.BookReviews{}, err
	}
	items, err := s.repo.ListReviews(ctx, bookID)
	if err != nil {
		return model.BookReviews{}, err
	}
	sum, err := s.repo.ReviewSummary(ctx, bookID)
	if err != nil {
		return model.BookReviews{}, err
	}
	return model.BookReviews{ReviewSummary: sum, Items: items}, nil
}

func (s *Service) Summary(ctx context.Context, bookID string) (model.ReviewSummary, error) {
	if err := s.checkBook(ctx, bookID); err != nil {
		return model.ReviewSummary{}, err
	}
	return s.repo.ReviewSummary(ctx, bookID)
}

func (s *Service) checkBook(ctx context.Context, bookID string) error {
	if _, err := uuid.Parse(bookID); err != nil {
		return errs.NotFound("book")
	}
	_, err := s.repo.GetBook(ctx, bookID)
	return err
}
