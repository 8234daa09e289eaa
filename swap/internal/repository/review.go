package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/Astemirdum/book-swap-service/swap/internal/errs"
	"github.com/Astemirdum/book-swap-service/swap/internal/model"
)

var reviewColumns = []string{"id", "book_id", "user_id", "rating", "review_text", "created_at", "updated_at"}

func (r *repository) GetReview(ctx context.Context, bookID, userID string) (model.Review, error) {
	q, args, err := qb.Select(reviewColumns...).
		From(reviewsTableName).
		Where(sq.Eq{"book_id": bookID, "user_id": userID}).
		ToSql()
	if err != nil {
		return model.Review{}, err
	}
	var review model.Review
	err = r.policy.Do(ctx, "GetReview", func(ctx context.Context) error {
		return notFound(r.db.GetContext(ctx, &review, q, args...), "review")
	})
	return review, err
}

func (r *repository) InsertReview(ctx context.Context, review model.Review) (model.Review, error) {
	now := time.Now().UTC()
	q, args, err := qb.Insert(reviewsTableName).
		Columns(reviewColumns...).
		Values(uuid.NewString(), review.BookID, review.UserID, review.Rating, review.ReviewText, now, now).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Review{}, err
	}
	var res model.Review
	err = r.policy.Do(ctx, "InsertReview", func(ctx context.Context) error {
		err := r.db.GetContext(ctx, &res, q, args...)
		if uniqueViolation(err, oneReviewConstraint) {
			return errs.InvalidState("review already exists")
		}
		return err
	})
	return res, err
}

func (r *repository) UpdateReview(ctx context.Context, review model.Review) (model.Review, error) {
	q, args, err := qb.Update(reviewsTableName).
		SetMap(sq.Eq{
			"rating":      review.Rating,
			"review_text": review.ReviewText,
			"updated_at":  time.Now().UTC(),
		}).
		Where(sq.Eq{"book_id": review.BookID, "user_id": review.UserID}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Review{}, err
	}
	var res model.Review
	err = r.policy.Do(ctx, "UpdateReview", func(ctx context.Context) error {
		return notFound(r.db.GetContext(ctx, &res, q, args...), "review")
	})
	return res, err
}

func (r *repository) ListReviews(ctx context.Context, bookID string) ([]model.Review, error) {
	q, args, err := qb.Select(reviewColumns...).
		From(reviewsTableName).
		Where(sq.Eq{"book_id": bookID}).
		OrderBy("updated_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	items := make([]model.Review, 0)
	err = r.policy.Do(ctx, "ListReviews", func(ctx context.Context) error {
		return r.db.SelectContext(ctx, &items, q, args...)
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) ReviewSummary(ctx context.Context, bookID string) (model.ReviewSummary, error) {
	q, args, err := qb.Select("coalesce(avg(rating), 0)::float8 as average_rating", "count(*) as total_count").
		From(reviewsTableName).
		Where(sq.Eq{"book_id": bookID}).
		ToSql()
	if err != nil {
		return model.ReviewSummary{}, err
	}
	var sum model.ReviewSummary
	err = r.policy.Do(ctx, "ReviewSummary", func(ctx context.Context) error {
		return r.db.GetContext(ctx, &sum, q, args...)
	})
	return sum, err
}
