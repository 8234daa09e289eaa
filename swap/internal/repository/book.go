package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Astemirdum/book-swap-service/swap/internal/model"
)

var bookColumns = []string{
	"id", "title", "author", "isbn", "genres", "description", "condition",
	"owner_id", "location", "available_for_swap", "cover_url", "created_at", "updated_at",
}

func (r *repository) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	now := time.Now().UTC()
	q, args, err := qb.Insert(booksTableName).
		Columns(bookColumns...).
		Values(uuid.NewString(), book.Title, book.Author, book.ISBN, book.Genres, book.Description, book.Condition,
			book.OwnerID, book.Location, book.AvailableForSwap, book.CoverURL, now, now).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var res model.Book
	err = r.policy.Do(ctx, "CreateBook", func(ctx context.Context) error {
		return r.db.GetContext(ctx, &res, q, args...)
	})
	if err != nil {
		r.log.Error("CreateBook", zap.String("q", q), zap.Error(err))
		return model.Book{}, err
	}
	return res, nil
}

func (r *repository) GetBook(ctx context.Context, bookID string) (model.Book, error) {
	q, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"id": bookID}).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	err = r.policy.Do(ctx, "GetBook", func(ctx context.Context) error {
		return notFound(r.db.GetContext(ctx, &book, q, args...), "book")
	})
	return book, err
}

func (r *repository) ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	q, args, err := listBooksQuery(filter).ToSql()
	if err != nil {
		return nil, err
	}
	items := make([]model.Book, 0)
	err = r.policy.Do(ctx, "ListBooks", func(ctx context.Context) error {
		return r.db.SelectContext(ctx, &items, q, args...)
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func listBooksQuery(filter model.BookFilter) sq.SelectBuilder {
	sb := qb.Select(bookColumns...).From(booksTableName)
	if filter.IDs != nil {
		sb = sb.Where(sq.Eq{"id": filter.IDs})
	}
	if filter.OwnerID != "" {
		sb = sb.Where(sq.Eq{"owner_id": filter.OwnerID})
	}
	if filter.ExcludeOwnerID != "" {
		sb = sb.Where(sq.NotEq{"owner_id": filter.ExcludeOwnerID})
	}
	if filter.AvailableOnly {
		sb = sb.Where(sq.Eq{"available_for_swap": true})
	}
	if filter.MissingCover {
		sb = sb.Where(sq.And{sq.Eq{"cover_url": nil}, sq.NotEq{"isbn": nil}})
	}
	sb = sb.OrderBy("created_at desc", "id")
	if filter.Limit > 0 {
		sb = sb.Limit(uint64(filter.Limit))
	}
	return sb
}

func (r *repository) UpdateDescription(ctx context.Context, bookID string, description *string) (model.Book, error) {
	return r.updateBook(ctx, "UpdateDescription", bookID, sq.Eq{"description": description})
}

func (r *repository) SetAvailability(ctx context.Context, bookID string, available bool) (model.Book, error) {
	return r.updateBook(ctx, "SetAvailability", bookID, sq.Eq{"available_for_swap": available})
}

func (r *repository) SetCoverURL(ctx context.Context, bookID, coverURL string) error {
	_, err := r.updateBook(ctx, "SetCoverURL", bookID, sq.Eq{"cover_url": coverURL})
	return err
}

func (r *repository) updateBook(ctx context.Context, op, bookID string, set sq.Eq) (model.Book, error) {
	set["updated_at"] = time.Now().UTC()
	q, args, err := qb.Update(booksTableName).
		SetMap(set).
		Where(sq.Eq{"id": bookID}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	err = r.policy.Do(ctx, op, func(ctx context.Context) error {
		return notFound(r.db.GetContext(ctx, &book, q, args...), "book")
	})
	return book, err
}
