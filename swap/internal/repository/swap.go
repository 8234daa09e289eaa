package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/Astemirdum/book-swap-service/swap/internal/errs"
	"github.com/Astemirdum/book-swap-service/swap/internal/model"
)

var swapColumns = []string{
	"id", "requester_id", "owner_id", "book_requested_id", "book_offered_id", "status",
	"created_at", "updated_at", "approved_at", "denied_at", "cancelled_at", "cancel_reason", "completed_at",
}

var historyColumns = []string{
	"id", "swap_id", "user_id", "partner_id", "book_given_id", "book_received_id", "action", "created_at",
}

func (r *repository) InsertSwapRequest(ctx context.Context, swap model.SwapRequest, history []model.SwapHistory) (string, error) {
	if swap.ID == "" {
		swap.ID = uuid.NewString()
	}
	q, args, err := qb.Insert(swapsTableName).
		Columns("id", "requester_id", "owner_id", "book_requested_id", "book_offered_id", "status", "created_at", "updated_at").
		Values(swap.ID, swap.RequesterID, swap.OwnerID, swap.BookRequestedID, swap.BookOfferedID, swap.Status, swap.CreatedAt, swap.CreatedAt).
		ToSql()
	if err != nil {
		return "", err
	}
	for i := range history {
		history[i].SwapID = swap.ID
	}

	err = r.policy.Do(ctx, "InsertSwapRequest", func(ctx context.Context) error {
		return r.withTx(ctx, func(tx *sqlx.Tx) error {
			if _, err := tx.ExecContext(ctx, q, args...); err != nil {
				if uniqueViolation(err, onePendingOfferConstraint) {
					return errs.Invalid("offered book already backs a pending request")
				}
				return err
			}
			return insertHistory(ctx, tx, history)
		})
	})
	if err != nil {
		r.log.Error("InsertSwapRequest", zap.String("requester", swap.RequesterID), zap.Error(err))
		return "", err
	}
	return swap.ID, nil
}

func (r *repository) GetSwapRequest(ctx context.Context, swapID string) (model.SwapRequest, error) {
	q, args, err := qb.Select(swapColumns...).
		From(swapsTableName).
		Where(sq.Eq{"id": swapID}).
		ToSql()
	if err != nil {
		return model.SwapRequest{}, err
	}
	var swap model.SwapRequest
	err = r.policy.Do(ctx, "GetSwapRequest", func(ctx context.Context) error {
		return notFound(r.db.GetContext(ctx, &swap, q, args...), "swap request")
	})
	return swap, err
}

func (r *repository) UpdateSwapStatus(ctx context.Context, upd model.StatusUpdate) (bool, error) {
	q, args, err := statusUpdateQuery(upd).ToSql()
	if err != nil {
		return false, err
	}

	var applied bool
	err = r.policy.Do(ctx, "UpdateSwapStatus", func(ctx context.Context) error {
		return r.withTx(ctx, func(tx *sqlx.Tx) error {
			res, err := tx.ExecContext(ctx, q, args...)
			if err != nil {
				return err
			}
			n, err := res.RowsAffected()
			if err != nil {
				return err
			}
			applied = n == 1
			if !applied {
				return nil
			}
			return insertHistory(ctx, tx, upd.History)
		})
	})
	if err != nil {
		return false, err
	}
	return applied, nil
}

// statusUpdateQuery only matches the row while it is still in upd.Expected.
func statusUpdateQuery(upd model.StatusUpdate) sq.UpdateBuilder {
	set := sq.Eq{
		"status":     upd.Next,
		"updated_at": upd.At,
	}
	switch upd.Next {
	case model.StatusApproved:
		set["approved_at"] = upd.At
	case model.StatusDenied:
		set["denied_at"] = upd.At
	case model.StatusCancelled:
		set["cancelled_at"] = upd.At
		set["cancel_reason"] = upd.CancelReason
	case model.StatusCompleted:
		set["completed_at"] = upd.At
	}
	return qb.Update(swapsTableName).
		SetMap(set).
		Where(sq.Eq{"id": upd.SwapID, "status": upd.Expected})
}

func (r *repository) QuerySwapRequestsForBooks(ctx context.Context, bookIDs []string) ([]model.SwapRequest, error) {
	items := make([]model.SwapRequest, 0)
	if len(bookIDs) == 0 {
		return items, nil
	}
	q, args, err := qb.Select(swapColumns...).
		From(swapsTableName).
		Where(sq.Eq{"book_requested_id": bookIDs}).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	err = r.policy.Do(ctx, "QuerySwapRequestsForBooks", func(ctx context.Context) error {
		return r.db.SelectContext(ctx, &items, q, args...)
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) HasPendingOffer(ctx context.Context, bookOfferedID string) (bool, error) {
	q, args, err := qb.Select("1").
		Prefix("select exists(").
		From(swapsTableName).
		Where(sq.Eq{"book_offered_id": bookOfferedID, "status": model.StatusPending}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, err
	}
	return r.exists(ctx, "HasPendingOffer", q, args)
}

func (r *repository) FindActiveRequest(ctx context.Context, requesterID, bookRequestedID string) (bool, error) {
	q, args, err := qb.Select("1").
		Prefix("select exists(").
		From(swapsTableName).
		Where(sq.Eq{
			"requester_id":      requesterID,
			"book_requested_id": bookRequestedID,
			"status":            []model.Status{model.StatusPending, model.StatusApproved},
		}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, err
	}
	return r.exists(ctx, "FindActiveRequest", q, args)
}

func (r *repository) exists(ctx context.Context, op, q string, args []interface{}) (bool, error) {
	var found bool
	err := r.policy.Do(ctx, op, func(ctx context.Context) error {
		return r.db.GetContext(ctx, &found, q, args...)
	})
	return found, err
}

func (r *repository) ListSwaps(ctx context.Context, filter model.SwapFilter) ([]model.SwapRequest, error) {
	q, args, err := listSwapsQuery(filter).ToSql()
	if err != nil {
		return nil, err
	}
	items := make([]model.SwapRequest, 0)
	err = r.policy.Do(ctx, "ListSwaps", func(ctx context.Context) error {
		return r.db.SelectContext(ctx, &items, q, args...)
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func listSwapsQuery(filter model.SwapFilter) sq.SelectBuilder {
	sb := qb.Select(swapColumns...).From(swapsTableName)
	switch filter.Direction {
	case model.DirectionIncoming:
		sb = sb.Where(sq.Eq{"owner_id": filter.UserID})
	case model.DirectionOutgoing:
		sb = sb.Where(sq.Eq{"requester_id": filter.UserID})
	default:
		sb = sb.Where(sq.Or{sq.Eq{"owner_id": filter.UserID}, sq.Eq{"requester_id": filter.UserID}})
	}
	if filter.Status != "" {
		sb = sb.Where(sq.Eq{"status": filter.Status})
	}
	return sb.OrderBy("created_at desc")
}

func (r *repository) InsertSwapHistory(ctx context.Context, rows []model.SwapHistory) error {
	return r.policy.Do(ctx, "InsertSwapHistory", func(ctx context.Context) error {
		return r.withTx(ctx, func(tx *sqlx.Tx) error {
			return insertHistory(ctx, tx, rows)
		})
	})
}

func (r *repository) ListSwapHistory(ctx context.Context, userID string) ([]model.SwapHistory, error) {
	q, args, err := qb.Select(historyColumns...).
		From(historyTableName).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	items := make([]model.SwapHistory, 0)
	err = r.policy.Do(ctx, "ListSwapHistory", func(ctx context.Context) error {
		return r.db.SelectContext(ctx, &items, q, args...)
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) CompleteSwap(ctx context.Context, swapID, actorID string, clearAvailability bool) (model.CompleteResult, error) {
	q := completeSwapQuery

	var res model.CompleteResult
	err := r.policy.Do(ctx, "CompleteSwap", func(ctx context.Context) error {
		return r.db.GetContext(ctx, &res, q, swapID, actorID, clearAvailability)
	})
	if err != nil {
		r.log.Error("CompleteSwap", zap.String("swap", swapID), zap.Error(err))
		return model.CompleteResult{}, err
	}
	return res, nil
}

const completeSwapQuery = `select r_outcome as outcome, r_status as status, r_completed_at as completed_at from complete_book_swap($1, $2, $3)`

func insertHistory(ctx context.Context, tx *sqlx.Tx, rows []model.SwapHistory) error {
	if len(rows) == 0 {
		return nil
	}
	q, args, err := historyInsertQuery(rows).ToSql()
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, q, args...)
	return err
}

func historyInsertQuery(rows []model.SwapHistory) sq.InsertBuilder {
	ib := qb.Insert(historyTableName).Columns(historyColumns...)
	for _, h := range rows {
		if h.ID == "" {
			h.ID = uuid.NewString()
		}
		ib = ib.Values(h.ID, h.SwapID, h.UserID, h.PartnerID, h.BookGivenID, h.BookReceivedID, h.Action, h.CreatedAt)
	}
	return ib
}
