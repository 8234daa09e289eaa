package repository

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/book-swap-service/swap/internal/model"
)

func TestStatusUpdateQuery(t *testing.T) {
	t.Parallel()
	at := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	reason := "changed my mind"

	tests := []struct {
		name     string
		upd      model.StatusUpdate
		wantSQL  string
		wantArgs []interface{}
	}{
		{
			name:     "approve",
			upd:      model.StatusUpdate{SwapID: "s1", Expected: model.StatusPending, Next: model.StatusApproved, At: at},
			wantSQL:  "UPDATE book_swaps SET approved_at = $1, status = $2, updated_at = $3 WHERE id = $4 AND status = $5",
			wantArgs: []interface{}{at, model.StatusApproved, at, "s1", model.StatusPending},
		},
		{
			name:     "deny",
			upd:      model.StatusUpdate{SwapID: "s1", Expected: model.StatusPending, Next: model.StatusDenied, At: at},
			wantSQL:  "UPDATE book_swaps SET denied_at = $1, status = $2, updated_at = $3 WHERE id = $4 AND status = $5",
			wantArgs: []interface{}{at, model.StatusDenied, at, "s1", model.StatusPending},
		},
		{
			name: "cancel keeps the reason",
			upd: model.StatusUpdate{
				SwapID: "s1", Expected: model.StatusPending, Next: model.StatusCancelled, At: at, CancelReason: &reason,
			},
			wantSQL:  "UPDATE book_swaps SET cancel_reason = $1, cancelled_at = $2, status = $3, updated_at = $4 WHERE id = $5 AND status = $6",
			wantArgs: []interface{}{&reason, at, model.StatusCancelled, at, "s1", model.StatusPending},
		},
		{
			name:     "complete",
			upd:      model.StatusUpdate{SwapID: "s1", Expected: model.StatusApproved, Next: model.StatusCompleted, At: at},
			wantSQL:  "UPDATE book_swaps SET completed_at = $1, status = $2, updated_at = $3 WHERE id = $4 AND status = $5",
			wantArgs: []interface{}{at, model.StatusCompleted, at, "s1", model.StatusApproved},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			q, args, err := statusUpdateQuery(tt.upd).ToSql()
			require.NoError(t, err)
			require.Equal(t, tt.wantSQL, q)
			require.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestHistoryInsertQuery(t *testing.T) {
	t.Parallel()
	at := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	rows := []model.SwapHistory{
		{ID: "h1", SwapID: "s1", UserID: "a", PartnerID: "b", BookGivenID: "b1", BookReceivedID: "b2", Action: model.HistoryRequested, CreatedAt: at},
		{SwapID: "s1", UserID: "b", PartnerID: "a", BookGivenID: "b2", BookReceivedID: "b1", Action: model.HistoryReceivedRequest, CreatedAt: at},
	}

	q, args, err := historyInsertQuery(rows).ToSql()
	require.NoError(t, err)
	require.Equal(t,
		"INSERT INTO swap_history (id,swap_id,user_id,partner_id,book_given_id,book_received_id,action,created_at) "+
			"VALUES ($1,$2,$3,$4,$5,$6,$7,$8),($9,$10,$11,$12,$13,$14,$15,$16)", q)
	require.Len(t, args, 16)
	require.Equal(t, []interface{}{"h1", "s1", "a", "b", "b1", "b2", model.HistoryRequested, at}, args[:8])
	require.NotEmpty(t, args[8])
	require.Equal(t, []interface{}{"s1", "b", "a", "b2", "b1", model.HistoryReceivedRequest, at}, args[9:])
}

func TestListSwapsQuery(t *testing.T) {
	t.Parallel()
	selectSwaps := "SELECT " + strings.Join(swapColumns, ", ") + " FROM book_swaps WHERE "

	tests := []struct {
		name     string
		filter   model.SwapFilter
		wantSQL  string
		wantArgs []interface{}
	}{
		{
			name:     "incoming",
			filter:   model.SwapFilter{UserID: "u1", Direction: model.DirectionIncoming},
			wantSQL:  selectSwaps + "owner_id = $1 ORDER BY created_at desc",
			wantArgs: []interface{}{"u1"},
		},
		{
			name:     "outgoing with status",
			filter:   model.SwapFilter{UserID: "u1", Direction: model.DirectionOutgoing, Status: model.StatusPending},
			wantSQL:  selectSwaps + "requester_id = $1 AND status = $2 ORDER BY created_at desc",
			wantArgs: []interface{}{"u1", model.StatusPending},
		},
		{
			name:     "all",
			filter:   model.SwapFilter{UserID: "u1", Direction: model.DirectionAll},
			wantSQL:  selectSwaps + "(owner_id = $1 OR requester_id = $2) ORDER BY created_at desc",
			wantArgs: []interface{}{"u1", "u1"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			q, args, err := listSwapsQuery(tt.filter).ToSql()
			require.NoError(t, err)
			require.Equal(t, tt.wantSQL, q)
			require.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestListBooksQuery(t *testing.T) {
	t.Parallel()
	selectBooks := "SELECT " + strings.Join(bookColumns, ", ") + " FROM books"

	tests := []struct {
		name     string
		filter   model.BookFilter
		wantSQL  string
		wantArgs []interface{}
	}{
		{
			name:    "no filter",
			wantSQL: selectBooks + " ORDER BY created_at desc, id",
		},
		{
			name:     "browse available from others",
			filter:   model.BookFilter{ExcludeOwnerID: "u1", AvailableOnly: true, Limit: 25},
			wantSQL:  selectBooks + " WHERE owner_id <> $1 AND available_for_swap = $2 ORDER BY created_at desc, id LIMIT 25",
			wantArgs: []interface{}{"u1", true},
		},
		{
			name:     "ids of one owner",
			filter:   model.BookFilter{IDs: []string{"b1", "b2"}, OwnerID: "u1"},
			wantSQL:  selectBooks + " WHERE id IN ($1,$2) AND owner_id = $3 ORDER BY created_at desc, id",
			wantArgs: []interface{}{"b1", "b2", "u1"},
		},
		{
			name:    "empty ids match nothing",
			filter:  model.BookFilter{IDs: []string{}},
			wantSQL: selectBooks + " WHERE (1=0) ORDER BY created_at desc, id",
		},
		{
			name:    "missing cover",
			filter:  model.BookFilter{MissingCover: true},
			wantSQL: selectBooks + " WHERE (cover_url IS NULL AND isbn IS NOT NULL) ORDER BY created_at desc, id",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			q, args, err := listBooksQuery(tt.filter).ToSql()
			require.NoError(t, err)
			require.Equal(t, tt.wantSQL, q)
			if tt.wantArgs == nil {
				require.Empty(t, args)
				return
			}
			require.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestCompleteSwapQuery(t *testing.T) {
	t.Parallel()
	require.Contains(t, completeSwapQuery, "from complete_book_swap($1, $2, $3)")
	for _, col := range []string{"as outcome", "as status", "as completed_at"} {
		require.Contains(t, completeSwapQuery, col)
	}
}
