package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/book-swap-service/swap/internal/model"
)

var allStatuses = []model.Status{
	model.StatusPending, model.StatusApproved, model.StatusDenied, model.StatusCancelled, model.StatusCompleted,
}

func TestCanTransition(t *testing.T) {
	t.Parallel()
	allowed := map[model.Status]map[model.Status]bool{
		model.StatusPending:  {model.StatusApproved: true, model.StatusDenied: true, model.StatusCancelled: true},
		model.StatusApproved: {model.StatusCompleted: true},
	}
	for _, from := range allStatuses {
		for _, to := range allStatuses {
			require.Equal(t, allowed[from][to], model.CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestStatus_Terminal(t *testing.T) {
	t.Parallel()
	require.False(t, model.StatusPending.Terminal())
	require.False(t, model.StatusApproved.Terminal())
	require.True(t, model.StatusDenied.Terminal())
	require.True(t, model.StatusCancelled.Terminal())
	require.True(t, model.StatusCompleted.Terminal())
	require.False(t, model.Status("bogus").Terminal())
	require.False(t, model.Status("bogus").Valid())
}

func TestHistoryPair(t *testing.T) {
	t.Parallel()
	at := time.Now()
	s := model.SwapRequest{ID: "s", RequesterID: "a", OwnerID: "b", BookOfferedID: "o", BookRequestedID: "r"}
	rows := model.HistoryPair(s, model.HistoryRequested, model.HistoryReceivedRequest, at)
	require.Len(t, rows, 2)

	require.Equal(t, model.SwapHistory{
		SwapID: "s", UserID: "a", PartnerID: "b", BookGivenID: "o", BookReceivedID: "r",
		Action: model.HistoryRequested, CreatedAt: at,
	}, rows[0])
	require.Equal(t, model.SwapHistory{
		SwapID: "s", UserID: "b", PartnerID: "a", BookGivenID: "r", BookReceivedID: "o",
		Action: model.HistoryReceivedRequest, CreatedAt: at,
	}, rows[1])
}

func TestNormalizeGenres(t *testing.T) {
	t.Parallel()
	got := model.NormalizeGenres([]string{" Fantasy", "sci-fi", "fantasy", "", "Classics "})
	require.Equal(t, []string{"classics", "fantasy", "sci-fi"}, []string(got))
}

func TestSwapRequest_Participants(t *testing.T) {
	t.Parallel()
	s := model.SwapRequest{RequesterID: "a", OwnerID: "b"}
	require.True(t, s.IsParticipant("a"))
	require.True(t, s.IsParticipant("b"))
	require.False(t, s.IsParticipant("c"))
	require.False(t, s.IsParticipant(""))
	require.Equal(t, "b", s.Counterpart("a"))
	require.Equal(t, "a", s.Counterpart("b"))
}
