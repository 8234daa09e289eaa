package model

import "time"

type HistoryAction string

const (
	HistoryRequested        HistoryAction = "requested"
	HistoryReceivedRequest  HistoryAction = "received_request"
	HistoryApproved         HistoryAction = "approved"
	HistoryRequestApproved  HistoryAction = "request_approved"
	HistoryDenied           HistoryAction = "denied"
	HistoryRequestDenied    HistoryAction = "request_denied"
	HistoryCancelled        HistoryAction = "cancelled"
	HistoryRequestCancelled HistoryAction = "request_cancelled"
	HistoryCompleted        HistoryAction = "completed"
)

type SwapHistory struct {
	ID             string        `json:"id" db:"id"`
	SwapID         string        `json:"swapId" db:"swap_id"`
	UserID         string        `json:"userId" db:"user_id"`
	PartnerID      string        `json:"partnerId" db:"partner_id"`
	BookGivenID    string        `json:"bookGivenId" db:"book_given_id"`
	BookReceivedID string        `json:"bookReceivedId" db:"book_received_id"`
	Action         HistoryAction `json:"action" db:"action"`
	CreatedAt      time.Time     `json:"createdAt" db:"created_at"`
}

// HistoryPair builds the two per-participant rows of one lifecycle event.
func HistoryPair(s SwapRequest, requesterAction, ownerAction HistoryAction, at time.Time) []SwapHistory {
	return []SwapHistory{
		{
			SwapID:         s.ID,
			UserID:         s.RequesterID,
			PartnerID:      s.OwnerID,
			BookGivenID:    s.BookOfferedID,
			BookReceivedID: s.BookRequestedID,
			Action:         requesterAction,
			CreatedAt:      at,
		},
		{
			SwapID:         s.ID,
			UserID:         s.OwnerID,
			PartnerID:      s.RequesterID,
			BookGivenID:    s.BookRequestedID,
			BookReceivedID: s.BookOfferedID,
			Action:         ownerAction,
			CreatedAt:      at,
		},
	}
}
