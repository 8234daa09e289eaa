package model

import (
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusDenied    Status = "denied"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// transitions lists the allowed successors of every status.
var transitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusDenied, StatusCancelled},
	StatusApproved: {StatusCompleted},
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDenied, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

func (s Status) Terminal() bool {
	return s.Valid() && len(transitions[s]) == 0
}

func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type SwapRequest struct {
	ID              string     `json:"id" db:"id"`
	RequesterID     string     `json:"requesterId" db:"requester_id"`
	OwnerID         string     `json:"ownerId" db:"owner_id"`
	BookRequestedID string     `json:"bookRequestedId" db:"book_requested_id"`
	BookOfferedID   string     `json:"bookOfferedId" db:"book_offered_id"`
	Status          Status     `json:"status" db:"status"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time  `json:"updatedAt" db:"updated_at"`
	ApprovedAt      *time.Time `json:"approvedAt,omitempty" db:"approved_at"`
	DeniedAt        *time.Time `json:"deniedAt,omitempty" db:"denied_at"`
	CancelledAt     *time.Time `json:"cancelledAt,omitempty" db:"cancelled_at"`
	CancelReason    *string    `json:"cancelReason,omitempty" db:"cancel_reason"`
	CompletedAt     *time.Time `json:"completedAt,omitempty" db:"completed_at"`
}

func (s SwapRequest) IsParticipant(userID string) bool {
	return userID != "" && (s.RequesterID == userID || s.OwnerID == userID)
}

// Counterpart returns the other participant of the swap.
func (s SwapRequest) Counterpart(userID string) string {
	if s.RequesterID == userID {
		return s.OwnerID
	}
	return s.RequesterID
}

type CreateSwapRequest struct {
	BookRequestedID string `json:"bookRequestedId" validate:"required,uuid"`
	BookOfferedID   string `json:"bookOfferedId" validate:"required,uuid"`
}

type CancelSwapRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

type Action string

const (
	ActionApprove Action = "approve"
	ActionDeny    Action = "deny"
)

// StatusUpdate is a conditional transition: it applies only while the row is still in Expected.
type StatusUpdate struct {
	SwapID       string
	Expected     Status
	Next         Status
	At           time.Time
	CancelReason *string
	// History rows are written in the same transaction when the update applies.
	History []SwapHistory
}

type Direction string

const (
	DirectionIncoming Direction = "incoming"
	DirectionOutgoing Direction = "outgoing"
	DirectionAll      Direction = "all"
)

type SwapFilter struct {
	UserID    string
	Direction Direction
	Status    Status
}

type CompleteOutcome string

const (
	CompleteOK           CompleteOutcome = "ok"
	CompleteNotFound     CompleteOutcome = "not_found"
	CompleteForbidden    CompleteOutcome = "forbidden"
	CompleteInvalidState CompleteOutcome = "invalid_state"
)

type CompleteResult struct {
	Outcome     CompleteOutcome `db:"outcome"`
	Status      Status          `db:"status"`
	CompletedAt *time.Time      `db:"completed_at"`
}

type ButtonState string

const (
	StateNotAvailable  ButtonState = "not-available"
	StateCanRequest    ButtonState = "can-request"
	StateSwapRequested ButtonState = "swap-requested"
	StateSwapApproved  ButtonState = "swap-approved"
	StateSwapDenied    ButtonState = "swap-denied"
	StateSwapCompleted ButtonState = "swap-completed"
)

type BookWithSwapInfo struct {
	Book
	ViewerSwap  *SwapRequest `json:"viewerSwap,omitempty"`
	ViewerState ButtonState  `json:"viewerState"`
}
