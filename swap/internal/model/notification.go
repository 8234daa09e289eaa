package model

import "time"

type NotificationType string

const (
	NotifSwapRequest   NotificationType = "swap_request"
	NotifSwapApproved  NotificationType = "swap_approved"
	NotifSwapDenied    NotificationType = "swap_denied"
	NotifSwapCancelled NotificationType = "swap_cancelled"
	NotifSwapCompleted NotificationType = "swap_completed"
)

type Notification struct {
	ID            string           `json:"id" db:"id"`
	UserID        string           `json:"userId" db:"user_id"`
	Type          NotificationType `json:"type" db:"type"`
	Title         string           `json:"title" db:"title"`
	Message       string           `json:"message" db:"message"`
	RelatedSwapID *string          `json:"relatedSwapId,omitempty" db:"related_swap_id"`
	ReadAt        *time.Time       `json:"readAt,omitempty" db:"read_at"`
	CreatedAt     time.Time        `json:"createdAt" db:"created_at"`
}

type UnreadCount struct {
	Count int `json:"count"`
}
