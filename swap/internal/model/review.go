package model

import "time"

type Review struct {
	ID         string    `json:"id" db:"id"`
	BookID     string    `json:"bookId" db:"book_id"`
	UserID     string    `json:"userId" db:"user_id"`
	Rating     int       `json:"rating" db:"rating"`
	ReviewText string    `json:"reviewText" db:"review_text"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}

type SubmitReviewRequest struct {
	Rating     int    `json:"rating"`
	ReviewText string `json:"reviewText"`
}

type ReviewSummary struct {
	AverageRating float64 `json:"averageRating" db:"average_rating"`
	TotalCount    int     `json:"totalCount" db:"total_count"`
}

type BookReviews struct {
	ReviewSummary `json:",inline"`
	Items         []Review `json:"items"`
}
