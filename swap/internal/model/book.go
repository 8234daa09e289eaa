package model

import (
	"sort"
	"strings"
	"time"

	"github.com/lib/pq"
)

type Condition string

const (
	ConditionNew     Condition = "new"
	ConditionLikeNew Condition = "like_new"
	ConditionGood    Condition = "good"
	ConditionFair    Condition = "fair"
	ConditionPoor    Condition = "poor"
)

type Book struct {
	ID               string         `json:"id" db:"id"`
	Title            string         `json:"title" db:"title"`
	Author           string         `json:"author" db:"author"`
	ISBN             *string        `json:"isbn,omitempty" db:"isbn"`
	Genres           pq.StringArray `json:"genres" db:"genres"`
	Description      *string        `json:"description,omitempty" db:"description"`
	Condition        Condition      `json:"condition" db:"condition"`
	OwnerID          string         `json:"ownerId" db:"owner_id"`
	Location         string         `json:"location" db:"location"`
	AvailableForSwap bool           `json:"availableForSwap" db:"available_for_swap"`
	CoverURL         *string        `json:"coverUrl,omitempty" db:"cover_url"`
	CreatedAt        time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time      `json:"updatedAt" db:"updated_at"`
}

type CreateBookRequest struct {
	Title       string    `json:"title" validate:"required,max=300"`
	Author      string    `json:"author" validate:"required,max=300"`
	ISBN        *string   `json:"isbn" validate:"omitempty,isbn_digits"`
	Genres      []string  `json:"genres" validate:"max=10,dive,required,max=50"`
	Description *string   `json:"description" validate:"omitempty,max=2000"`
	Condition   Condition `json:"condition" validate:"required,oneof=new like_new good fair poor"`
	Location    string    `json:"location" validate:"required,max=200"`
	// AvailableForSwap defaults to true when omitted.
	AvailableForSwap *bool `json:"availableForSwap"`
}

type UpdateDescriptionRequest struct {
	Description string `json:"description" validate:"max=2000"`
}

type SetAvailabilityRequest struct {
	Available *bool `json:"available" validate:"required"`
}

// BookFilter narrows ListBooks. Zero values mean "no constraint".
type BookFilter struct {
	IDs            []string
	OwnerID        string
	ExcludeOwnerID string
	AvailableOnly  bool
	MissingCover   bool
	Limit          int
}

// NormalizeGenres trims, lower-cases and de-duplicates genres, keeping a stable order.
func NormalizeGenres(genres []string) pq.StringArray {
	seen := make(map[string]struct{}, len(genres))
	out := make(pq.StringArray, 0, len(genres))
	for _, g := range genres {
		g = strings.ToLower(strings.TrimSpace(g))
		if g == "" {
			continue
		}
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		out = append(out, g)
	}
	sort.Strings(out)
	return out
}
