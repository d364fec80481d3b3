package models

import (
	"time"

	"github.com/google/uuid"
)

type Meal struct {
	ID          uuid.UUID `json:"id" example:"a1b2c3d4-e5f6-7890-1234-567890abcdef"`
	SessionID   string    `json:"session_id" example:"V1StGXR8_Z5jdHi6B-myT"`
	Title       string    `json:"title" example:"Croissant"`
	Description string    `json:"description" example:"A chicken croissant"`
	CreatedAt   time.Time `json:"created_at"`
	Diet        bool      `json:"diet" example:"false"`
}

// MealSummary holds the aggregate counts for one session's meals.
type MealSummary struct {
	Total   int64 `json:"total" example:"3"`
	Diet    int64 `json:"diet" example:"2"`
	NonDiet int64 `json:"nonDiet" example:"1"`
}
