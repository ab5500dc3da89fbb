package entities

import (
	"github.com/google/uuid"
	"time"
)

type FoodEntry struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Meal  string    `json:"meal"` // "breakfast", "lunch", "dinner", "snack"
	Date  time.Time `json:"date"` // calendar day, no time component
	Image *Image    `json:"image,omitempty"`

	Timestamp
}
