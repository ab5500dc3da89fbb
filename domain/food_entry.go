package domain

import (
	"errors"
	"time"

	"foodtracker/entities"
)

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"

	DateLayout = "2006-01-02"
)

var (
	MessageSuccessAddEntry    = "food entry added successfully"
	MessageSuccessUpdateEntry = "food entry updated successfully"
	MessageSuccessDeleteEntry = "food entry deleted successfully"
	MessageSuccessGetEntries  = "food entries retrieved successfully"

	MessageFailedAddEntry    = "failed to add food entry"
	MessageFailedUpdateEntry = "failed to update food entry"
	MessageFailedDeleteEntry = "failed to delete food entry"
	MessageFailedGetEntries  = "failed to retrieve food entries"

	ErrEntryNotFound = errors.New("food entry not found")
	ErrInvalidDate   = errors.New("invalid entry date")
	ErrInvalidMeal   = errors.New("invalid meal slot")
)

type (
	FoodEntryDraft struct {
		Name  string          `json:"name" validate:"required"`
		Meal  string          `json:"meal" validate:"required,oneof=breakfast lunch dinner snack"`
		Date  string          `json:"date" validate:"required"`
		Image *entities.Image `json:"image,omitempty"`
	}

	FoodEntryResponse struct {
		ID        string          `json:"id"`
		Name      string          `json:"name"`
		Meal      string          `json:"meal"`
		Date      string          `json:"date"`
		Image     *entities.Image `json:"image,omitempty"`
		CreatedAt time.Time       `json:"created_at"`
	}
)
