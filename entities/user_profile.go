package entities

import (
	"github.com/google/uuid"
)

type UserProfile struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Gender       string    `json:"gender"` // "male", "female", "unspecified"
	ProfileImage *Image    `json:"profile_image,omitempty"`

	Timestamp
}
