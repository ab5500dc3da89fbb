package domain

import (
	"errors"

	"foodtracker/entities"
)

const (
	GenderMale        = "male"
	GenderFemale      = "female"
	GenderUnspecified = "unspecified"
)

var (
	MessageSuccessSaveProfile = "profile saved successfully"
	MessageFailedSaveProfile  = "failed to save profile"
	MessageFailedGetProfile   = "failed to retrieve profile"

	ErrProfileNotFound = errors.New("user profile not found")
)

type (
	UserProfileDraft struct {
		Name   string          `json:"name" validate:"required"`
		Email  string          `json:"email" validate:"required,email"`
		Gender string          `json:"gender" validate:"required,oneof=male female unspecified"`
		Image  *entities.Image `json:"image,omitempty"`
	}

	UserProfileResponse struct {
		Name   string          `json:"name"`
		Email  string          `json:"email"`
		Gender string          `json:"gender"`
		Image  *entities.Image `json:"image,omitempty"`
	}
)
