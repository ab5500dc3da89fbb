package domain

import "errors"

var (
	ErrEmptyImage         = errors.New("selected image file is empty")
	ErrImageTooLarge      = errors.New("selected image file is too large")
	ErrInvalidImageFormat = errors.New("invalid image format")
)
