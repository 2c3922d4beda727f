package services

import "errors"

// Shared service-layer errors, mapped to HTTP statuses in handlers.
var (
	ErrMatchNotFound    = errors.New("match not found")
	ErrTeamNotFound     = errors.New("team not found")
	ErrGroupNotFound    = errors.New("group not found")
	ErrDivisionNotFound = errors.New("division not found")
	ErrClubNotFound     = errors.New("club not found")
	ErrPlayerNotFound   = errors.New("player not found")

	ErrValidationFailed       = errors.New("validation failed")
	ErrWalkoverWinnerRequired = errors.New("walkover result requires a winner")

	ErrAuthInvalidCredentials = errors.New("invalid email or password")
	ErrAuthEmailTaken         = errors.New("email is already taken")

	ErrCrestStorageDisabled = errors.New("crest storage is not configured")
	ErrUnsupportedImageType = errors.New("unsupported image content type")
)
