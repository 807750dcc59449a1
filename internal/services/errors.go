package services

import "errors"

// Validation and business errors returned by the services.
var (
	ErrInvalidRequest          = errors.New("invalid request")
	ErrInvalidEmail            = errors.New("invalid email")
	ErrPasswordRequired        = errors.New("password required")
	ErrCurrentPasswordRequired = errors.New("current password required")
	ErrNewPasswordTooShort     = errors.New("new password too short")
	ErrEmailTaken              = errors.New("email already taken")
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrWrongPassword           = errors.New("wrong password")
	ErrInvalidUser             = errors.New("invalid user")
	ErrSignInRequired          = errors.New("sign in required")
	ErrTextRequired            = errors.New("text required")
	ErrTextTooLong             = errors.New("text too long")
	ErrStoryNotFound           = errors.New("story not found")
	ErrNotYourStory            = errors.New("not your story")
	ErrInvalidVote             = errors.New("invalid vote")
)
