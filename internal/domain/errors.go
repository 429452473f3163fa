package domain

import "errors"

var (
	ErrQuestionnaireNotFound = errors.New("questionnaire not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrSessionNotFound       = errors.New("session not found")
	ErrEmailTaken            = errors.New("email already registered")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrInvalidSession        = errors.New("invalid session")
	ErrNotOwner              = errors.New("questionnaire belongs to another user")
)
