package auth

import (
	"github.com/KirkDiggler/quest-dash/internal/entities"
)

// LoginInput contains credentials typed by the user
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput contains the stored session
type LoginOutput struct {
	Session *entities.Session
}

// RegisterInput contains the account to create
type RegisterInput struct {
	Username        string
	Password        string
	ConfirmPassword string
	IsAdmin         bool
}

// RegisterOutput contains the stored session of the new account
type RegisterOutput struct {
	Session *entities.Session
}
