package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"id"`                 // Primary key
	Email        *string   `json:"email" db:"email"`           // Unique email, nil for temporary accounts
	PasswordHash *string   `json:"-" db:"password_hash"`       // bcrypt hash, nil for temporary accounts
	IsTemp       bool      `json:"is_temp" db:"is_temp"`       // True until the account is registered
	CookieID     *string   `json:"cookie_id" db:"cookie_id"`   // Client-side token the temporary account is bound to
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// HasPassword reports whether the user can authenticate with a password.
func (u *UserDB) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}
