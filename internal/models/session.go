package models

import "github.com/google/uuid"

// Session is issued on login and account creation.
type Session struct {
	UserID uuid.UUID // Authenticated user
	IsTemp bool      // True for cookie-bound temporary accounts
	Token  string    // Signed session token
}
