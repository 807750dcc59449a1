package handlers

//go:generate mockgen -source=account.go -destination=mock_account.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/ive-had-worse/internal/models"
)

// AccountCreator defines the interface that the account service must implement for registration.
type AccountCreator interface {
	CreateAccount(ctx context.Context, email, password, cookieID string) (*models.Session, error)
}

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password, cookieID string) (*models.Session, error)
}

// PasswordChanger defines the interface that the password service must implement.
type PasswordChanger interface {
	ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error
}

// CreateAccountRequest represents the JSON body for account creation
// swagger:model CreateAccountRequest
type CreateAccountRequest struct {
	// Email
	// required: true
	// default: jane@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Cookie of the temporary account to promote
	// default: 3f1c7e4e-cookie
	CookieID string `json:"cookieId"`
}

// LoginRequest represents the JSON body for login, either email and password or a bare cookie
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// default: jane@example.com
	Email string `json:"email"`

	// Password
	// default: secret123
	Password string `json:"password"`

	// Cookie of a temporary account
	// default: 3f1c7e4e-cookie
	CookieID string `json:"cookieId"`
}

// SessionResponse represents a successful login or registration
// swagger:model SessionResponse
type SessionResponse struct {
	// Always true
	Success bool `json:"success"`

	// User ID
	UserID uuid.UUID `json:"userId"`

	// True for cookie-bound temporary accounts
	IsTempAccount bool `json:"isTempAccount"`

	// Session token for the Authorization header
	Token string `json:"token"`
}

// ChangePasswordRequest represents the JSON body for a password change
// swagger:model ChangePasswordRequest
type ChangePasswordRequest struct {
	// User ID, optional with a session token
	UserID string `json:"userId"`

	// Current password
	// required: true
	CurrentPassword string `json:"currentPassword"`

	// New password, at least 6 characters
	// required: true
	NewPassword string `json:"newPassword"`
}

func newSessionResponse(s *models.Session) SessionResponse {
	return SessionResponse{
		Success:       true,
		UserID:        s.UserID,
		IsTempAccount: s.IsTemp,
		Token:         s.Token,
	}
}

// NewCreateAccountHandler returns an HTTP handler for account creation.
// @Summary Create an account
// @Description Registers a permanent account. A temporary account bound to cookieId is promoted instead of creating a new user.
// @Tags account
// @Accept json
// @Produce json
// @Param request body handlers.CreateAccountRequest true "Account creation request"
// @Success 200 {object} handlers.SessionResponse "Account created"
// @Failure 400 {object} handlers.ErrorResponse "invalid_email / password_required / invalid_request"
// @Failure 409 {object} handlers.ErrorResponse "email_taken"
// @Router /create-account [post]
func NewCreateAccountHandler(svc AccountCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateAccountRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeFailure(w, r, err)
			return
		}

		session, err := svc.CreateAccount(r.Context(), req.Email, req.Password, req.CookieID)
		if err != nil {
			writeFailure(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, newSessionResponse(session))
	}
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary Log in
// @Description Authenticates by email and password, or finds-or-creates the temporary account bound to cookieId.
// @Tags account
// @Accept json
// @Produce json
// @Param request body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.SessionResponse "Logged in"
// @Failure 400 {object} handlers.ErrorResponse "password_required / invalid_request"
// @Failure 401 {object} handlers.ErrorResponse "invalid_credentials"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeFailure(w, r, err)
			return
		}

		session, err := svc.Login(r.Context(), req.Email, req.Password, req.CookieID)
		if err != nil {
			writeFailure(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, newSessionResponse(session))
	}
}

// NewChangePasswordHandler returns an HTTP handler for password changes.
// @Summary Change password
// @Description Replaces the password of a permanent account after checking the current one.
// @Tags account
// @Accept json
// @Produce json
// @Param request body handlers.ChangePasswordRequest true "Password change request"
// @Success 200 {object} handlers.SuccessResponse "Password changed"
// @Failure 400 {object} handlers.ErrorResponse "user_id_required / current_password_required / new_password_too_short / invalid_user"
// @Failure 401 {object} handlers.ErrorResponse "wrong_password / invalid_credentials"
// @Router /change-password [post]
// @Security BearerAuth
func NewChangePasswordHandler(svc PasswordChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ChangePasswordRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeFailure(w, r, err)
			return
		}

		userID, err := resolveUserID(r, req.UserID)
		if err != nil {
			writeFailure(w, r, err)
			return
		}

		if err := svc.ChangePassword(r.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
			writeFailure(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
	}
}
