package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/ive-had-worse/internal/logger"
	"github.com/sbilibin2017/ive-had-worse/internal/services"
)

// Error codes returned in ErrorResponse.Error.
const (
	CodeUserIDRequired          = "user_id_required"
	CodeStoryIDRequired         = "story_id_required"
	CodeInvalidEmail            = "invalid_email"
	CodePasswordRequired        = "password_required"
	CodeCurrentPasswordRequired = "current_password_required"
	CodeEmailTaken              = "email_taken"
	CodeWrongPassword           = "wrong_password"
	CodeNewPasswordTooShort     = "new_password_too_short"
	CodeInvalidUser             = "invalid_user"
	CodeSignInRequired          = "sign_in_required"
	CodeNotYourStory            = "not_your_story"
	CodeStoryNotFound           = "story_not_found"
	CodeInvalidVote             = "invalid_vote"
	CodeTextRequired            = "text_required"
	CodeTextTooLong             = "text_too_long"
	CodeInvalidCredentials      = "invalid_credentials"
	CodeInvalidRequest          = "invalid_request"
	CodeFailedToLoad            = "failed_to_load"
)

// Request level errors detected before a service is called.
var (
	errUserIDRequired  = errors.New("user id required")
	errStoryIDRequired = errors.New("story id required")
	errSessionMismatch = errors.New("user id does not match session")
	errInvalidBody     = errors.New("invalid request body")
)

var errorTable = []struct {
	err    error
	status int
	code   string
}{
	{errUserIDRequired, http.StatusBadRequest, CodeUserIDRequired},
	{errStoryIDRequired, http.StatusBadRequest, CodeStoryIDRequired},
	{errSessionMismatch, http.StatusUnauthorized, CodeInvalidCredentials},
	{errInvalidBody, http.StatusBadRequest, CodeInvalidRequest},
	{services.ErrInvalidRequest, http.StatusBadRequest, CodeInvalidRequest},
	{services.ErrInvalidEmail, http.StatusBadRequest, CodeInvalidEmail},
	{services.ErrPasswordRequired, http.StatusBadRequest, CodePasswordRequired},
	{services.ErrCurrentPasswordRequired, http.StatusBadRequest, CodeCurrentPasswordRequired},
	{services.ErrNewPasswordTooShort, http.StatusBadRequest, CodeNewPasswordTooShort},
	{services.ErrEmailTaken, http.StatusConflict, CodeEmailTaken},
	{services.ErrInvalidCredentials, http.StatusUnauthorized, CodeInvalidCredentials},
	{services.ErrWrongPassword, http.StatusUnauthorized, CodeWrongPassword},
	{services.ErrInvalidUser, http.StatusBadRequest, CodeInvalidUser},
	{services.ErrSignInRequired, http.StatusForbidden, CodeSignInRequired},
	{services.ErrTextRequired, http.StatusBadRequest, CodeTextRequired},
	{services.ErrTextTooLong, http.StatusBadRequest, CodeTextTooLong},
	{services.ErrStoryNotFound, http.StatusNotFound, CodeStoryNotFound},
	{services.ErrNotYourStory, http.StatusForbidden, CodeNotYourStory},
	{services.ErrInvalidVote, http.StatusBadRequest, CodeInvalidVote},
}

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Always false
	// default: false
	Success bool `json:"success"`

	// Error code
	// default: invalid_request
	Error string `json:"error"`
}

// SuccessResponse is the body of requests that return no payload
// swagger:model SuccessResponse
type SuccessResponse struct {
	// Always true
	// default: true
	Success bool `json:"success"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, ErrorResponse{Success: false, Error: code})
}

// writeServiceError maps err to its status and code. Errors missing from the
// table are logged and answered with the fallback.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallbackStatus int, fallbackCode string) {
	for _, e := range errorTable {
		if errors.Is(err, e.err) {
			writeError(w, e.status, e.code)
			return
		}
	}

	logger.FromContext(r.Context()).Errorw("unexpected error", "path", r.URL.Path, "error", err)
	writeError(w, fallbackStatus, fallbackCode)
}

// writeFailure answers like every mutating endpoint: unknown errors become
// 400 invalid_request.
func writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	writeServiceError(w, r, err, http.StatusBadRequest, CodeInvalidRequest)
}
