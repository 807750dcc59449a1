package middlewares

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/ive-had-worse/internal/logger"
)

// Error codes written by the middlewares.
const (
	codeInvalidRequest     = "invalid_request"
	codeInvalidCredentials = "invalid_credentials"
	codeRateLimited        = "rate_limited"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorResponse{Success: false, Error: code}); err != nil {
		logger.Log.Errorw("failed to encode error response", "error", err)
	}
}
