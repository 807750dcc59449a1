package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/ive-had-worse/internal/middlewares"
	"github.com/sbilibin2017/ive-had-worse/internal/services"
)

const maxBodyBytes = 64 << 10

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errInvalidBody
	}
	return nil
}

// resolveUserID returns the acting user. A session token fills a missing id
// and must agree with a supplied one.
func resolveUserID(r *http.Request, raw string) (uuid.UUID, error) {
	claims, hasSession := middlewares.SessionFromContext(r.Context())

	raw = strings.TrimSpace(raw)
	if raw == "" {
		if hasSession {
			return claims.UserID, nil
		}
		return uuid.Nil, errUserIDRequired
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, services.ErrInvalidUser
	}
	if hasSession && claims.UserID != userID {
		return uuid.Nil, errSessionMismatch
	}
	return userID, nil
}

func parseStoryID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, errStoryIDRequired
	}

	storyID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, services.ErrStoryNotFound
	}
	return storyID, nil
}

// parseStoryIDs keeps the ids that parse and drops the rest.
func parseStoryIDs(raw []string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		if id, err := uuid.Parse(strings.TrimSpace(s)); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}
