package handlers

//go:generate mockgen -source=vote.go -destination=mock_vote.go -package=handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/ive-had-worse/internal/models"
)

// VoteCaster defines the interface that the vote service must implement.
type VoteCaster interface {
	Cast(ctx context.Context, userID, storyID uuid.UUID, vote models.VoteValue) (*models.VoteResult, error)
}

// LeaderboardReader defines the interface that the leaderboard service must implement.
type LeaderboardReader interface {
	Top(ctx context.Context, viewer *uuid.UUID) ([]models.LeaderboardEntry, error)
}

// VoteRequest represents the JSON body for casting a vote
// swagger:model VoteRequest
type VoteRequest struct {
	// User ID, optional with a session token
	UserID string `json:"userId"`

	// Story ID
	// required: true
	StoryID string `json:"storyId"`

	// Vote value
	// required: true
	// enum: sucks,ive_had_worse
	// default: sucks
	Vote string `json:"vote"`
}

// VoteResponse represents the outcome of a vote
// swagger:model VoteResponse
type VoteResponse struct {
	Success          bool             `json:"success"`
	Vote             models.VoteValue `json:"vote"`
	Changed          bool             `json:"changed"`
	ThatsBadCount    int              `json:"thatsBadCount"`
	IveHadWorseCount int              `json:"iveHadWorseCount"`
}

// LeaderboardEntry is a ranked story
// swagger:model LeaderboardEntry
type LeaderboardEntry struct {
	Rank             int       `json:"rank"`
	StoryID          uuid.UUID `json:"storyId"`
	Text             string    `json:"text"`
	StoryName        *string   `json:"storyName"`
	ThatsBadCount    int       `json:"thatsBadCount"`
	IveHadWorseCount int       `json:"iveHadWorseCount"`
}

// ViewerLeaderboardEntry is a ranked story with the viewer's vote, null when
// the viewer has not voted on it
// swagger:model ViewerLeaderboardEntry
type ViewerLeaderboardEntry struct {
	LeaderboardEntry
	Vote *models.VoteValue `json:"vote"`
}

// LeaderboardResponse represents the leaderboard. Entries hold
// ViewerLeaderboardEntry values when a viewer is known.
// swagger:model LeaderboardResponse
type LeaderboardResponse struct {
	Success bool `json:"success"`
	Entries any  `json:"entries" swaggertype:"array,object"`
}

// NewVoteHandler returns an HTTP handler for casting votes.
// @Summary Vote on a story
// @Description Records or changes the user's vote. Repeating the same vote leaves the counters unchanged.
// @Tags votes
// @Accept json
// @Produce json
// @Param request body handlers.VoteRequest true "Vote"
// @Success 200 {object} handlers.VoteResponse "Vote recorded"
// @Failure 400 {object} handlers.ErrorResponse "user_id_required / story_id_required / invalid_vote / invalid_user"
// @Failure 404 {object} handlers.ErrorResponse "story_not_found"
// @Router /vote [post]
// @Security BearerAuth
func NewVoteHandler(svc VoteCaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req VoteRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeFailure(w, r, err)
			return
		}

		userID, err := resolveUserID(r, req.UserID)
		if err != nil {
			writeFailure(w, r, err)
			return
		}
		storyID, err := parseStoryID(req.StoryID)
		if err != nil {
			writeFailure(w, r, err)
			return
		}

		result, err := svc.Cast(r.Context(), userID, storyID, models.VoteValue(strings.TrimSpace(req.Vote)))
		if err != nil {
			writeFailure(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, VoteResponse{
			Success:          true,
			Vote:             result.Vote,
			Changed:          result.Changed,
			ThatsBadCount:    result.SucksCount,
			IveHadWorseCount: result.IveHadWorseCount,
		})
	}
}

// NewLeaderboardHandler returns an HTTP handler for the leaderboard.
// @Summary Leaderboard
// @Description Returns the 20 stories with the most "that's bad" votes. With a userId each entry carries the viewer's vote.
// @Tags votes
// @Produce json
// @Param userId query string false "Viewer user ID"
// @Success 200 {object} handlers.LeaderboardResponse "Leaderboard"
// @Failure 400 {object} handlers.ErrorResponse "invalid_user"
// @Failure 500 {object} handlers.ErrorResponse "failed_to_load"
// @Router /leaderboard [get]
func NewLeaderboardHandler(svc LeaderboardReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var viewer *uuid.UUID
		userID, err := resolveUserID(r, r.URL.Query().Get("userId"))
		switch {
		case err == nil:
			viewer = &userID
		case !errors.Is(err, errUserIDRequired):
			writeFailure(w, r, err)
			return
		}

		entries, err := svc.Top(r.Context(), viewer)
		if err != nil {
			writeServiceError(w, r, err, http.StatusInternalServerError, CodeFailedToLoad)
			return
		}

		writeJSON(w, http.StatusOK, LeaderboardResponse{
			Success: true,
			Entries: newLeaderboardEntries(entries, viewer != nil),
		})
	}
}

func newLeaderboardEntries(entries []models.LeaderboardEntry, withVote bool) any {
	plain := make([]LeaderboardEntry, len(entries))
	for i, e := range entries {
		plain[i] = LeaderboardEntry{
			Rank:             e.Rank,
			StoryID:          e.StoryID,
			Text:             e.Text,
			StoryName:        e.StoryName,
			ThatsBadCount:    e.SucksCount,
			IveHadWorseCount: e.IveHadWorseCount,
		}
	}
	if !withVote {
		return plain
	}

	annotated := make([]ViewerLeaderboardEntry, len(entries))
	for i := range entries {
		annotated[i] = ViewerLeaderboardEntry{LeaderboardEntry: plain[i], Vote: entries[i].ViewerVote}
	}
	return annotated
}
