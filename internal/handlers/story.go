package handlers

//go:generate mockgen -source=story.go -destination=mock_story.go -package=handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/ive-had-worse/internal/models"
)

// StoryPoster defines the interface that the story service must implement for posting.
type StoryPoster interface {
	Post(ctx context.Context, userID uuid.UUID, text, storyName string) (*models.StoryDB, error)
}

// StoryDeleter defines the interface that the story service must implement for deletion.
type StoryDeleter interface {
	Delete(ctx context.Context, userID, storyID uuid.UUID) error
}

// StoryFetcher picks the next story to show.
type StoryFetcher interface {
	FetchNext(ctx context.Context, userID uuid.UUID, exclude []uuid.UUID) (*models.StoryDB, error)
}

// StoryLister lists a user's stories.
type StoryLister interface {
	MyStories(ctx context.Context, userID uuid.UUID) (*models.UserDB, []models.StoryDB, error)
}

// VoteLister lists a user's votes.
type VoteLister interface {
	MyVotes(ctx context.Context, userID uuid.UUID) ([]models.VoteWithStory, error)
}

// PostRequest represents the JSON body for posting a story
// swagger:model PostRequest
type PostRequest struct {
	// User ID, optional with a session token
	UserID string `json:"userId"`

	// Story text, 1 to 3000 characters
	// required: true
	// default: He brought his mom to our first date.
	Text string `json:"text"`

	// Optional display name, cut to 50 characters
	// default: MommasBoy_Run
	StoryName string `json:"storyName"`
}

// PostResponse represents a posted story
// swagger:model PostResponse
type PostResponse struct {
	Success bool      `json:"success"`
	StoryID uuid.UUID `json:"storyId"`
}

// DeleteStoryRequest represents the JSON body for deleting a story
// swagger:model DeleteStoryRequest
type DeleteStoryRequest struct {
	// User ID, optional with a session token
	UserID string `json:"userId"`

	// Story ID
	// required: true
	StoryID string `json:"storyId"`
}

// FetchRequest represents the JSON body for fetching the next story
// swagger:model FetchRequest
type FetchRequest struct {
	// User ID, optional with a session token
	UserID string `json:"userId"`

	// Stories already queued on the client
	ExcludeStoryIDs []string `json:"excludeStoryIds"`
}

// FetchedStory is a story shown for voting
// swagger:model FetchedStory
type FetchedStory struct {
	StoryID          uuid.UUID `json:"storyId"`
	Text             string    `json:"text"`
	StoryName        *string   `json:"storyName"`
	ThatsBadCount    int       `json:"thatsBadCount"`
	IveHadWorseCount int       `json:"iveHadWorseCount"`
}

// FetchResponse represents the next story, if any
// swagger:model FetchResponse
type FetchResponse struct {
	Success  bool          `json:"success"`
	HasStory bool          `json:"hasStory"`
	Story    *FetchedStory `json:"story,omitempty"`
}

// UserRequest represents a JSON body carrying only the user
// swagger:model UserRequest
type UserRequest struct {
	// User ID, optional with a session token
	UserID string `json:"userId"`
}

// AccountInfo describes the account on the dashboard
// swagger:model AccountInfo
type AccountInfo struct {
	Email     *string   `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// OwnStory is a story written by the user
// swagger:model OwnStory
type OwnStory struct {
	ID               uuid.UUID `json:"id"`
	Text             string    `json:"text"`
	StoryName        *string   `json:"storyName"`
	SucksCount       int       `json:"sucksCount"`
	IveHadWorseCount int       `json:"iveHadWorseCount"`
	CreatedAt        time.Time `json:"createdAt"`
}

// MyStoriesResponse represents the user's account and stories
// swagger:model MyStoriesResponse
type MyStoriesResponse struct {
	Success bool        `json:"success"`
	Account AccountInfo `json:"account"`
	Stories []OwnStory  `json:"stories"`
}

// CastVote is a vote in the user's history
// swagger:model CastVote
type CastVote struct {
	StoryID   uuid.UUID        `json:"storyId"`
	Vote      models.VoteValue `json:"vote"`
	CreatedAt time.Time        `json:"createdAt"`
	StoryText string           `json:"storyText"`
	StoryName *string          `json:"storyName"`
}

// MyVotesResponse represents the user's votes
// swagger:model MyVotesResponse
type MyVotesResponse struct {
	Success bool       `json:"success"`
	Votes   []CastVote `json:"votes"`
}

// NewPostHandler returns an HTTP handler for posting stories.
// @Summary Post a story
// @Description Publishes a story written by a permanent account. Both counters start at zero.
// @Tags stories
// @Accept json
// @Produce json
// @Param request body handlers.PostRequest true "Story"
// @Success 201 {object} handlers.PostResponse "Story posted"
// @Failure 400 {object} handlers.ErrorResponse "user_id_required / text_required / text_too_long / invalid_user"
// @Failure 403 {object} handlers.ErrorResponse "sign_in_required"
// @Router /post [post]
// @Security BearerAuth
func NewPostHandler(svc StoryPoster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PostRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeFailure(w, r, err)
			return
		}

		userID, err := resolveUserID(r, req.UserID)
		if err != nil {
			writeFailure(w, r, err)
			return
		}

		story, err := svc.Post(r.Context(), userID, req.Text, req.StoryName)
		if err != nil {
			writeFailure(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, PostResponse{Success: true, StoryID: story.StoryID})
	}
}

// NewDeleteStoryHandler returns an HTTP handler for deleting stories.
// @Summary Delete a story
// @Description Deletes a story owned by the user. Votes on it stay in the voters' history.
// @Tags stories
// @Accept json
// @Produce json
// @Param request body handlers.DeleteStoryRequest true "Story to delete"
// @Success 200 {object} handlers.SuccessResponse "Story deleted"
// @Failure 400 {object} handlers.ErrorResponse "user_id_required / story_id_required"
// @Failure 403 {object} handlers.ErrorResponse "not_your_story"
// @Failure 404 {object} handlers.ErrorResponse "story_not_found"
// @Router /delete-story [post]
// @Security BearerAuth
func NewDeleteStoryHandler(svc StoryDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DeleteStoryRequest
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

		if err := svc.Delete(r.Context(), userID, storyID); err != nil {
			writeFailure(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
	}
}

// NewFetchHandler returns an HTTP handler that picks the next story to vote on.
// @Summary Fetch the next story
// @Description Returns a random story the user has not voted on, skipping excludeStoryIds.
// @Tags stories
// @Accept json
// @Produce json
// @Param request body handlers.FetchRequest true "Fetch request"
// @Success 200 {object} handlers.FetchResponse "Next story or hasStory=false"
// @Failure 400 {object} handlers.ErrorResponse "user_id_required / invalid_user"
// @Router /fetch [post]
// @Security BearerAuth
func NewFetchHandler(svc StoryFetcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FetchRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeFailure(w, r, err)
			return
		}

		userID, err := resolveUserID(r, req.UserID)
		if err != nil {
			writeFailure(w, r, err)
			return
		}

		story, err := svc.FetchNext(r.Context(), userID, parseStoryIDs(req.ExcludeStoryIDs))
		if err != nil {
			writeFailure(w, r, err)
			return
		}

		resp := FetchResponse{Success: true}
		if story != nil {
			resp.HasStory = true
			resp.Story = &FetchedStory{
				StoryID:          story.StoryID,
				Text:             story.Text,
				StoryName:        story.StoryName,
				ThatsBadCount:    story.SucksCount,
				IveHadWorseCount: story.IveHadWorseCount,
			}
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewMyStoriesHandler returns an HTTP handler listing the user's stories.
// @Summary List my stories
// @Description Returns the account and its stories, newest first.
// @Tags dashboard
// @Accept json
// @Produce json
// @Param request body handlers.UserRequest true "User"
// @Success 200 {object} handlers.MyStoriesResponse "Account and stories"
// @Failure 400 {object} handlers.ErrorResponse "user_id_required / invalid_user"
// @Failure 403 {object} handlers.ErrorResponse "sign_in_required"
// @Router /my-stories [post]
// @Security BearerAuth
func NewMyStoriesHandler(svc StoryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UserRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeFailure(w, r, err)
			return
		}

		userID, err := resolveUserID(r, req.UserID)
		if err != nil {
			writeFailure(w, r, err)
			return
		}

		user, stories, err := svc.MyStories(r.Context(), userID)
		if err != nil {
			writeFailure(w, r, err)
			return
		}

		resp := MyStoriesResponse{
			Success: true,
			Account: AccountInfo{Email: user.Email, CreatedAt: user.CreatedAt},
			Stories: make([]OwnStory, len(stories)),
		}
		for i, s := range stories {
			resp.Stories[i] = OwnStory{
				ID:               s.StoryID,
				Text:             s.Text,
				StoryName:        s.StoryName,
				SucksCount:       s.SucksCount,
				IveHadWorseCount: s.IveHadWorseCount,
				CreatedAt:        s.CreatedAt,
			}
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewMyVotesHandler returns an HTTP handler listing the user's votes.
// @Summary List my votes
// @Description Returns the votes cast by the user, newest first. Deleted stories show as [Deleted].
// @Tags dashboard
// @Accept json
// @Produce json
// @Param request body handlers.UserRequest true "User"
// @Success 200 {object} handlers.MyVotesResponse "Votes"
// @Failure 400 {object} handlers.ErrorResponse "user_id_required / invalid_user"
// @Router /my-votes [post]
// @Security BearerAuth
func NewMyVotesHandler(svc VoteLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UserRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeFailure(w, r, err)
			return
		}

		userID, err := resolveUserID(r, req.UserID)
		if err != nil {
			writeFailure(w, r, err)
			return
		}

		votes, err := svc.MyVotes(r.Context(), userID)
		if err != nil {
			writeFailure(w, r, err)
			return
		}

		resp := MyVotesResponse{Success: true, Votes: make([]CastVote, len(votes))}
		for i, v := range votes {
			resp.Votes[i] = CastVote{
				StoryID:   v.StoryID,
				Vote:      v.Vote,
				CreatedAt: v.CreatedAt,
				StoryName: v.StoryName,
			}
			if v.StoryText != nil {
				resp.Votes[i].StoryText = *v.StoryText
			}
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
