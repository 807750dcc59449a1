package services

//go:generate mockgen -source=story.go -destination=mock_story.go -package=services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sbilibin2017/ive-had-worse/internal/logger"
	"github.com/sbilibin2017/ive-had-worse/internal/models"
)

// DeletedStoryText replaces the text of voted stories that no longer exist.
const DeletedStoryText = "[Deleted]"

// StoryReader defines read-only operations for stories.
type StoryReader interface {
	GetByID(ctx context.Context, storyID uuid.UUID) (*models.StoryDB, error)                           // Returns nil when missing
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.StoryDB, error)                        // Newest first
	RandomUnvoted(ctx context.Context, userID uuid.UUID, exclude []uuid.UUID) (*models.StoryDB, error) // Returns nil when none is left
}

// StoryWriter defines write operations for stories.
type StoryWriter interface {
	Save(ctx context.Context, userID uuid.UUID, text string, storyName *string) (*models.StoryDB, error)
	Delete(ctx context.Context, storyID uuid.UUID) error
}

// VoteHistoryReader lists the votes a user has cast.
type VoteHistoryReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.VoteWithStory, error)
}

// LeaderboardInvalidator drops the cached leaderboard.
type LeaderboardInvalidator interface {
	Invalidate(ctx context.Context) error
}

// StoryService handles posting, deleting and browsing stories.
type StoryService struct {
	users       UserReader
	reader      StoryReader
	writer      StoryWriter
	votes       VoteHistoryReader
	invalidator LeaderboardInvalidator
	recorder    Recorder
}

// NewStoryService creates a new StoryService. invalidator and recorder may be nil.
func NewStoryService(
	users UserReader,
	reader StoryReader,
	writer StoryWriter,
	votes VoteHistoryReader,
	invalidator LeaderboardInvalidator,
	recorder Recorder,
) *StoryService {
	return &StoryService{
		users:       users,
		reader:      reader,
		writer:      writer,
		votes:       votes,
		invalidator: invalidator,
		recorder:    recorderOrNoop(recorder),
	}
}

// Post publishes a story written by a permanent user.
func (s *StoryService) Post(ctx context.Context, userID uuid.UUID, text, storyName string) (*models.StoryDB, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrTextRequired
	}
	if utf8.RuneCountInString(text) > models.MaxStoryTextLength {
		return nil, ErrTextTooLong
	}

	if _, err := s.permanentUser(ctx, userID); err != nil {
		return nil, err
	}

	story, err := s.writer.Save(ctx, userID, text, cleanStoryName(storyName))
	if err != nil {
		logger.Log.Errorw("failed to save story", "userID", userID, "error", err)
		return nil, err
	}

	s.recorder.RecordStoryPosted()
	s.invalidateLeaderboard(ctx)

	return story, nil
}

// Delete removes a story owned by the user.
func (s *StoryService) Delete(ctx context.Context, userID, storyID uuid.UUID) error {
	story, err := s.reader.GetByID(ctx, storyID)
	if err != nil {
		logger.Log.Errorw("failed to get story", "storyID", storyID, "error", err)
		return err
	}
	if story == nil {
		return ErrStoryNotFound
	}
	if story.UserID != userID {
		logger.Log.Warnw("attempt to delete foreign story", "userID", userID, "storyID", storyID)
		return ErrNotYourStory
	}

	err = s.writer.Delete(ctx, storyID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrStoryNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to delete story", "storyID", storyID, "error", err)
		return err
	}

	s.invalidateLeaderboard(ctx)
	return nil
}

// FetchNext returns a random story the user has not voted on and that is not
// in exclude, or nil when there is none.
func (s *StoryService) FetchNext(ctx context.Context, userID uuid.UUID, exclude []uuid.UUID) (*models.StoryDB, error) {
	story, err := s.reader.RandomUnvoted(ctx, userID, exclude)
	if err != nil {
		logger.Log.Errorw("failed to fetch next story", "userID", userID, "error", err)
		return nil, err
	}
	return story, nil
}

// MyStories returns the account and the stories it wrote, newest first.
func (s *StoryService) MyStories(ctx context.Context, userID uuid.UUID) (*models.UserDB, []models.StoryDB, error) {
	user, err := s.permanentUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	stories, err := s.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list stories", "userID", userID, "error", err)
		return nil, nil, err
	}
	return user, stories, nil
}

// MyVotes returns the votes cast by the user, newest first. Votes on deleted
// stories carry DeletedStoryText.
func (s *StoryService) MyVotes(ctx context.Context, userID uuid.UUID) ([]models.VoteWithStory, error) {
	votes, err := s.votes.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list votes", "userID", userID, "error", err)
		return nil, err
	}

	for i := range votes {
		if votes[i].StoryText == nil {
			deleted := DeletedStoryText
			votes[i].StoryText = &deleted
			votes[i].StoryName = nil
		}
	}
	return votes, nil
}

func (s *StoryService) permanentUser(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidUser
	}
	if user.IsTemp {
		return nil, ErrSignInRequired
	}
	return user, nil
}

func (s *StoryService) invalidateLeaderboard(ctx context.Context) {
	if s.invalidator == nil {
		return
	}
	if err := s.invalidator.Invalidate(ctx); err != nil {
		logger.Log.Errorw("failed to invalidate leaderboard cache", "error", err)
	}
}

// cleanStoryName trims the name and cuts it to MaxStoryNameLength characters.
// An empty name becomes nil.
func cleanStoryName(name string) *string {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	if runes := []rune(name); len(runes) > models.MaxStoryNameLength {
		name = strings.TrimSpace(string(runes[:models.MaxStoryNameLength]))
	}
	return &name
}
