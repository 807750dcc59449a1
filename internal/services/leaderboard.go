package services

//go:generate mockgen -source=leaderboard.go -destination=mock_leaderboard.go -package=services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/ive-had-worse/internal/logger"
	"github.com/sbilibin2017/ive-had-worse/internal/models"
)

// TopStoryReader returns the highest ranked stories.
type TopStoryReader interface {
	Top(ctx context.Context, limit int) ([]models.StoryDB, error)
}

// ViewerVoteReader returns the votes a user cast on the given stories.
type ViewerVoteReader interface {
	GetForStories(ctx context.Context, userID uuid.UUID, storyIDs []uuid.UUID) (map[uuid.UUID]models.VoteValue, error)
}

// LeaderboardCache caches the un-annotated leaderboard.
type LeaderboardCache interface {
	Get(ctx context.Context) ([]models.LeaderboardEntry, error)       // Returns an error on miss
	Set(ctx context.Context, entries []models.LeaderboardEntry) error // Stores the leaderboard with a TTL
}

// LeaderboardService builds the "that's bad" leaderboard.
type LeaderboardService struct {
	stories TopStoryReader
	votes   ViewerVoteReader
	cache   LeaderboardCache
}

// NewLeaderboardService creates a new LeaderboardService. cache may be nil.
func NewLeaderboardService(stories TopStoryReader, votes ViewerVoteReader, cache LeaderboardCache) *LeaderboardService {
	return &LeaderboardService{
		stories: stories,
		votes:   votes,
		cache:   cache,
	}
}

// Top returns the top stories by "that's bad" votes. When viewer is set, each
// entry carries the viewer's vote.
func (s *LeaderboardService) Top(ctx context.Context, viewer *uuid.UUID) ([]models.LeaderboardEntry, error) {
	entries, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if viewer == nil || len(entries) == 0 {
		return entries, nil
	}

	ids := make([]uuid.UUID, len(entries))
	for i, e := range entries {
		ids[i] = e.StoryID
	}

	votes, err := s.votes.GetForStories(ctx, *viewer, ids)
	if err != nil {
		logger.Log.Errorw("failed to get viewer votes", "userID", *viewer, "error", err)
		return nil, err
	}

	for i := range entries {
		if v, ok := votes[entries[i].StoryID]; ok {
			entries[i].ViewerVote = &v
		}
	}
	return entries, nil
}

func (s *LeaderboardService) load(ctx context.Context) ([]models.LeaderboardEntry, error) {
	if s.cache != nil {
		if entries, err := s.cache.Get(ctx); err == nil {
			return entries, nil
		}
	}

	stories, err := s.stories.Top(ctx, models.LeaderboardSize)
	if err != nil {
		logger.Log.Errorw("failed to load leaderboard", "error", err)
		return nil, err
	}

	entries := make([]models.LeaderboardEntry, len(stories))
	for i, st := range stories {
		entries[i] = models.LeaderboardEntry{
			Rank:             i + 1,
			StoryID:          st.StoryID,
			Text:             st.Text,
			StoryName:        st.StoryName,
			SucksCount:       st.SucksCount,
			IveHadWorseCount: st.IveHadWorseCount,
		}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, entries); err != nil {
			logger.Log.Errorw("failed to cache leaderboard", "error", err)
		}
	}
	return entries, nil
}
