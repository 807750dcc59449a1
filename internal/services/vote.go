package services

//go:generate mockgen -source=vote.go -destination=mock_vote.go -package=services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/ive-had-worse/internal/logger"
	"github.com/sbilibin2017/ive-had-worse/internal/models"
	"github.com/segmentio/kafka-go"
)

// StoryCounterWriter locks stories and adjusts their vote counters.
type StoryCounterWriter interface {
	LockByID(ctx context.Context, storyID uuid.UUID) (*models.StoryDB, error)                                        // Locks the row until the transaction ends, nil when missing
	AdjustCounters(ctx context.Context, storyID uuid.UUID, sucksDelta, worseDelta int) (sucks, worse int, err error) // Returns the new counters
}

// VoteReader reads a single vote.
type VoteReader interface {
	Get(ctx context.Context, userID, storyID uuid.UUID) (*models.VoteDB, error)
}

// VoteWriter writes votes.
type VoteWriter interface {
	Save(ctx context.Context, userID, storyID uuid.UUID, vote models.VoteValue) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// VoteService casts votes and keeps story counters in step with them.
type VoteService struct {
	users       UserReader
	stories     StoryCounterWriter
	reader      VoteReader
	writer      VoteWriter
	kafkaWriter KafkaWriter
	invalidator LeaderboardInvalidator
	recorder    Recorder
}

// NewVoteService creates a new VoteService. kafkaWriter, invalidator and
// recorder may be nil.
func NewVoteService(
	users UserReader,
	stories StoryCounterWriter,
	reader VoteReader,
	writer VoteWriter,
	kafkaWriter KafkaWriter,
	invalidator LeaderboardInvalidator,
	recorder Recorder,
) *VoteService {
	return &VoteService{
		users:       users,
		stories:     stories,
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
		invalidator: invalidator,
		recorder:    recorderOrNoop(recorder),
	}
}

// Cast records the user's vote on a story. Casting the same value again leaves
// the counters untouched; switching moves one unit from the old counter to the
// new one. Must run inside the request transaction so the story lock holds
// until commit.
func (s *VoteService) Cast(ctx context.Context, userID, storyID uuid.UUID, vote models.VoteValue) (*models.VoteResult, error) {
	if !vote.Valid() {
		return nil, ErrInvalidVote
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidUser
	}

	story, err := s.stories.LockByID(ctx, storyID)
	if err != nil {
		logger.Log.Errorw("failed to lock story", "storyID", storyID, "error", err)
		return nil, err
	}
	if story == nil {
		return nil, ErrStoryNotFound
	}

	existing, err := s.reader.Get(ctx, userID, storyID)
	if err != nil {
		logger.Log.Errorw("failed to get previous vote", "userID", userID, "storyID", storyID, "error", err)
		return nil, err
	}
	var prev *models.VoteValue
	if existing != nil {
		prev = &existing.Vote
	}

	if err := s.writer.Save(ctx, userID, storyID, vote); err != nil {
		logger.Log.Errorw("failed to save vote", "userID", userID, "storyID", storyID, "error", err)
		return nil, err
	}

	result := &models.VoteResult{
		Vote:             vote,
		SucksCount:       story.SucksCount,
		IveHadWorseCount: story.IveHadWorseCount,
	}

	sucksDelta, worseDelta := models.CounterDelta(prev, vote)
	if sucksDelta != 0 || worseDelta != 0 {
		result.SucksCount, result.IveHadWorseCount, err = s.stories.AdjustCounters(ctx, storyID, sucksDelta, worseDelta)
		if err != nil {
			logger.Log.Errorw("failed to adjust counters", "storyID", storyID, "error", err)
			return nil, err
		}
		result.Changed = true
	}

	s.recorder.RecordVote(vote, result.Changed)

	if result.Changed {
		event := models.VoteEvent{
			EventID:   uuid.NewString(),
			Timestamp: time.Now().Unix(),
			UserID:    userID.String(),
			StoryID:   storyID.String(),
			Vote:      vote,
		}
		if prev != nil {
			event.Previous = *prev
		}
		s.publishVote(ctx, event)

		if s.invalidator != nil {
			if err := s.invalidator.Invalidate(ctx); err != nil {
				logger.Log.Errorw("failed to invalidate leaderboard cache", "error", err)
			}
		}
	}

	return result, nil
}

// publishVote publishes a vote event to Kafka.
func (s *VoteService) publishVote(ctx context.Context, event models.VoteEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal vote event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.StoryID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish vote event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Vote event published to Kafka", "event_id", event.EventID, "vote", event.Vote)
	}
}
