package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/ive-had-worse/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type voteMocks struct {
	users       *MockUserReader
	stories     *MockStoryCounterWriter
	reader      *MockVoteReader
	writer      *MockVoteWriter
	kafka       *MockKafkaWriter
	invalidator *MockLeaderboardInvalidator
	recorder    *MockRecorder
	svc         *VoteService
}

func newVoteMocks(t *testing.T) *voteMocks {
	ctrl := gomock.NewController(t)
	m := &voteMocks{
		users:       NewMockUserReader(ctrl),
		stories:     NewMockStoryCounterWriter(ctrl),
		reader:      NewMockVoteReader(ctrl),
		writer:      NewMockVoteWriter(ctrl),
		kafka:       NewMockKafkaWriter(ctrl),
		invalidator: NewMockLeaderboardInvalidator(ctrl),
		recorder:    NewMockRecorder(ctrl),
	}
	m.svc = NewVoteService(m.users, m.stories, m.reader, m.writer, m.kafka, m.invalidator, m.recorder)
	return m
}

func TestVoteService_Cast_Transitions(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	storyID := uuid.New()

	tests := []struct {
		name        string
		prev        *models.VoteValue
		vote        models.VoteValue
		wantSucks   int
		wantWorse   int
		wantChanged bool
	}{
		{name: "first vote sucks", vote: models.VoteSucks, wantSucks: 4, wantWorse: 2, wantChanged: true},
		{name: "first vote worse", vote: models.VoteIveHadWorse, wantSucks: 3, wantWorse: 3, wantChanged: true},
		{name: "same vote again", prev: voteValue(models.VoteSucks), vote: models.VoteSucks, wantSucks: 3, wantWorse: 2},
		{name: "switch to worse", prev: voteValue(models.VoteSucks), vote: models.VoteIveHadWorse, wantSucks: 2, wantWorse: 3, wantChanged: true},
		{name: "switch to sucks", prev: voteValue(models.VoteIveHadWorse), vote: models.VoteSucks, wantSucks: 4, wantWorse: 1, wantChanged: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newVoteMocks(t)

			m.users.EXPECT().GetByID(ctx, userID).Return(&models.UserDB{UserID: userID, IsTemp: true}, nil)
			m.stories.EXPECT().LockByID(ctx, storyID).
				Return(&models.StoryDB{StoryID: storyID, SucksCount: 3, IveHadWorseCount: 2}, nil)

			var existing *models.VoteDB
			if tt.prev != nil {
				existing = &models.VoteDB{UserID: userID, StoryID: storyID, Vote: *tt.prev}
			}
			m.reader.EXPECT().Get(ctx, userID, storyID).Return(existing, nil)
			m.writer.EXPECT().Save(ctx, userID, storyID, tt.vote).Return(nil)
			m.recorder.EXPECT().RecordVote(tt.vote, tt.wantChanged)

			if tt.wantChanged {
				sucksDelta, worseDelta := models.CounterDelta(tt.prev, tt.vote)
				m.stories.EXPECT().AdjustCounters(ctx, storyID, sucksDelta, worseDelta).
					Return(tt.wantSucks, tt.wantWorse, nil)
				m.kafka.EXPECT().WriteMessages(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
						require.Len(t, msgs, 1)
						assert.Equal(t, storyID.String(), string(msgs[0].Key))

						var event models.VoteEvent
						require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
						assert.Equal(t, tt.vote, event.Vote)
						assert.Equal(t, userID.String(), event.UserID)
						if tt.prev != nil {
							assert.Equal(t, *tt.prev, event.Previous)
						}
						return nil
					})
				m.invalidator.EXPECT().Invalidate(ctx).Return(nil)
			}

			result, err := m.svc.Cast(ctx, userID, storyID, tt.vote)
			require.NoError(t, err)
			assert.Equal(t, &models.VoteResult{
				Vote:             tt.vote,
				Changed:          tt.wantChanged,
				SucksCount:       tt.wantSucks,
				IveHadWorseCount: tt.wantWorse,
			}, result)
		})
	}
}

func voteValue(v models.VoteValue) *models.VoteValue {
	return &v
}

func TestVoteService_Cast_Errors(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	storyID := uuid.New()

	t.Run("invalid vote", func(t *testing.T) {
		m := newVoteMocks(t)
		_, err := m.svc.Cast(ctx, userID, storyID, models.VoteValue("meh"))
		assert.ErrorIs(t, err, ErrInvalidVote)
	})

	t.Run("unknown user", func(t *testing.T) {
		m := newVoteMocks(t)
		m.users.EXPECT().GetByID(ctx, userID).Return(nil, nil)

		_, err := m.svc.Cast(ctx, userID, storyID, models.VoteSucks)
		assert.ErrorIs(t, err, ErrInvalidUser)
	})

	t.Run("unknown story", func(t *testing.T) {
		m := newVoteMocks(t)
		m.users.EXPECT().GetByID(ctx, userID).Return(&models.UserDB{UserID: userID}, nil)
		m.stories.EXPECT().LockByID(ctx, storyID).Return(nil, nil)

		_, err := m.svc.Cast(ctx, userID, storyID, models.VoteSucks)
		assert.ErrorIs(t, err, ErrStoryNotFound)
	})

	t.Run("counter update fails", func(t *testing.T) {
		m := newVoteMocks(t)
		dbErr := errors.New("db error")
		m.users.EXPECT().GetByID(ctx, userID).Return(&models.UserDB{UserID: userID}, nil)
		m.stories.EXPECT().LockByID(ctx, storyID).Return(&models.StoryDB{StoryID: storyID}, nil)
		m.reader.EXPECT().Get(ctx, userID, storyID).Return(nil, nil)
		m.writer.EXPECT().Save(ctx, userID, storyID, models.VoteSucks).Return(nil)
		m.stories.EXPECT().AdjustCounters(ctx, storyID, 1, 0).Return(0, 0, dbErr)

		_, err := m.svc.Cast(ctx, userID, storyID, models.VoteSucks)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestVoteService_Cast_BestEffortSideEffects(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	storyID := uuid.New()

	ctrl := gomock.NewController(t)
	users := NewMockUserReader(ctrl)
	stories := NewMockStoryCounterWriter(ctrl)
	reader := NewMockVoteReader(ctrl)
	writer := NewMockVoteWriter(ctrl)
	kafkaWriter := NewMockKafkaWriter(ctrl)
	invalidator := NewMockLeaderboardInvalidator(ctrl)

	users.EXPECT().GetByID(ctx, userID).Return(&models.UserDB{UserID: userID}, nil)
	stories.EXPECT().LockByID(ctx, storyID).Return(&models.StoryDB{StoryID: storyID}, nil)
	reader.EXPECT().Get(ctx, userID, storyID).Return(nil, nil)
	writer.EXPECT().Save(ctx, userID, storyID, models.VoteIveHadWorse).Return(nil)
	stories.EXPECT().AdjustCounters(ctx, storyID, 0, 1).Return(0, 1, nil)
	kafkaWriter.EXPECT().WriteMessages(ctx, gomock.Any()).Return(errors.New("broker down"))
	invalidator.EXPECT().Invalidate(ctx).Return(errors.New("redis down"))

	svc := NewVoteService(users, stories, reader, writer, kafkaWriter, invalidator, nil)
	result, err := svc.Cast(ctx, userID, storyID, models.VoteIveHadWorse)
	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Equal(t, 1, result.IveHadWorseCount)
}

func TestVoteService_Cast_WithoutKafka(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	storyID := uuid.New()

	ctrl := gomock.NewController(t)
	users := NewMockUserReader(ctrl)
	stories := NewMockStoryCounterWriter(ctrl)
	reader := NewMockVoteReader(ctrl)
	writer := NewMockVoteWriter(ctrl)

	users.EXPECT().GetByID(ctx, userID).Return(&models.UserDB{UserID: userID}, nil)
	stories.EXPECT().LockByID(ctx, storyID).Return(&models.StoryDB{StoryID: storyID}, nil)
	reader.EXPECT().Get(ctx, userID, storyID).Return(nil, nil)
	writer.EXPECT().Save(ctx, userID, storyID, models.VoteSucks).Return(nil)
	stories.EXPECT().AdjustCounters(ctx, storyID, 1, 0).Return(1, 0, nil)

	svc := NewVoteService(users, stories, reader, writer, nil, nil, nil)
	result, err := svc.Cast(ctx, userID, storyID, models.VoteSucks)
	require.NoError(t, err)
	assert.Equal(t, 1, result.SucksCount)
}
