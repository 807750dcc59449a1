package models

import (
	"time"

	"github.com/google/uuid"
)

// VoteValue is one of the two reactions a user can cast on a story.
type VoteValue string

// Supported vote values
const (
	VoteSucks       VoteValue = "sucks"
	VoteIveHadWorse VoteValue = "ive_had_worse"
)

// Valid reports whether v is a supported vote value.
func (v VoteValue) Valid() bool {
	return v == VoteSucks || v == VoteIveHadWorse
}

// VoteDB represents a vote row in the database
type VoteDB struct {
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Voter
	StoryID   uuid.UUID `json:"story_id" db:"story_id"`     // Voted story
	Vote      VoteValue `json:"vote" db:"vote"`             // Vote value
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Time of the latest cast
}

// VoteWithStory is a vote joined with the text of the voted story.
// Story fields are nil when the story was deleted.
type VoteWithStory struct {
	StoryID   uuid.UUID `db:"story_id"`
	Vote      VoteValue `db:"vote"`
	CreatedAt time.Time `db:"created_at"`
	StoryText *string   `db:"story_text"`
	StoryName *string   `db:"story_name"`
}

// CounterDelta returns how the story counters change when a vote moves from
// prev (nil when the user has not voted yet) to next.
func CounterDelta(prev *VoteValue, next VoteValue) (sucks, worse int) {
	if prev != nil && *prev == next {
		return 0, 0
	}
	if prev != nil {
		switch *prev {
		case VoteSucks:
			sucks--
		case VoteIveHadWorse:
			worse--
		}
	}
	switch next {
	case VoteSucks:
		sucks++
	case VoteIveHadWorse:
		worse++
	}
	return sucks, worse
}

// VoteResult is the outcome of casting a vote.
type VoteResult struct {
	Vote             VoteValue
	Changed          bool
	SucksCount       int
	IveHadWorseCount int
}

// VoteEvent is published every time a vote changes a story's counters.
type VoteEvent struct {
	EventID   string    `json:"event_id"`           // Unique event identifier
	Timestamp int64     `json:"timestamp"`          // Unix timestamp (seconds)
	UserID    string    `json:"user_id"`            // Voter
	StoryID   string    `json:"story_id"`           // Voted story
	Vote      VoteValue `json:"vote"`               // New vote value
	Previous  VoteValue `json:"previous,omitempty"` // Previous vote value, empty on first vote
}
