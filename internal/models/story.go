package models

import (
	"time"

	"github.com/google/uuid"
)

// Story limits.
const (
	MaxStoryTextLength = 3000 // characters
	MaxStoryNameLength = 50   // characters
)

// StoryDB represents a story row in the database
type StoryDB struct {
	StoryID          uuid.UUID `json:"id" db:"id"`                                   // Primary key
	UserID           uuid.UUID `json:"user_id" db:"user_id"`                         // Author
	Text             string    `json:"text" db:"text"`                               // Story body
	StoryName        *string   `json:"story_name" db:"story_name"`                   // Optional display name
	SucksCount       int       `json:"sucks_count" db:"sucks_count"`                 // Number of "that's bad" votes
	IveHadWorseCount int       `json:"ive_had_worse_count" db:"ive_had_worse_count"` // Number of "I've had worse" votes
	CreatedAt        time.Time `json:"created_at" db:"created_at"`                   // Creation timestamp
}
