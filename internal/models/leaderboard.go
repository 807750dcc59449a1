package models

import "github.com/google/uuid"

// LeaderboardSize is the number of stories shown on the leaderboard.
const LeaderboardSize = 20

// LeaderboardEntry is a ranked story on the leaderboard.
type LeaderboardEntry struct {
	Rank             int        `json:"rank"`
	StoryID          uuid.UUID  `json:"story_id"`
	Text             string     `json:"text"`
	StoryName        *string    `json:"story_name"`
	SucksCount       int        `json:"sucks_count"`
	IveHadWorseCount int        `json:"ive_had_worse_count"`
	ViewerVote       *VoteValue `json:"-"` // Set only when the leaderboard is requested for a user
}
