package services

//go:generate mockgen -source=recorder.go -destination=mock_recorder.go -package=services

import "github.com/sbilibin2017/ive-had-worse/internal/models"

// Recorder receives domain events for metrics.
type Recorder interface {
	RecordAccountCreated(promoted bool)             // Counts registrations
	RecordStoryPosted()                             // Counts new stories
	RecordVote(vote models.VoteValue, changed bool) // Counts cast votes
}

type noopRecorder struct{}

func (noopRecorder) RecordAccountCreated(bool)         {}
func (noopRecorder) RecordStoryPosted()                {}
func (noopRecorder) RecordVote(models.VoteValue, bool) {}

func recorderOrNoop(r Recorder) Recorder {
	if r == nil {
		return noopRecorder{}
	}
	return r
}
