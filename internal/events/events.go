package events

import "time"

// Type tags a submission lifecycle event.
type Type string

const (
	SubmissionCreated  Type = "submission_created"
	SubmissionClaimed  Type = "submission_claimed"
	SubmissionReleased Type = "submission_released"
	ReviewFinalized    Type = "review_finalized"
)

// SubmissionEvent is the minimal payload pushed to real-time observers.
type SubmissionEvent struct {
	SubmissionID uint      `json:"submission_id"`
	ContestID    uint      `json:"contest_id"`
	Status       string    `json:"status"`
	ActorID      uint      `json:"actor_id"`
	Timestamp    time.Time `json:"timestamp"`
}

// Publisher delivers events to observers. Fire-and-forget: implementations must
// not block the caller and delivery is not guaranteed.
type Publisher interface {
	PublishSubmission(t Type, ev SubmissionEvent)
}
