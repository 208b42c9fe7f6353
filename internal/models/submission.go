package models

import "time"

type Submission struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ProblemID  uint      `gorm:"not null;index" json:"problem_id"`
	ContestID  uint      `gorm:"not null;index" json:"contest_id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	ReviewerID *uint     `gorm:"index" json:"reviewer_id,omitempty"`
	Code       string    `gorm:"type:text;not null" json:"code"`
	Language   string    `gorm:"size:30" json:"language,omitempty"`
	Status     string    `gorm:"size:20;not null;default:'pending';index:idx_submission_queue" json:"status"`
	Score      int       `gorm:"not null;default:0" json:"score"`
	CreatedAt  time.Time `gorm:"index:idx_submission_queue" json:"created_at"`
}

const (
	SubmissionStatusPending     = "pending"
	SubmissionStatusUnderReview = "under_review"
	SubmissionStatusAccepted    = "accepted"
	SubmissionStatusRejected    = "rejected"
)
