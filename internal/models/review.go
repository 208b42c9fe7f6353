package models

import "time"

// Review is the verdict record for exactly one submission. Uniqueness is
// guaranteed by the lifecycle precondition (only an under-review submission can
// be finalized, and it never re-enters review), not by a DB constraint.
type Review struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SubmissionID uint      `gorm:"not null;index" json:"submission_id"`
	ProblemID    uint      `gorm:"not null" json:"problem_id"`
	UserID       uint      `gorm:"not null" json:"user_id"`
	ReviewerID   uint      `gorm:"not null;index" json:"reviewer_id"`
	Correct      bool      `gorm:"not null" json:"correct"`
	Score        int       `gorm:"not null;default:0" json:"score"`
	Remarks      string    `gorm:"type:text" json:"remarks,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
