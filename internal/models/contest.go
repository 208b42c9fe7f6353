package models

import "time"

type Contest struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Code      string    `gorm:"size:6;index" json:"code"`
	Status    string    `gorm:"size:20;not null;default:'planned'" json:"status"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	ContestStatusPlanned  = "planned"
	ContestStatusRunning  = "running"
	ContestStatusEnded    = "ended"
	ContestStatusArchived = "archived"
)

// ContestProblem attaches a problem to a contest with its point value.
type ContestProblem struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ContestID uint `gorm:"not null;uniqueIndex:idx_contest_problem" json:"contest_id"`
	ProblemID uint `gorm:"not null;uniqueIndex:idx_contest_problem" json:"problem_id"`
	Points    int  `gorm:"not null;default:100" json:"points"`
}

// ContestUser records that a participant may submit within a contest.
type ContestUser struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ContestID uint      `gorm:"not null;uniqueIndex:idx_contest_user" json:"contest_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_contest_user" json:"user_id"`
	Status    string    `gorm:"size:20;not null;default:'active'" json:"status"`
	JoinedAt  time.Time `json:"joined_at"`
}

const (
	EnrollmentStatusActive    = "active"
	EnrollmentStatusWithdrawn = "withdrawn"
)
