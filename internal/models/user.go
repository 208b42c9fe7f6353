package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:100;uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         string    `gorm:"size:20;not null;default:'participant'" json:"role"`
	TotalScore   int       `gorm:"not null;default:0" json:"total_score"`
	SolvedCount  int       `gorm:"not null;default:0" json:"solved_count"`
	CreatedAt    time.Time `json:"created_at"`
}

const (
	RoleParticipant = "participant"
	RoleJudge       = "judge"
	RoleAdmin       = "admin"
)
