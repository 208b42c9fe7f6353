package models

import "time"

type Problem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"size:255;not null" json:"title"`
	Statement  string    `gorm:"type:text;not null" json:"statement"`
	Difficulty string    `gorm:"size:20;not null;default:'medium'" json:"difficulty"`
	MaxScore   int       `gorm:"not null;default:100" json:"max_score"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
