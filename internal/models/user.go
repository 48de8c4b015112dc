package models

import "time"

type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Username     string         `gorm:"uniqueIndex;not null;size:80" json:"username"`
	PasswordHash string         `gorm:"not null;size:128" json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
	Watched      []WatchedMovie `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"watched,omitempty"`
	Swipes       []Swipe        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"swipes,omitempty"`
}

func (User) TableName() string {
	return "users"
}
