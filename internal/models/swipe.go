package models

import "time"

const (
	SwipeLeft  = "left"
	SwipeRight = "right"
)

type Swipe struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Title     string    `gorm:"not null;size:255" json:"title"`
	Swipe     string    `gorm:"size:10" json:"swipe"` // "left" or "right"
	CreatedAt time.Time `json:"created_at"`
}

func (Swipe) TableName() string {
	return "swipes"
}
