package models

import "time"

type WatchedMovie struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	Title       string    `gorm:"not null;size:255" json:"title"`
	Type        string    `gorm:"size:50" json:"type"` // "movie" or "tv"
	Ranking     int       `json:"ranking"`
	Genre       string    `gorm:"size:255" json:"genre"`
	Poster      string    `gorm:"size:255" json:"poster"`
	ReleaseYear string    `gorm:"size:10" json:"release_year"`
	CreatedAt   time.Time `json:"created_at"`
}

func (WatchedMovie) TableName() string {
	return "watched_movies"
}
