package model

import "time"

type Movie struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Duration    int       `json:"duration"`
	Genre       string    `gorm:"size:100" json:"genre"`
	Rating      float64   `gorm:"type:decimal(3,1)" json:"rating"`
	PosterURL   *string   `gorm:"size:500" json:"poster_url"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}
