package models

import "time"

type Testimonial struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Text     string `gorm:"size:500;not null" json:"text"`
	Rating   int    `gorm:"default:5" json:"rating"`
	Approved bool   `gorm:"default:false" json:"approved"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
