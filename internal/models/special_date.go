package models

import "time"

// SpecialDate marks a calendar date shop-wide closed (holidays).
// Date is stored as YYYY-MM-DD.
type SpecialDate struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date     string `gorm:"size:10;uniqueIndex;not null" json:"date"`
	IsClosed bool   `gorm:"default:true" json:"is_closed"`
	Reason   string `gorm:"size:100" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
