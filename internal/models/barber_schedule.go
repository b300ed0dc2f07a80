package models

import "time"

// BarberSchedule holds one row per (barber, day of week).
// DayOfWeek follows time.Weekday: 0 = Sunday.
type BarberSchedule struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"uniqueIndex:idx_barber_day" json:"barber_id"`

	DayOfWeek   int  `gorm:"uniqueIndex:idx_barber_day" json:"day_of_week"`
	IsAvailable bool `json:"is_available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
