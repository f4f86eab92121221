package models

import "time"

type OperatingHour struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"uniqueIndex:idx_operating_hours_barber_day;not null" json:"barber_id"`

	// Canonical English day name, Monday..Sunday.
	Day string `gorm:"size:10;uniqueIndex:idx_operating_hours_barber_day;not null" json:"day"`

	OpenTime  string `gorm:"size:5" json:"open_time"`
	CloseTime string `gorm:"size:5" json:"close_time"`
	IsClosed  bool   `gorm:"default:false" json:"is_closed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
