package models

import "time"

type Service struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"index;not null" json:"barber_id"`

	Name        string  `gorm:"size:120;not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	DurationMin int     `json:"duration_min"`
	Price       float64 `json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
