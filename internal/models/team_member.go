package models

import "time"

type TeamMember struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"index;not null" json:"barber_id"`

	Name      string `gorm:"size:120;not null" json:"name"`
	Specialty string `gorm:"size:120" json:"specialty"`

	CreatedAt time.Time `json:"created_at"`
}
