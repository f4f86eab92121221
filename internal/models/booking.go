package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint `gorm:"index;not null" json:"customer_id"`
	Customer   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"customer"`

	BarberID uint          `gorm:"index;not null" json:"barber_id"`
	Barber   BarberProfile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"barber"`

	ServiceID uint    `gorm:"not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service"`

	TeamMemberID *uint  `json:"team_member_id"`
	TeamMember   string `gorm:"size:120" json:"team_member"`

	// Wall-clock, barber-local.
	StartTime   time.Time `gorm:"type:timestamp;not null" json:"start_time"`
	EndTime     time.Time `gorm:"type:timestamp;not null" json:"end_time"`
	DurationMin int       `json:"duration_min"`

	Price  float64 `json:"price"`
	Status string  `gorm:"size:20;not null;default:'pending'" json:"status"`

	CancelledAt *time.Time `gorm:"type:timestamp" json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
