package models

import "time"

// BarberProfile is the shop a barber user operates. Bookings, services,
// team members and operating hours all hang off its ID.
type BarberProfile struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ShopName    string `gorm:"size:150;not null" json:"shop_name"`
	Description string `gorm:"type:text" json:"description"`
	Address     string `gorm:"size:200" json:"address"`
	Phone       string `gorm:"size:20" json:"phone"`
	Email       string `gorm:"size:120" json:"email"`
	Status      string `gorm:"size:20;not null;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
