package dto

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=customer barber"`

	// Barber only.
	ShopName        string `json:"shop_name"`
	ShopDescription string `json:"shop_description"`
	ShopAddress     string `json:"shop_address"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type DayHoursRequest struct {
	Day       string `json:"day" binding:"required,weekday"`
	OpenTime  string `json:"open_time" binding:"omitempty,hhmm"`
	CloseTime string `json:"close_time" binding:"omitempty,hhmm"`
	IsClosed  bool   `json:"is_closed"`
}

type OperatingHoursRequest struct {
	Days []DayHoursRequest `json:"days" binding:"required,dive"`
}

type ReviewBarberRequest struct {
	Status string `json:"status" binding:"required"`
}
