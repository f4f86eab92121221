package dto

import (
	"time"

	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	BarberID     uint   `json:"barber_id" binding:"required"`
	ServiceID    uint   `json:"service_id" binding:"required"`
	TeamMemberID *uint  `json:"team_member_id"`
	Date         string `json:"date" binding:"required,datetime=2006-01-02"`
	Time         string `json:"time" binding:"required,hhmm"`
	Duration     *int   `json:"duration" binding:"omitempty,gt=0"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ListBookingsQuery struct {
	Status string `form:"status" binding:"omitempty,booking_status"`
	Date   string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

type AvailabilityQuery struct {
	Date      string `form:"date" binding:"required,datetime=2006-01-02"`
	ServiceID uint   `form:"service_id"`
}

// ======================================================
// RESPONSES
// ======================================================

type BookingDTO struct {
	ID           uint       `json:"booking_id"`
	CustomerID   uint       `json:"customer_id"`
	BarberID     uint       `json:"barber_id"`
	ServiceID    uint       `json:"service_id"`
	TeamMemberID *uint      `json:"team_member_id,omitempty"`
	TeamMember   string     `json:"team_member,omitempty"`
	Date         string     `json:"date"`
	StartTime    string     `json:"start_time"`
	EndTime      string     `json:"end_time"`
	DurationMin  int        `json:"duration_min"`
	Price        float64    `json:"price"`
	Status       string     `json:"status"`
	CancelledAt  *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func FromBooking(b *models.Booking) BookingDTO {
	return BookingDTO{
		ID:           b.ID,
		CustomerID:   b.CustomerID,
		BarberID:     b.BarberID,
		ServiceID:    b.ServiceID,
		TeamMemberID: b.TeamMemberID,
		TeamMember:   b.TeamMember,
		Date:         b.StartTime.Format("2006-01-02"),
		StartTime:    b.StartTime.Format("15:04"),
		EndTime:      b.EndTime.Format("15:04"),
		DurationMin:  b.DurationMin,
		Price:        b.Price,
		Status:       b.Status,
		CancelledAt:  b.CancelledAt,
		CreatedAt:    b.CreatedAt,
	}
}
