package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

type ListFilter struct {
	CustomerID *uint
	BarberID   *uint
	Statuses   []Status
	From       *time.Time
	To         *time.Time
}

type Repository interface {
	Reader

	// WithinTx runs fn against a repository bound to one transaction.
	WithinTx(ctx context.Context, fn func(tx Repository) error) error

	// LockBarber serialises booking writes for one barber until the
	// surrounding transaction ends.
	LockBarber(ctx context.Context, barberID uint) error

	// -------- Catalog --------
	GetBarberProfile(ctx context.Context, barberID uint) (*models.BarberProfile, error)
	GetService(ctx context.Context, barberID uint, serviceID uint) (*models.Service, error)
	GetTeamMember(ctx context.Context, barberID uint, memberID uint) (*models.TeamMember, error)

	// -------- Booking --------

	// InsertBooking returns ErrSlotConflict when the store's overlap
	// constraint rejects the row.
	InsertBooking(ctx context.Context, b *models.Booking) error

	GetBooking(ctx context.Context, bookingID uint) (*models.Booking, error)

	// UpdateBookingStatus applies the change only if the booking is still in
	// from. It returns ErrRecordNotFound for unknown ids and
	// ErrInvalidTransition when the current status differs.
	UpdateBookingStatus(
		ctx context.Context,
		bookingID uint,
		from Status,
		to Status,
		at time.Time,
	) (*models.Booking, error)

	// DeleteBooking removes a live booking. Same errors as UpdateBookingStatus.
	DeleteBooking(ctx context.Context, bookingID uint, from Status) error

	ListBookings(ctx context.Context, filter ListFilter) ([]models.Booking, error)
}
