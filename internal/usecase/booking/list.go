package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/barber-marketplace/internal/dto"
	"github.com/BruksfildServices01/barber-marketplace/internal/identity"
	"github.com/BruksfildServices01/barber-marketplace/internal/timezone"
)

type ListQuery struct {
	Status string // optional
	Date   string // optional, YYYY-MM-DD
}

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// ForCustomer lists the caller's own bookings, live and historical.
func (uc *ListBookings) ForCustomer(ctx context.Context, who identity.Identity, q ListQuery) ([]dto.BookingDTO, error) {
	if !who.Is(identity.RoleCustomer) {
		return nil, domain.ErrUnauthorized
	}
	return uc.list(ctx, domain.ListFilter{CustomerID: &who.UserID}, q)
}

// ForBarber lists bookings of the caller's shop.
func (uc *ListBookings) ForBarber(ctx context.Context, who identity.Identity, q ListQuery) ([]dto.BookingDTO, error) {
	if !who.Is(identity.RoleBarber) || who.BarberID == 0 {
		return nil, domain.ErrUnauthorized
	}
	return uc.list(ctx, domain.ListFilter{BarberID: &who.BarberID}, q)
}

func (uc *ListBookings) All(ctx context.Context, who identity.Identity, q ListQuery) ([]dto.BookingDTO, error) {
	if !who.Is(identity.RoleAdmin) {
		return nil, domain.ErrUnauthorized
	}
	return uc.list(ctx, domain.ListFilter{}, q)
}

func (uc *ListBookings) list(ctx context.Context, f domain.ListFilter, q ListQuery) ([]dto.BookingDTO, error) {
	if q.Status != "" {
		st, err := domain.ParseStatus(q.Status)
		if err != nil {
			return nil, domain.Invalid("unknown status filter")
		}
		f.Statuses = []domain.Status{st}
	}

	if q.Date != "" {
		day, err := timezone.ParseDate(q.Date)
		if err != nil {
			return nil, domain.Invalid("date must be YYYY-MM-DD")
		}
		end := day.Add(24 * time.Hour)
		f.From, f.To = &day, &end
	}

	bookings, err := uc.repo.ListBookings(ctx, f)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingDTO, 0, len(bookings))
	for i := range bookings {
		out = append(out, dto.FromBooking(&bookings[i]))
	}
	return out, nil
}
