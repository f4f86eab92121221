package barber

import (
	"context"

	domain "github.com/BruksfildServices01/barber-marketplace/internal/domain/barber"
	"github.com/BruksfildServices01/barber-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/barber-marketplace/internal/identity"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

type OperatingHours struct {
	repo domain.Repository
}

func NewOperatingHours(repo domain.Repository) *OperatingHours {
	return &OperatingHours{repo: repo}
}

// Set replaces the caller's weekly schedule. Days left out become closed.
func (uc *OperatingHours) Set(
	ctx context.Context,
	who identity.Identity,
	days []domain.DayHours,
) ([]models.OperatingHour, error) {

	if !who.Is(identity.RoleBarber) || who.BarberID == 0 {
		return nil, booking.ErrUnauthorized
	}

	rows, err := domain.BuildOperatingHours(who.BarberID, days)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.ReplaceOperatingHours(ctx, who.BarberID, rows); err != nil {
		return nil, err
	}
	return uc.repo.ListOperatingHours(ctx, who.BarberID)
}

func (uc *OperatingHours) Get(ctx context.Context, who identity.Identity) ([]models.OperatingHour, error) {
	if !who.Is(identity.RoleBarber) || who.BarberID == 0 {
		return nil, booking.ErrUnauthorized
	}
	return uc.repo.ListOperatingHours(ctx, who.BarberID)
}
