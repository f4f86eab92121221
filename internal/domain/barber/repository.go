package barber

import (
	"context"

	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

type Repository interface {
	GetBarberProfile(ctx context.Context, barberID uint) (*models.BarberProfile, error)

	// UpdateProfileStatus applies the change only while the profile is in
	// from; otherwise it returns ErrInvalidReview.
	UpdateProfileStatus(ctx context.Context, barberID uint, from, to ProfileStatus) (*models.BarberProfile, error)

	ListOperatingHours(ctx context.Context, barberID uint) ([]models.OperatingHour, error)

	// ReplaceOperatingHours swaps the barber's rows atomically.
	ReplaceOperatingHours(ctx context.Context, barberID uint, rows []models.OperatingHour) error
}
