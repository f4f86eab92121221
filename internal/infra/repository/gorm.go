package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-marketplace/internal/domain/booking"
)

// notFound maps gorm's sentinel onto the domain's.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return booking.ErrRecordNotFound
	}
	return err
}
