package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-marketplace/internal/domain/barber"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

type BarberGormRepository struct {
	db *gorm.DB
}

func NewBarberGormRepository(db *gorm.DB) *BarberGormRepository {
	return &BarberGormRepository{db: db}
}

func (r *BarberGormRepository) GetBarberProfile(ctx context.Context, barberID uint) (*models.BarberProfile, error) {
	var p models.BarberProfile
	if err := r.db.WithContext(ctx).First(&p, barberID).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (r *BarberGormRepository) UpdateProfileStatus(
	ctx context.Context,
	barberID uint,
	from domain.ProfileStatus,
	to domain.ProfileStatus,
) (*models.BarberProfile, error) {

	res := r.db.WithContext(ctx).
		Model(&models.BarberProfile{}).
		Where("id = ? AND status = ?", barberID, string(from)).
		Update("status", string(to))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := r.GetBarberProfile(ctx, barberID); err != nil {
			return nil, err
		}
		return nil, domain.ErrInvalidReview
	}
	return r.GetBarberProfile(ctx, barberID)
}

// --------------------------------------------------
// Operating hours
// --------------------------------------------------

func (r *BarberGormRepository) ListOperatingHours(ctx context.Context, barberID uint) ([]models.OperatingHour, error) {
	var rows []models.OperatingHour
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *BarberGormRepository) ReplaceOperatingHours(
	ctx context.Context,
	barberID uint,
	rows []models.OperatingHour,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("barber_id = ?", barberID).Delete(&models.OperatingHour{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

var _ domain.Repository = (*BarberGormRepository)(nil)
