package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/identity"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
	"github.com/BruksfildServices01/barber-marketplace/internal/usecase/account"
)

type AccountGormRepository struct {
	db *gorm.DB
}

func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{db: db}
}

func (r *AccountGormRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, identity.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *AccountGormRepository) FindBarberProfileByUser(ctx context.Context, userID uint) (*models.BarberProfile, error) {
	var p models.BarberProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (r *AccountGormRepository) CreateAccount(
	ctx context.Context,
	user *models.User,
	profile *models.BarberProfile,
) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		if profile == nil {
			return nil
		}
		profile.UserID = user.ID
		return tx.Omit(clause.Associations).Create(profile).Error
	})
	if httperr.IsUniqueViolation(err) {
		return identity.ErrEmailTaken
	}
	return err
}

var (
	_ identity.Directory = (*AccountGormRepository)(nil)
	_ account.Repository = (*AccountGormRepository)(nil)
)
