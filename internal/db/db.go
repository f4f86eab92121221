package db

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-marketplace/internal/config"
	"github.com/BruksfildServices01/barber-marketplace/internal/identity"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

// bookingsNoOverlap keeps live bookings of one barber from overlapping on
// [start, end). Inserts that violate it fail with SQLSTATE 23P01.
const bookingsNoOverlap = `
DO $$
BEGIN
    IF NOT EXISTS (
        SELECT 1 FROM pg_constraint WHERE conname = 'bookings_no_overlap'
    ) THEN
        ALTER TABLE bookings
            ADD CONSTRAINT bookings_no_overlap
            EXCLUDE USING gist (
                barber_id WITH =,
                tsrange(start_time, end_time, '[)') WITH &&
            )
            WHERE (status IN ('pending', 'approved'));
    END IF;
END
$$;`

func NewDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, err
	}
	log.Info("database migrated")

	if cfg.AdminEmail != "" {
		if err := EnsureAdmin(context.Background(), db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			return nil, err
		}
		log.Info("admin account ensured", zap.String("email", cfg.AdminEmail))
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.BarberProfile{},
		&models.Service{},
		&models.TeamMember{},
		&models.OperatingHour{},
		&models.Booking{},
		&models.AuditLog{},
	); err != nil {
		return err
	}

	return db.Exec(bookingsNoOverlap).Error
}

// EnsureAdmin creates the administrator account once. Admins cannot
// self-register.
func EnsureAdmin(ctx context.Context, db *gorm.DB, email, password string) error {
	email = identity.NormalizeEmail(email)

	var existing models.User
	err := db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := identity.HashPassword(password)
	if err != nil {
		return err
	}
	return db.WithContext(ctx).Create(&models.User{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: hash,
		Role:         string(identity.RoleAdmin),
	}).Error
}
