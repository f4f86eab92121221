package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barber-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Transactions
// --------------------------------------------------

func (r *BookingGormRepository) WithinTx(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingGormRepository{db: tx})
	})
}

// LockBarber takes a transaction-scoped advisory lock keyed by barber id.
// Outside a transaction it is released immediately and protects nothing.
func (r *BookingGormRepository) LockBarber(ctx context.Context, barberID uint) error {
	return r.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(?)", int64(barberID)).
		Error
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *BookingGormRepository) GetBarberProfile(
	ctx context.Context,
	barberID uint,
) (*models.BarberProfile, error) {

	var p models.BarberProfile
	if err := r.db.WithContext(ctx).First(&p, barberID).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	barberID uint,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barber_id = ?", serviceID, barberID).
		First(&svc).Error; err != nil {
		return nil, notFound(err)
	}
	return &svc, nil
}

func (r *BookingGormRepository) GetTeamMember(
	ctx context.Context,
	barberID uint,
	memberID uint,
) (*models.TeamMember, error) {

	var m models.TeamMember
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barber_id = ?", memberID, barberID).
		First(&m).Error; err != nil {
		return nil, notFound(err)
	}
	return &m, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) GetOperatingHours(
	ctx context.Context,
	barberID uint,
	day domain.Weekday,
) (*models.OperatingHour, error) {

	var oh models.OperatingHour
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND day = ?", barberID, string(day)).
		First(&oh).Error; err != nil {
		return nil, notFound(err)
	}
	return &oh, nil
}

func (r *BookingGormRepository) HasOperatingHours(ctx context.Context, barberID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.OperatingHour{}).
		Where("barber_id = ?", barberID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindOverlappingBookings locks the rows it returns when run inside a
// transaction.
func (r *BookingGormRepository) FindOverlappingBookings(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
	statuses []domain.Status,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"barber_id = ? AND status IN ? AND start_time < ? AND end_time > ?",
			barberID,
			domain.StatusStrings(statuses),
			end,
			start,
		).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) InsertBooking(ctx context.Context, b *models.Booking) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(b).Error
	if httperr.IsExclusionConflict(err) {
		return domain.ErrSlotConflict
	}
	return err
}

func (r *BookingGormRepository) GetBooking(ctx context.Context, bookingID uint) (*models.Booking, error) {
	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, bookingID).Error; err != nil {
		return nil, notFound(err)
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBookingStatus(
	ctx context.Context,
	bookingID uint,
	from domain.Status,
	to domain.Status,
	at time.Time,
) (*models.Booking, error) {

	updates := map[string]any{
		"status":     string(to),
		"updated_at": at,
	}
	if to == domain.StatusCancelled {
		updates["cancelled_at"] = at
	}

	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ? AND status = ?", bookingID, string(from)).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, r.missOrRace(ctx, bookingID)
	}

	return r.GetBooking(ctx, bookingID)
}

func (r *BookingGormRepository) DeleteBooking(ctx context.Context, bookingID uint, from domain.Status) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", bookingID, string(from)).
		Delete(&models.Booking{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return r.missOrRace(ctx, bookingID)
	}
	return nil
}

// missOrRace explains a conditional write that touched no rows: either the
// booking is gone or another request changed its status first.
func (r *BookingGormRepository) missOrRace(ctx context.Context, bookingID uint) error {
	if _, err := r.GetBooking(ctx, bookingID); err != nil {
		return err
	}
	return domain.ErrInvalidTransition
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).Model(&models.Booking{})
	if f.CustomerID != nil {
		q = q.Where("customer_id = ?", *f.CustomerID)
	}
	if f.BarberID != nil {
		q = q.Where("barber_id = ?", *f.BarberID)
	}
	if len(f.Statuses) > 0 {
		q = q.Where("status IN ?", domain.StatusStrings(f.Statuses))
	}
	if f.From != nil {
		q = q.Where("start_time >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("start_time < ?", *f.To)
	}

	var bookings []models.Booking
	if err := q.Order("start_time ASC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
