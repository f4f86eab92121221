package testfixtures

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/BruksfildServices01/barber-marketplace/internal/domain/barber"
	"github.com/BruksfildServices01/barber-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/barber-marketplace/internal/identity"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

// Store is an in-memory persistence store. InsertBooking enforces the same
// no-overlap rule as the Postgres exclusion constraint, atomically.
type Store struct {
	mu     sync.Mutex
	nextID uint
	fail   error

	users    map[uint]models.User
	profiles map[uint]models.BarberProfile
	services map[uint]models.Service
	members  map[uint]models.TeamMember
	hours    map[uint][]models.OperatingHour
	bookings map[uint]models.Booking

	barberLocks map[uint]*sync.Mutex

	// AfterOverlapCheck runs after every FindOverlappingBookings, outside the
	// store mutex. Race tests park goroutines here.
	AfterOverlapCheck func()

	// NoConstraint disables the overlap check in InsertBooking.
	NoConstraint bool
}

var (
	_ booking.Repository = (*Store)(nil)
	_ barber.Repository  = (*Store)(nil)
	_ identity.Directory = (*Store)(nil)
)

func NewStore() *Store {
	return &Store{
		users:       map[uint]models.User{},
		profiles:    map[uint]models.BarberProfile{},
		services:    map[uint]models.Service{},
		members:     map[uint]models.TeamMember{},
		hours:       map[uint][]models.OperatingHour{},
		bookings:    map[uint]models.Booking{},
		barberLocks: map[uint]*sync.Mutex{},
	}
}

// FailWith makes every store call return err until cleared with nil.
func (s *Store) FailWith(err error) {
	s.mu.Lock()
	s.fail = err
	s.mu.Unlock()
}

func (s *Store) id() uint {
	s.nextID++
	return s.nextID
}

// ===============================
// Seeding
// ===============================

func (s *Store) AddUser(u models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = s.id()
	s.users[u.ID] = u
	return u
}

// AddBarber creates a barber user and its profile in the given status.
func (s *Store) AddBarber(shop string, status barber.ProfileStatus) models.BarberProfile {
	u := s.AddUser(models.User{Name: shop + " owner", Email: shop + "@example.com", Role: string(identity.RoleBarber)})

	s.mu.Lock()
	defer s.mu.Unlock()
	p := models.BarberProfile{ID: s.id(), UserID: u.ID, ShopName: shop, Status: string(status)}
	s.profiles[p.ID] = p
	return p
}

func (s *Store) AddService(barberID uint, name string, durationMin int, price float64) models.Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	svc := models.Service{ID: s.id(), BarberID: barberID, Name: name, DurationMin: durationMin, Price: price}
	s.services[svc.ID] = svc
	return svc
}

func (s *Store) AddTeamMember(barberID uint, name string) models.TeamMember {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := models.TeamMember{ID: s.id(), BarberID: barberID, Name: name}
	s.members[m.ID] = m
	return m
}

// AddBooking stores b as given, bypassing the overlap rule.
func (s *Store) AddBooking(b models.Booking) models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.ID = s.id()
	s.bookings[b.ID] = b
	return b
}

func (s *Store) SetHours(barberID uint, rows ...models.OperatingHour) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range rows {
		rows[i].BarberID = barberID
	}
	s.hours[barberID] = rows
}

func (s *Store) Bookings() []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ===============================
// Transactions
// ===============================

type txView struct {
	*Store
	held []*sync.Mutex
}

func (t *txView) WithinTx(ctx context.Context, fn func(tx booking.Repository) error) error {
	return fn(t)
}

func (t *txView) LockBarber(ctx context.Context, barberID uint) error {
	m := t.Store.barberLock(barberID)
	m.Lock()
	t.held = append(t.held, m)
	return nil
}

func (s *Store) barberLock(barberID uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.barberLocks[barberID]
	if !ok {
		m = &sync.Mutex{}
		s.barberLocks[barberID] = m
	}
	return m
}

func (s *Store) WithinTx(ctx context.Context, fn func(tx booking.Repository) error) error {
	tx := &txView{Store: s}
	defer func() {
		for _, m := range tx.held {
			m.Unlock()
		}
	}()
	return fn(tx)
}

func (s *Store) LockBarber(ctx context.Context, barberID uint) error {
	return errors.New("testfixtures: LockBarber outside a transaction")
}

// ===============================
// Operating hours
// ===============================

func (s *Store) GetOperatingHours(ctx context.Context, barberID uint, day booking.Weekday) (*models.OperatingHour, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return nil, s.fail
	}
	for _, oh := range s.hours[barberID] {
		if oh.Day == string(day) {
			row := oh
			return &row, nil
		}
	}
	return nil, booking.ErrRecordNotFound
}

func (s *Store) HasOperatingHours(ctx context.Context, barberID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return false, s.fail
	}
	return len(s.hours[barberID]) > 0, nil
}

func (s *Store) ListOperatingHours(ctx context.Context, barberID uint) ([]models.OperatingHour, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return nil, s.fail
	}
	return append([]models.OperatingHour(nil), s.hours[barberID]...), nil
}

func (s *Store) ReplaceOperatingHours(ctx context.Context, barberID uint, rows []models.OperatingHour) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return s.fail
	}
	s.hours[barberID] = append([]models.OperatingHour(nil), rows...)
	return nil
}

// ===============================
// Catalog
// ===============================

func (s *Store) GetBarberProfile(ctx context.Context, barberID uint) (*models.BarberProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return nil, s.fail
	}
	p, ok := s.profiles[barberID]
	if !ok {
		return nil, booking.ErrRecordNotFound
	}
	return &p, nil
}

func (s *Store) UpdateProfileStatus(ctx context.Context, barberID uint, from, to barber.ProfileStatus) (*models.BarberProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return nil, s.fail
	}
	p, ok := s.profiles[barberID]
	if !ok {
		return nil, booking.ErrRecordNotFound
	}
	if p.Status != string(from) {
		return nil, barber.ErrInvalidReview
	}
	p.Status = string(to)
	s.profiles[barberID] = p
	return &p, nil
}

func (s *Store) GetService(ctx context.Context, barberID, serviceID uint) (*models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return nil, s.fail
	}
	svc, ok := s.services[serviceID]
	if !ok || svc.BarberID != barberID {
		return nil, booking.ErrRecordNotFound
	}
	return &svc, nil
}

func (s *Store) GetTeamMember(ctx context.Context, barberID, memberID uint) (*models.TeamMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return nil, s.fail
	}
	m, ok := s.members[memberID]
	if !ok || m.BarberID != barberID {
		return nil, booking.ErrRecordNotFound
	}
	return &m, nil
}

// ===============================
// Bookings
// ===============================

func hasStatus(b models.Booking, statuses []booking.Status) bool {
	for _, st := range statuses {
		if b.Status == string(st) {
			return true
		}
	}
	return false
}

func (s *Store) overlapping(barberID uint, start, end time.Time, statuses []booking.Status) []models.Booking {
	var out []models.Booking
	for _, b := range s.bookings {
		if b.BarberID == barberID && hasStatus(b, statuses) && booking.Overlaps(b.StartTime, b.EndTime, start, end) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out
}

func (s *Store) FindOverlappingBookings(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
	statuses []booking.Status,
) ([]models.Booking, error) {
	s.mu.Lock()
	if s.fail != nil {
		s.mu.Unlock()
		return nil, s.fail
	}
	out := s.overlapping(barberID, start, end, statuses)
	hook := s.AfterOverlapCheck
	s.mu.Unlock()

	if hook != nil {
		hook()
	}
	return out, nil
}

func (s *Store) InsertBooking(ctx context.Context, b *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return s.fail
	}
	if !s.NoConstraint && booking.Status(b.Status).IsLive() &&
		len(s.overlapping(b.BarberID, b.StartTime, b.EndTime, booking.LiveStatuses)) > 0 {
		return booking.ErrSlotConflict
	}

	b.ID = s.id()
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	s.bookings[b.ID] = *b
	return nil
}

func (s *Store) GetBooking(ctx context.Context, bookingID uint) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return nil, s.fail
	}
	b, ok := s.bookings[bookingID]
	if !ok {
		return nil, booking.ErrRecordNotFound
	}
	return &b, nil
}

func (s *Store) UpdateBookingStatus(
	ctx context.Context,
	bookingID uint,
	from booking.Status,
	to booking.Status,
	at time.Time,
) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return nil, s.fail
	}
	b, ok := s.bookings[bookingID]
	if !ok {
		return nil, booking.ErrRecordNotFound
	}
	if b.Status != string(from) {
		return nil, booking.ErrInvalidTransition
	}

	b.Status = string(to)
	b.UpdatedAt = at
	if to == booking.StatusCancelled {
		b.CancelledAt = &at
	}
	s.bookings[bookingID] = b
	return &b, nil
}

func (s *Store) DeleteBooking(ctx context.Context, bookingID uint, from booking.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return s.fail
	}
	b, ok := s.bookings[bookingID]
	if !ok {
		return booking.ErrRecordNotFound
	}
	if b.Status != string(from) {
		return booking.ErrInvalidTransition
	}
	delete(s.bookings, bookingID)
	return nil
}

func (s *Store) ListBookings(ctx context.Context, f booking.ListFilter) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return nil, s.fail
	}

	var out []models.Booking
	for _, b := range s.bookings {
		if f.CustomerID != nil && b.CustomerID != *f.CustomerID {
			continue
		}
		if f.BarberID != nil && b.BarberID != *f.BarberID {
			continue
		}
		if len(f.Statuses) > 0 && !hasStatus(b, f.Statuses) {
			continue
		}
		if f.From != nil && b.StartTime.Before(*f.From) {
			continue
		}
		if f.To != nil && !b.StartTime.Before(*f.To) {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

// ===============================
// Accounts
// ===============================

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return nil, s.fail
	}
	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, identity.ErrUserNotFound
}

func (s *Store) FindBarberProfileByUser(ctx context.Context, userID uint) (*models.BarberProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return nil, s.fail
	}
	for _, p := range s.profiles {
		if p.UserID == userID {
			return &p, nil
		}
	}
	return nil, booking.ErrRecordNotFound
}

// CreateAccount stores the user and, when given, its barber profile.
func (s *Store) CreateAccount(ctx context.Context, user *models.User, profile *models.BarberProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return s.fail
	}
	for _, u := range s.users {
		if u.Email == user.Email {
			return identity.ErrEmailTaken
		}
	}

	user.ID = s.id()
	s.users[user.ID] = *user
	if profile != nil {
		profile.ID = s.id()
		profile.UserID = user.ID
		s.profiles[profile.ID] = *profile
	}
	return nil
}
