package booking

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-marketplace/internal/audit"
	"github.com/BruksfildServices01/barber-marketplace/internal/domain/barber"
	domain "github.com/BruksfildServices01/barber-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/identity"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
	"github.com/BruksfildServices01/barber-marketplace/internal/testfixtures"
)

type recorder struct {
	mu     sync.Mutex
	events []audit.Event
}

func (r *recorder) Dispatch(ev audit.Event) {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
}

func (r *recorder) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Action
	}
	return out
}

type fixture struct {
	store   *testfixtures.Store
	clock   *testfixtures.Clock
	audit   *recorder
	profile models.BarberProfile
	service models.Service

	customer identity.Identity
	barber   identity.Identity
}

// newFixture seeds one approved barber with no operating hours (so the
// 10:00-22:00 default applies) and a 30 minute service. The clock reads
// Monday 2026-03-02 09:00.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := testfixtures.NewStore()
	profile := store.AddBarber("fade", barber.ProfileApproved)
	service := store.AddService(profile.ID, "Haircut", 30, 25)
	customer := store.AddUser(models.User{Name: "Ana", Email: "ana@example.com", Role: string(identity.RoleCustomer)})

	return &fixture{
		store:    store,
		clock:    testfixtures.NewClock(time.Time{}),
		audit:    &recorder{},
		profile:  profile,
		service:  service,
		customer: identity.Identity{UserID: customer.ID, Role: identity.RoleCustomer},
		barber:   identity.Identity{UserID: profile.UserID, Role: identity.RoleBarber, BarberID: profile.ID},
	}
}

func (f *fixture) validator(t *testing.T) *domain.Validator {
	w, err := domain.NewWindow("10:00", "22:00")
	require.NoError(t, err)
	return domain.NewValidator(w)
}

func (f *fixture) create(t *testing.T, policy Policy) *CreateBooking {
	if policy.DefaultDuration == 0 {
		policy.DefaultDuration = 30 * time.Minute
	}
	return NewCreateBooking(f.store, f.validator(t), f.clock, f.audit, policy)
}

func (f *fixture) otherCustomer() identity.Identity {
	u := f.store.AddUser(models.User{Name: "Bea", Email: "bea@example.com", Role: string(identity.RoleCustomer)})
	return identity.Identity{UserID: u.ID, Role: identity.RoleCustomer}
}

func (f *fixture) seedBooking(date, clock string, status domain.Status) models.Booking {
	start, err := time.Parse("2006-01-02 15:04", date+" "+clock)
	if err != nil {
		panic(err)
	}
	return f.store.AddBooking(models.Booking{
		CustomerID:  f.customer.UserID,
		BarberID:    f.profile.ID,
		ServiceID:   f.service.ID,
		StartTime:   start,
		EndTime:     start.Add(30 * time.Minute),
		DurationMin: 30,
		Status:      string(status),
	})
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	be, ok := httperr.AsBusiness(err)
	require.True(t, ok, "expected business error %q, got %v", code, err)
	require.Equal(t, code, be.Code)
}

func intPtr(v int) *int    { return &v }
func uintPtr(v uint) *uint { return &v }
