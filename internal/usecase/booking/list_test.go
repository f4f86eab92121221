package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/barber-marketplace/internal/identity"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

func TestListBookings(t *testing.T) {
	f := newFixture(t)
	f.seedBooking("2026-03-03", "12:00", domain.StatusPending)
	f.seedBooking("2026-03-02", "15:00", domain.StatusCancelled)
	f.seedBooking("2026-03-03", "10:00", domain.StatusApproved)

	other := f.otherCustomer()
	f.store.AddBooking(models.Booking{CustomerID: other.UserID, BarberID: f.profile.ID, Status: "pending"})

	uc := NewListBookings(f.store)
	ctx := context.Background()

	mine, err := uc.ForCustomer(ctx, f.customer, ListQuery{})
	require.NoError(t, err)
	require.Len(t, mine, 3)
	assert.Equal(t, "2026-03-02", mine[0].Date)
	assert.Equal(t, "10:00", mine[1].StartTime)

	pending, err := uc.ForCustomer(ctx, f.customer, ListQuery{Status: "pending"})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "12:00", pending[0].StartTime)

	onDay, err := uc.ForCustomer(ctx, f.customer, ListQuery{Date: "2026-03-03"})
	require.NoError(t, err)
	assert.Len(t, onDay, 2)

	shop, err := uc.ForBarber(ctx, f.barber, ListQuery{})
	require.NoError(t, err)
	assert.Len(t, shop, 4)

	_, err = uc.ForBarber(ctx, f.customer, ListQuery{})
	requireCode(t, err, domain.CodeUnauthorized)

	_, err = uc.All(ctx, f.barber, ListQuery{})
	requireCode(t, err, domain.CodeUnauthorized)

	all, err := uc.All(ctx, identity.Identity{UserID: 1, Role: identity.RoleAdmin}, ListQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	_, err = uc.ForCustomer(ctx, f.customer, ListQuery{Status: "finished"})
	requireCode(t, err, domain.CodeValidation)

	_, err = uc.ForCustomer(ctx, f.customer, ListQuery{Date: "03/03/2026"})
	requireCode(t, err, domain.CodeValidation)
}
