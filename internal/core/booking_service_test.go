package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookify-backend-go/internal/models"
)

func newBookingFixture(roles map[string]models.Role, bookings ...*models.Booking) (BookingService, *fakeBookingRepo, *fakeServiceRepo) {
	bookingRepo := newFakeBookingRepo(bookings...)
	serviceRepo := newFakeServiceRepo(&models.Service{
		ID:    "svc-cleaning",
		Title: "Cleaning",
		Price: 50,
	})
	svc := NewBookingService(bookingRepo, serviceRepo, newTestIdentity(roles))
	return svc, bookingRepo, serviceRepo
}

func validBookingRequest() models.CreateBookingRequest {
	return models.CreateBookingRequest{
		ServiceID:   "svc-cleaning",
		BookingDate: "2026-09-15",
		BookingTime: "14:00",
		Address:     "1 Main St",
	}
}

func TestBookingService_Create_SnapshotsServiceAndForcesPending(t *testing.T) {
	svc, bookingRepo, _ := newBookingFixture(nil)

	booking, err := svc.Create(context.Background(), "user-1", validBookingRequest())
	require.NoError(t, err)

	assert.Equal(t, "user-1", booking.UserID)
	assert.Equal(t, models.BookingPending, booking.Status)
	assert.Equal(t, 50.0, booking.TotalPrice)
	assert.Equal(t, "Cleaning", booking.ServiceTitle)
	assert.False(t, booking.CreatedAt.IsZero())
	require.Len(t, bookingRepo.created, 1)
}

func TestBookingService_Create_RequiresAuthentication(t *testing.T) {
	svc, bookingRepo, _ := newBookingFixture(nil)

	_, err := svc.Create(context.Background(), "", validBookingRequest())
	assert.ErrorIs(t, err, ErrAuthRequired)
	assert.Empty(t, bookingRepo.created)
}

func TestBookingService_Create_ListsAllMissingFields(t *testing.T) {
	svc, _, _ := newBookingFixture(nil)

	_, err := svc.Create(context.Background(), "user-1", models.CreateBookingRequest{
		ServiceID: "svc-cleaning",
	})
	require.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "booking_date")
	assert.Contains(t, err.Error(), "booking_time")
	assert.Contains(t, err.Error(), "address")
	assert.NotContains(t, err.Error(), "service_id")
}

func TestBookingService_Create_UnknownService(t *testing.T) {
	svc, bookingRepo, _ := newBookingFixture(nil)

	req := validBookingRequest()
	req.ServiceID = "svc-missing"
	_, err := svc.Create(context.Background(), "user-1", req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
	assert.Empty(t, bookingRepo.created)
}

func TestBookingService_Update_OwnerEditsPendingBooking(t *testing.T) {
	svc, bookingRepo, _ := newBookingFixture(nil, &models.Booking{
		ID: "bkg-1", UserID: "user-1", Status: models.BookingPending, Address: "1 Main St",
	})

	updated, err := svc.Update(context.Background(), "user-1", "bkg-1", models.UpdateBookingRequest{
		Address: strPtr("2 Side St"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2 Side St", updated.Address)
	assert.Equal(t, models.BookingPending, updated.Status)
	require.Len(t, bookingRepo.updated, 1)
}

func TestBookingService_Update_WritesBackCompleteDocument(t *testing.T) {
	createdAt := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	svc, bookingRepo, _ := newBookingFixture(nil, &models.Booking{
		ID:           "bkg-1",
		UserID:       "user-1",
		ServiceID:    "svc-cleaning",
		BookingDate:  "2026-09-15",
		BookingTime:  "14:00",
		Address:      "1 Main St",
		TotalPrice:   50,
		ServiceTitle: "Cleaning",
		Status:       models.BookingPending,
		CreatedAt:    createdAt,
	})

	_, err := svc.Update(context.Background(), "user-1", "bkg-1", models.UpdateBookingRequest{
		Address: strPtr("2 Side St"),
	})
	require.NoError(t, err)

	// The repository write is a full document replacement, so every field
	// the caller did not touch must still be present in what was written.
	require.Len(t, bookingRepo.updated, 1)
	written := bookingRepo.updated[0]
	assert.Equal(t, "user-1", written.UserID)
	assert.Equal(t, "svc-cleaning", written.ServiceID)
	assert.Equal(t, "2026-09-15", written.BookingDate)
	assert.Equal(t, "14:00", written.BookingTime)
	assert.Equal(t, "2 Side St", written.Address)
	assert.Equal(t, 50.0, written.TotalPrice)
	assert.Equal(t, "Cleaning", written.ServiceTitle)
	assert.Equal(t, models.BookingPending, written.Status)
	assert.Equal(t, createdAt, written.CreatedAt)
}

func TestBookingService_Update_OwnerCancelsConfirmedBooking(t *testing.T) {
	svc, _, _ := newBookingFixture(nil, &models.Booking{
		ID: "bkg-1", UserID: "user-1", Status: models.BookingConfirmed,
	})

	updated, err := svc.Update(context.Background(), "user-1", "bkg-1", models.UpdateBookingRequest{
		Status: statusPtr(models.BookingCancelled),
	})
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, updated.Status)
}

func TestBookingService_Update_OwnerCannotConfirm(t *testing.T) {
	svc, bookingRepo, _ := newBookingFixture(nil, &models.Booking{
		ID: "bkg-1", UserID: "user-1", Status: models.BookingPending,
	})

	// A requested non-cancellation status is dropped; with no other field the
	// update has nothing to apply.
	_, err := svc.Update(context.Background(), "user-1", "bkg-1", models.UpdateBookingRequest{
		Status: statusPtr(models.BookingConfirmed),
	})
	require.True(t, IsValidation(err))
	assert.Empty(t, bookingRepo.updated)

	// The accompanying field edit still applies while the status is ignored.
	updated, err := svc.Update(context.Background(), "user-1", "bkg-1", models.UpdateBookingRequest{
		Status:  statusPtr(models.BookingConfirmed),
		Address: strPtr("2 Side St"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, updated.Status)
	assert.Equal(t, "2 Side St", updated.Address)
}

func TestBookingService_Update_OwnerRejectedOnTerminalBooking(t *testing.T) {
	for _, status := range []models.BookingStatus{models.BookingCompleted, models.BookingCancelled} {
		svc, bookingRepo, _ := newBookingFixture(nil, &models.Booking{
			ID: "bkg-1", UserID: "user-1", Status: status,
		})

		_, err := svc.Update(context.Background(), "user-1", "bkg-1", models.UpdateBookingRequest{
			Address: strPtr("2 Side St"),
		})
		require.True(t, IsValidation(err), "status %s", status)
		assert.Empty(t, bookingRepo.updated)
	}
}

func TestBookingService_Update_AdminSetsAnyStatus(t *testing.T) {
	svc, _, _ := newBookingFixture(
		map[string]models.Role{"admin-1": models.RoleAdmin},
		&models.Booking{ID: "bkg-1", UserID: "user-1", Status: models.BookingCompleted, TotalPrice: 50},
	)

	// Admins may reopen terminal bookings and adjust the price.
	updated, err := svc.Update(context.Background(), "admin-1", "bkg-1", models.UpdateBookingRequest{
		Status:     statusPtr(models.BookingConfirmed),
		TotalPrice: floatPtr(75),
	})
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, updated.Status)
	assert.Equal(t, 75.0, updated.TotalPrice)
}

func TestBookingService_Update_AdminRejectsInvalidStatus(t *testing.T) {
	svc, bookingRepo, _ := newBookingFixture(
		map[string]models.Role{"admin-1": models.RoleAdmin},
		&models.Booking{ID: "bkg-1", UserID: "user-1", Status: models.BookingPending},
	)

	_, err := svc.Update(context.Background(), "admin-1", "bkg-1", models.UpdateBookingRequest{
		Status: statusPtr(models.BookingStatus("archived")),
	})
	require.True(t, IsValidation(err))
	assert.Empty(t, bookingRepo.updated)
}

func TestBookingService_Update_ForeignOwnerForbidden(t *testing.T) {
	svc, _, _ := newBookingFixture(nil, &models.Booking{
		ID: "bkg-1", UserID: "user-1", Status: models.BookingPending,
	})

	_, err := svc.Update(context.Background(), "user-2", "bkg-1", models.UpdateBookingRequest{
		Address: strPtr("2 Side St"),
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestBookingService_Update_NotFoundAndNoFields(t *testing.T) {
	svc, _, _ := newBookingFixture(nil, &models.Booking{
		ID: "bkg-1", UserID: "user-1", Status: models.BookingPending,
	})
	ctx := context.Background()

	_, err := svc.Update(ctx, "user-1", "bkg-missing", models.UpdateBookingRequest{})
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = svc.Update(ctx, "user-1", "bkg-1", models.UpdateBookingRequest{})
	assert.True(t, IsValidation(err))

	_, err = svc.Update(ctx, "", "bkg-1", models.UpdateBookingRequest{})
	assert.ErrorIs(t, err, ErrAuthRequired)
}

func TestBookingService_ListAll_RequiresAdmin(t *testing.T) {
	svc, _, _ := newBookingFixture(
		map[string]models.Role{"admin-1": models.RoleAdmin},
		&models.Booking{ID: "bkg-1", UserID: "user-1", Status: models.BookingPending},
		&models.Booking{ID: "bkg-2", UserID: "user-2", Status: models.BookingConfirmed},
	)
	ctx := context.Background()

	_, err := svc.ListAll(ctx, "user-1")
	assert.ErrorIs(t, err, ErrAdminRequired)

	bookings, err := svc.ListAll(ctx, "admin-1")
	require.NoError(t, err)
	assert.Len(t, bookings, 2)
}

func TestBookingService_ListForOwner_ScopedToCaller(t *testing.T) {
	svc, _, _ := newBookingFixture(nil,
		&models.Booking{ID: "bkg-1", UserID: "user-1", Status: models.BookingPending},
		&models.Booking{ID: "bkg-2", UserID: "user-2", Status: models.BookingPending},
	)

	bookings, err := svc.ListForOwner(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "bkg-1", bookings[0].ID)

	_, err = svc.ListForOwner(context.Background(), "")
	assert.ErrorIs(t, err, ErrAuthRequired)
}

func TestBookingService_StatsForOwner(t *testing.T) {
	svc, _, _ := newBookingFixture(nil,
		&models.Booking{ID: "bkg-1", UserID: "user-1", Status: models.BookingPending},
		&models.Booking{ID: "bkg-2", UserID: "user-1", Status: models.BookingCompleted},
		&models.Booking{ID: "bkg-3", UserID: "user-1", Status: models.BookingCancelled},
		&models.Booking{ID: "bkg-4", UserID: "user-2", Status: models.BookingPending},
	)

	stats, err := svc.StatsForOwner(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 1, stats.Pending)
}
