package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bookify-backend-go/internal/db"
	"bookify-backend-go/internal/models"
)

const (
	// ownerListLimit caps the owner's own booking listing.
	ownerListLimit = 100
	// adminListLimit caps the administrative all-bookings listing.
	adminListLimit = 500
	// statsScanLimit caps the scan behind the per-user stats summary.
	statsScanLimit = 1000
)

// bookingService implements the BookingService interface.
type bookingService struct {
	bookingRepo db.BookingRepository
	serviceRepo db.ServiceRepository
	identity    IdentityService
}

// NewBookingService creates a new BookingService instance.
func NewBookingService(
	bookingRepo db.BookingRepository,
	serviceRepo db.ServiceRepository,
	identity IdentityService,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		serviceRepo: serviceRepo,
		identity:    identity,
	}
}

// Create validates the booking request, snapshots price and title from the
// referenced service, and stores the booking with status forced to pending.
// The typed request cannot carry a status, price or title, so there is
// nothing caller-supplied to override the snapshot.
func (s *bookingService) Create(ctx context.Context, callerID string, req models.CreateBookingRequest) (*models.Booking, error) {
	caller, err := s.identity.ResolveCaller(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(caller, ActionCreateBooking, ""); err != nil {
		return nil, err
	}

	var missing []string
	if req.ServiceID == "" {
		missing = append(missing, "service_id")
	}
	if req.BookingDate == "" {
		missing = append(missing, "booking_date")
	}
	if req.BookingTime == "" {
		missing = append(missing, "booking_time")
	}
	if req.Address == "" {
		missing = append(missing, "address")
	}
	if len(missing) > 0 {
		return nil, NewValidationError("%s required", strings.Join(missing, ", "))
	}

	service, err := s.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: ID '%s'", ErrServiceNotFound, req.ServiceID)
		}
		return nil, fmt.Errorf("failed to resolve service '%s' for booking: %w", req.ServiceID, err)
	}

	booking := &models.Booking{
		UserID:       callerID,
		ServiceID:    req.ServiceID,
		BookingDate:  req.BookingDate,
		BookingTime:  req.BookingTime,
		Address:      req.Address,
		TotalPrice:   service.Price, // Snapshot, never re-read from the service
		ServiceTitle: service.Title, // Snapshot
		Status:       models.BookingPending,
		CreatedAt:    time.Now().UTC(),
	}

	if _, err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return booking, nil
}

// Update applies a PATCH to a booking. The admin path may set any status and
// adjust date, time, address and total price unconditionally. The owner path
// may edit date, time and address while the booking is not terminal, and may
// only transition the status to cancelled from pending or confirmed; any
// other requested status is ignored rather than applied.
func (s *bookingService) Update(ctx context.Context, callerID, bookingID string, req models.UpdateBookingRequest) (*models.Booking, error) {
	caller, err := s.identity.ResolveCaller(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if caller.ID == "" {
		return nil, ErrAuthRequired
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: ID '%s'", ErrBookingNotFound, bookingID)
		}
		return nil, fmt.Errorf("failed to get booking '%s' for update: %w", bookingID, err)
	}

	if err := Authorize(caller, ActionUpdateBooking, booking.UserID); err != nil {
		return nil, err
	}

	var changed bool
	if caller.IsAdmin() {
		changed, err = applyAdminBookingUpdate(booking, req)
	} else {
		changed, err = applyOwnerBookingUpdate(booking, req)
	}
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, NewValidationError("no updatable fields provided")
	}

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to update booking '%s': %w", bookingID, err)
	}
	return booking, nil
}

// applyAdminBookingUpdate mutates booking with the admin-permitted field set.
// Admins may reopen or adjust bookings that owners cannot.
func applyAdminBookingUpdate(booking *models.Booking, req models.UpdateBookingRequest) (bool, error) {
	changed := false
	if req.Status != nil {
		if !req.Status.IsValid() {
			return false, NewValidationError("invalid status '%s'", *req.Status)
		}
		booking.Status = *req.Status
		changed = true
	}
	if req.BookingDate != nil {
		booking.BookingDate = *req.BookingDate
		changed = true
	}
	if req.BookingTime != nil {
		booking.BookingTime = *req.BookingTime
		changed = true
	}
	if req.Address != nil {
		booking.Address = *req.Address
		changed = true
	}
	if req.TotalPrice != nil {
		booking.TotalPrice = *req.TotalPrice
		changed = true
	}
	return changed, nil
}

// applyOwnerBookingUpdate mutates booking with the owner-permitted field set.
// A terminal booking rejects any owner update. A requested status change is
// honored only when it is the cancelled transition from pending or
// confirmed; other requested statuses are dropped without error so that
// accompanying field edits still apply.
func applyOwnerBookingUpdate(booking *models.Booking, req models.UpdateBookingRequest) (bool, error) {
	if booking.Status.IsTerminal() {
		return false, NewValidationError("booking is in a terminal state")
	}

	changed := false
	if req.BookingDate != nil {
		booking.BookingDate = *req.BookingDate
		changed = true
	}
	if req.BookingTime != nil {
		booking.BookingTime = *req.BookingTime
		changed = true
	}
	if req.Address != nil {
		booking.Address = *req.Address
		changed = true
	}
	if req.Status != nil && *req.Status == models.BookingCancelled &&
		(booking.Status == models.BookingPending || booking.Status == models.BookingConfirmed) {
		booking.Status = models.BookingCancelled
		changed = true
	}
	return changed, nil
}

// ListForOwner returns the caller's own bookings.
func (s *bookingService) ListForOwner(ctx context.Context, callerID string) ([]*models.Booking, error) {
	caller, err := s.identity.ResolveCaller(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(caller, ActionListOwnBookings, ""); err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.ListByOwner(ctx, callerID, ownerListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for owner '%s': %w", callerID, err)
	}
	return bookings, nil
}

// ListAll returns all bookings, newest first. Admin only.
func (s *bookingService) ListAll(ctx context.Context, callerID string) ([]*models.Booking, error) {
	caller, err := s.identity.ResolveCaller(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(caller, ActionListAllBookings, ""); err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.ListAll(ctx, adminListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list all bookings: %w", err)
	}
	return bookings, nil
}

// StatsForOwner summarizes the caller's bookings by status.
func (s *bookingService) StatsForOwner(ctx context.Context, callerID string) (*models.BookingStats, error) {
	caller, err := s.identity.ResolveCaller(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(caller, ActionListOwnBookings, ""); err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.ListByOwner(ctx, callerID, statsScanLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to scan bookings for stats of owner '%s': %w", callerID, err)
	}

	stats := &models.BookingStats{Total: len(bookings)}
	for _, b := range bookings {
		switch b.Status {
		case models.BookingCompleted:
			stats.Completed++
		case models.BookingPending:
			stats.Pending++
		}
	}
	return stats, nil
}
