package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"bookify-backend-go/internal/models"
)

const bookingsCollection = "bookings"

// firestoreBookingRepository implements the BookingRepository interface using Firestore.
type firestoreBookingRepository struct {
	client *firestore.Client
}

// NewFirestoreBookingRepository creates a new instance of firestoreBookingRepository.
func NewFirestoreBookingRepository(client *firestore.Client) BookingRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for BookingRepository.")
	}
	return &firestoreBookingRepository{client: client}
}

// Create adds a new booking document with an auto-generated ID.
func (r *firestoreBookingRepository) Create(ctx context.Context, booking *models.Booking) (string, error) {
	docRef := r.client.Collection(bookingsCollection).NewDoc()
	booking.ID = docRef.ID
	if _, err := docRef.Create(ctx, booking); err != nil {
		return "", fmt.Errorf("failed to create booking: %w", err)
	}
	return docRef.ID, nil
}

// GetByID retrieves a booking document from Firestore by its ID.
func (r *firestoreBookingRepository) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	if bookingID == "" {
		return nil, errors.New("bookingID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(bookingsCollection).Doc(bookingID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("booking with ID '%s' not found: %w", bookingID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get booking with ID '%s': %w", bookingID, err)
	}

	var booking models.Booking
	if err := docSnap.DataTo(&booking); err != nil {
		return nil, fmt.Errorf("failed to decode booking data for ID '%s': %w", bookingID, err)
	}
	booking.ID = docSnap.Ref.ID
	return &booking, nil
}

// Update replaces the booking document with the given state. The booking
// service always loads the document before mutating it, so this is a full
// write-back: a plain Set without merge options (MergeAll only accepts map
// data). Field-level authorization is the booking service's concern; by the
// time a booking reaches here it already carries only permitted changes.
func (r *firestoreBookingRepository) Update(ctx context.Context, booking *models.Booking) error {
	if booking.ID == "" {
		return errors.New("booking ID cannot be empty for Update operation")
	}
	_, err := r.client.Collection(bookingsCollection).Doc(booking.ID).Set(ctx, booking)
	if err != nil {
		return fmt.Errorf("failed to update booking with ID '%s': %w", booking.ID, err)
	}
	return nil
}

// ListByOwner retrieves up to limit bookings owned by ownerID.
func (r *firestoreBookingRepository) ListByOwner(ctx context.Context, ownerID string, limit int) ([]*models.Booking, error) {
	if ownerID == "" {
		return nil, errors.New("ownerID cannot be empty for ListByOwner operation")
	}
	query := r.client.Collection(bookingsCollection).Where("user_id", "==", ownerID).Limit(limit)
	return r.collect(ctx, query)
}

// ListAll retrieves up to limit bookings across all owners, newest first.
func (r *firestoreBookingRepository) ListAll(ctx context.Context, limit int) ([]*models.Booking, error) {
	query := r.client.Collection(bookingsCollection).OrderBy("created_at", firestore.Desc).Limit(limit)
	return r.collect(ctx, query)
}

func (r *firestoreBookingRepository) collect(ctx context.Context, query firestore.Query) ([]*models.Booking, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	var bookings []*models.Booking
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate bookings: %w", err)
		}

		var booking models.Booking
		if err := doc.DataTo(&booking); err != nil {
			log.Printf("Error decoding booking data (ID: %s): %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		booking.ID = doc.Ref.ID
		bookings = append(bookings, &booking)
	}
	return bookings, nil
}
