package db

import (
	"context"
	"errors"

	"bookify-backend-go/internal/models"
)

// ErrNotFound is the common error for when a document is not found in Firestore.
// Services translate it into their own not-found sentinels.
var ErrNotFound = errors.New("document not found")

// ServiceRepository defines the interface for service catalog storage operations.
type ServiceRepository interface {
	List(ctx context.Context, limit int) ([]*models.Service, error)
	GetByID(ctx context.Context, serviceID string) (*models.Service, error)
	Create(ctx context.Context, service *models.Service) (string, error) // Returns new document ID
	Update(ctx context.Context, service *models.Service) error
	Delete(ctx context.Context, serviceID string) error
}

// CategoryRepository defines the interface for category storage operations.
type CategoryRepository interface {
	List(ctx context.Context, limit int) ([]*models.Category, error) // Ordered by name
	Create(ctx context.Context, category *models.Category) (string, error)
	Delete(ctx context.Context, categoryID string) error
}

// BookingRepository defines the interface for booking storage operations.
// Bookings are never deleted; they only change status.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) (string, error)
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	Update(ctx context.Context, booking *models.Booking) error
	ListByOwner(ctx context.Context, ownerID string, limit int) ([]*models.Booking, error)
	ListAll(ctx context.Context, limit int) ([]*models.Booking, error) // created_at descending
}

// ProfileRepository defines the interface for profile storage operations.
// The document ID is the account UID.
type ProfileRepository interface {
	GetByID(ctx context.Context, uid string) (*models.Profile, error)
	// Upsert merge-writes only the given fields, creating the document if
	// it does not exist yet. Fields not present in the map are preserved.
	Upsert(ctx context.Context, uid string, fields map[string]interface{}) error
	// ListAll returns all profiles keyed by UID, for account reconciliation.
	ListAll(ctx context.Context, limit int) (map[string]*models.Profile, error)
}

// RoleRepository defines the interface for role assignment storage operations.
// The document ID is the account UID; at most one assignment per UID.
type RoleRepository interface {
	GetByID(ctx context.Context, uid string) (*models.RoleAssignment, error)
	Set(ctx context.Context, uid string, role models.Role) error // Last write wins
	// ListAll returns all role assignments keyed by UID, for reconciliation.
	ListAll(ctx context.Context, limit int) (map[string]models.Role, error)
}

// AccountDirectory defines the interface to the identity provider's account
// population. Token verification happens upstream in the auth middleware;
// this covers enumeration and the bootstrap operations.
type AccountDirectory interface {
	// ListAccounts enumerates provider accounts page by page. The limit is a
	// soft cap to bound response size for administrative listings.
	ListAccounts(ctx context.Context, limit int) ([]models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	CreateAccount(ctx context.Context, email, password, displayName string) (*models.Account, error)
}
