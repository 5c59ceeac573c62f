package core

import (
	"context"

	"bookify-backend-go/internal/models"
)

// IdentityService reconciles the three identity sources (provider account,
// profile document, role assignment) and is the single role-resolution path.
type IdentityService interface {
	// ResolveRole returns the role for a UID, defaulting to models.DefaultRole
	// when no assignment document exists. It never fails on a missing document.
	ResolveRole(ctx context.Context, uid string) (models.Role, error)
	// ResolveCaller bundles UID and resolved role. An empty UID yields the
	// zero Caller, which the policy gate treats as unauthenticated.
	ResolveCaller(ctx context.Context, uid string) (Caller, error)
	ResolveProfile(ctx context.Context, uid string) (*models.Profile, error)
	// ReconcileAccounts produces the merged admin listing of all identities,
	// sorted by creation timestamp descending (missing timestamps last).
	ReconcileAccounts(ctx context.Context, callerID string) ([]models.AccountRecord, error)
	// SetRole assigns a role to a target account, admin only, last write wins.
	SetRole(ctx context.Context, callerID, targetUID string, role models.Role) (*models.RoleAssignment, error)
}

// BookingService drives the booking lifecycle state machine.
type BookingService interface {
	Create(ctx context.Context, callerID string, req models.CreateBookingRequest) (*models.Booking, error)
	Update(ctx context.Context, callerID, bookingID string, req models.UpdateBookingRequest) (*models.Booking, error)
	ListForOwner(ctx context.Context, callerID string) ([]*models.Booking, error)
	ListAll(ctx context.Context, callerID string) ([]*models.Booking, error)
	StatsForOwner(ctx context.Context, callerID string) (*models.BookingStats, error)
}

// CatalogService manages the bookable services and their categories.
type CatalogService interface {
	ListServices(ctx context.Context) ([]*models.Service, error)
	GetService(ctx context.Context, serviceID string) (*models.Service, error)
	CreateService(ctx context.Context, callerID string, req models.CreateServiceRequest) (*models.Service, error)
	UpdateService(ctx context.Context, callerID, serviceID string, req models.UpdateServiceRequest) (*models.Service, error)
	DeleteService(ctx context.Context, callerID, serviceID string) error
	ListCategories(ctx context.Context) ([]*models.Category, error)
	CreateCategory(ctx context.Context, callerID string, req models.CreateCategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, callerID, categoryID string) error
}

// ProfileService manages the caller's own profile document.
type ProfileService interface {
	// Get returns the caller's profile, or an empty one when none is stored
	// yet. fallbackEmail (from the verified token) fills in a missing email.
	Get(ctx context.Context, callerID, fallbackEmail string) (*models.Profile, error)
	// Update merge-writes the provided fields; unspecified fields keep their
	// stored values.
	Update(ctx context.Context, callerID string, req models.UpdateProfileRequest) (*models.Profile, error)
}
