package core

import (
	"context"
	"errors"
	"fmt"

	"bookify-backend-go/internal/db"
	"bookify-backend-go/internal/models"
)

const (
	// defaultAccountListLimit is the soft cap on the paged provider
	// enumeration when config does not override it.
	defaultAccountListLimit = 1000
	// collectionScanLimit bounds the profile/role full scans during
	// reconciliation.
	collectionScanLimit = 10000
)

// identityService implements the IdentityService interface.
type identityService struct {
	roleRepo         db.RoleRepository
	profileRepo      db.ProfileRepository
	accountDirectory db.AccountDirectory
	accountListLimit int
}

// NewIdentityService creates a new IdentityService instance.
// accountListLimit caps the provider enumeration in ReconcileAccounts;
// a non-positive value means the default.
func NewIdentityService(
	roleRepo db.RoleRepository,
	profileRepo db.ProfileRepository,
	accountDirectory db.AccountDirectory,
	accountListLimit int,
) IdentityService {
	if accountListLimit <= 0 {
		accountListLimit = defaultAccountListLimit
	}
	return &identityService{
		roleRepo:         roleRepo,
		profileRepo:      profileRepo,
		accountDirectory: accountDirectory,
		accountListLimit: accountListLimit,
	}
}

// ResolveRole returns the role assigned to uid. A missing assignment
// document is not an error: it resolves to the default non-admin role.
// Only an explicit admin assignment grants admin; any other stored value
// degrades to the default role.
func (s *identityService) ResolveRole(ctx context.Context, uid string) (models.Role, error) {
	if uid == "" {
		return models.DefaultRole, nil
	}
	assignment, err := s.roleRepo.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return models.DefaultRole, nil
		}
		return models.DefaultRole, fmt.Errorf("failed to resolve role for UID '%s': %w", uid, err)
	}
	if assignment.Role == models.RoleAdmin {
		return models.RoleAdmin, nil
	}
	return models.DefaultRole, nil
}

// ResolveCaller returns the Caller for uid. An empty uid yields the zero
// Caller so the policy gate can deny with "authentication required".
func (s *identityService) ResolveCaller(ctx context.Context, uid string) (Caller, error) {
	if uid == "" {
		return Caller{}, nil
	}
	role, err := s.ResolveRole(ctx, uid)
	if err != nil {
		return Caller{}, err
	}
	return Caller{ID: uid, Role: role}, nil
}

// ResolveProfile returns the stored profile for uid, or ErrProfileNotFound.
func (s *identityService) ResolveProfile(ctx context.Context, uid string) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: UID '%s'", ErrProfileNotFound, uid)
		}
		return nil, fmt.Errorf("failed to resolve profile for UID '%s': %w", uid, err)
	}
	return profile, nil
}

// ReconcileAccounts joins the provider account population with the profile
// and role collections into one merged listing. This does two full
// collection scans plus a paged provider enumeration; it is intended for
// administrative listing, not hot paths. It is read-only and may observe a
// snapshot that trails concurrent writes.
func (s *identityService) ReconcileAccounts(ctx context.Context, callerID string) ([]models.AccountRecord, error) {
	caller, err := s.ResolveCaller(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(caller, ActionListAccounts, ""); err != nil {
		return nil, err
	}

	accounts, err := s.accountDirectory.ListAccounts(ctx, s.accountListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate accounts for reconciliation: %w", err)
	}
	profiles, err := s.profileRepo.ListAll(ctx, collectionScanLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to scan profiles for reconciliation: %w", err)
	}
	roles, err := s.roleRepo.ListAll(ctx, collectionScanLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to scan role assignments for reconciliation: %w", err)
	}

	return mergeAccountSources(accounts, profiles, roles), nil
}

// SetRole assigns a role to the target account. Admin only; the role value
// must be one of the assignable roles.
func (s *identityService) SetRole(ctx context.Context, callerID, targetUID string, role models.Role) (*models.RoleAssignment, error) {
	caller, err := s.ResolveCaller(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(caller, ActionSetRole, ""); err != nil {
		return nil, err
	}

	if targetUID == "" {
		return nil, NewValidationError("user id is required")
	}
	if !role.IsValid() {
		return nil, NewValidationError("invalid role '%s'", role)
	}

	if err := s.roleRepo.Set(ctx, targetUID, role); err != nil {
		return nil, fmt.Errorf("failed to set role '%s' for UID '%s': %w", role, targetUID, err)
	}
	return &models.RoleAssignment{ID: targetUID, Role: role}, nil
}
