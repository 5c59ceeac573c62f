package core

import (
	"context"
	"errors"
	"fmt"

	"bookify-backend-go/internal/db"
	"bookify-backend-go/internal/models"
)

// profileService implements the ProfileService interface.
type profileService struct {
	profileRepo db.ProfileRepository
	identity    IdentityService
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(profileRepo db.ProfileRepository, identity IdentityService) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		identity:    identity,
	}
}

// Get returns the caller's profile. A missing profile document is not an
// error here: the caller gets an empty profile seeded with the email from
// their verified token, matching what the client shows before first save.
func (s *profileService) Get(ctx context.Context, callerID, fallbackEmail string) (*models.Profile, error) {
	caller, err := s.identity.ResolveCaller(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(caller, ActionReadOwnProfile, ""); err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return &models.Profile{ID: callerID, Email: fallbackEmail}, nil
		}
		return nil, fmt.Errorf("failed to get profile for UID '%s': %w", callerID, err)
	}
	if profile.Email == "" {
		profile.Email = fallbackEmail
	}
	return profile, nil
}

// Update merge-writes the provided fields into the caller's profile,
// creating the document lazily on first write. Fields not present in the
// request keep their stored values; this never overwrites destructively.
func (s *profileService) Update(ctx context.Context, callerID string, req models.UpdateProfileRequest) (*models.Profile, error) {
	caller, err := s.identity.ResolveCaller(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(caller, ActionUpdateOwnProfile, ""); err != nil {
		return nil, err
	}

	fields := profileUpdateFields(req)
	if len(fields) == 0 {
		return nil, NewValidationError("no updatable fields provided")
	}

	if err := s.profileRepo.Upsert(ctx, callerID, fields); err != nil {
		return nil, fmt.Errorf("failed to update profile for UID '%s': %w", callerID, err)
	}

	profile, err := s.profileRepo.GetByID(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload profile for UID '%s' after update: %w", callerID, err)
	}
	return profile, nil
}

// profileUpdateFields maps the provided request fields onto Firestore field
// names. Only the whitelisted profile fields can ever end up in the write.
func profileUpdateFields(req models.UpdateProfileRequest) map[string]interface{} {
	fields := make(map[string]interface{})
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	return fields
}
