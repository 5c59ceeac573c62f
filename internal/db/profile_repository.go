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

const profilesCollection = "user_profiles"

// firestoreProfileRepository implements the ProfileRepository interface using Firestore.
type firestoreProfileRepository struct {
	client *firestore.Client
}

// NewFirestoreProfileRepository creates a new instance of firestoreProfileRepository.
func NewFirestoreProfileRepository(client *firestore.Client) ProfileRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for ProfileRepository.")
	}
	return &firestoreProfileRepository{client: client}
}

// GetByID retrieves a profile document by account UID. The Firestore
// server-assigned create/update times are exposed as created_at/updated_at.
func (r *firestoreProfileRepository) GetByID(ctx context.Context, uid string) (*models.Profile, error) {
	if uid == "" {
		return nil, errors.New("uid cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(profilesCollection).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("profile for UID '%s' not found: %w", uid, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get profile for UID '%s': %w", uid, err)
	}

	var profile models.Profile
	if err := docSnap.DataTo(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile data for UID '%s': %w", uid, err)
	}
	profile.ID = docSnap.Ref.ID
	createTime, updateTime := docSnap.CreateTime, docSnap.UpdateTime
	profile.CreatedAt = &createTime
	profile.UpdatedAt = &updateTime
	return &profile, nil
}

// Upsert merge-writes only the given fields into the profile document,
// creating it lazily on first write. Stored fields absent from the map are
// never touched; this is what makes profile updates non-destructive.
func (r *firestoreProfileRepository) Upsert(ctx context.Context, uid string, fields map[string]interface{}) error {
	if uid == "" {
		return errors.New("uid cannot be empty for Upsert operation")
	}
	if len(fields) == 0 {
		return errors.New("no fields provided for Upsert operation")
	}
	_, err := r.client.Collection(profilesCollection).Doc(uid).Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to upsert profile for UID '%s': %w", uid, err)
	}
	return nil
}

// ListAll retrieves up to limit profiles keyed by account UID.
// This is a full collection scan intended for admin reconciliation only.
func (r *firestoreProfileRepository) ListAll(ctx context.Context, limit int) (map[string]*models.Profile, error) {
	iter := r.client.Collection(profilesCollection).Limit(limit).Documents(ctx)
	defer iter.Stop()

	profiles := make(map[string]*models.Profile)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate profiles: %w", err)
		}

		var profile models.Profile
		if err := doc.DataTo(&profile); err != nil {
			log.Printf("Error decoding profile data (UID: %s): %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		profile.ID = doc.Ref.ID
		createTime, updateTime := doc.CreateTime, doc.UpdateTime
		profile.CreatedAt = &createTime
		profile.UpdatedAt = &updateTime
		profiles[doc.Ref.ID] = &profile
	}
	return profiles, nil
}
