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

const rolesCollection = "user_roles"

// firestoreRoleRepository implements the RoleRepository interface using Firestore.
type firestoreRoleRepository struct {
	client *firestore.Client
}

// NewFirestoreRoleRepository creates a new instance of firestoreRoleRepository.
func NewFirestoreRoleRepository(client *firestore.Client) RoleRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for RoleRepository.")
	}
	return &firestoreRoleRepository{client: client}
}

// GetByID retrieves the role assignment for an account UID.
// A missing document surfaces as ErrNotFound; the identity service is
// responsible for turning that into the default role.
func (r *firestoreRoleRepository) GetByID(ctx context.Context, uid string) (*models.RoleAssignment, error) {
	if uid == "" {
		return nil, errors.New("uid cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(rolesCollection).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("role assignment for UID '%s' not found: %w", uid, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get role assignment for UID '%s': %w", uid, err)
	}

	var assignment models.RoleAssignment
	if err := docSnap.DataTo(&assignment); err != nil {
		return nil, fmt.Errorf("failed to decode role assignment for UID '%s': %w", uid, err)
	}
	assignment.ID = docSnap.Ref.ID
	return &assignment, nil
}

// Set writes the role assignment for an account UID, last write wins.
func (r *firestoreRoleRepository) Set(ctx context.Context, uid string, role models.Role) error {
	if uid == "" {
		return errors.New("uid cannot be empty for Set operation")
	}
	_, err := r.client.Collection(rolesCollection).Doc(uid).Set(ctx, map[string]interface{}{
		"role": role,
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to set role for UID '%s': %w", uid, err)
	}
	return nil
}

// ListAll retrieves all role assignments keyed by account UID.
// Documents with an empty role field are skipped.
func (r *firestoreRoleRepository) ListAll(ctx context.Context, limit int) (map[string]models.Role, error) {
	iter := r.client.Collection(rolesCollection).Limit(limit).Documents(ctx)
	defer iter.Stop()

	roles := make(map[string]models.Role)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate role assignments: %w", err)
		}

		var assignment models.RoleAssignment
		if err := doc.DataTo(&assignment); err != nil {
			log.Printf("Error decoding role assignment (UID: %s): %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		if assignment.Role == "" {
			continue
		}
		roles[doc.Ref.ID] = assignment.Role
	}
	return roles, nil
}
