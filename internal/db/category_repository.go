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

const categoriesCollection = "categories"

// firestoreCategoryRepository implements the CategoryRepository interface using Firestore.
type firestoreCategoryRepository struct {
	client *firestore.Client
}

// NewFirestoreCategoryRepository creates a new instance of firestoreCategoryRepository.
func NewFirestoreCategoryRepository(client *firestore.Client) CategoryRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for CategoryRepository.")
	}
	return &firestoreCategoryRepository{client: client}
}

// List retrieves up to limit categories ordered by name.
func (r *firestoreCategoryRepository) List(ctx context.Context, limit int) ([]*models.Category, error) {
	iter := r.client.Collection(categoriesCollection).OrderBy("name", firestore.Asc).Limit(limit).Documents(ctx)
	defer iter.Stop()

	var categories []*models.Category
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate categories: %w", err)
		}

		var cat models.Category
		if err := doc.DataTo(&cat); err != nil {
			log.Printf("Error decoding category data (ID: %s): %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		cat.ID = doc.Ref.ID
		categories = append(categories, &cat)
	}
	return categories, nil
}

// Create adds a new category document with an auto-generated ID.
func (r *firestoreCategoryRepository) Create(ctx context.Context, category *models.Category) (string, error) {
	docRef := r.client.Collection(categoriesCollection).NewDoc()
	category.ID = docRef.ID
	if _, err := docRef.Create(ctx, category); err != nil {
		return "", fmt.Errorf("failed to create category: %w", err)
	}
	return docRef.ID, nil
}

// Delete removes a category document from Firestore. Firestore deletes of
// nonexistent documents succeed, so existence is checked first to keep the
// missing-document case observable.
func (r *firestoreCategoryRepository) Delete(ctx context.Context, categoryID string) error {
	if categoryID == "" {
		return errors.New("categoryID cannot be empty for Delete operation")
	}
	docRef := r.client.Collection(categoriesCollection).Doc(categoryID)
	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("category with ID '%s' not found for deletion: %w", categoryID, ErrNotFound)
		}
		return fmt.Errorf("failed to check category with ID '%s' before deletion: %w", categoryID, err)
	}
	if _, err := docRef.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete category with ID '%s': %w", categoryID, err)
	}
	return nil
}
