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

const servicesCollection = "services"

// firestoreServiceRepository implements the ServiceRepository interface using Firestore.
type firestoreServiceRepository struct {
	client *firestore.Client
}

// NewFirestoreServiceRepository creates a new instance of firestoreServiceRepository.
func NewFirestoreServiceRepository(client *firestore.Client) ServiceRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for ServiceRepository.")
	}
	return &firestoreServiceRepository{client: client}
}

// List retrieves up to limit service documents.
func (r *firestoreServiceRepository) List(ctx context.Context, limit int) ([]*models.Service, error) {
	iter := r.client.Collection(servicesCollection).Limit(limit).Documents(ctx)
	defer iter.Stop()

	var services []*models.Service
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate services: %w", err)
		}

		var svc models.Service
		if err := doc.DataTo(&svc); err != nil {
			log.Printf("Error decoding service data (ID: %s): %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		svc.ID = doc.Ref.ID
		services = append(services, &svc)
	}
	return services, nil
}

// GetByID retrieves a service document from Firestore by its ID.
func (r *firestoreServiceRepository) GetByID(ctx context.Context, serviceID string) (*models.Service, error) {
	if serviceID == "" {
		return nil, errors.New("serviceID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(servicesCollection).Doc(serviceID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("service with ID '%s' not found: %w", serviceID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get service with ID '%s': %w", serviceID, err)
	}

	var svc models.Service
	if err := docSnap.DataTo(&svc); err != nil {
		return nil, fmt.Errorf("failed to decode service data for ID '%s': %w", serviceID, err)
	}
	svc.ID = docSnap.Ref.ID
	return &svc, nil
}

// Create adds a new service document with an auto-generated ID.
func (r *firestoreServiceRepository) Create(ctx context.Context, service *models.Service) (string, error) {
	docRef := r.client.Collection(servicesCollection).NewDoc()
	service.ID = docRef.ID
	if _, err := docRef.Create(ctx, service); err != nil {
		return "", fmt.Errorf("failed to create service: %w", err)
	}
	return docRef.ID, nil
}

// Update replaces the service document with the given state. Callers load
// the document first and mutate it, so this is a full write-back: a plain
// Set without merge options (MergeAll only accepts map data, and merging is
// unnecessary when the whole document is written).
func (r *firestoreServiceRepository) Update(ctx context.Context, service *models.Service) error {
	if service.ID == "" {
		return errors.New("service ID cannot be empty for Update operation")
	}
	_, err := r.client.Collection(servicesCollection).Doc(service.ID).Set(ctx, service)
	if err != nil {
		return fmt.Errorf("failed to update service with ID '%s': %w", service.ID, err)
	}
	return nil
}

// Delete removes a service document from Firestore. Firestore deletes of
// nonexistent documents succeed, so existence is checked first to keep the
// missing-document case observable.
func (r *firestoreServiceRepository) Delete(ctx context.Context, serviceID string) error {
	if serviceID == "" {
		return errors.New("serviceID cannot be empty for Delete operation")
	}
	docRef := r.client.Collection(servicesCollection).Doc(serviceID)
	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("service with ID '%s' not found for deletion: %w", serviceID, ErrNotFound)
		}
		return fmt.Errorf("failed to check service with ID '%s' before deletion: %w", serviceID, err)
	}
	if _, err := docRef.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete service with ID '%s': %w", serviceID, err)
	}
	return nil
}
