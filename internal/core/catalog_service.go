package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bookify-backend-go/internal/db"
	"bookify-backend-go/internal/models"
)

const (
	// serviceListLimit caps the public service listing.
	serviceListLimit = 50
	// categoryListLimit caps the public category listing.
	categoryListLimit = 200
)

// catalogService implements the CatalogService interface.
type catalogService struct {
	serviceRepo  db.ServiceRepository
	categoryRepo db.CategoryRepository
	identity     IdentityService
}

// NewCatalogService creates a new CatalogService instance.
func NewCatalogService(
	serviceRepo db.ServiceRepository,
	categoryRepo db.CategoryRepository,
	identity IdentityService,
) CatalogService {
	return &catalogService{
		serviceRepo:  serviceRepo,
		categoryRepo: categoryRepo,
		identity:     identity,
	}
}

// ListServices returns the public service listing.
func (s *catalogService) ListServices(ctx context.Context) ([]*models.Service, error) {
	services, err := s.serviceRepo.List(ctx, serviceListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

// GetService returns a single service by ID.
func (s *catalogService) GetService(ctx context.Context, serviceID string) (*models.Service, error) {
	service, err := s.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: ID '%s'", ErrServiceNotFound, serviceID)
		}
		return nil, fmt.Errorf("failed to get service '%s': %w", serviceID, err)
	}
	return service, nil
}

// CreateService creates a new service. Admin only. Title and price are
// required; price must be non-negative; is_active defaults to true.
func (s *catalogService) CreateService(ctx context.Context, callerID string, req models.CreateServiceRequest) (*models.Service, error) {
	caller, err := s.identity.ResolveCaller(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(caller, ActionCreateService, ""); err != nil {
		return nil, err
	}

	var missing []string
	if strings.TrimSpace(req.Title) == "" {
		missing = append(missing, "'title'")
	}
	if req.Price == nil {
		missing = append(missing, "'price'")
	}
	if len(missing) > 0 {
		return nil, NewValidationError("%s required", strings.Join(missing, " and "))
	}
	if *req.Price < 0 {
		return nil, NewValidationError("price must be non-negative")
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	service := &models.Service{
		Title:       req.Title,
		Price:       *req.Price,
		Category:    req.Category,
		Description: req.Description,
		Duration:    req.Duration,
		ImageURL:    req.ImageURL,
		IsActive:    isActive,
		CreatedBy:   callerID,
	}

	if _, err := s.serviceRepo.Create(ctx, service); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return service, nil
}

// UpdateService applies the provided fields to an existing service. Admin only.
func (s *catalogService) UpdateService(ctx context.Context, callerID, serviceID string, req models.UpdateServiceRequest) (*models.Service, error) {
	caller, err := s.identity.ResolveCaller(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(caller, ActionUpdateService, ""); err != nil {
		return nil, err
	}

	service, err := s.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: ID '%s'", ErrServiceNotFound, serviceID)
		}
		return nil, fmt.Errorf("failed to get service '%s' for update: %w", serviceID, err)
	}

	if req.Title != nil {
		service.Title = *req.Title
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, NewValidationError("price must be non-negative")
		}
		service.Price = *req.Price
	}
	if req.Category != nil {
		service.Category = *req.Category
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Duration != nil {
		service.Duration = *req.Duration
	}
	if req.ImageURL != nil {
		service.ImageURL = *req.ImageURL
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}

	if err := s.serviceRepo.Update(ctx, service); err != nil {
		return nil, fmt.Errorf("failed to update service '%s': %w", serviceID, err)
	}
	return service, nil
}

// DeleteService removes a service. Admin only.
func (s *catalogService) DeleteService(ctx context.Context, callerID, serviceID string) error {
	caller, err := s.identity.ResolveCaller(ctx, callerID)
	if err != nil {
		return err
	}
	if err := Authorize(caller, ActionDeleteService, ""); err != nil {
		return err
	}

	if err := s.serviceRepo.Delete(ctx, serviceID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: ID '%s'", ErrServiceNotFound, serviceID)
		}
		return fmt.Errorf("failed to delete service '%s': %w", serviceID, err)
	}
	return nil
}

// ListCategories returns the public category listing, ordered by name.
func (s *catalogService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	categories, err := s.categoryRepo.List(ctx, categoryListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// CreateCategory creates a category. Admin only. The name is trimmed and
// must be non-empty after trimming.
func (s *catalogService) CreateCategory(ctx context.Context, callerID string, req models.CreateCategoryRequest) (*models.Category, error) {
	caller, err := s.identity.ResolveCaller(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(caller, ActionCreateCategory, ""); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, NewValidationError("'name' is required")
	}

	category := &models.Category{Name: name}
	if _, err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

// DeleteCategory removes a category. Admin only.
func (s *catalogService) DeleteCategory(ctx context.Context, callerID, categoryID string) error {
	caller, err := s.identity.ResolveCaller(ctx, callerID)
	if err != nil {
		return err
	}
	if err := Authorize(caller, ActionDeleteCategory, ""); err != nil {
		return err
	}

	if err := s.categoryRepo.Delete(ctx, categoryID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: ID '%s'", ErrCategoryNotFound, categoryID)
		}
		return fmt.Errorf("failed to delete category '%s': %w", categoryID, err)
	}
	return nil
}
