package services

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"go-storefront/models"
)

// CategoryService calls the backend catalog category endpoints
type CategoryService struct {
	client *Client
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(client *Client) *CategoryService {
	return &CategoryService{client: client}
}

// GetAll retrieves categories; active filters to active ones when non-nil
func (s *CategoryService) GetAll(ctx context.Context, active *bool) ([]models.Category, error) {
	var query url.Values
	if active != nil {
		query = url.Values{}
		query.Set("active", strconv.FormatBool(*active))
	}

	var categories []models.Category
	err := s.client.doData(ctx, http.MethodGet, "/categories", query, nil, &categories)
	return categories, err
}

// GetByID retrieves a single category
func (s *CategoryService) GetByID(ctx context.Context, id string) (models.Category, error) {
	var category models.Category
	err := s.client.doData(ctx, http.MethodGet, "/categories/"+id, nil, nil, &category)
	return category, err
}

// GetRoot retrieves the top-level categories
func (s *CategoryService) GetRoot(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := s.client.doData(ctx, http.MethodGet, "/categories/root", nil, nil, &categories)
	return categories, err
}

// GetChildren retrieves the child categories of parentID
func (s *CategoryService) GetChildren(ctx context.Context, parentID string) ([]models.Category, error) {
	var categories []models.Category
	err := s.client.doData(ctx, http.MethodGet, "/categories/"+parentID+"/children", nil, nil, &categories)
	return categories, err
}

// Create creates a new category (Admin only)
func (s *CategoryService) Create(ctx context.Context, req models.CreateCategoryRequest) (models.Category, error) {
	var category models.Category
	err := s.client.doData(ctx, http.MethodPost, "/categories", nil, req, &category)
	return category, err
}

// Update updates a category (Admin only)
func (s *CategoryService) Update(ctx context.Context, id string, req models.UpdateCategoryRequest) (models.Category, error) {
	var category models.Category
	err := s.client.doData(ctx, http.MethodPut, "/categories/"+id, nil, req, &category)
	return category, err
}

// Delete deletes a category (Admin only)
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, "/categories/"+id, nil, nil, nil)
}

// Activate marks a category active (Admin only)
func (s *CategoryService) Activate(ctx context.Context, id string) (models.Category, error) {
	var category models.Category
	err := s.client.doData(ctx, http.MethodPatch, "/categories/"+id+"/activate", nil, nil, &category)
	return category, err
}

// Deactivate marks a category inactive (Admin only)
func (s *CategoryService) Deactivate(ctx context.Context, id string) (models.Category, error) {
	var category models.Category
	err := s.client.doData(ctx, http.MethodPatch, "/categories/"+id+"/deactivate", nil, nil, &category)
	return category, err
}
