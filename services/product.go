package services

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"go-storefront/models"
)

// ProductService calls the backend catalog product endpoints
type ProductService struct {
	client *Client
}

// NewProductService creates a new ProductService
func NewProductService(client *Client) *ProductService {
	return &ProductService{client: client}
}

func pageQuery(page, size int) url.Values {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))
	return query
}

// GetAll retrieves a page of products
func (s *ProductService) GetAll(ctx context.Context, page, size int, active bool) (models.Page[models.Product], error) {
	query := pageQuery(page, size)
	query.Set("active", strconv.FormatBool(active))

	var result models.Page[models.Product]
	err := s.client.doData(ctx, http.MethodGet, "/products", query, nil, &result)
	return result, err
}

// GetByID retrieves a single product
func (s *ProductService) GetByID(ctx context.Context, id string) (models.Product, error) {
	var product models.Product
	err := s.client.doData(ctx, http.MethodGet, "/products/"+id, nil, nil, &product)
	return product, err
}

// GetBySKU retrieves a single product by SKU
func (s *ProductService) GetBySKU(ctx context.Context, sku string) (models.Product, error) {
	var product models.Product
	err := s.client.doData(ctx, http.MethodGet, "/products/sku/"+sku, nil, nil, &product)
	return product, err
}

// GetByCategory retrieves a page of products in a category
func (s *ProductService) GetByCategory(ctx context.Context, categoryID string, page, size int) (models.Page[models.Product], error) {
	var result models.Page[models.Product]
	err := s.client.doData(ctx, http.MethodGet, "/products/category/"+categoryID, pageQuery(page, size), nil, &result)
	return result, err
}

// Search retrieves a page of products matching the query string
func (s *ProductService) Search(ctx context.Context, searchQuery string, page, size int) (models.Page[models.Product], error) {
	query := pageQuery(page, size)
	query.Set("query", searchQuery)

	var result models.Page[models.Product]
	err := s.client.doData(ctx, http.MethodGet, "/products/search", query, nil, &result)
	return result, err
}

// Create creates a new product (Admin only)
func (s *ProductService) Create(ctx context.Context, req models.CreateProductRequest) (models.Product, error) {
	var product models.Product
	err := s.client.doData(ctx, http.MethodPost, "/products", nil, req, &product)
	return product, err
}

// Update updates a product (Admin only)
func (s *ProductService) Update(ctx context.Context, id string, req models.UpdateProductRequest) (models.Product, error) {
	var product models.Product
	err := s.client.doData(ctx, http.MethodPut, "/products/"+id, nil, req, &product)
	return product, err
}

// Delete deletes a product (Admin only)
func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, "/products/"+id, nil, nil, nil)
}

// UpdateStock sets a product's stock quantity (Admin only)
func (s *ProductService) UpdateStock(ctx context.Context, id string, quantity int) (models.Product, error) {
	query := url.Values{}
	query.Set("quantity", strconv.Itoa(quantity))

	var product models.Product
	err := s.client.doData(ctx, http.MethodPatch, "/products/"+id+"/stock", query, nil, &product)
	return product, err
}

// UploadImage attaches an image file to a product and returns the
// updated product (Admin only).
func (s *ProductService) UploadImage(ctx context.Context, id, fileName string, file io.Reader) (models.Product, error) {
	var product models.Product
	err := s.client.doMultipartData(ctx, http.MethodPost, "/products/"+id+"/images", "file", fileName, file, &product)
	return product, err
}

// DeleteImage removes an image from a product by URL and returns the
// updated product (Admin only).
func (s *ProductService) DeleteImage(ctx context.Context, id, imageURL string) (models.Product, error) {
	query := url.Values{}
	query.Set("url", imageURL)

	var product models.Product
	err := s.client.doData(ctx, http.MethodDelete, "/products/"+id+"/images", query, nil, &product)
	return product, err
}

// Activate marks a product active (Admin only)
func (s *ProductService) Activate(ctx context.Context, id string) (models.Product, error) {
	var product models.Product
	err := s.client.doData(ctx, http.MethodPatch, "/products/"+id+"/activate", nil, nil, &product)
	return product, err
}

// Deactivate marks a product inactive (Admin only)
func (s *ProductService) Deactivate(ctx context.Context, id string) (models.Product, error) {
	var product models.Product
	err := s.client.doData(ctx, http.MethodPatch, "/products/"+id+"/deactivate", nil, nil, &product)
	return product, err
}
