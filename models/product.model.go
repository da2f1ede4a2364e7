package models

// Product represents a catalog product as served by the backend API.
// The cart keeps a denormalized copy captured at add-time.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	StockQuantity int      `json:"stockQuantity"`
	SKU           string   `json:"sku"`
	CategoryID    string   `json:"categoryId"`
	ImageURLs     []string `json:"imageUrls"`
	IsActive      bool     `json:"isActive"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
	InStock       bool     `json:"inStock"`
	LowStock      bool     `json:"lowStock"`
}

// CreateProductRequest is the payload for creating a product (Admin only)
type CreateProductRequest struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	StockQuantity int      `json:"stockQuantity"`
	SKU           string   `json:"sku"`
	CategoryID    string   `json:"categoryId"`
	ImageURLs     []string `json:"imageUrls,omitempty"`
}

// UpdateProductRequest is the payload for updating a product (Admin only)
type UpdateProductRequest struct {
	CreateProductRequest
	IsActive *bool `json:"isActive,omitempty"`
}
