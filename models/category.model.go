package models

// Category represents a catalog category
type Category struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	ParentCategoryID string `json:"parentCategoryId,omitempty"`
	IsActive         bool   `json:"isActive"`
	CreatedAt        string `json:"createdAt"`
	UpdatedAt        string `json:"updatedAt"`
}

// CreateCategoryRequest is the payload for creating a category (Admin only)
type CreateCategoryRequest struct {
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	ParentCategoryID string `json:"parentCategoryId,omitempty"`
}

// UpdateCategoryRequest is the payload for updating a category (Admin only)
type UpdateCategoryRequest struct {
	CreateCategoryRequest
	IsActive *bool `json:"isActive,omitempty"`
}
