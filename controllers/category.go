package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"go-storefront/models"
	"go-storefront/services"
)

// CategoryController proxies category browsing and admin category
// management to the backend catalog.
type CategoryController struct {
	Categories *services.CategoryService
}

// NewCategoryController creates a new CategoryController
func NewCategoryController(categories *services.CategoryService) *CategoryController {
	return &CategoryController{Categories: categories}
}

// GetCategories retrieves all categories, optionally filtered by active
func (cc *CategoryController) GetCategories(w http.ResponseWriter, r *http.Request) {
	var active *bool
	switch r.URL.Query().Get("active") {
	case "true":
		value := true
		active = &value
	case "false":
		value := false
		active = &value
	}

	categories, err := cc.Categories.GetAll(r.Context(), active)
	if err != nil {
		relayError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

// GetCategoryByID retrieves a single category
func (cc *CategoryController) GetCategoryByID(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)

	category, err := cc.Categories.GetByID(r.Context(), params["id"])
	if err != nil {
		relayError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

// GetRootCategories retrieves the top-level categories
func (cc *CategoryController) GetRootCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := cc.Categories.GetRoot(r.Context())
	if err != nil {
		relayError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

// GetChildCategories retrieves the children of a category
func (cc *CategoryController) GetChildCategories(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)

	categories, err := cc.Categories.GetChildren(r.Context(), params["id"])
	if err != nil {
		relayError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

// CreateCategory handles adding a new category (Admin only)
func (cc *CategoryController) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	category, err := cc.Categories.Create(r.Context(), req)
	if err != nil {
		relayError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

// UpdateCategory handles updating a category (Admin only)
func (cc *CategoryController) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)

	var req models.UpdateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	category, err := cc.Categories.Update(r.Context(), params["id"], req)
	if err != nil {
		relayError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

// DeleteCategory handles deleting a category (Admin only)
func (cc *CategoryController) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)

	if err := cc.Categories.Delete(r.Context(), params["id"]); err != nil {
		relayError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ActivateCategory marks a category active (Admin only)
func (cc *CategoryController) ActivateCategory(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)

	category, err := cc.Categories.Activate(r.Context(), params["id"])
	if err != nil {
		relayError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

// DeactivateCategory marks a category inactive (Admin only)
func (cc *CategoryController) DeactivateCategory(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)

	category, err := cc.Categories.Deactivate(r.Context(), params["id"])
	if err != nil {
		relayError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}
