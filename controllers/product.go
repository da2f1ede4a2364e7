package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"go-storefront/models"
	"go-storefront/services"
)

// ProductController proxies product browsing and admin product
// management to the backend catalog.
type ProductController struct {
	Products *services.ProductService
}

// NewProductController creates a new ProductController
func NewProductController(products *services.ProductService) *ProductController {
	return &ProductController{Products: products}
}

// GetProducts retrieves a page of products
func (pc *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 0)
	size := queryInt(r, "size", 20)
	active := r.URL.Query().Get("active") != "false"

	result, err := pc.Products.GetAll(r.Context(), page, size, active)
	if err != nil {
		relayError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// GetProductByID retrieves a single product by ID
func (pc *ProductController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)

	product, err := pc.Products.GetByID(r.Context(), params["id"])
	if err != nil {
		relayError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// GetProductBySKU retrieves a single product by SKU
func (pc *ProductController) GetProductBySKU(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)

	product, err := pc.Products.GetBySKU(r.Context(), params["sku"])
	if err != nil {
		relayError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// GetProductsByCategory retrieves a page of products in a category
func (pc *ProductController) GetProductsByCategory(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	page := queryInt(r, "page", 0)
	size := queryInt(r, "size", 20)

	result, err := pc.Products.GetByCategory(r.Context(), params["category_id"], page, size)
	if err != nil {
		relayError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// SearchProducts retrieves a page of products matching a query
func (pc *ProductController) SearchProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		http.Error(w, "Missing query parameter", http.StatusBadRequest)
		return
	}
	page := queryInt(r, "page", 0)
	size := queryInt(r, "size", 20)

	result, err := pc.Products.Search(r.Context(), query, page, size)
	if err != nil {
		relayError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// CreateProduct handles adding a new product (Admin only)
func (pc *ProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	product, err := pc.Products.Create(r.Context(), req)
	if err != nil {
		relayError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, product)
}

// UpdateProduct handles updating a product (Admin only)
func (pc *ProductController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)

	var req models.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	product, err := pc.Products.Update(r.Context(), params["id"], req)
	if err != nil {
		relayError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// DeleteProduct handles deleting a product (Admin only)
func (pc *ProductController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)

	if err := pc.Products.Delete(r.Context(), params["id"]); err != nil {
		relayError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateProductStock sets a product's stock quantity (Admin only)
func (pc *ProductController) UpdateProductStock(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	quantity := queryInt(r, "quantity", -1)
	if quantity < 0 {
		http.Error(w, "Invalid quantity", http.StatusBadRequest)
		return
	}

	product, err := pc.Products.UpdateStock(r.Context(), params["id"], quantity)
	if err != nil {
		relayError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// UploadProductImage attaches an uploaded image to a product (Admin only)
func (pc *ProductController) UploadProductImage(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Missing image file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	product, err := pc.Products.UploadImage(r.Context(), params["id"], header.Filename, file)
	if err != nil {
		relayError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// DeleteProductImage removes an image from a product by URL (Admin only)
func (pc *ProductController) DeleteProductImage(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	imageURL := r.URL.Query().Get("url")
	if imageURL == "" {
		http.Error(w, "Missing url parameter", http.StatusBadRequest)
		return
	}

	product, err := pc.Products.DeleteImage(r.Context(), params["id"], imageURL)
	if err != nil {
		relayError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// ActivateProduct marks a product active (Admin only)
func (pc *ProductController) ActivateProduct(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)

	product, err := pc.Products.Activate(r.Context(), params["id"])
	if err != nil {
		relayError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// DeactivateProduct marks a product inactive (Admin only)
func (pc *ProductController) DeactivateProduct(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)

	product, err := pc.Products.Deactivate(r.Context(), params["id"])
	if err != nil {
		relayError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}
