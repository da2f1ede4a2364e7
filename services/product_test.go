package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-storefront/models"
)

func testLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func envelope(t *testing.T, payload interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	body, err := json.Marshal(models.APIResponse{Success: true, Data: data})
	require.NoError(t, err)
	return body
}

func TestProductServiceGetAll(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "20", r.URL.Query().Get("size"))
		assert.Equal(t, "true", r.URL.Query().Get("active"))

		w.Write(envelope(t, models.Page[models.Product]{
			Content:       []models.Product{{ID: "p1", Name: "Mug", Price: 7.50}},
			TotalElements: 1,
			TotalPages:    1,
		}))
	}))
	defer backend.Close()

	products := NewProductService(NewClient(backend.URL, testLogger()))
	page, err := products.GetAll(context.Background(), 1, 20, true)

	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "p1", page.Content[0].ID)
	assert.Equal(t, "Mug", page.Content[0].Name)
}

func TestProductServiceGetByID(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/p1", r.URL.Path)
		w.Write(envelope(t, models.Product{ID: "p1", StockQuantity: 5, InStock: true}))
	}))
	defer backend.Close()

	products := NewProductService(NewClient(backend.URL, testLogger()))
	product, err := products.GetByID(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, "p1", product.ID)
	assert.Equal(t, 5, product.StockQuantity)
	assert.True(t, product.InStock)
}

func TestProductServiceNotFound(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(models.ErrorResponse{
			Error: models.APIErrorBody{Code: "PRODUCT_NOT_FOUND", Message: "Product not found"},
		})
	}))
	defer backend.Close()

	products := NewProductService(NewClient(backend.URL, testLogger()))
	_, err := products.GetByID(context.Background(), "missing")

	require.Error(t, err)
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "PRODUCT_NOT_FOUND", apiErr.Code)
	assert.Equal(t, "Product not found", apiErr.Message)
}

func TestProductServiceUploadImage(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/products/p1/images", r.URL.Path)

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "mug.jpg", header.Filename)

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "fake image bytes", string(content))

		w.Write(envelope(t, models.Product{ID: "p1", ImageURLs: []string{"/api/v1/products/images/mug.jpg"}}))
	}))
	defer backend.Close()

	products := NewProductService(NewClient(backend.URL, testLogger()))
	product, err := products.UploadImage(context.Background(), "p1", "mug.jpg", strings.NewReader("fake image bytes"))

	require.NoError(t, err)
	require.Len(t, product.ImageURLs, 1)
	assert.Equal(t, "/api/v1/products/images/mug.jpg", product.ImageURLs[0])
}

func TestProductServiceDeleteImage(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/products/p1/images", r.URL.Path)
		assert.Equal(t, "/api/v1/products/images/mug.jpg", r.URL.Query().Get("url"))

		w.Write(envelope(t, models.Product{ID: "p1"}))
	}))
	defer backend.Close()

	products := NewProductService(NewClient(backend.URL, testLogger()))
	product, err := products.DeleteImage(context.Background(), "p1", "/api/v1/products/images/mug.jpg")

	require.NoError(t, err)
	assert.Empty(t, product.ImageURLs)
}

func TestProductServiceUpdateStock(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/products/p1/stock", r.URL.Path)
		assert.Equal(t, "12", r.URL.Query().Get("quantity"))
		w.Write(envelope(t, models.Product{ID: "p1", StockQuantity: 12}))
	}))
	defer backend.Close()

	products := NewProductService(NewClient(backend.URL, testLogger()))
	product, err := products.UpdateStock(context.Background(), "p1", 12)

	require.NoError(t, err)
	assert.Equal(t, 12, product.StockQuantity)
}
