// routes/routes.go
package routes

import (
	"go-storefront/controllers"
	"go-storefront/middleware"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, authController *controllers.AuthController, productController *controllers.ProductController, categoryController *controllers.CategoryController, cartController *controllers.CartController, orderController *controllers.OrderController) {
	// Public routes
	router.HandleFunc("/register", authController.Register).Methods("POST")
	router.HandleFunc("/login", authController.Login).Methods("POST")
	router.HandleFunc("/logout", authController.Logout).Methods("POST")

	// Product routes
	router.HandleFunc("/products", productController.GetProducts).Methods("GET")
	router.HandleFunc("/products/search", productController.SearchProducts).Methods("GET")
	router.HandleFunc("/products/sku/{sku}", productController.GetProductBySKU).Methods("GET")
	router.HandleFunc("/products/category/{category_id}", productController.GetProductsByCategory).Methods("GET")
	router.HandleFunc("/products/{id}", productController.GetProductByID).Methods("GET")

	// Category routes
	router.HandleFunc("/categories", categoryController.GetCategories).Methods("GET")
	router.HandleFunc("/categories/root", categoryController.GetRootCategories).Methods("GET")
	router.HandleFunc("/categories/{id}/children", categoryController.GetChildCategories).Methods("GET")
	router.HandleFunc("/categories/{id}", categoryController.GetCategoryByID).Methods("GET")

	// Cart routes (session scoped, no login required)
	router.HandleFunc("/cart", cartController.GetCart).Methods("GET")
	router.HandleFunc("/cart", cartController.ClearCart).Methods("DELETE")
	router.HandleFunc("/cart/items", cartController.AddToCart).Methods("POST")
	router.HandleFunc("/cart/items/{product_id}", cartController.UpdateQuantity).Methods("PUT")
	router.HandleFunc("/cart/items/{product_id}", cartController.RemoveFromCart).Methods("DELETE")

	// Protected routes
	protected := router.PathPrefix("/").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/me", authController.GetProfile).Methods("GET")
	protected.HandleFunc("/checkout", orderController.Checkout).Methods("POST")
	protected.HandleFunc("/orders", orderController.GetOrders).Methods("GET")
	protected.HandleFunc("/orders/{id}", orderController.GetOrderByID).Methods("GET")
	protected.HandleFunc("/orders/{id}/cancel", orderController.CancelOrder).Methods("POST")

	// Admin routes
	adminProducts := router.PathPrefix("/admin/products").Subrouter()
	adminProducts.Use(middleware.AuthMiddleware)
	adminProducts.Use(middleware.AdminMiddleware)
	adminProducts.HandleFunc("", productController.CreateProduct).Methods("POST")
	adminProducts.HandleFunc("/{id}", productController.UpdateProduct).Methods("PUT")
	adminProducts.HandleFunc("/{id}", productController.DeleteProduct).Methods("DELETE")
	adminProducts.HandleFunc("/{id}/stock", productController.UpdateProductStock).Methods("PATCH")
	adminProducts.HandleFunc("/{id}/images", productController.UploadProductImage).Methods("POST")
	adminProducts.HandleFunc("/{id}/images", productController.DeleteProductImage).Methods("DELETE")
	adminProducts.HandleFunc("/{id}/activate", productController.ActivateProduct).Methods("PATCH")
	adminProducts.HandleFunc("/{id}/deactivate", productController.DeactivateProduct).Methods("PATCH")

	adminCategories := router.PathPrefix("/admin/categories").Subrouter()
	adminCategories.Use(middleware.AuthMiddleware)
	adminCategories.Use(middleware.AdminMiddleware)
	adminCategories.HandleFunc("", categoryController.CreateCategory).Methods("POST")
	adminCategories.HandleFunc("/{id}", categoryController.UpdateCategory).Methods("PUT")
	adminCategories.HandleFunc("/{id}", categoryController.DeleteCategory).Methods("DELETE")
	adminCategories.HandleFunc("/{id}/activate", categoryController.ActivateCategory).Methods("PATCH")
	adminCategories.HandleFunc("/{id}/deactivate", categoryController.DeactivateCategory).Methods("PATCH")
}
