// main.go
package main

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"go-storefront/cart"
	"go-storefront/config"
	"go-storefront/controllers"
	"go-storefront/middleware"
	"go-storefront/routes"
	"go-storefront/services"
	"go-storefront/session"
	"go-storefront/storage"
	"go-storefront/utils"
)

func main() {
	log := logrus.New()

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found. Proceeding with environment variables.")
	}

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	// Set the JWT secret key
	utils.JwtKey = []byte(cfg.JWTSecret)

	ctx := context.Background()

	// Pick the cart storage backend
	backend, closeStorage, err := newStorageBackend(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize storage backend")
	}
	defer closeStorage()
	log.WithField("backend", cfg.StorageBackend).Info("Cart storage initialized")

	// Initialize EmailService
	emailService := utils.NewEmailService(cfg.PostmarkAPIToken, cfg.EmailSender)

	// Backend API clients
	client := services.NewClient(cfg.APIBaseURL, log)
	productService := services.NewProductService(client)
	categoryService := services.NewCategoryService(client)
	orderService := services.NewOrderService(client)
	authService := services.NewAuthService(client)

	// Session and cart state
	sessions := session.NewRegistry()
	notifier := cart.NewLogNotifier(log)
	carts := cart.NewManager(backend, notifier, log)

	// Initialize controllers
	authController := controllers.NewAuthController(authService, sessions)
	productController := controllers.NewProductController(productService)
	categoryController := controllers.NewCategoryController(categoryService)
	cartController := controllers.NewCartController(carts, productService)
	orderController := controllers.NewOrderController(orderService, productService, carts, notifier, emailService, log)

	// Set up the router
	router := mux.NewRouter()
	router.Use(middleware.SessionMiddleware(sessions))

	// Register routes
	routes.RegisterRoutes(router, authController, productController, categoryController, cartController, orderController)

	// Start the server
	log.WithField("port", cfg.Port).Info("Server is running")
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}

func newStorageBackend(ctx context.Context, cfg config.Config) (storage.Store, func(), error) {
	noop := func() {}

	switch cfg.StorageBackend {
	case "memory":
		return storage.NewMemoryStore(), noop, nil
	case "file":
		store, err := storage.NewFileStore(cfg.StorageDir)
		return store, noop, err
	case "redis":
		store, err := storage.NewRedisStore(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, noop, err
		}
		return store, func() { store.Close() }, nil
	case "mongo":
		store, err := storage.NewMongoStore(ctx, cfg.MongoURI)
		if err != nil {
			return nil, noop, err
		}
		return store, func() { store.Close(ctx) }, nil
	default:
		return nil, noop, errors.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
