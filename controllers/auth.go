package controllers

import (
	"encoding/json"
	"net/http"

	"go-storefront/middleware"
	"go-storefront/models"
	"go-storefront/services"
	"go-storefront/session"
)

// AuthController proxies registration and login to the backend auth API
// and binds the issued token to the browser session.
type AuthController struct {
	Auth     *services.AuthService
	Sessions *session.Registry
}

// NewAuthController creates a new AuthController
func NewAuthController(auth *services.AuthService, sessions *session.Registry) *AuthController {
	return &AuthController{
		Auth:     auth,
		Sessions: sessions,
	}
}

func (ac *AuthController) bindSession(r *http.Request, resp models.AuthResponse) {
	ac.Sessions.SetAuth(middleware.SessionID(r.Context()), session.AuthInfo{
		Token:     resp.Token,
		UserID:    resp.UserID,
		Email:     resp.Email,
		FirstName: resp.FirstName,
		LastName:  resp.LastName,
		Role:      resp.Role,
	})
}

// Register handles user registration
func (ac *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	resp, err := ac.Auth.Register(r.Context(), req)
	if err != nil {
		relayError(w, err)
		return
	}

	ac.bindSession(r, resp)
	writeJSON(w, http.StatusCreated, resp)
}

// Login handles user authentication
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	resp, err := ac.Auth.Login(r.Context(), req)
	if err != nil {
		relayError(w, err)
		return
	}

	ac.bindSession(r, resp)
	writeJSON(w, http.StatusOK, resp)
}

// Logout drops the login state from the session. The session itself, and
// with it the cart, survives.
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	ac.Sessions.ClearAuth(middleware.SessionID(r.Context()))
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// GetProfile returns the authenticated user's identity
func (ac *AuthController) GetProfile(w http.ResponseWriter, r *http.Request) {
	current, ok := middleware.SessionFromContext(r.Context())
	if !ok || current.Token == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, models.User{
		UserID:    current.UserID,
		Email:     current.Email,
		FirstName: current.FirstName,
		LastName:  current.LastName,
		Role:      current.Role,
	})
}
