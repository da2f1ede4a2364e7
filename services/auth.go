package services

import (
	"context"
	"net/http"

	"go-storefront/models"
)

// AuthService calls the backend auth endpoints
type AuthService struct {
	client *Client
}

// NewAuthService creates a new AuthService
func NewAuthService(client *Client) *AuthService {
	return &AuthService{client: client}
}

// Register registers a new user
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	var resp models.AuthResponse
	err := s.client.do(ctx, http.MethodPost, "/auth/register", nil, req, &resp)
	return resp, err
}

// Login authenticates a user and returns the issued token
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	var resp models.AuthResponse
	err := s.client.do(ctx, http.MethodPost, "/auth/login", nil, req, &resp)
	return resp, err
}
