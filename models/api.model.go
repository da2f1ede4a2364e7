package models

import "encoding/json"

// APIResponse is the generic envelope the backend wraps catalog payloads in
type APIResponse struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data"`
	Message   string          `json:"message,omitempty"`
	Timestamp string          `json:"timestamp"`
}

// APIErrorBody carries the error details of a failed backend call
type APIErrorBody struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// ErrorResponse is the backend's error envelope
type ErrorResponse struct {
	Success   bool         `json:"success"`
	Error     APIErrorBody `json:"error"`
	Timestamp string       `json:"timestamp"`
}

// Page is the backend's paginated response for catalog listings
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
	Size          int   `json:"size"`
	Number        int   `json:"number"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
	Empty         bool  `json:"empty"`
}
