package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go-storefront/services"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// relayError forwards a backend API error with its original status and
// message; anything else becomes a 502.
func relayError(w http.ResponseWriter, err error) {
	if apiErr, ok := services.AsAPIError(err); ok {
		http.Error(w, apiErr.Message, apiErr.Status)
		return
	}
	http.Error(w, "Upstream API unavailable", http.StatusBadGateway)
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}
