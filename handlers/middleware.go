package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/satheeshds/aguapago/models"
)

// Response is the standard JSON envelope for all API responses.
type Response struct {
	Success    bool               `json:"success"`
	Data       any                `json:"data,omitempty"`
	Error      string             `json:"error,omitempty"`
	Message    string             `json:"message,omitempty"`
	Pagination *models.Pagination `json:"pagination,omitempty"`
}

// writeJSON writes a success envelope with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	writeResponse(w, status, Response{Success: true, Data: data})
}

// writeMessage writes a success envelope carrying a confirmation message.
func writeMessage(w http.ResponseWriter, status int, data any, msg string) {
	writeResponse(w, status, Response{Success: true, Data: data, Message: msg})
}

// writePage writes one page of a listing.
func writePage[T any](w http.ResponseWriter, page *models.Page[T]) {
	writeResponse(w, http.StatusOK, Response{Success: true, Data: page.Items, Pagination: &page.Pagination})
}

// writeError writes a failure envelope.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeResponse(w, status, Response{Success: false, Error: msg})
}

func writeResponse(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Warn("failed to write response", "error", err)
	}
}

// RateLimit rejects requests beyond the limiter's rate with 429.
func RateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Retry-After", "1")
				writeError(w, http.StatusTooManyRequests, "Too many payment requests, try again shortly")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
