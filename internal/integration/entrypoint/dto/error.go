// Package dto defines data transfer objects for API requests and responses.
package dto

// DateLayout is the wire format for date-only fields.
const DateLayout = "2006-01-02"

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
