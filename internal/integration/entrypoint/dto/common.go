// Package dto defines data transfer objects for API requests and responses.
package dto

// ErrorResponse represents an error returned by the API. Code carries the
// machine-readable domain error code when one applies.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
