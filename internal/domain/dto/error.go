package dto

// ErrorResponse is the body of every failed retrieval.
type ErrorResponse struct {
	Error string `json:"error"`
}
