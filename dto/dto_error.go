package dto

// ErrorResponse is the uniform error body: {"error": "..."}
type ErrorResponse struct {
	Error string `json:"error"`
}
