package dto

// ErrorResponse is the standard error body returned by the API
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the standard confirmation body returned by the API
type MessageResponse struct {
	Message string `json:"message"`
}
