package dto

// SuccessResponse is the confirmation body returned by mutating
// endpoints. The message is opaque; it carries no row-count guarantee.
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the error body for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
