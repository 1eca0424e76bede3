package dto

// ErrorResponse is the body of every failed API call.
// @name ErrorResponse
type ErrorResponse struct {
	Error string `json:"error" example:"Registro no encontrado"`
}

// MessageResponse carries a human-readable confirmation.
// @name MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"Registro aprobado correctamente"`
}

// NewErrorResponse creates an error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// NewMessageResponse creates a confirmation response
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}
