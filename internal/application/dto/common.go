package dto

// ErrorResponse cuerpo de error HTTP. Message va en italiano: es el texto que
// muestra el frontend original.
type ErrorResponse struct {
	Message string `json:"message"`
}

// MessageResponse respuesta simple de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}
