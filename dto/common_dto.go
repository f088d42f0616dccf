package dto

// ErrorResponse representa una respuesta de error
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// UploadByLinkRequest es el body de POST /upload-by-link
type UploadByLinkRequest struct {
	Link string `json:"link"`
}
