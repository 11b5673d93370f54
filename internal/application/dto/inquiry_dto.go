package dto

import "time"

// CreateInquiryRequest entrada para crear una consulta de servicio.
type CreateInquiryRequest struct {
	UserID      string `json:"user_id" validate:"required"`
	ServiceType string `json:"service_type" validate:"required"`
	Message     string `json:"message"`
	Status      string `json:"status"`
}

// UpdateInquiryRequest entrada para actualizar estado o mensaje.
type UpdateInquiryRequest struct {
	Status  *string `json:"status"`
	Message *string `json:"message"`
}

// InquiryResponse salida de una consulta con datos del usuario.
type InquiryResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name,omitempty"`
	UserEmail   string    `json:"user_email,omitempty"`
	ServiceType string    `json:"service_type"`
	Message     string    `json:"message"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// InquiryListResponse lista de consultas.
type InquiryListResponse struct {
	Items []InquiryResponse `json:"items"`
	Total int               `json:"total"`
}
