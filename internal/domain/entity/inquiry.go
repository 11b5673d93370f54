package entity

import "time"

// Estados de una consulta de servicio.
const (
	InquiryStatusNew        = "new"
	InquiryStatusInProgress = "in_progress"
	InquiryStatusResolved   = "resolved"
)

// Inquiry representa una consulta de un socio sobre un servicio del club
// (clases, alquiler de cancha, encordado, etc.).
type Inquiry struct {
	ID          string
	UserID      string
	ServiceType string
	Message     string
	Status      string // new, in_progress, resolved
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
