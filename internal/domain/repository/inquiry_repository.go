package repository

import "github.com/clubtenis/tienda-api/internal/domain/entity"

// InquiryFilter filtros para el listado de consultas.
type InquiryFilter struct {
	UserID      string
	Status      string
	ServiceType string
}

// InquiryRecord consulta anotada con nombre y email del usuario (JOIN).
type InquiryRecord struct {
	Inquiry   entity.Inquiry
	UserName  string
	UserEmail string
}

// InquiryRepository define el puerto de persistencia para Inquiry (DIP).
type InquiryRepository interface {
	Create(inquiry *entity.Inquiry) error
	GetByID(id string) (*entity.Inquiry, error)
	List(filter InquiryFilter) ([]InquiryRecord, error)
	Update(inquiry *entity.Inquiry) error
}
