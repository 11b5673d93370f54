package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/clubtenis/tienda-api/internal/application/dto"
	"github.com/clubtenis/tienda-api/internal/domain"
	"github.com/clubtenis/tienda-api/internal/domain/entity"
	"github.com/clubtenis/tienda-api/internal/domain/repository"
)

// InquiryUseCase consultas de servicios del club (clases, alquiler, encordado).
type InquiryUseCase struct {
	inquiryRepo repository.InquiryRepository
	userRepo    repository.UserRepository
}

// NewInquiryUseCase construye el caso de uso.
func NewInquiryUseCase(inquiryRepo repository.InquiryRepository, userRepo repository.UserRepository) *InquiryUseCase {
	return &InquiryUseCase{inquiryRepo: inquiryRepo, userRepo: userRepo}
}

// Create crea una consulta. Status por defecto "new".
func (uc *InquiryUseCase) Create(in dto.CreateInquiryRequest) (*dto.InquiryResponse, error) {
	if in.UserID == "" || in.ServiceType == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(in.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	status := in.Status
	if status == "" {
		status = entity.InquiryStatusNew
	}
	now := time.Now()
	inquiry := &entity.Inquiry{
		ID:          uuid.New().String(),
		UserID:      in.UserID,
		ServiceType: in.ServiceType,
		Message:     in.Message,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.inquiryRepo.Create(inquiry); err != nil {
		return nil, err
	}
	return &dto.InquiryResponse{
		ID:          inquiry.ID,
		UserID:      inquiry.UserID,
		UserName:    user.FullName,
		UserEmail:   user.Email,
		ServiceType: inquiry.ServiceType,
		Message:     inquiry.Message,
		Status:      inquiry.Status,
		CreatedAt:   inquiry.CreatedAt,
		UpdatedAt:   inquiry.UpdatedAt,
	}, nil
}

// List lista consultas con filtros, más recientes primero.
func (uc *InquiryUseCase) List(filter repository.InquiryFilter) (*dto.InquiryListResponse, error) {
	records, err := uc.inquiryRepo.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InquiryResponse, 0, len(records))
	for _, r := range records {
		items = append(items, dto.InquiryResponse{
			ID:          r.Inquiry.ID,
			UserID:      r.Inquiry.UserID,
			UserName:    r.UserName,
			UserEmail:   r.UserEmail,
			ServiceType: r.Inquiry.ServiceType,
			Message:     r.Inquiry.Message,
			Status:      r.Inquiry.Status,
			CreatedAt:   r.Inquiry.CreatedAt,
			UpdatedAt:   r.Inquiry.UpdatedAt,
		})
	}
	return &dto.InquiryListResponse{Items: items, Total: len(items)}, nil
}

// Update actualiza estado y/o mensaje de una consulta.
func (uc *InquiryUseCase) Update(id string, in dto.UpdateInquiryRequest) (*dto.InquiryResponse, error) {
	if in.Status == nil && in.Message == nil {
		return nil, domain.ErrInvalidInput
	}
	inquiry, err := uc.inquiryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inquiry == nil {
		return nil, nil
	}
	if in.Status != nil {
		inquiry.Status = *in.Status
	}
	if in.Message != nil {
		inquiry.Message = *in.Message
	}
	inquiry.UpdatedAt = time.Now()
	if err := uc.inquiryRepo.Update(inquiry); err != nil {
		return nil, err
	}
	return &dto.InquiryResponse{
		ID:          inquiry.ID,
		UserID:      inquiry.UserID,
		ServiceType: inquiry.ServiceType,
		Message:     inquiry.Message,
		Status:      inquiry.Status,
		CreatedAt:   inquiry.CreatedAt,
		UpdatedAt:   inquiry.UpdatedAt,
	}, nil
}
