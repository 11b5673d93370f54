package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/clubtenis/tienda-api/internal/application/dto"
	"github.com/clubtenis/tienda-api/internal/domain"
	"github.com/clubtenis/tienda-api/internal/domain/entity"
	"github.com/clubtenis/tienda-api/internal/domain/repository"
)

// PurchaseUseCase registro y consulta de compras.
// Las compras son inmutables: una vez registradas no se modifican.
type PurchaseUseCase struct {
	purchaseRepo repository.PurchaseRepository
	productRepo  repository.ProductRepository
	userRepo     repository.UserRepository
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(
	purchaseRepo repository.PurchaseRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
) *PurchaseUseCase {
	return &PurchaseUseCase{
		purchaseRepo: purchaseRepo,
		productRepo:  productRepo,
		userRepo:     userRepo,
	}
}

// Create registra una compra. El total se calcula aquí (quantity * price),
// nunca se acepta del cliente.
func (uc *PurchaseUseCase) Create(in dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	if in.UserID == "" || in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 || !in.Price.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(in.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	total := in.Price.Mul(decimal.NewFromInt(int64(in.Quantity)))
	purchase := &entity.Purchase{
		ID:           uuid.New().String(),
		UserID:       in.UserID,
		ProductID:    in.ProductID,
		Quantity:     in.Quantity,
		Price:        in.Price,
		Total:        total,
		PurchaseDate: time.Now(),
	}
	if err := uc.purchaseRepo.Create(purchase); err != nil {
		return nil, err
	}
	return &dto.PurchaseResponse{
		ID:           purchase.ID,
		UserID:       purchase.UserID,
		UserName:     user.FullName,
		ProductID:    purchase.ProductID,
		ProductName:  product.Name,
		ImageURL:     product.ImageURL,
		Quantity:     purchase.Quantity,
		Price:        purchase.Price,
		Total:        purchase.Total,
		PurchaseDate: purchase.PurchaseDate,
	}, nil
}

// List lista compras con filtros (usuario, rango de fechas), más recientes primero.
func (uc *PurchaseUseCase) List(filter repository.PurchaseFilter) (*dto.PurchaseListResponse, error) {
	records, err := uc.purchaseRepo.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PurchaseResponse, 0, len(records))
	for _, r := range records {
		items = append(items, dto.PurchaseResponse{
			ID:           r.Purchase.ID,
			UserID:       r.Purchase.UserID,
			UserName:     r.UserName,
			ProductID:    r.Purchase.ProductID,
			ProductName:  r.ProductName,
			ImageURL:     r.ImageURL,
			Quantity:     r.Purchase.Quantity,
			Price:        r.Purchase.Price,
			Total:        r.Purchase.Total,
			PurchaseDate: r.Purchase.PurchaseDate,
		})
	}
	return &dto.PurchaseListResponse{Items: items, Total: len(items)}, nil
}
