// Package inventory contiene los casos de uso de contabilidad de pérdidas:
// registro transaccional de mermas (con descuento opcional de stock),
// listado y eliminación de registros.
package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/clubtenis/tienda-api/internal/application/dto"
	"github.com/clubtenis/tienda-api/internal/domain"
	"github.com/clubtenis/tienda-api/internal/domain/entity"
	"github.com/clubtenis/tienda-api/internal/domain/repository"
)

// RegisterLossUseCase registra pérdidas de inventario de forma transaccional.
// Si el request pide ReduceStock, el descuento del producto ocurre en la misma
// transacción que el insert de la pérdida (Commit o Rollback conjuntos).
type RegisterLossUseCase struct {
	txRunner    TxRunner
	lossRepo    repository.LossRepository
	productRepo repository.ProductRepository
}

// NewRegisterLossUseCase construye el caso de uso.
func NewRegisterLossUseCase(
	txRunner TxRunner,
	lossRepo repository.LossRepository,
	productRepo repository.ProductRepository,
) *RegisterLossUseCase {
	return &RegisterLossUseCase{
		txRunner:    txRunner,
		lossRepo:    lossRepo,
		productRepo: productRepo,
	}
}

// Register valida y persiste la pérdida. Con ReduceStock activo el stock del
// producto nunca queda negativo: si la cantidad supera el stock disponible la
// operación falla con ErrInsufficientStock y no persiste nada.
func (uc *RegisterLossUseCase) Register(ctx context.Context, in dto.CreateLossRequest) (*dto.LossResponse, error) {
	if in.ProductID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidLossType(in.LossType) {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	reportedBy := in.ReportedBy
	if reportedBy == "" {
		reportedBy = "admin"
	}
	loss := &entity.Loss{
		ID:         uuid.New().String(),
		ProductID:  in.ProductID,
		Quantity:   in.Quantity,
		LossType:   in.LossType,
		Reason:     in.Reason,
		ReportedBy: reportedBy,
		LossDate:   time.Now(),
	}

	err = uc.txRunner.Run(ctx, func(
		lossRepo repository.LossRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := lossRepo.Create(loss); err != nil {
			return err
		}
		if in.ReduceStock {
			current, err := productRepo.GetByID(in.ProductID)
			if err != nil {
				return err
			}
			if current == nil {
				return domain.ErrNotFound
			}
			if current.Stock < in.Quantity {
				return domain.ErrInsufficientStock
			}
			if err := productRepo.AdjustStock(in.ProductID, -in.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	value := product.Price.Mul(decimal.NewFromInt(int64(in.Quantity)))
	return &dto.LossResponse{
		ID:          loss.ID,
		ProductID:   loss.ProductID,
		ProductName: product.Name,
		Category:    product.Category,
		Quantity:    loss.Quantity,
		LossType:    loss.LossType,
		Reason:      loss.Reason,
		ReportedBy:  loss.ReportedBy,
		Price:       product.Price,
		LossValue:   value,
		LossDate:    loss.LossDate,
	}, nil
}

// List lista pérdidas con filtros, anotadas con datos del producto.
func (uc *RegisterLossUseCase) List(filter repository.LossFilter) (*dto.LossListResponse, error) {
	records, err := uc.lossRepo.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LossResponse, 0, len(records))
	for _, r := range records {
		items = append(items, dto.LossResponse{
			ID:          r.Loss.ID,
			ProductID:   r.Loss.ProductID,
			ProductName: r.ProductName,
			Category:    r.Category,
			Quantity:    r.Loss.Quantity,
			LossType:    r.Loss.LossType,
			Reason:      r.Loss.Reason,
			ReportedBy:  r.Loss.ReportedBy,
			Price:       r.Price,
			LossValue:   r.LossValue,
			LossDate:    r.Loss.LossDate,
		})
	}
	return &dto.LossListResponse{Items: items, Total: len(items)}, nil
}

// Delete elimina un registro de pérdida. No revierte el descuento de stock.
func (uc *RegisterLossUseCase) Delete(id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.lossRepo.Delete(id)
}
