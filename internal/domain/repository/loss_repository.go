package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/clubtenis/tienda-api/internal/domain/entity"
)

// LossFilter filtros para el listado de pérdidas.
type LossFilter struct {
	DateFrom *time.Time
	DateTo   *time.Time
	LossType string
}

// LossRecord resultado crudo del listado: pérdida más datos del producto y el
// valor de la pérdida a precio actual (quantity * price).
type LossRecord struct {
	Loss        entity.Loss
	ProductName string
	Category    string
	Price       decimal.Decimal
	LossValue   decimal.Decimal
}

// LossRepository define el puerto de persistencia para Loss (DIP).
type LossRepository interface {
	Create(loss *entity.Loss) error
	// List devuelve pérdidas anotadas con datos de producto, más recientes primero.
	List(filter LossFilter) ([]LossRecord, error)
	// ListAll devuelve todas las pérdidas (insumo del motor de estadísticas).
	ListAll() ([]*entity.Loss, error)
	Delete(id string) error
}
