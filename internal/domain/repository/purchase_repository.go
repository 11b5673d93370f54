package repository

import (
	"time"

	"github.com/clubtenis/tienda-api/internal/domain/entity"
)

// PurchaseFilter filtros para el listado de compras.
type PurchaseFilter struct {
	UserID   string
	DateFrom *time.Time
	DateTo   *time.Time
}

// PurchaseRecord resultado crudo del listado: compra más los datos del
// usuario y del producto asociados (JOIN). Lo produce la DB; el use case
// lo convierte en DTO.
type PurchaseRecord struct {
	Purchase    entity.Purchase
	UserName    string
	ProductName string
	ImageURL    string
}

// PurchaseRepository define el puerto de persistencia para Purchase (DIP).
// Las compras son inmutables: solo se crean y se consultan.
type PurchaseRepository interface {
	Create(purchase *entity.Purchase) error
	// List devuelve compras con datos de usuario y producto, más recientes primero.
	List(filter PurchaseFilter) ([]PurchaseRecord, error)
	// ListSince devuelve las compras con fecha >= since (insumo del motor de reportes).
	ListSince(since time.Time) ([]*entity.Purchase, error)
}
