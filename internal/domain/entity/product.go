package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo del catálogo de la tienda del club.
// Category es una etiqueta libre ("ropa", "calzado", "general", ...).
// La eliminación es lógica: Active = false conserva el historial de compras y pérdidas.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta, > 0 si el producto está activo
	ImageURL    string
	Category    string
	Stock       int // unidades disponibles, nunca negativo
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsLowStock indica si el producto tiene stock bajo (entre 1 y 9 unidades).
func (p *Product) IsLowStock() bool {
	return p.Stock > 0 && p.Stock < 10
}

// IsOutOfStock indica si el producto está agotado.
func (p *Product) IsOutOfStock() bool {
	return p.Stock == 0
}
