package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase representa una compra registrada. Inmutable una vez creada.
// Price es el precio unitario al momento de la venta; Total = Quantity * Price.
type Purchase struct {
	ID           string
	UserID       string
	ProductID    string
	Quantity     int
	Price        decimal.Decimal
	Total        decimal.Decimal
	PurchaseDate time.Time
}
