package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePurchaseRequest entrada para registrar una compra.
// El total se calcula en el servidor (quantity * price).
type CreatePurchaseRequest struct {
	UserID    string          `json:"user_id" validate:"required"`
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required,min=1"`
	Price     decimal.Decimal `json:"price"`
}

// PurchaseResponse salida de una compra con datos de usuario y producto.
type PurchaseResponse struct {
	ID           string          `json:"id"`
	UserID       string          `json:"user_id"`
	UserName     string          `json:"user_name,omitempty"`
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name,omitempty"`
	ImageURL     string          `json:"image_url,omitempty"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	Total        decimal.Decimal `json:"total"`
	PurchaseDate time.Time       `json:"purchase_date"`
}

// PurchaseListResponse lista de compras.
type PurchaseListResponse struct {
	Items []PurchaseResponse `json:"items"`
	Total int                `json:"total"`
}
