package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateLossRequest entrada para registrar una pérdida de inventario.
// ReduceStock descuenta el stock del producto en la misma transacción.
type CreateLossRequest struct {
	ProductID   string `json:"product_id" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required,min=1"`
	LossType    string `json:"loss_type" validate:"required,oneof=robo deterioro error_registro otro"`
	Reason      string `json:"reason"`
	ReportedBy  string `json:"reported_by"`
	ReduceStock bool   `json:"reduce_stock"`
}

// LossResponse salida de una pérdida con datos del producto.
type LossResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Category    string          `json:"category"`
	Quantity    int             `json:"quantity"`
	LossType    string          `json:"loss_type"`
	Reason      string          `json:"reason"`
	ReportedBy  string          `json:"reported_by"`
	Price       decimal.Decimal `json:"price"`
	LossValue   decimal.Decimal `json:"loss_value"`
	LossDate    time.Time       `json:"loss_date"`
}

// LossListResponse lista de pérdidas.
type LossListResponse struct {
	Items []LossResponse `json:"items"`
	Total int            `json:"total"`
}
