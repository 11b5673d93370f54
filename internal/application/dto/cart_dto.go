package dto

import "github.com/shopspring/decimal"

// CartItemRequest entrada para agregar o ajustar un ítem del carrito.
type CartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// CartItemResponse ítem del carrito con precio vigente del producto.
type CartItemResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	ImageURL  string          `json:"image_url"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// CartResponse carrito completo de un usuario.
type CartResponse struct {
	UserID string             `json:"user_id"`
	Items  []CartItemResponse `json:"items"`
	Total  decimal.Decimal    `json:"total"`
}
