// Package cart implementa el carrito de compras como servicio con estado
// explícito: las operaciones reciben el usuario y el store se inyecta,
// sin globals de sesión.
package cart

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/clubtenis/tienda-api/internal/application/dto"
	"github.com/clubtenis/tienda-api/internal/domain"
	"github.com/clubtenis/tienda-api/internal/domain/repository"
)

// Service operaciones del carrito. Los precios siempre se resuelven contra el
// catálogo vigente al momento de leer el carrito, nunca se guardan en el store.
type Service struct {
	store       Store
	productRepo repository.ProductRepository
}

// NewService construye el servicio.
func NewService(store Store, productRepo repository.ProductRepository) *Service {
	return &Service{store: store, productRepo: productRepo}
}

// Get devuelve el carrito del usuario con precios y subtotales vigentes.
// Ítems cuyo producto ya no está activo se omiten de la respuesta.
func (s *Service) Get(ctx context.Context, userID string) (*dto.CartResponse, error) {
	items, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := &dto.CartResponse{
		UserID: userID,
		Items:  make([]dto.CartItemResponse, 0, len(items)),
		Total:  decimal.Zero,
	}
	for _, it := range items {
		product, err := s.productRepo.GetByID(it.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || !product.Active {
			continue
		}
		subtotal := product.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		out.Items = append(out.Items, dto.CartItemResponse{
			ProductID: product.ID,
			Name:      product.Name,
			ImageURL:  product.ImageURL,
			Quantity:  it.Quantity,
			Price:     product.Price,
			Subtotal:  subtotal,
		})
		out.Total = out.Total.Add(subtotal)
	}
	return out, nil
}

// Add agrega unidades de un producto al carrito (o incrementa la línea
// existente). La cantidad resultante no puede superar el stock disponible.
func (s *Service) Add(ctx context.Context, userID, productID string, quantity int) (*dto.CartResponse, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.Active {
		return nil, domain.ErrNotFound
	}

	items, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	found := false
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity += quantity
			if items[i].Quantity > product.Stock {
				return nil, domain.ErrInsufficientStock
			}
			found = true
			break
		}
	}
	if !found {
		if quantity > product.Stock {
			return nil, domain.ErrInsufficientStock
		}
		items = append(items, Item{ProductID: productID, Quantity: quantity})
	}
	if err := s.store.Save(ctx, userID, items); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}

// SetQuantity fija la cantidad de una línea. Cantidad 0 elimina la línea.
func (s *Service) SetQuantity(ctx context.Context, userID, productID string, quantity int) (*dto.CartResponse, error) {
	if quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	if quantity == 0 {
		return s.Remove(ctx, userID, productID)
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.Active {
		return nil, domain.ErrNotFound
	}
	if quantity > product.Stock {
		return nil, domain.ErrInsufficientStock
	}

	items, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	found := false
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		items = append(items, Item{ProductID: productID, Quantity: quantity})
	}
	if err := s.store.Save(ctx, userID, items); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}

// Remove elimina la línea del producto indicado.
func (s *Service) Remove(ctx context.Context, userID, productID string) (*dto.CartResponse, error) {
	items, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	kept := items[:0]
	for _, it := range items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	if err := s.store.Save(ctx, userID, kept); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}

// Clear vacía el carrito (p.ej. al confirmar la compra).
func (s *Service) Clear(ctx context.Context, userID string) error {
	return s.store.Clear(ctx, userID)
}
