package repository

import "github.com/clubtenis/tienda-api/internal/domain/entity"

// ProductFilter filtros para el listado de productos.
// Active permite forzar activos o inactivos; si es nil y IncludeInactive es
// false, el listado devuelve solo productos activos (comportamiento público).
type ProductFilter struct {
	Category        string
	Active          *bool
	IncludeInactive bool
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// Delete es eliminación lógica: marca Active = false y conserva el historial.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List(filter ProductFilter) ([]*entity.Product, error)
	// ListAll devuelve el catálogo completo (activos e inactivos) para reportes.
	ListAll() ([]*entity.Product, error)
	Update(product *entity.Product) error
	// AdjustStock suma delta (puede ser negativo) al stock del producto.
	AdjustStock(id string, delta int) error
	SoftDelete(id string) error
}
