package cart_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubtenis/tienda-api/internal/application/cart"
	"github.com/clubtenis/tienda-api/internal/domain"
	"github.com/clubtenis/tienda-api/internal/domain/entity"
	"github.com/clubtenis/tienda-api/internal/domain/repository"
	"github.com/clubtenis/tienda-api/internal/infrastructure/memorystore"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakeProductRepo catálogo en memoria para los tests del carrito.
type fakeProductRepo struct {
	products map[string]*entity.Product
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	m := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeProductRepo{products: m}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) List(repository.ProductFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) ListAll() ([]*entity.Product, error) {
	return r.List(repository.ProductFilter{})
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) AdjustStock(id string, delta int) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock += delta
	return nil
}

func (r *fakeProductRepo) SoftDelete(id string) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Active = false
	return nil
}

func producto(id, name string, price int64, stock int) *entity.Product {
	return &entity.Product{
		ID:     id,
		Name:   name,
		Price:  decimal.NewFromInt(price),
		Stock:  stock,
		Active: true,
	}
}

func buildService(products ...*entity.Product) *cart.Service {
	return cart.NewService(memorystore.NewCartStore(), newFakeProductRepo(products...))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCart_VacioAlInicio(t *testing.T) {
	svc := buildService(producto("p1", "Raqueta", 100, 5))

	out, err := svc.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.True(t, out.Total.IsZero(), "el total del carrito vacío debe ser cero")
}

func TestCart_AgregarProducto(t *testing.T) {
	svc := buildService(producto("p1", "Raqueta", 100, 5))

	out, err := svc.Add(context.Background(), "u1", "p1", 2)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, 2, out.Items[0].Quantity)
	assert.True(t, out.Items[0].Subtotal.Equal(decimal.NewFromInt(200)))
	assert.True(t, out.Total.Equal(decimal.NewFromInt(200)))
}

func TestCart_AgregarMismaLineaAcumula(t *testing.T) {
	svc := buildService(producto("p1", "Raqueta", 100, 5))
	ctx := context.Background()

	_, err := svc.Add(ctx, "u1", "p1", 2)
	require.NoError(t, err)
	out, err := svc.Add(ctx, "u1", "p1", 1)
	require.NoError(t, err)

	require.Len(t, out.Items, 1, "agregar el mismo producto debe acumular en una línea")
	assert.Equal(t, 3, out.Items[0].Quantity)
}

func TestCart_AgregarSuperaStock(t *testing.T) {
	svc := buildService(producto("p1", "Raqueta", 100, 3))
	ctx := context.Background()

	_, err := svc.Add(ctx, "u1", "p1", 2)
	require.NoError(t, err)
	_, err = svc.Add(ctx, "u1", "p1", 2)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock,
		"acumular por encima del stock debe fallar")

	// La línea previa queda intacta
	out, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, 2, out.Items[0].Quantity)
}

func TestCart_ProductoInexistente(t *testing.T) {
	svc := buildService()

	_, err := svc.Add(context.Background(), "u1", "no-existe", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCart_ProductoInactivoNoSePuedeAgregar(t *testing.T) {
	p := producto("p1", "Raqueta", 100, 5)
	p.Active = false
	svc := buildService(p)

	_, err := svc.Add(context.Background(), "u1", "p1", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCart_ProductoDesactivadoSeOmiteDelGet(t *testing.T) {
	p1 := producto("p1", "Raqueta", 100, 5)
	p2 := producto("p2", "Pelotas", 10, 20)
	repo := newFakeProductRepo(p1, p2)
	svc := cart.NewService(memorystore.NewCartStore(), repo)
	ctx := context.Background()

	_, err := svc.Add(ctx, "u1", "p1", 1)
	require.NoError(t, err)
	_, err = svc.Add(ctx, "u1", "p2", 3)
	require.NoError(t, err)

	// El producto se desactiva después de estar en el carrito
	require.NoError(t, repo.SoftDelete("p1"))

	out, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, out.Items, 1, "el producto inactivo debe omitirse")
	assert.Equal(t, "p2", out.Items[0].ProductID)
	assert.True(t, out.Total.Equal(decimal.NewFromInt(30)))
}

func TestCart_SetQuantity(t *testing.T) {
	svc := buildService(producto("p1", "Raqueta", 100, 5))
	ctx := context.Background()

	_, err := svc.Add(ctx, "u1", "p1", 1)
	require.NoError(t, err)

	out, err := svc.SetQuantity(ctx, "u1", "p1", 4)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, 4, out.Items[0].Quantity)
}

func TestCart_SetQuantityCeroEliminaLinea(t *testing.T) {
	svc := buildService(producto("p1", "Raqueta", 100, 5))
	ctx := context.Background()

	_, err := svc.Add(ctx, "u1", "p1", 2)
	require.NoError(t, err)

	out, err := svc.SetQuantity(ctx, "u1", "p1", 0)
	require.NoError(t, err)
	assert.Empty(t, out.Items)
}

func TestCart_SetQuantitySuperaStock(t *testing.T) {
	svc := buildService(producto("p1", "Raqueta", 100, 3))

	_, err := svc.SetQuantity(context.Background(), "u1", "p1", 10)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestCart_RemoveYClear(t *testing.T) {
	svc := buildService(
		producto("p1", "Raqueta", 100, 5),
		producto("p2", "Pelotas", 10, 20),
	)
	ctx := context.Background()

	_, err := svc.Add(ctx, "u1", "p1", 1)
	require.NoError(t, err)
	_, err = svc.Add(ctx, "u1", "p2", 2)
	require.NoError(t, err)

	out, err := svc.Remove(ctx, "u1", "p1")
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "p2", out.Items[0].ProductID)

	require.NoError(t, svc.Clear(ctx, "u1"))
	out, err = svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, out.Items)
}

func TestCart_CarritosPorUsuarioIndependientes(t *testing.T) {
	svc := buildService(producto("p1", "Raqueta", 100, 5))
	ctx := context.Background()

	_, err := svc.Add(ctx, "u1", "p1", 1)
	require.NoError(t, err)

	out, err := svc.Get(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, out.Items, "el carrito de otro usuario debe estar vacío")
}

func TestCart_PreciosSiempreVigentes(t *testing.T) {
	p := producto("p1", "Raqueta", 100, 5)
	repo := newFakeProductRepo(p)
	svc := cart.NewService(memorystore.NewCartStore(), repo)
	ctx := context.Background()

	_, err := svc.Add(ctx, "u1", "p1", 2)
	require.NoError(t, err)

	// El precio cambia después de agregar al carrito
	p.Price = decimal.NewFromInt(150)

	out, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, out.Total.Equal(decimal.NewFromInt(300)),
		"el total debe reflejar el precio vigente del catálogo")
}
