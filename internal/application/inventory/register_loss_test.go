package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubtenis/tienda-api/internal/application/dto"
	"github.com/clubtenis/tienda-api/internal/application/inventory"
	"github.com/clubtenis/tienda-api/internal/domain"
	"github.com/clubtenis/tienda-api/internal/domain/entity"
	"github.com/clubtenis/tienda-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func (r *fakeProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }

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

func (r *fakeProductRepo) Update(p *entity.Product) error { r.products[p.ID] = p; return nil }

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

type fakeLossRepo struct {
	losses []entity.Loss
}

var _ repository.LossRepository = (*fakeLossRepo)(nil)

func (r *fakeLossRepo) Create(l *entity.Loss) error {
	r.losses = append(r.losses, *l)
	return nil
}

func (r *fakeLossRepo) List(repository.LossFilter) ([]repository.LossRecord, error) {
	out := make([]repository.LossRecord, 0, len(r.losses))
	for _, l := range r.losses {
		out = append(out, repository.LossRecord{Loss: l})
	}
	return out, nil
}

func (r *fakeLossRepo) ListAll() ([]*entity.Loss, error) {
	out := make([]*entity.Loss, 0, len(r.losses))
	for i := range r.losses {
		out = append(out, &r.losses[i])
	}
	return out, nil
}

func (r *fakeLossRepo) Delete(id string) error {
	for i, l := range r.losses {
		if l.ID == id {
			r.losses = append(r.losses[:i], r.losses[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// fakeTxRunner simula la transacción: snapshot de los fakes, ejecuta fn y
// restaura el estado anterior si fn falla (rollback).
type fakeTxRunner struct {
	lossRepo    *fakeLossRepo
	productRepo *fakeProductRepo
}

var _ inventory.TxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	lossRepo repository.LossRepository,
	productRepo repository.ProductRepository,
) error) error {
	lossSnapshot := make([]entity.Loss, len(r.lossRepo.losses))
	copy(lossSnapshot, r.lossRepo.losses)
	productSnapshot := make(map[string]*entity.Product, len(r.productRepo.products))
	for id, p := range r.productRepo.products {
		cp := *p
		productSnapshot[id] = &cp
	}

	if err := fn(r.lossRepo, r.productRepo); err != nil {
		r.lossRepo.losses = lossSnapshot
		r.productRepo.products = productSnapshot
		return err
	}
	return nil
}

func fixture(stock int) (*inventory.RegisterLossUseCase, *fakeLossRepo, *fakeProductRepo) {
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{
		"p1": {
			ID:       "p1",
			Name:     "Raqueta Pro",
			Category: "raquetas",
			Price:    decimal.NewFromInt(250),
			Stock:    stock,
			Active:   true,
		},
	}}
	lossRepo := &fakeLossRepo{}
	txRunner := &fakeTxRunner{lossRepo: lossRepo, productRepo: productRepo}
	return inventory.NewRegisterLossUseCase(txRunner, lossRepo, productRepo), lossRepo, productRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterLoss_SinDescuentoDeStock(t *testing.T) {
	uc, lossRepo, productRepo := fixture(10)

	out, err := uc.Register(context.Background(), dto.CreateLossRequest{
		ProductID: "p1",
		Quantity:  3,
		LossType:  entity.LossTypeDamage,
		Reason:    "caja dañada en bodega",
	})
	require.NoError(t, err)

	assert.Equal(t, "p1", out.ProductID)
	assert.Equal(t, 3, out.Quantity)
	assert.Equal(t, entity.LossTypeDamage, out.LossType)
	assert.Equal(t, "admin", out.ReportedBy, "reported_by vacío debe quedar como admin")
	assert.True(t, out.LossValue.Equal(decimal.NewFromInt(750)),
		"loss_value = cantidad * precio actual")

	require.Len(t, lossRepo.losses, 1)
	assert.Equal(t, 10, productRepo.products["p1"].Stock,
		"sin reduce_stock el stock no cambia")
}

func TestRegisterLoss_ConDescuentoDeStock(t *testing.T) {
	uc, lossRepo, productRepo := fixture(10)

	_, err := uc.Register(context.Background(), dto.CreateLossRequest{
		ProductID:   "p1",
		Quantity:    4,
		LossType:    entity.LossTypeTheft,
		ReportedBy:  "jperez",
		ReduceStock: true,
	})
	require.NoError(t, err)

	require.Len(t, lossRepo.losses, 1)
	assert.Equal(t, 6, productRepo.products["p1"].Stock)
}

func TestRegisterLoss_StockInsuficienteRollback(t *testing.T) {
	uc, lossRepo, productRepo := fixture(2)

	_, err := uc.Register(context.Background(), dto.CreateLossRequest{
		ProductID:   "p1",
		Quantity:    5,
		LossType:    entity.LossTypeTheft,
		ReduceStock: true,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Empty(t, lossRepo.losses,
		"si el descuento falla, el alta de la pérdida también debe revertirse")
	assert.Equal(t, 2, productRepo.products["p1"].Stock)
}

func TestRegisterLoss_TipoInvalido(t *testing.T) {
	uc, _, _ := fixture(10)

	_, err := uc.Register(context.Background(), dto.CreateLossRequest{
		ProductID: "p1",
		Quantity:  1,
		LossType:  "incendio",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterLoss_CantidadInvalida(t *testing.T) {
	uc, _, _ := fixture(10)

	_, err := uc.Register(context.Background(), dto.CreateLossRequest{
		ProductID: "p1",
		Quantity:  0,
		LossType:  entity.LossTypeOther,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterLoss_ProductoInexistente(t *testing.T) {
	uc, _, _ := fixture(10)

	_, err := uc.Register(context.Background(), dto.CreateLossRequest{
		ProductID: "no-existe",
		Quantity:  1,
		LossType:  entity.LossTypeOther,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegisterLoss_DeleteNoRestauraStock(t *testing.T) {
	uc, lossRepo, productRepo := fixture(10)
	ctx := context.Background()

	out, err := uc.Register(ctx, dto.CreateLossRequest{
		ProductID:   "p1",
		Quantity:    3,
		LossType:    entity.LossTypeClerical,
		ReduceStock: true,
	})
	require.NoError(t, err)
	require.Equal(t, 7, productRepo.products["p1"].Stock)

	require.NoError(t, uc.Delete(out.ID))
	assert.Empty(t, lossRepo.losses)
	assert.Equal(t, 7, productRepo.products["p1"].Stock,
		"eliminar el registro no revierte el descuento de stock")
}

func TestRegisterLoss_DeleteInexistente(t *testing.T) {
	uc, _, _ := fixture(10)
	err := uc.Delete("no-existe")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
