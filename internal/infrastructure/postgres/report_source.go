package postgres

import (
	"time"

	"github.com/clubtenis/tienda-api/internal/application/reporting"
	"github.com/clubtenis/tienda-api/internal/domain/entity"
)

var _ reporting.Source = (*ReportSource)(nil)

// ReportSource entrega las colecciones que consume el motor de reportes,
// componiendo los repositorios de productos, compras y pérdidas.
type ReportSource struct {
	products  *ProductRepo
	purchases *PurchaseRepo
	losses    *LossRepo
}

// NewReportSource construye la fuente de datos de reportes sobre el pool.
func NewReportSource(q Querier) *ReportSource {
	return &ReportSource{
		products:  NewProductRepository(q),
		purchases: NewPurchaseRepository(q),
		losses:    NewLossRepository(q),
	}
}

// ListProducts devuelve el catálogo completo, activos e inactivos.
func (s *ReportSource) ListProducts() ([]*entity.Product, error) {
	return s.products.ListAll()
}

// ListPurchasesSince devuelve compras con fecha >= since.
func (s *ReportSource) ListPurchasesSince(since time.Time) ([]*entity.Purchase, error) {
	return s.purchases.ListSince(since)
}

// ListLosses devuelve todas las pérdidas registradas.
func (s *ReportSource) ListLosses() ([]*entity.Loss, error) {
	return s.losses.ListAll()
}
