package reporting

import (
	"context"
	"time"

	"github.com/clubtenis/tienda-api/internal/application/dto"
	"github.com/clubtenis/tienda-api/internal/domain/entity"
)

// Source entrega las colecciones que consume el motor de reportes.
// Las tres lecturas deben provenir de un snapshot razonablemente consistente;
// las implementaciones sobre PostgreSQL lo resuelven con lecturas simples
// (el motor nunca escribe).
type Source interface {
	// ListProducts devuelve el catálogo completo, activos e inactivos,
	// en el orden natural del catálogo.
	ListProducts() ([]*entity.Product, error)
	// ListPurchasesSince devuelve compras con fecha >= since.
	ListPurchasesSince(since time.Time) ([]*entity.Purchase, error)
	// ListLosses devuelve todas las pérdidas registradas.
	ListLosses() ([]*entity.Loss, error)
}

// Cache cache de corta vida para reportes computados (los reportes se
// recalculan en cada request; el cache solo amortigua ráfagas de lecturas).
type Cache interface {
	GetInventory(ctx context.Context, key string) (*dto.InventoryReportDTO, bool, error)
	SetInventory(ctx context.Context, key string, report *dto.InventoryReportDTO, ttl time.Duration) error
	GetLossStats(ctx context.Context) (*dto.LossStatisticsDTO, bool, error)
	SetLossStats(ctx context.Context, stats *dto.LossStatisticsDTO, ttl time.Duration) error
}

// NoopCache implementación nula (sin Redis configurado).
type NoopCache struct{}

func (NoopCache) GetInventory(context.Context, string) (*dto.InventoryReportDTO, bool, error) {
	return nil, false, nil
}

func (NoopCache) SetInventory(context.Context, string, *dto.InventoryReportDTO, time.Duration) error {
	return nil
}

func (NoopCache) GetLossStats(context.Context) (*dto.LossStatisticsDTO, bool, error) {
	return nil, false, nil
}

func (NoopCache) SetLossStats(context.Context, *dto.LossStatisticsDTO, time.Duration) error {
	return nil
}

// PDFGenerator genera la versión imprimible del reporte de inventario.
type PDFGenerator interface {
	GenerateInventoryPDF(ctx context.Context, report *dto.InventoryReportDTO, generatedAt time.Time) ([]byte, error)
}
