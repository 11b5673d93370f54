// Package reporting expone los reportes de inventario, ventas y pérdidas:
// obtiene el snapshot desde el Source, delega el cálculo en el motor puro
// (internal/domain/report) y convierte el resultado en DTOs.
package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/clubtenis/tienda-api/internal/application/dto"
	"github.com/clubtenis/tienda-api/internal/domain"
	"github.com/clubtenis/tienda-api/internal/domain/report"
)

const (
	weeklyDays  = 7
	monthlyDays = 30

	cacheTTL = time.Minute // los reportes se amortiguan, no se persisten
)

// ReportUseCase construye los reportes a partir del Source.
type ReportUseCase struct {
	source Source
	cache  Cache
	pdf    PDFGenerator
}

// NewReportUseCase construye el caso de uso. cache puede ser NoopCache{};
// pdf puede ser nil si la instalación no genera PDFs.
func NewReportUseCase(source Source, cache Cache, pdf PDFGenerator) *ReportUseCase {
	if cache == nil {
		cache = NoopCache{}
	}
	return &ReportUseCase{source: source, cache: cache, pdf: pdf}
}

// daysForPeriod traduce el período del query string a días de ventana.
func daysForPeriod(period string) (int, error) {
	switch period {
	case dto.PeriodWeekly, "":
		return weeklyDays, nil
	case dto.PeriodMonthly:
		return monthlyDays, nil
	}
	return 0, domain.ErrInvalidInput
}

// InventoryReport computa el reporte de inventario para el período dado
// ("weekly" o "monthly"). El resultado se cachea por un minuto.
func (uc *ReportUseCase) InventoryReport(ctx context.Context, period string) (*dto.InventoryReportDTO, error) {
	days, err := daysForPeriod(period)
	if err != nil {
		return nil, err
	}
	if period == "" {
		period = dto.PeriodWeekly
	}

	key := "report:inventory:" + period
	if cached, ok, err := uc.cache.GetInventory(ctx, key); err == nil && ok {
		return cached, nil
	}

	now := time.Now()
	products, err := uc.source.ListProducts()
	if err != nil {
		return nil, fmt.Errorf("reporte inventario: productos: %w", err)
	}
	windowStart := now.AddDate(0, 0, -days-1) // margen de un día por el truncado
	purchases, err := uc.source.ListPurchasesSince(windowStart)
	if err != nil {
		return nil, fmt.Errorf("reporte inventario: compras: %w", err)
	}

	rep := report.BuildInventoryReport(products, purchases, days, now)
	out := toInventoryDTO(period, rep)

	_ = uc.cache.SetInventory(ctx, key, out, cacheTTL) // cache best-effort
	return out, nil
}

// SalesReport computa el rollup diario de ventas del período.
func (uc *ReportUseCase) SalesReport(ctx context.Context, period string) (*dto.SalesReportDTO, error) {
	days, err := daysForPeriod(period)
	if err != nil {
		return nil, err
	}
	if period == "" {
		period = dto.PeriodWeekly
	}

	now := time.Now()
	purchases, err := uc.source.ListPurchasesSince(now.AddDate(0, 0, -days))
	if err != nil {
		return nil, fmt.Errorf("reporte ventas: compras: %w", err)
	}

	daily := report.BuildDailySales(purchases, days, now)
	items := make([]dto.DailySalesDTO, 0, len(daily))
	for _, d := range daily {
		items = append(items, dto.DailySalesDTO{
			Date:             d.Date.Format("2006-01-02"),
			TransactionCount: d.TransactionCount,
			UnitsSold:        d.UnitsSold,
			Revenue:          d.Revenue,
		})
	}
	return &dto.SalesReportDTO{Period: period, DaysBack: days, DailySales: items}, nil
}

// LossStatistics computa el snapshot global de pérdidas. Cacheado un minuto.
func (uc *ReportUseCase) LossStatistics(ctx context.Context) (*dto.LossStatisticsDTO, error) {
	if cached, ok, err := uc.cache.GetLossStats(ctx); err == nil && ok {
		return cached, nil
	}

	products, err := uc.source.ListProducts()
	if err != nil {
		return nil, fmt.Errorf("estadísticas de pérdidas: productos: %w", err)
	}
	losses, err := uc.source.ListLosses()
	if err != nil {
		return nil, fmt.Errorf("estadísticas de pérdidas: pérdidas: %w", err)
	}

	stats := report.BuildLossStatistics(products, losses)
	out := toLossStatsDTO(stats)

	_ = uc.cache.SetLossStats(ctx, out, cacheTTL)
	return out, nil
}

// InventoryReportPDF genera la versión imprimible del reporte de inventario.
func (uc *ReportUseCase) InventoryReportPDF(ctx context.Context, period string) ([]byte, error) {
	if uc.pdf == nil {
		return nil, domain.ErrInvalidInput
	}
	rep, err := uc.InventoryReport(ctx, period)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateInventoryPDF(ctx, rep, time.Now())
}

// ── Conversión a DTO ──────────────────────────────────────────────────────────

func toInventoryDTO(period string, rep report.InventoryReport) *dto.InventoryReportDTO {
	return &dto.InventoryReportDTO{
		Period:   period,
		DaysBack: rep.WindowDays,
		Summary: dto.ReportSummaryDTO{
			TotalProducts:   rep.Summary.TotalProducts,
			TotalStock:      rep.Summary.TotalStock,
			TotalSold:       rep.Summary.TotalSold,
			TotalRevenue:    rep.Summary.TotalRevenue,
			LowStockCount:   rep.Summary.LowStockCount,
			OutOfStockCount: rep.Summary.OutOfStockCount,
		},
		TopProducts:      toProductSalesDTOs(rep.TopProducts),
		LowStockProducts: toProductSalesDTOs(rep.LowStockProducts),
		CategorySales:    toCategorySalesDTOs(rep.CategorySales),
		AllProducts:      toProductSalesDTOs(rep.AllProducts),
	}
}

func toProductSalesDTOs(rows []report.ProductSales) []dto.ProductSalesDTO {
	out := make([]dto.ProductSalesDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ProductSalesDTO{
			ID:           r.ProductID,
			Name:         r.Name,
			Category:     r.Category,
			Stock:        r.Stock,
			Price:        r.Price,
			Active:       r.Active,
			SoldUnits:    r.SoldUnits,
			TotalRevenue: r.Revenue,
		})
	}
	return out
}

func toCategorySalesDTOs(groups []report.CategorySales) []dto.CategorySalesDTO {
	out := make([]dto.CategorySalesDTO, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.CategorySalesDTO{
			Category:  g.Category,
			UnitsSold: g.UnitsSold,
			Revenue:   g.Revenue,
		})
	}
	return out
}

func toLossStatsDTO(stats report.LossStatistics) *dto.LossStatisticsDTO {
	byType := make([]dto.LossTypeStatsDTO, 0, len(stats.ByType))
	for _, g := range stats.ByType {
		byType = append(byType, dto.LossTypeStatsDTO{
			LossType:  g.LossType,
			Incidents: g.Incidents,
			Quantity:  g.Quantity,
			ValueLost: g.ValueLost,
		})
	}
	top := make([]dto.AffectedProductDTO, 0, len(stats.TopAffected))
	for _, p := range stats.TopAffected {
		top = append(top, dto.AffectedProductDTO{
			ID:        p.ProductID,
			Name:      p.Name,
			Category:  p.Category,
			TotalLost: p.TotalLost,
			Incidents: p.Incidents,
			ValueLost: p.ValueLost,
		})
	}
	return &dto.LossStatisticsDTO{
		LossIndex:           stats.LossIndex,
		TotalIncidents:      stats.TotalIncidents,
		TotalQuantityLost:   stats.TotalQuantityLost,
		TotalValueLost:      stats.TotalValueLost,
		CurrentInventory:    stats.CurrentInventory,
		ByType:              byType,
		TopAffectedProducts: top,
	}
}
