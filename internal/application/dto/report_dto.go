package dto

import "github.com/shopspring/decimal"

// Períodos soportados por los reportes.
const (
	PeriodWeekly  = "weekly"  // ventana de 7 días
	PeriodMonthly = "monthly" // ventana de 30 días
)

// ProductSalesDTO ventas de un producto dentro de la ventana del reporte.
type ProductSalesDTO struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Stock        int             `json:"stock"`
	Price        decimal.Decimal `json:"price"`
	Active       bool            `json:"is_active"`
	SoldUnits    int             `json:"sold_units"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// ReportSummaryDTO totales generales del reporte de inventario.
type ReportSummaryDTO struct {
	TotalProducts   int             `json:"total_products"`
	TotalStock      int             `json:"total_stock"`
	TotalSold       int             `json:"total_sold"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	LowStockCount   int             `json:"low_stock_count"`
	OutOfStockCount int             `json:"out_of_stock_count"`
}

// CategorySalesDTO ventas agrupadas por categoría.
type CategorySalesDTO struct {
	Category  string          `json:"category"`
	UnitsSold int             `json:"units_sold"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// InventoryReportDTO respuesta de GET /api/reports?type=inventory.
type InventoryReportDTO struct {
	Period           string             `json:"period"`
	DaysBack         int                `json:"days_back"`
	Summary          ReportSummaryDTO   `json:"summary"`
	TopProducts      []ProductSalesDTO  `json:"top_products"`
	LowStockProducts []ProductSalesDTO  `json:"low_stock_products"`
	CategorySales    []CategorySalesDTO `json:"category_sales"`
	AllProducts      []ProductSalesDTO  `json:"all_products"`
}

// DailySalesDTO ventas agregadas de un día (reporte type=sales).
type DailySalesDTO struct {
	Date             string          `json:"date"` // YYYY-MM-DD
	TransactionCount int             `json:"transaction_count"`
	UnitsSold        int             `json:"units_sold"`
	Revenue          decimal.Decimal `json:"revenue"`
}

// SalesReportDTO respuesta de GET /api/reports?type=sales.
type SalesReportDTO struct {
	Period     string          `json:"period"`
	DaysBack   int             `json:"days_back"`
	DailySales []DailySalesDTO `json:"daily_sales"`
}

// LossTypeStatsDTO pérdidas agrupadas por tipo.
type LossTypeStatsDTO struct {
	LossType  string          `json:"loss_type"`
	Incidents int             `json:"incidents"`
	Quantity  int             `json:"quantity"`
	ValueLost decimal.Decimal `json:"value_lost"`
}

// AffectedProductDTO producto afectado por pérdidas.
type AffectedProductDTO struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	TotalLost int             `json:"total_lost"`
	Incidents int             `json:"incidents"`
	ValueLost decimal.Decimal `json:"value_lost"`
}

// LossStatisticsDTO respuesta de GET /api/losses?stats=true.
type LossStatisticsDTO struct {
	LossIndex            decimal.Decimal      `json:"loss_index"`
	TotalIncidents       int                  `json:"total_incidents"`
	TotalQuantityLost    int                  `json:"total_quantity_lost"`
	TotalValueLost       decimal.Decimal      `json:"total_value_lost"`
	CurrentInventory     int                  `json:"current_inventory"`
	ByType               []LossTypeStatsDTO   `json:"by_type"`
	TopAffectedProducts  []AffectedProductDTO `json:"top_affected_products"`
}
