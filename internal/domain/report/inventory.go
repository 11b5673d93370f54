// Package report implementa el motor de agregación de inventario: cálculo puro
// (sin I/O ni estado propio) de reportes de ventas e índice de pérdidas a partir
// de colecciones ya materializadas de productos, compras y pérdidas.
//
// El caller es responsable de entregar un snapshot consistente (p.ej. una sola
// lectura transaccional); el motor no observa escrituras parciales porque solo
// opera sobre los slices recibidos.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clubtenis/tienda-api/internal/domain/entity"
)

const (
	topProductsLimit = 5  // productos con mayor revenue en el reporte
	lowStockLimit    = 5  // productos con stock más bajo (sin contar agotados)
	lowStockMax      = 10 // stock < 10 se considera bajo
)

// ProductSales ventas de un producto dentro de la ventana del reporte.
type ProductSales struct {
	ProductID string
	Name      string
	Category  string
	Stock     int
	Price     decimal.Decimal
	Active    bool
	SoldUnits int
	Revenue   decimal.Decimal
}

// Summary totales generales del reporte de inventario.
type Summary struct {
	TotalProducts   int
	TotalStock      int
	TotalSold       int
	TotalRevenue    decimal.Decimal
	LowStockCount   int // productos con 0 < stock < 10
	OutOfStockCount int // productos con stock == 0
}

// CategorySales ventas agrupadas por categoría (etiqueta exacta, sin normalizar).
type CategorySales struct {
	Category  string
	UnitsSold int
	Revenue   decimal.Decimal
}

// InventoryReport reporte de inventario para una ventana de N días.
// AllProducts conserva el orden del catálogo de entrada; TopProducts y
// LowStockProducts son vistas ordenadas y truncadas sobre los mismos datos.
type InventoryReport struct {
	WindowDays       int
	Summary          Summary
	TopProducts      []ProductSales
	LowStockProducts []ProductSales
	CategorySales    []CategorySales
	AllProducts      []ProductSales
}

// BuildInventoryReport computa el reporte de inventario para la ventana de
// windowDays días que termina en now.
//
// La ventana es a granularidad de día: el inicio se trunca al comienzo del día
// de hace windowDays días, de modo que una compra de hoy más temprano siempre
// cuenta como "día 0". Colecciones vacías producen un reporte en ceros; los
// productos sin ventas en la ventana quedan con SoldUnits y Revenue en cero.
func BuildInventoryReport(products []*entity.Product, purchases []*entity.Purchase, windowDays int, now time.Time) InventoryReport {
	windowStart := dayStart(now.AddDate(0, 0, -windowDays))

	// Ventas por producto dentro de la ventana
	type sales struct {
		units   int
		revenue decimal.Decimal
	}
	byProduct := make(map[string]sales, len(products))
	for _, pu := range purchases {
		if pu.PurchaseDate.Before(windowStart) {
			continue
		}
		s := byProduct[pu.ProductID]
		s.units += pu.Quantity
		s.revenue = s.revenue.Add(pu.Total)
		byProduct[pu.ProductID] = s
	}

	all := make([]ProductSales, 0, len(products))
	summary := Summary{TotalRevenue: decimal.Zero}
	for _, p := range products {
		s := byProduct[p.ID]
		row := ProductSales{
			ProductID: p.ID,
			Name:      p.Name,
			Category:  p.Category,
			Stock:     p.Stock,
			Price:     p.Price,
			Active:    p.Active,
			SoldUnits: s.units,
			Revenue:   s.revenue,
		}
		if row.Revenue.IsZero() {
			row.Revenue = decimal.Zero
		}
		all = append(all, row)

		summary.TotalProducts++
		summary.TotalStock += p.Stock
		summary.TotalSold += row.SoldUnits
		summary.TotalRevenue = summary.TotalRevenue.Add(row.Revenue)
		switch {
		case p.IsOutOfStock():
			summary.OutOfStockCount++
		case p.IsLowStock():
			summary.LowStockCount++
		}
	}

	return InventoryReport{
		WindowDays:       windowDays,
		Summary:          summary,
		TopProducts:      topByRevenue(all),
		LowStockProducts: lowestStock(all),
		CategorySales:    salesByCategory(all),
		AllProducts:      all,
	}
}

// dayStart trunca t al comienzo de su día calendario (00:00:00).
func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// topByRevenue devuelve los 5 productos con mayor revenue, descendente.
// Orden estable: a igual revenue conserva el orden relativo del catálogo.
func topByRevenue(all []ProductSales) []ProductSales {
	top := make([]ProductSales, len(all))
	copy(top, all)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Revenue.GreaterThan(top[j].Revenue)
	})
	if len(top) > topProductsLimit {
		top = top[:topProductsLimit]
	}
	return top
}

// lowestStock devuelve hasta 5 productos con stock bajo (0 < stock < 10),
// ordenados de menor a mayor stock.
func lowestStock(all []ProductSales) []ProductSales {
	low := make([]ProductSales, 0)
	for _, row := range all {
		if row.Stock > 0 && row.Stock < lowStockMax {
			low = append(low, row)
		}
	}
	sort.SliceStable(low, func(i, j int) bool {
		return low[i].Stock < low[j].Stock
	})
	if len(low) > lowStockLimit {
		low = low[:lowStockLimit]
	}
	return low
}

// salesByCategory agrupa ventas por etiqueta de categoría (match exacto de
// string) y ordena los grupos por revenue descendente.
func salesByCategory(all []ProductSales) []CategorySales {
	index := make(map[string]int)
	groups := make([]CategorySales, 0)
	for _, row := range all {
		i, ok := index[row.Category]
		if !ok {
			i = len(groups)
			index[row.Category] = i
			groups = append(groups, CategorySales{Category: row.Category, Revenue: decimal.Zero})
		}
		groups[i].UnitsSold += row.SoldUnits
		groups[i].Revenue = groups[i].Revenue.Add(row.Revenue)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Revenue.GreaterThan(groups[j].Revenue)
	})
	return groups
}
