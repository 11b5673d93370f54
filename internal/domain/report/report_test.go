package report_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubtenis/tienda-api/internal/domain/entity"
	"github.com/clubtenis/tienda-api/internal/domain/report"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// now fijo para que los tests de ventana sean deterministas.
var testNow = time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)

func producto(id, name, category string, price float64, stock int) *entity.Product {
	return &entity.Product{
		ID:       id,
		Name:     name,
		Category: category,
		Price:    decimal.NewFromFloat(price),
		Stock:    stock,
		Active:   true,
	}
}

// compra crea una compra de `qty` unidades hace `daysAgo` días (misma hora que testNow).
func compra(productID string, qty int, price float64, daysAgo int) *entity.Purchase {
	unit := decimal.NewFromFloat(price)
	return &entity.Purchase{
		ID:           fmt.Sprintf("%s-%d", productID, daysAgo),
		ProductID:    productID,
		Quantity:     qty,
		Price:        unit,
		Total:        unit.Mul(decimal.NewFromInt(int64(qty))),
		PurchaseDate: testNow.AddDate(0, 0, -daysAgo),
	}
}

func perdida(productID string, qty int, lossType string) *entity.Loss {
	return &entity.Loss{
		ProductID: productID,
		Quantity:  qty,
		LossType:  lossType,
		LossDate:  testNow,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// BuildInventoryReport
// ──────────────────────────────────────────────────────────────────────────────

// Colecciones vacías producen un reporte en ceros con listas vacías.
func TestInventoryReport_EntradaVacia_ReporteEnCeros(t *testing.T) {
	rep := report.BuildInventoryReport(nil, nil, 7, testNow)

	assert.Equal(t, 7, rep.WindowDays)
	assert.Equal(t, 0, rep.Summary.TotalProducts)
	assert.Equal(t, 0, rep.Summary.TotalStock)
	assert.Equal(t, 0, rep.Summary.TotalSold)
	assert.True(t, rep.Summary.TotalRevenue.IsZero(), "revenue debe ser cero")
	assert.Equal(t, 0, rep.Summary.LowStockCount)
	assert.Equal(t, 0, rep.Summary.OutOfStockCount)
	assert.Empty(t, rep.TopProducts)
	assert.Empty(t, rep.LowStockProducts)
	assert.Empty(t, rep.CategorySales)
	assert.Empty(t, rep.AllProducts)
}

// Las ventas por producto suman exactamente las compras dentro de la ventana.
func TestInventoryReport_SumaVentasPorProducto(t *testing.T) {
	products := []*entity.Product{
		producto("p1", "Raqueta", "deporte", 100, 20),
		producto("p2", "Gorra", "ropa", 15, 30),
	}
	purchases := []*entity.Purchase{
		compra("p1", 2, 100, 0), // hoy
		compra("p1", 1, 100, 3),
		compra("p2", 4, 15, 5),
		compra("p1", 9, 100, 20), // fuera de ventana semanal
	}

	rep := report.BuildInventoryReport(products, purchases, 7, testNow)

	require.Len(t, rep.AllProducts, 2)
	assert.Equal(t, 3, rep.AllProducts[0].SoldUnits, "p1: 2 de hoy + 1 de hace 3 días")
	assert.True(t, rep.AllProducts[0].Revenue.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, 4, rep.AllProducts[1].SoldUnits)
	assert.True(t, rep.AllProducts[1].Revenue.Equal(decimal.NewFromInt(60)))

	assert.Equal(t, 7, rep.Summary.TotalSold)
	assert.True(t, rep.Summary.TotalRevenue.Equal(decimal.NewFromInt(360)))
}

// Borde de ventana: una compra de hace exactamente windowDays días (al comienzo
// de ese día) entra; una de un día antes queda fuera.
func TestInventoryReport_BordeDeVentana(t *testing.T) {
	products := []*entity.Product{producto("p1", "Pelotas", "deporte", 10, 50)}

	inicioDia := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC) // hace 7 días, 00:00
	dentro := &entity.Purchase{
		ProductID: "p1", Quantity: 1,
		Price: decimal.NewFromInt(10), Total: decimal.NewFromInt(10),
		PurchaseDate: inicioDia,
	}
	fuera := &entity.Purchase{
		ProductID: "p1", Quantity: 1,
		Price: decimal.NewFromInt(10), Total: decimal.NewFromInt(10),
		PurchaseDate: inicioDia.Add(-time.Nanosecond), // 23:59:59.999... del día anterior
	}

	rep := report.BuildInventoryReport(products, []*entity.Purchase{dentro, fuera}, 7, testNow)

	assert.Equal(t, 1, rep.AllProducts[0].SoldUnits,
		"solo la compra del inicio del día límite debe contar")
}

// Una compra de hoy más temprano cuenta aunque now tenga hora avanzada (día 0).
func TestInventoryReport_CompraDeHoyCuentaComoDiaCero(t *testing.T) {
	products := []*entity.Product{producto("p1", "Pelotas", "deporte", 10, 50)}
	madrugada := &entity.Purchase{
		ProductID: "p1", Quantity: 2,
		Price: decimal.NewFromInt(10), Total: decimal.NewFromInt(20),
		PurchaseDate: time.Date(2026, 3, 15, 0, 5, 0, 0, time.UTC),
	}

	rep := report.BuildInventoryReport(products, []*entity.Purchase{madrugada}, 7, testNow)
	assert.Equal(t, 2, rep.AllProducts[0].SoldUnits)
}

// low_stock + stock>=10 + out_of_stock particionan el total de productos.
func TestInventoryReport_ParticionDeStock(t *testing.T) {
	products := []*entity.Product{
		producto("p1", "A", "x", 1, 0),  // agotado
		producto("p2", "B", "x", 1, 5),  // bajo
		producto("p3", "C", "x", 1, 9),  // bajo
		producto("p4", "D", "x", 1, 10), // normal
		producto("p5", "E", "x", 1, 100),
		producto("p6", "F", "x", 1, 0), // agotado
	}

	rep := report.BuildInventoryReport(products, nil, 30, testNow)

	normales := rep.Summary.TotalProducts - rep.Summary.LowStockCount - rep.Summary.OutOfStockCount
	assert.Equal(t, 6, rep.Summary.TotalProducts)
	assert.Equal(t, 2, rep.Summary.LowStockCount)
	assert.Equal(t, 2, rep.Summary.OutOfStockCount)
	assert.Equal(t, 2, normales, "la partición debe ser exhaustiva y excluyente")
	assert.Equal(t, 124, rep.Summary.TotalStock)
}

// TopProducts: descendente por revenue, máximo 5, subconjunto de AllProducts,
// empates resueltos por orden de entrada (sort estable).
func TestInventoryReport_TopProductos(t *testing.T) {
	products := []*entity.Product{
		producto("p1", "A", "x", 10, 1),
		producto("p2", "B", "x", 10, 1),
		producto("p3", "C", "x", 10, 1),
		producto("p4", "D", "x", 10, 1),
		producto("p5", "E", "x", 10, 1),
		producto("p6", "F", "x", 10, 1),
		producto("p7", "G", "x", 10, 1),
	}
	purchases := []*entity.Purchase{
		compra("p3", 5, 10, 1), // 50
		compra("p1", 3, 10, 1), // 30
		compra("p5", 3, 10, 1), // 30 (empata con p1; p1 va primero en el catálogo)
		compra("p7", 9, 10, 1), // 90
	}

	rep := report.BuildInventoryReport(products, purchases, 7, testNow)

	require.Len(t, rep.TopProducts, 5)
	ids := []string{}
	for i, p := range rep.TopProducts {
		ids = append(ids, p.ProductID)
		if i > 0 {
			assert.False(t, p.Revenue.GreaterThan(rep.TopProducts[i-1].Revenue),
				"el revenue debe ser no creciente")
		}
	}
	assert.Equal(t, []string{"p7", "p3", "p1", "p5", "p2"}, ids)

	// Subconjunto de AllProducts
	all := map[string]bool{}
	for _, p := range rep.AllProducts {
		all[p.ProductID] = true
	}
	for _, p := range rep.TopProducts {
		assert.True(t, all[p.ProductID])
	}
}

// LowStockProducts: 0 < stock < 10, ascendente por stock, máximo 5.
func TestInventoryReport_StockBajo(t *testing.T) {
	products := []*entity.Product{
		producto("p1", "A", "x", 1, 8),
		producto("p2", "B", "x", 1, 0), // agotado: no aparece
		producto("p3", "C", "x", 1, 2),
		producto("p4", "D", "x", 1, 5),
		producto("p5", "E", "x", 1, 1),
		producto("p6", "F", "x", 1, 9),
		producto("p7", "G", "x", 1, 3),
		producto("p8", "H", "x", 1, 7),
		producto("p9", "I", "x", 1, 50), // normal: no aparece
	}

	rep := report.BuildInventoryReport(products, nil, 7, testNow)

	require.Len(t, rep.LowStockProducts, 5)
	stocks := []int{}
	for _, p := range rep.LowStockProducts {
		stocks = append(stocks, p.Stock)
	}
	assert.Equal(t, []int{1, 2, 3, 5, 7}, stocks)
}

// CategorySales agrupa por etiqueta exacta y ordena por revenue descendente.
func TestInventoryReport_VentasPorCategoria(t *testing.T) {
	products := []*entity.Product{
		producto("p1", "Camiseta", "ropa", 25, 10),
		producto("p2", "Short", "ropa", 15, 10),
		producto("p3", "Zapatillas", "calzado", 20, 10),
	}
	purchases := []*entity.Purchase{
		compra("p1", 2, 25, 1), // ropa: 50
		compra("p2", 2, 15, 2), // ropa: 30
		compra("p3", 1, 20, 3), // calzado: 20
	}

	rep := report.BuildInventoryReport(products, purchases, 7, testNow)

	require.Len(t, rep.CategorySales, 2)
	assert.Equal(t, "ropa", rep.CategorySales[0].Category)
	assert.True(t, rep.CategorySales[0].Revenue.Equal(decimal.NewFromInt(80)))
	assert.Equal(t, 4, rep.CategorySales[0].UnitsSold)
	assert.Equal(t, "calzado", rep.CategorySales[1].Category)
	assert.True(t, rep.CategorySales[1].Revenue.Equal(decimal.NewFromInt(20)))
}

// AllProducts conserva el orden del catálogo de entrada.
func TestInventoryReport_ConservaOrdenDeEntrada(t *testing.T) {
	products := []*entity.Product{
		producto("z9", "Z", "x", 1, 1),
		producto("a1", "A", "x", 1, 1),
		producto("m5", "M", "x", 1, 1),
	}

	rep := report.BuildInventoryReport(products, nil, 7, testNow)

	require.Len(t, rep.AllProducts, 3)
	assert.Equal(t, "z9", rep.AllProducts[0].ProductID)
	assert.Equal(t, "a1", rep.AllProducts[1].ProductID)
	assert.Equal(t, "m5", rep.AllProducts[2].ProductID)
}

// Idempotencia: dos llamadas con la misma entrada producen el mismo resultado.
func TestInventoryReport_Idempotente(t *testing.T) {
	products := []*entity.Product{
		producto("p1", "A", "ropa", 25, 3),
		producto("p2", "B", "calzado", 40, 0),
	}
	purchases := []*entity.Purchase{
		compra("p1", 2, 25, 1),
		compra("p2", 1, 40, 6),
	}

	rep1 := report.BuildInventoryReport(products, purchases, 7, testNow)
	rep2 := report.BuildInventoryReport(products, purchases, 7, testNow)

	assert.Equal(t, rep1, rep2)
}

// ──────────────────────────────────────────────────────────────────────────────
// BuildLossStatistics
// ──────────────────────────────────────────────────────────────────────────────

// Caso del glosario: inventario 90, perdido 10 → índice 10.00.
func TestLossStatistics_IndiceDePerdida(t *testing.T) {
	products := []*entity.Product{producto("p1", "A", "x", 5, 90)}
	losses := []*entity.Loss{perdida("p1", 10, entity.LossTypeTheft)}

	stats := report.BuildLossStatistics(products, losses)

	assert.True(t, stats.LossIndex.Equal(decimal.NewFromInt(10)),
		"10/(90+10)*100 = 10.00, obtenido %s", stats.LossIndex)
	assert.Equal(t, 90, stats.CurrentInventory)
	assert.Equal(t, 10, stats.TotalQuantityLost)
	assert.Equal(t, 1, stats.TotalIncidents)
	assert.True(t, stats.TotalValueLost.Equal(decimal.NewFromInt(50)), "10 unidades * precio 5")
}

// Denominador cero (sin stock ni pérdidas) → índice 0.
func TestLossStatistics_DenominadorCero(t *testing.T) {
	stats := report.BuildLossStatistics(nil, nil)

	assert.True(t, stats.LossIndex.IsZero())
	assert.Equal(t, 0, stats.TotalIncidents)
	assert.Equal(t, 0, stats.TotalQuantityLost)
	assert.True(t, stats.TotalValueLost.IsZero())
	assert.Empty(t, stats.ByType)
	assert.Empty(t, stats.TopAffected)
}

// El índice se redondea a 2 decimales.
func TestLossStatistics_RedondeoDosDecimales(t *testing.T) {
	products := []*entity.Product{producto("p1", "A", "x", 1, 2)}
	losses := []*entity.Loss{perdida("p1", 1, entity.LossTypeDamage)}

	stats := report.BuildLossStatistics(products, losses)

	// 1/(2+1)*100 = 33.333... → 33.33
	assert.True(t, stats.LossIndex.Equal(decimal.NewFromFloat(33.33)),
		"esperado 33.33, obtenido %s", stats.LossIndex)
}

// Agrupación por tipo: incidentes, cantidades y valores por grupo.
func TestLossStatistics_PorTipo(t *testing.T) {
	products := []*entity.Product{
		producto("p1", "A", "x", 10, 100),
		producto("p2", "B", "x", 20, 100),
	}
	losses := []*entity.Loss{
		perdida("p1", 2, entity.LossTypeTheft),
		perdida("p2", 1, entity.LossTypeTheft),
		perdida("p1", 3, entity.LossTypeDamage),
	}

	stats := report.BuildLossStatistics(products, losses)

	require.Len(t, stats.ByType, 2)
	byType := map[string]report.LossTypeStats{}
	for _, g := range stats.ByType {
		byType[g.LossType] = g
	}

	robo := byType[entity.LossTypeTheft]
	assert.Equal(t, 2, robo.Incidents)
	assert.Equal(t, 3, robo.Quantity)
	assert.True(t, robo.ValueLost.Equal(decimal.NewFromInt(40)), "2*10 + 1*20")

	deterioro := byType[entity.LossTypeDamage]
	assert.Equal(t, 1, deterioro.Incidents)
	assert.Equal(t, 3, deterioro.Quantity)
	assert.True(t, deterioro.ValueLost.Equal(decimal.NewFromInt(30)))
}

// TopAffected: descendente por cantidad perdida, máximo 10.
func TestLossStatistics_ProductosMasAfectados(t *testing.T) {
	products := []*entity.Product{}
	losses := []*entity.Loss{}
	for i := 0; i < 12; i++ {
		id := string(rune('a' + i))
		products = append(products, producto(id, "P"+id, "x", 1, 10))
		losses = append(losses, perdida(id, i+1, entity.LossTypeOther))
	}

	stats := report.BuildLossStatistics(products, losses)

	require.Len(t, stats.TopAffected, 10)
	for i := 1; i < len(stats.TopAffected); i++ {
		assert.GreaterOrEqual(t, stats.TopAffected[i-1].TotalLost, stats.TopAffected[i].TotalLost)
	}
	assert.Equal(t, 12, stats.TopAffected[0].TotalLost, "el más afectado perdió 12 unidades")
}

// Una pérdida que referencia un producto inexistente se excluye de todas las
// métricas (mismo comportamiento que el JOIN de la fuente de datos).
func TestLossStatistics_ProductoInexistenteSeExcluye(t *testing.T) {
	products := []*entity.Product{producto("p1", "A", "x", 10, 50)}
	losses := []*entity.Loss{
		perdida("p1", 2, entity.LossTypeTheft),
		perdida("fantasma", 99, entity.LossTypeTheft),
	}

	stats := report.BuildLossStatistics(products, losses)

	assert.Equal(t, 1, stats.TotalIncidents)
	assert.Equal(t, 2, stats.TotalQuantityLost)
	assert.True(t, stats.TotalValueLost.Equal(decimal.NewFromInt(20)))
	require.Len(t, stats.TopAffected, 1)
	assert.Equal(t, "p1", stats.TopAffected[0].ProductID)
}
