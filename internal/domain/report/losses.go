package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/clubtenis/tienda-api/internal/domain/entity"
)

const topAffectedLimit = 10 // productos más afectados en las estadísticas de pérdidas

// LossTypeStats pérdidas agrupadas por tipo (robo, deterioro, error_registro, otro).
type LossTypeStats struct {
	LossType  string
	Incidents int
	Quantity  int
	ValueLost decimal.Decimal
}

// AffectedProduct producto afectado por pérdidas, con totales acumulados.
type AffectedProduct struct {
	ProductID string
	Name      string
	Category  string
	TotalLost int
	Incidents int
	ValueLost decimal.Decimal
}

// LossStatistics snapshot de las estadísticas de pérdidas de inventario.
//
// LossIndex es el porcentaje de unidades perdidas sobre el flujo histórico
// total (stock actual + unidades perdidas), no sobre el stock actual.
type LossStatistics struct {
	LossIndex         decimal.Decimal // porcentaje, redondeado a 2 decimales
	TotalIncidents    int
	TotalQuantityLost int
	TotalValueLost    decimal.Decimal
	CurrentInventory  int
	ByType            []LossTypeStats
	TopAffected       []AffectedProduct
}

// BuildLossStatistics computa las estadísticas globales de pérdidas.
//
// El valor de cada pérdida se calcula con el precio ACTUAL del producto
// (cantidad * precio vigente). Una pérdida cuyo producto ya no está en la
// colección se excluye por completo de las estadísticas; con eliminación
// lógica de productos este caso no debería darse en la práctica.
func BuildLossStatistics(products []*entity.Product, losses []*entity.Loss) LossStatistics {
	byID := make(map[string]*entity.Product, len(products))
	currentInventory := 0
	for _, p := range products {
		byID[p.ID] = p
		currentInventory += p.Stock
	}

	stats := LossStatistics{
		LossIndex:        decimal.Zero,
		TotalValueLost:   decimal.Zero,
		CurrentInventory: currentInventory,
	}

	typeIndex := make(map[string]int)
	affectedIndex := make(map[string]int)
	affected := make([]AffectedProduct, 0)

	for _, l := range losses {
		p, ok := byID[l.ProductID]
		if !ok {
			continue // producto inexistente: la pérdida no aporta a ninguna métrica
		}
		value := p.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))

		stats.TotalIncidents++
		stats.TotalQuantityLost += l.Quantity
		stats.TotalValueLost = stats.TotalValueLost.Add(value)

		ti, ok := typeIndex[l.LossType]
		if !ok {
			ti = len(stats.ByType)
			typeIndex[l.LossType] = ti
			stats.ByType = append(stats.ByType, LossTypeStats{LossType: l.LossType, ValueLost: decimal.Zero})
		}
		stats.ByType[ti].Incidents++
		stats.ByType[ti].Quantity += l.Quantity
		stats.ByType[ti].ValueLost = stats.ByType[ti].ValueLost.Add(value)

		ai, ok := affectedIndex[l.ProductID]
		if !ok {
			ai = len(affected)
			affectedIndex[l.ProductID] = ai
			affected = append(affected, AffectedProduct{
				ProductID: p.ID,
				Name:      p.Name,
				Category:  p.Category,
				ValueLost: decimal.Zero,
			})
		}
		affected[ai].TotalLost += l.Quantity
		affected[ai].Incidents++
		affected[ai].ValueLost = affected[ai].ValueLost.Add(value)
	}

	stats.LossIndex = lossIndex(currentInventory, stats.TotalQuantityLost)

	sort.SliceStable(affected, func(i, j int) bool {
		return affected[i].TotalLost > affected[j].TotalLost
	})
	if len(affected) > topAffectedLimit {
		affected = affected[:topAffectedLimit]
	}
	stats.TopAffected = affected

	return stats
}

// lossIndex = perdido / (inventario + perdido) * 100, redondeado a 2 decimales.
// Con denominador cero el índice es 0.
func lossIndex(currentInventory, totalLost int) decimal.Decimal {
	den := currentInventory + totalLost
	if den == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(totalLost)).
		Div(decimal.NewFromInt(int64(den))).
		Mul(decimal.NewFromInt(100)).
		Round(2)
}
