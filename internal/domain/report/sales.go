package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clubtenis/tienda-api/internal/domain/entity"
)

// DailySales ventas agregadas de un día calendario.
type DailySales struct {
	Date             time.Time // comienzo del día
	TransactionCount int
	UnitsSold        int
	Revenue          decimal.Decimal
}

// BuildDailySales agrupa las compras de la ventana por día calendario,
// más recientes primero. La ventana es [now - windowDays, now], sensible a la
// hora (a diferencia del reporte de inventario, que trunca a días completos).
func BuildDailySales(purchases []*entity.Purchase, windowDays int, now time.Time) []DailySales {
	since := now.AddDate(0, 0, -windowDays)

	index := make(map[time.Time]int)
	days := make([]DailySales, 0)
	for _, pu := range purchases {
		if pu.PurchaseDate.Before(since) {
			continue
		}
		day := dayStart(pu.PurchaseDate)
		i, ok := index[day]
		if !ok {
			i = len(days)
			index[day] = i
			days = append(days, DailySales{Date: day, Revenue: decimal.Zero})
		}
		days[i].TransactionCount++
		days[i].UnitsSold += pu.Quantity
		days[i].Revenue = days[i].Revenue.Add(pu.Total)
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.After(days[j].Date)
	})
	return days
}
