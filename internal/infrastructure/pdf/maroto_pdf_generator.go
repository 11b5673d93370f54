// Package pdf implementa la versión imprimible del reporte de inventario
// de la tienda del club.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Tienda Club de Tenis  │  Período + Fecha            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: productos / stock / vendidos / ingresos            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOP 5 MÁS VENDIDOS: Producto | Cat | Unid | Ingresos        │
//	│  STOCK BAJO: Producto | Cat | Stock                          │
//	│  VENTAS POR CATEGORÍA: Categoría | Unid | Ingresos           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/clubtenis/tienda-api/internal/application/dto"
	"github.com/clubtenis/tienda-api/internal/application/reporting"
)

var _ reporting.PDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 21, Green: 94, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// moneyPrinter formatea montos con separadores de miles en español.
var moneyPrinter = message.NewPrinter(language.Spanish)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa reporting.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	storeName string
}

// NewMarotoPDFGenerator construye el generador con el nombre de la tienda
// que encabeza el documento.
func NewMarotoPDFGenerator(storeName string) *MarotoPDFGenerator {
	if storeName == "" {
		storeName = "Tienda Club de Tenis"
	}
	return &MarotoPDFGenerator{storeName: storeName}
}

// GenerateInventoryPDF genera el PDF del reporte de inventario y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInventoryPDF(
	_ context.Context,
	report *dto.InventoryReportDTO,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(report, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRows(report.Summary)...)

	m.AddRows(sectionTitle("PRODUCTOS MÁS VENDIDOS"))
	m.AddRows(salesTableHeader())
	for _, p := range report.TopProducts {
		m.AddRows(salesTableRow(p))
	}
	if len(report.TopProducts) == 0 {
		m.AddRows(emptyRow("Sin ventas en el período"))
	}

	m.AddRows(sectionTitle("PRODUCTOS CON STOCK BAJO"))
	m.AddRows(stockTableHeader())
	for _, p := range report.LowStockProducts {
		m.AddRows(stockTableRow(p))
	}
	if len(report.LowStockProducts) == 0 {
		m.AddRows(emptyRow("Sin productos con stock bajo"))
	}

	m.AddRows(sectionTitle("VENTAS POR CATEGORÍA"))
	m.AddRows(categoryTableHeader())
	for _, c := range report.CategorySales {
		m.AddRows(categoryTableRow(c))
	}
	if len(report.CategorySales) == 0 {
		m.AddRows(emptyRow("Sin ventas en el período"))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

var periodLabels = map[string]string{
	dto.PeriodWeekly:  "Últimos 7 días",
	dto.PeriodMonthly: "Últimos 30 días",
}

func (g *MarotoPDFGenerator) headerRow(report *dto.InventoryReportDTO, generatedAt time.Time) core.Row {
	period := periodLabels[report.Period]
	if period == "" {
		period = report.Period
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de Inventario y Ventas", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(period, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
			}),
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// summaryRows: bloque de totales generales en dos filas de tres celdas.
func summaryRows(s dto.ReportSummaryDTO) []core.Row {
	cell := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 5}),
		)
	}
	return []core.Row{
		row.New(13).Add(
			cell("Productos en catálogo", fmt.Sprintf("%d", s.TotalProducts)),
			cell("Stock total", fmt.Sprintf("%d", s.TotalStock)),
			cell("Unidades vendidas", fmt.Sprintf("%d", s.TotalSold)),
		),
		row.New(13).Add(
			cell("Ingresos del período", "$"+formatMoney(s.TotalRevenue)),
			cell("Stock bajo", fmt.Sprintf("%d", s.LowStockCount)),
			cell("Agotados", fmt.Sprintf("%d", s.OutOfStockCount)),
		),
	}
}

func sectionTitle(title string) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 3,
		}),
	))
}

func headerCell(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Color: colorGray,
	}))
}

func salesTableHeader() core.Row {
	return row.New(6).Add(
		headerCell("Producto", 5, align.Left),
		headerCell("Categoría", 3, align.Left),
		headerCell("Unidades", 2, align.Right),
		headerCell("Ingresos", 2, align.Right),
	)
}

func salesTableRow(p dto.ProductSalesDTO) core.Row {
	return row.New(6).Add(
		col.New(5).Add(text.New(p.Name, props.Text{Size: 8, Top: 1})),
		col.New(3).Add(text.New(p.Category, props.Text{Size: 8, Top: 1, Color: colorGray})),
		col.New(2).Add(text.New(fmt.Sprintf("%d", p.SoldUnits), props.Text{Size: 8, Align: align.Right, Top: 1})),
		col.New(2).Add(text.New("$"+formatMoney(p.TotalRevenue), props.Text{Size: 8, Align: align.Right, Top: 1})),
	)
}

func stockTableHeader() core.Row {
	return row.New(6).Add(
		headerCell("Producto", 6, align.Left),
		headerCell("Categoría", 4, align.Left),
		headerCell("Stock", 2, align.Right),
	)
}

func stockTableRow(p dto.ProductSalesDTO) core.Row {
	return row.New(6).Add(
		col.New(6).Add(text.New(p.Name, props.Text{Size: 8, Top: 1})),
		col.New(4).Add(text.New(p.Category, props.Text{Size: 8, Top: 1, Color: colorGray})),
		col.New(2).Add(text.New(fmt.Sprintf("%d", p.Stock), props.Text{Size: 8, Align: align.Right, Top: 1})),
	)
}

func categoryTableHeader() core.Row {
	return row.New(6).Add(
		headerCell("Categoría", 6, align.Left),
		headerCell("Unidades", 3, align.Right),
		headerCell("Ingresos", 3, align.Right),
	)
}

func categoryTableRow(c dto.CategorySalesDTO) core.Row {
	return row.New(6).Add(
		col.New(6).Add(text.New(c.Category, props.Text{Size: 8, Top: 1})),
		col.New(3).Add(text.New(fmt.Sprintf("%d", c.UnitsSold), props.Text{Size: 8, Align: align.Right, Top: 1})),
		col.New(3).Add(text.New("$"+formatMoney(c.Revenue), props.Text{Size: 8, Align: align.Right, Top: 1})),
	)
}

func emptyRow(msg string) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 8, Top: 1, Color: colorGray}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney formatea un monto con separadores de miles en español
// y dos decimales. Ej: 25000 → "25.000,00"
func formatMoney(d decimal.Decimal) string {
	f, _ := d.Float64()
	return moneyPrinter.Sprintf("%.2f", f)
}
