package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/clubtenis/tienda-api/internal/application/dto"
	"github.com/clubtenis/tienda-api/internal/application/reporting"
	"github.com/clubtenis/tienda-api/internal/domain"
)

// ReportHandler expone los reportes de inventario y ventas (solo admin).
type ReportHandler struct {
	uc *reporting.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reporting.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Get godoc
// @Summary      Obtener reporte
// @Description  type=inventory (default) o type=sales; period=weekly (default) o monthly.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        type    query  string  false  "Tipo de reporte (inventory, sales)"  default(inventory)
// @Param        period  query  string  false  "Período (weekly, monthly)"           default(weekly)
// @Success      200  {object}  dto.InventoryReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports [get]
func (h *ReportHandler) Get(c *fiber.Ctx) error {
	period := c.Query("period")
	switch c.Query("type", "inventory") {
	case "inventory":
		out, err := h.uc.InventoryReport(c.Context(), period)
		if err != nil {
			return reportError(c, err)
		}
		return c.JSON(out)
	case "sales":
		out, err := h.uc.SalesReport(c.Context(), period)
		if err != nil {
			return reportError(c, err)
		}
		return c.JSON(out)
	}
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type debe ser inventory o sales"})
}

// InventoryPDF godoc
// @Summary      Descargar reporte de inventario en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        period  query  string  false  "Período (weekly, monthly)"  default(weekly)
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/inventory/pdf [get]
func (h *ReportHandler) InventoryPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.InventoryReportPDF(c.Context(), c.Query("period"))
	if err != nil {
		return reportError(c, err)
	}
	filename := fmt.Sprintf("reporte-inventario-%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

func reportError(c *fiber.Ctx, err error) error {
	if err == domain.ErrInvalidInput {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "period debe ser weekly o monthly"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
