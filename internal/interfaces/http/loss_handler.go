package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clubtenis/tienda-api/internal/application/dto"
	"github.com/clubtenis/tienda-api/internal/application/inventory"
	"github.com/clubtenis/tienda-api/internal/application/reporting"
	"github.com/clubtenis/tienda-api/internal/domain"
	"github.com/clubtenis/tienda-api/internal/domain/repository"
)

// LossHandler maneja el registro, listado y estadísticas de pérdidas (solo admin).
type LossHandler struct {
	uc      *inventory.RegisterLossUseCase
	reports *reporting.ReportUseCase
}

// NewLossHandler construye el handler.
func NewLossHandler(uc *inventory.RegisterLossUseCase, reports *reporting.ReportUseCase) *LossHandler {
	return &LossHandler{uc: uc, reports: reports}
}

// Create godoc
// @Summary      Registrar pérdida de inventario
// @Tags         losses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLossRequest  true  "Datos de la pérdida"
// @Success      201   {object}  dto.LossResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/losses [post]
func (h *LossHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLossRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ReportedBy == "" {
		in.ReportedBy = GetUsername(c)
	}
	out, err := h.uc.Register(c.Context(), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id, quantity > 0 y loss_type válido son requeridos"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: "producto no encontrado"})
		case domain.ErrInsufficientStock:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "la cantidad supera el stock disponible"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar pérdidas o estadísticas
// @Description  Con ?stats=true devuelve el snapshot de estadísticas de pérdidas en lugar del listado.
// @Tags         losses
// @Security     Bearer
// @Produce      json
// @Param        stats      query  bool    false  "Devolver estadísticas agregadas"
// @Param        loss_type  query  string  false  "Filtrar por tipo (robo, deterioro, error_registro, otro)"
// @Param        date_from  query  string  false  "Desde (YYYY-MM-DD)"
// @Param        date_to    query  string  false  "Hasta (YYYY-MM-DD)"
// @Success      200  {object}  dto.LossListResponse
// @Router       /api/losses [get]
func (h *LossHandler) List(c *fiber.Ctx) error {
	if c.QueryBool("stats", false) {
		out, err := h.reports.LossStatistics(c.Context())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.JSON(out)
	}

	from, ok := parseDateQuery(c, "date_from")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date_from debe ser YYYY-MM-DD"})
	}
	to, ok := parseDateQuery(c, "date_to")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date_to debe ser YYYY-MM-DD"})
	}
	filter := repository.LossFilter{
		LossType: c.Query("loss_type"),
		DateFrom: from,
		DateTo:   to,
	}
	out, err := h.uc.List(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar registro de pérdida
// @Description  Elimina el registro. No revierte el descuento de stock.
// @Tags         losses
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la pérdida"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/losses/{id} [delete]
func (h *LossHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pérdida no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.SuccessResponse{Success: true, Message: "registro de pérdida eliminado"})
}
