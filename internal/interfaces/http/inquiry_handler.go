package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clubtenis/tienda-api/internal/application/dto"
	"github.com/clubtenis/tienda-api/internal/application/usecase"
	"github.com/clubtenis/tienda-api/internal/domain"
	"github.com/clubtenis/tienda-api/internal/domain/entity"
	"github.com/clubtenis/tienda-api/internal/domain/repository"
)

// InquiryHandler maneja las consultas de servicios del club.
// Los socios crean consultas sobre su propia cuenta; la gestión es de admin.
type InquiryHandler struct {
	uc *usecase.InquiryUseCase
}

// NewInquiryHandler construye el handler.
func NewInquiryHandler(uc *usecase.InquiryUseCase) *InquiryHandler {
	return &InquiryHandler{uc: uc}
}

// Create godoc
// @Summary      Crear consulta de servicio
// @Tags         inquiries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInquiryRequest  true  "Datos de la consulta"
// @Success      201   {object}  dto.InquiryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inquiries [post]
func (h *InquiryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInquiryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// Los socios solo pueden crear consultas a su nombre.
	if GetRole(c) != entity.RoleAdmin {
		in.UserID = GetUserID(c)
	} else if in.UserID == "" {
		in.UserID = GetUserID(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "user_id y service_type son requeridos"})
		case domain.ErrUserNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "usuario no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar consultas
// @Tags         inquiries
// @Security     Bearer
// @Produce      json
// @Param        status        query  string  false  "Filtrar por estado (new, in_progress, resolved)"
// @Param        service_type  query  string  false  "Filtrar por tipo de servicio"
// @Param        user_id       query  string  false  "Filtrar por usuario (solo admin)"
// @Success      200  {object}  dto.InquiryListResponse
// @Router       /api/inquiries [get]
func (h *InquiryHandler) List(c *fiber.Ctx) error {
	filter := repository.InquiryFilter{
		Status:      c.Query("status"),
		ServiceType: c.Query("service_type"),
	}
	if GetRole(c) == entity.RoleAdmin {
		filter.UserID = c.Query("user_id")
	} else {
		// Los socios solo ven sus propias consultas.
		filter.UserID = GetUserID(c)
	}
	out, err := h.uc.List(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar consulta (estado / mensaje)
// @Tags         inquiries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la consulta"
// @Param        body  body  dto.UpdateInquiryRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.InquiryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inquiries/{id} [put]
func (h *InquiryHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateInquiryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status o message son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "consulta no encontrada"})
	}
	return c.JSON(out)
}
