package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/violetta-moda/violetta-api/internal/application/dto"
	"github.com/violetta-moda/violetta-api/internal/application/usecase"
)

// EventoHandler maneja las peticiones HTTP para la bitácora de auditoría.
// Los eventos son append-only: no hay rutas de actualización ni borrado.
type EventoHandler struct {
	uc *usecase.EventoUseCase
}

// NewEventoHandler construye el handler.
func NewEventoHandler(uc *usecase.EventoUseCase) *EventoHandler {
	return &EventoHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar evento de auditoría
// @Tags         eventos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEventoRequest  true  "Datos del evento"
// @Success      201   {object}  dto.EventoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/eventos [post]
func (h *EventoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEventoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if campos := in.Validar(); len(campos) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "payload inválido", Campos: campos})
	}
	if in.UsuarioID == "" {
		in.UsuarioID = GetUserID(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar eventos
// @Tags         eventos
// @Security     Bearer
// @Produce      json
// @Param        usuarioId    query  string  false  "Filtrar por usuario actor"
// @Param        entidadTipo  query  string  false  "Filtrar por tipo de entidad (junto con entidadId)"
// @Param        entidadId    query  string  false  "Filtrar por ID de entidad (junto con entidadTipo)"
// @Success      200  {array}  dto.EventoResponse
// @Router       /api/eventos [get]
func (h *EventoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("usuarioId"), c.Query("entidadTipo"), c.Query("entidadId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener evento por ID
// @Tags         eventos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del evento"
// @Success      200  {object}  dto.EventoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/eventos/{id} [get]
func (h *EventoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "evento no encontrado"})
	}
	return c.JSON(out)
}
