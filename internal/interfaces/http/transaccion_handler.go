package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/violetta-moda/violetta-api/internal/application/dto"
	"github.com/violetta-moda/violetta-api/internal/application/ventas"
	"github.com/violetta-moda/violetta-api/internal/domain"
)

// TransaccionHandler maneja las peticiones HTTP para Transaccion (protegido).
type TransaccionHandler struct {
	uc *ventas.TransaccionUseCase
}

// NewTransaccionHandler construye el handler.
func NewTransaccionHandler(uc *ventas.TransaccionUseCase) *TransaccionHandler {
	return &TransaccionHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar venta o alquiler
// @Description  Descuenta stock de cada línea y añade la transacción al historial del cliente.
// @Tags         transacciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransaccionRequest  true  "Datos de la transacción"
// @Success      201   {object}  dto.TransaccionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/transacciones [post]
func (h *TransaccionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransaccionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if campos := in.Validar(); len(campos) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "payload inválido", Campos: campos})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar transacciones
// @Tags         transacciones
// @Security     Bearer
// @Produce      json
// @Param        tipo       query  string  false  "venta | alquiler"
// @Param        clienteId  query  string  false  "Filtrar por cliente"
// @Success      200  {array}  dto.TransaccionResponse
// @Router       /api/transacciones [get]
func (h *TransaccionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("tipo"), c.Query("clienteId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener transacción por ID
// @Tags         transacciones
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la transacción"
// @Success      200  {object}  dto.TransaccionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transacciones/{id} [get]
func (h *TransaccionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "transacción no encontrada"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar transacción
// @Description  Solo estado, método de pago y fecha de devolución; las líneas no se editan.
// @Tags         transacciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la transacción"
// @Param        body  body  dto.UpdateTransaccionRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.TransaccionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/transacciones/{id} [put]
func (h *TransaccionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTransaccionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "transacción no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar transacción
// @Description  Restaura el stock de cada línea y la retira del historial del cliente.
// @Tags         transacciones
// @Security     Bearer
// @Param        id  path  string  true  "ID de la transacción"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transacciones/{id} [delete]
func (h *TransaccionHandler) Delete(c *fiber.Ctx) error {
	ok, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "transacción no encontrada"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Comprobante godoc
// @Summary      Comprobante PDF de la transacción
// @Tags         transacciones
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la transacción"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transacciones/{id}/comprobante [get]
func (h *TransaccionHandler) Comprobante(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.Comprobante(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if pdfBytes == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "transacción no encontrada"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="comprobante-`+c.Params("id")+`.pdf"`)
	return c.Send(pdfBytes)
}
