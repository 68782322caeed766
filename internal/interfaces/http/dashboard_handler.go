package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/violetta-moda/violetta-api/internal/application/analytics"
	"github.com/violetta-moda/violetta-api/internal/application/dto"
)

// DashboardHandler expone los agregados del panel (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats godoc
// @Summary      KPIs del día y totales del sistema
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsResponse
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ProductosBajoStock godoc
// @Summary      Productos en o bajo el stock mínimo
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductoResponse
// @Router       /api/dashboard/productos-bajo-stock [get]
func (h *DashboardHandler) ProductosBajoStock(c *fiber.Ctx) error {
	out, err := h.uc.ProductosBajoStock(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// VentasRecientes godoc
// @Summary      Últimas ventas
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        limite  query  int  false  "Cuántas ventas devolver"  default(10)
// @Success      200  {array}  dto.TransaccionResponse
// @Router       /api/dashboard/ventas-recientes [get]
func (h *DashboardHandler) VentasRecientes(c *fiber.Ctx) error {
	out, err := h.uc.VentasRecientes(c.Context(), c.QueryInt("limite", 0))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ProximasDevoluciones godoc
// @Summary      Alquileres con devolución en los próximos 7 días
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.DevolucionProximaDTO
// @Router       /api/dashboard/proximas-devoluciones [get]
func (h *DashboardHandler) ProximasDevoluciones(c *fiber.Ctx) error {
	out, err := h.uc.ProximasDevoluciones(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
