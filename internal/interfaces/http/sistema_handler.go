package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/violetta-moda/violetta-api/internal/application/dto"
)

// SistemaInfo datos fijos del proceso para la ruta de estado. Storage queda
// decidido una sola vez en el arranque y no cambia en caliente.
type SistemaInfo struct {
	Nombre         string
	Version        string
	Storage        string // "mongodb" | "memoria"
	MongoConectado bool
	Inicio         time.Time
}

// SistemaHandler expone el estado del sistema (público).
type SistemaHandler struct {
	info SistemaInfo
}

// NewSistemaHandler construye el handler.
func NewSistemaHandler(info SistemaInfo) *SistemaHandler {
	return &SistemaHandler{info: info}
}

// Status godoc
// @Summary      Estado del sistema
// @Tags         system
// @Produce      json
// @Success      200  {object}  dto.SistemaStatusResponse
// @Router       /api/system/status [get]
func (h *SistemaHandler) Status(c *fiber.Ctx) error {
	return c.JSON(dto.SistemaStatusResponse{
		Sistema:          h.info.Nombre,
		Version:          h.info.Version,
		Storage:          h.info.Storage,
		MongoDBConnected: h.info.MongoConectado,
		UptimeSegundos:   int64(time.Since(h.info.Inicio).Seconds()),
	})
}
