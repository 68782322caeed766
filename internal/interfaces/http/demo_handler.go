package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/violetta-moda/violetta-api/internal/application/demo"
	"github.com/violetta-moda/violetta-api/internal/application/dto"
)

// DemoHandler expone el NoSQL Hub de demostración (protegido).
type DemoHandler struct {
	svc *demo.Service
}

// NewDemoHandler construye el handler.
func NewDemoHandler(svc *demo.Service) *DemoHandler {
	return &DemoHandler{svc: svc}
}

// QueryMongo godoc
// @Summary      Consulta de demostración estilo MongoDB
// @Tags         demo
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DemoQueryRequest  true  "Texto de la consulta"
// @Success      200   {object}  dto.DemoQueryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/demo/mongo/query [post]
func (h *DemoHandler) QueryMongo(c *fiber.Ctx) error {
	var in dto.DemoQueryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query es requerida"})
	}
	return c.JSON(h.svc.QueryMongo(in.Query))
}

// QueryNeo4j godoc
// @Summary      Consulta de demostración estilo Cypher
// @Tags         demo
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DemoQueryRequest  true  "Texto de la consulta"
// @Success      200   {object}  dto.DemoQueryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/demo/neo4j/query [post]
func (h *DemoHandler) QueryNeo4j(c *fiber.Ctx) error {
	var in dto.DemoQueryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query es requerida"})
	}
	return c.JSON(h.svc.QueryNeo4j(in.Query))
}
