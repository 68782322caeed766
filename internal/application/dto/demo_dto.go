package dto

// DemoQueryRequest consulta de texto libre contra el hub de demostración.
type DemoQueryRequest struct {
	Query string `json:"query" validate:"required"`
}

// DemoQueryResponse fixture seleccionado para la consulta.
type DemoQueryResponse struct {
	Fuente    string `json:"fuente"` // "mongo" | "neo4j"
	Operacion string `json:"operacion"`
	Resultado any    `json:"resultado"`
}
