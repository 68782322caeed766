// Package demo sirve el "NoSQL Hub" de demostración: respuestas fijas que
// imitan un almacén documental y uno de grafos. No consulta ningún motor
// real; cada fixture se elige por coincidencia de subcadenas sobre el texto
// de la consulta, igual que hacía la demo original.
package demo

import (
	"strings"

	"github.com/violetta-moda/violetta-api/internal/application/dto"
)

// Service resuelve consultas de demostración contra fixtures en memoria.
type Service struct{}

// NewService construye el servicio de demostración.
func NewService() *Service {
	return &Service{}
}

// QueryMongo despacha una consulta estilo MongoDB sobre los fixtures.
func (s *Service) QueryMongo(query string) *dto.DemoQueryResponse {
	q := strings.ToLower(query)
	switch {
	case strings.Contains(q, "aggregate"):
		return &dto.DemoQueryResponse{
			Fuente:    "mongo",
			Operacion: "aggregate",
			Resultado: fixtureMongoAggregate,
		}
	case strings.Contains(q, "insert"):
		return &dto.DemoQueryResponse{
			Fuente:    "mongo",
			Operacion: "insert",
			Resultado: map[string]any{"acknowledged": true, "insertedId": "65f1a2b3c4d5e6f7a8b9c0d1"},
		}
	case strings.Contains(q, "find"):
		return &dto.DemoQueryResponse{
			Fuente:    "mongo",
			Operacion: "find",
			Resultado: fixtureMongoFind,
		}
	default:
		return &dto.DemoQueryResponse{
			Fuente:    "mongo",
			Operacion: "desconocida",
			Resultado: map[string]any{"mensaje": "operación no soportada en la demo; use find, insert o aggregate"},
		}
	}
}

// QueryNeo4j despacha una consulta estilo Cypher sobre los fixtures.
func (s *Service) QueryNeo4j(query string) *dto.DemoQueryResponse {
	q := strings.ToUpper(query)
	switch {
	case strings.Contains(q, "CREATE"):
		return &dto.DemoQueryResponse{
			Fuente:    "neo4j",
			Operacion: "CREATE",
			Resultado: map[string]any{
				"nodosCreados":      1,
				"relacionesCreadas": 1,
				"nodo":              map[string]any{"id": 42, "labels": []string{"Producto"}, "propiedades": map[string]any{"nombre": "Vestido gala azul"}},
			},
		}
	case strings.Contains(q, "MATCH"):
		return &dto.DemoQueryResponse{
			Fuente:    "neo4j",
			Operacion: "MATCH",
			Resultado: fixtureNeo4jMatch,
		}
	default:
		return &dto.DemoQueryResponse{
			Fuente:    "neo4j",
			Operacion: "desconocida",
			Resultado: map[string]any{"mensaje": "consulta no soportada en la demo; use MATCH o CREATE"},
		}
	}
}

// Fixtures con el mismo aire que los datos de la demo original.
var fixtureMongoFind = []map[string]any{
	{"_id": "65f1a2b3c4d5e6f7a8b9c001", "nombre": "Vestido gala azul", "categoria": "vestidos", "precio": 250000, "stock": 4},
	{"_id": "65f1a2b3c4d5e6f7a8b9c002", "nombre": "Traje ejecutivo gris", "categoria": "trajes", "precio": 380000, "stock": 2},
	{"_id": "65f1a2b3c4d5e6f7a8b9c003", "nombre": "Blusa seda blanca", "categoria": "blusas", "precio": 95000, "stock": 11},
}

var fixtureMongoAggregate = []map[string]any{
	{"_id": "vestidos", "total": 12, "valorInventario": 2850000},
	{"_id": "trajes", "total": 7, "valorInventario": 2660000},
	{"_id": "blusas", "total": 23, "valorInventario": 2185000},
}

var fixtureNeo4jMatch = []map[string]any{
	{
		"nodo":      map[string]any{"id": 1, "labels": []string{"Cliente"}, "propiedades": map[string]any{"nombre": "María Fernanda López"}},
		"relacion":  "ALQUILO",
		"destino":   map[string]any{"id": 42, "labels": []string{"Producto"}, "propiedades": map[string]any{"nombre": "Vestido gala azul"}},
		"atributos": map[string]any{"fecha": "2026-08-20", "dias": 3},
	},
	{
		"nodo":      map[string]any{"id": 2, "labels": []string{"Cliente"}, "propiedades": map[string]any{"nombre": "Carlos Andrés Ruiz"}},
		"relacion":  "COMPRO",
		"destino":   map[string]any{"id": 57, "labels": []string{"Producto"}, "propiedades": map[string]any{"nombre": "Traje ejecutivo gris"}},
		"atributos": map[string]any{"fecha": "2026-08-22"},
	},
}
