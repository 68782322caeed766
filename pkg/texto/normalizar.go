// Package texto contiene utilidades de normalización para búsqueda
// insensible a mayúsculas y tildes ("Canción" coincide con "cancion").
package texto

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var quitarDiacriticos = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Normalizar devuelve s en minúsculas y sin marcas diacríticas.
func Normalizar(s string) string {
	out, _, err := transform.String(quitarDiacriticos, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// Contiene indica si texto contiene la consulta q, comparando formas
// normalizadas. Una consulta vacía coincide con todo.
func Contiene(texto, q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(Normalizar(texto), Normalizar(q))
}
