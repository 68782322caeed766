package texto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/violetta-moda/violetta-api/pkg/texto"
)

func TestNormalizar(t *testing.T) {
	casos := []struct {
		in   string
		want string
	}{
		{"Canción", "cancion"},
		{"VESTIDO", "vestido"},
		{"Niña añil", "nina anil"},
		{"sin tildes", "sin tildes"},
		{"", ""},
	}
	for _, c := range casos {
		assert.Equal(t, c.want, texto.Normalizar(c.in), "Normalizar(%q)", c.in)
	}
}

func TestContiene(t *testing.T) {
	assert.True(t, texto.Contiene("Vestido de gala añil", "ANIL"))
	assert.True(t, texto.Contiene("Canción", "cancion"))
	assert.True(t, texto.Contiene("lo que sea", ""), "consulta vacía coincide con todo")
	assert.False(t, texto.Contiene("Vestido", "traje"))
}
