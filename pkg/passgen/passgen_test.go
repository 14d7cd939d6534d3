package passgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/staff-api/pkg/passgen"
)

const (
	upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lower   = "abcdefghijklmnopqrstuvwxyz"
	digits  = "0123456789"
	symbols = "!@#$%^&*"
)

// La garantía de las cuatro clases debe sostenerse en cada emisión, no
// solo en promedio: se verifica sobre muchas contraseñas generadas.
func TestRandom_CuatroClasesSiempre(t *testing.T) {
	for i := 0; i < 10_000; i++ {
		pw, err := passgen.Random(passgen.DefaultLength)
		require.NoError(t, err)
		require.Len(t, pw, passgen.DefaultLength)

		assert.True(t, strings.ContainsAny(pw, upper), "falta mayúscula en %q", pw)
		assert.True(t, strings.ContainsAny(pw, lower), "falta minúscula en %q", pw)
		assert.True(t, strings.ContainsAny(pw, digits), "falta dígito en %q", pw)
		assert.True(t, strings.ContainsAny(pw, symbols), "falta símbolo en %q", pw)
	}
}

// Todos los caracteres emitidos deben pertenecer al alfabeto permitido.
func TestRandom_SoloCaracteresDelAlfabeto(t *testing.T) {
	alphabet := upper + lower + digits + symbols
	for i := 0; i < 1_000; i++ {
		pw, err := passgen.Random(passgen.DefaultLength)
		require.NoError(t, err)
		for _, c := range pw {
			assert.True(t, strings.ContainsRune(alphabet, c), "carácter %q fuera del alfabeto en %q", c, pw)
		}
	}
}

func TestRandom_LongitudMinimaCuatro(t *testing.T) {
	pw, err := passgen.Random(4)
	require.NoError(t, err)
	assert.Len(t, pw, 4)

	for _, n := range []int{0, 1, 2, 3, -1} {
		_, err := passgen.Random(n)
		assert.Error(t, err, "longitud %d debe rechazarse", n)
	}
}

func TestRandom_LongitudesArbitrarias(t *testing.T) {
	for _, n := range []int{5, 8, 16, 32, 64} {
		pw, err := passgen.Random(n)
		require.NoError(t, err)
		assert.Len(t, pw, n)
	}
}

// Dos contraseñas consecutivas iguales son astronómicamente improbables;
// si ocurre, la fuente aleatoria está rota.
func TestRandom_NoDeterminista(t *testing.T) {
	p1, err := passgen.Random(passgen.DefaultLength)
	require.NoError(t, err)
	p2, err := passgen.Random(passgen.DefaultLength)
	require.NoError(t, err)
	assert.NotEqual(t, p1, p2)
}
