package credfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/staff-api/pkg/logger"
)

// newTestStore crea el store sobre un directorio temporal con reloj fijo.
func newTestStore(t *testing.T, fixed time.Time) *Store {
	t.Helper()
	s := New(t.TempDir(), logger.Nop())
	s.now = func() time.Time { return fixed }
	return s
}

// ──────────────────────────────────────────────────────────────────────────────
// Persist
// ──────────────────────────────────────────────────────────────────────────────

func TestPersist_NombreYContenidoDelArchivo(t *testing.T) {
	fixed := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	s := newTestStore(t, fixed)

	s.Persist("John Doe", "Doe_John@111", "Sup3r$ecreta")

	path := filepath.Join(s.dir, "Doe_John@111_20250314_092653.txt")
	raw, err := os.ReadFile(path)
	require.NoError(t, err, "el archivo debe existir con el nombre {username}_{yyyyMMdd_HHmmss}.txt")

	content := string(raw)
	assert.Contains(t, content, "Date Created: 2025-03-14 09:26:53")
	assert.Contains(t, content, "Employee: John Doe")
	assert.Contains(t, content, "Username: Doe_John@111")
	assert.Contains(t, content, "Password: Sup3r$ecreta")
}

// El directorio se crea perezosamente en el primer Persist.
func TestPersist_CreaElDirectorio(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "todavia", "no", "existe")
	s := New(dir, logger.Nop())
	s.now = func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }

	s.Persist("Jane Roe", "Roe_Jane@222", "0tra$ecreta1")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lookup
// ──────────────────────────────────────────────────────────────────────────────

func TestLookup_EncuentraLaCredencial(t *testing.T) {
	s := newTestStore(t, time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC))
	s.Persist("John Doe", "Doe_John@111", "Sup3r$ecreta")

	cred, err := s.Lookup("Doe_John@111")
	require.NoError(t, err)
	require.NotNil(t, cred)
	assert.Equal(t, "John Doe", cred.Employee)
	assert.Equal(t, "Doe_John@111", cred.Username)
	assert.Equal(t, "Sup3r$ecreta", cred.Password)
	assert.Equal(t, "2025-03-14 09:26:53", cred.DateCreated)
}

// La búsqueda es por substring sin distinguir mayúsculas del campo
// Username dentro del archivo, no del nombre del archivo.
func TestLookup_SubstringCaseInsensitive(t *testing.T) {
	s := newTestStore(t, time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC))
	s.Persist("John Doe", "Doe_John@111", "Sup3r$ecreta")

	for _, q := range []string{"doe_john", "DOE_JOHN@111", "john@1"} {
		cred, err := s.Lookup(q)
		require.NoError(t, err)
		require.NotNil(t, cred, "la consulta %q debe encontrar la credencial", q)
		assert.Equal(t, "Doe_John@111", cred.Username)
	}
}

func TestLookup_SinCoincidenciasDevuelveNilNil(t *testing.T) {
	s := newTestStore(t, time.Now())
	s.Persist("John Doe", "Doe_John@111", "Sup3r$ecreta")

	cred, err := s.Lookup("Roe_Jane")
	require.NoError(t, err)
	assert.Nil(t, cred)
}

// Directorio inexistente no es error: simplemente no hay credenciales.
func TestLookup_DirectorioInexistente(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "no-existe"), logger.Nop())

	cred, err := s.Lookup("cualquiera")
	require.NoError(t, err)
	assert.Nil(t, cred)
}

// Con varios archivos del mismo username gana el más reciente por
// fecha de modificación (credenciales re-emitidas).
func TestLookup_ElMasRecienteGana(t *testing.T) {
	s := newTestStore(t, time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC))
	s.Persist("John Doe", "Doe_John@111", "contraseña-vieja")

	s.now = func() time.Time { return time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC) }
	s.Persist("John Doe", "Doe_John@111", "contraseña-nueva")

	// ModTime explícito: el reloj del filesystem no siempre distingue
	// escrituras consecutivas en el mismo test.
	old := filepath.Join(s.dir, "Doe_John@111_20250314_090000.txt")
	recent := filepath.Join(s.dir, "Doe_John@111_20250314_100000.txt")
	require.NoError(t, os.Chtimes(old, time.Now().Add(-2*time.Hour), time.Now().Add(-2*time.Hour)))
	require.NoError(t, os.Chtimes(recent, time.Now(), time.Now()))

	cred, err := s.Lookup("Doe_John@111")
	require.NoError(t, err)
	require.NotNil(t, cred)
	assert.Equal(t, "contraseña-nueva", cred.Password)
}

// ──────────────────────────────────────────────────────────────────────────────
// Purge
// ──────────────────────────────────────────────────────────────────────────────

func TestPurge_BorraSoloLosDelUsername(t *testing.T) {
	s := newTestStore(t, time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC))
	s.Persist("John Doe", "Doe_John@111", "Sup3r$ecreta")
	s.now = func() time.Time { return time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC) }
	s.Persist("John Doe", "Doe_John@111", "0tra$ecreta1")
	s.Persist("Jane Roe", "Roe_Jane@222", "Terc3r@clave")

	s.Purge("Doe_John@111")

	cred, err := s.Lookup("Doe_John@111")
	require.NoError(t, err)
	assert.Nil(t, cred, "los archivos del username purgado no deben sobrevivir")

	cred, err = s.Lookup("Roe_Jane@222")
	require.NoError(t, err)
	require.NotNil(t, cred, "los archivos de otros usernames deben quedar intactos")
	assert.Equal(t, "Terc3r@clave", cred.Password)
}

// Purgar sobre un directorio inexistente o sin coincidencias no falla.
func TestPurge_SinArchivosEsNoOp(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "no-existe"), logger.Nop())
	assert.NotPanics(t, func() { s.Purge("cualquiera") })

	s2 := newTestStore(t, time.Now())
	s2.Persist("John Doe", "Doe_John@111", "Sup3r$ecreta")
	s2.Purge("Roe_Jane@222")

	cred, err := s2.Lookup("Doe_John@111")
	require.NoError(t, err)
	assert.NotNil(t, cred)
}

// ──────────────────────────────────────────────────────────────────────────────
// parse
// ──────────────────────────────────────────────────────────────────────────────

func TestParse_LineasAusentesQuedanVacias(t *testing.T) {
	cred := parse("Username: solo_username\n")
	assert.Equal(t, "solo_username", cred.Username)
	assert.Empty(t, cred.Employee)
	assert.Empty(t, cred.Password)
	assert.Empty(t, cred.DateCreated)
}

func TestParse_ToleraCRLF(t *testing.T) {
	cred := parse("Username: Doe_John@111\r\nPassword: Sup3r$ecreta\r\n")
	assert.Equal(t, "Doe_John@111", cred.Username)
	assert.Equal(t, "Sup3r$ecreta", cred.Password)
}
