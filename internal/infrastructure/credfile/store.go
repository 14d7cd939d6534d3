// Package credfile implementa el side-store de credenciales: un
// directorio de archivos de texto plano, uno por emisión de
// credenciales, con nombre "{username}_{yyyyMMdd_HHmmss}.txt". Es un
// mecanismo de conveniencia deliberadamente inseguro y NO autoritativo:
// su consistencia con la fila de la cuenta es best-effort y ningún
// fallo de I/O se propaga al caller.
package credfile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/tu-usuario/staff-api/internal/application/credentials"
	"github.com/tu-usuario/staff-api/internal/domain/entity"
	"github.com/tu-usuario/staff-api/pkg/logger"
)

var _ credentials.Store = (*Store)(nil)

// Formato del bloque etiquetado dentro de cada archivo.
const (
	labelDate     = "Date Created:"
	labelEmployee = "Employee:"
	labelUsername = "Username:"
	labelPassword = "Password:"

	timestampLayout = "20060102_150405" // yyyyMMdd_HHmmss
)

// Store side-store de credenciales sobre el filesystem.
type Store struct {
	dir string
	log *logger.Logger
	now func() time.Time
}

// New construye el store sobre un directorio (se crea perezosamente al
// primer Persist si no existe).
func New(dir string, log *logger.Logger) *Store {
	return &Store{dir: dir, log: log, now: time.Now}
}

// Persist escribe el archivo de credenciales. Cualquier fallo se loggea
// y se descarta: la emisión de credenciales nunca falla por el side-store.
func (s *Store) Persist(employeeName, username, plainPassword string) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.log.Error().Err(err).Str("dir", s.dir).Msg("side-store: crear directorio de credenciales")
		return
	}
	now := s.now()
	name := fmt.Sprintf("%s_%s.txt", username, now.Format(timestampLayout))
	content := fmt.Sprintf(
		"%s %s\n%s %s\n%s %s\n%s %s\n",
		labelDate, now.Format("2006-01-02 15:04:05"),
		labelEmployee, employeeName,
		labelUsername, username,
		labelPassword, plainPassword,
	)
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		s.log.Error().Err(err).Str("file", path).Msg("side-store: escribir archivo de credenciales")
		return
	}
	s.log.Debug().Str("file", name).Msg("side-store: credenciales escritas")
}

// Purge borra todos los archivos cuyo nombre empieza por "username_".
// El fallo de un archivo no detiene el resto: borrado parcial es aceptable.
func (s *Store) Purge(username string) {
	files, err := os.ReadDir(s.dir)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Error().Err(err).Str("dir", s.dir).Msg("side-store: listar credenciales para purga")
		}
		return
	}
	prefix := username + "_"
	for _, f := range files {
		if f.IsDir() || !strings.HasPrefix(f.Name(), prefix) || !strings.HasSuffix(f.Name(), ".txt") {
			continue
		}
		path := filepath.Join(s.dir, f.Name())
		if err := os.Remove(path); err != nil {
			s.log.Error().Err(err).Str("file", path).Msg("side-store: borrar archivo de credenciales")
			continue
		}
		s.log.Debug().Str("file", f.Name()).Msg("side-store: archivo de credenciales purgado")
	}
}

// Lookup recorre todos los archivos, filtra por la línea "Username:"
// (substring, case-insensitive) y devuelve los campos del archivo más
// reciente. (nil, nil) cuando no hay coincidencias.
func (s *Store) Lookup(username string) (*entity.Credential, error) {
	files, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("credfile: listar directorio: %w", err)
	}

	type match struct {
		name    string
		modTime time.Time
		cred    *entity.Credential
	}
	var matches []match
	needle := strings.ToLower(username)
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".txt") {
			continue
		}
		path := filepath.Join(s.dir, f.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			s.log.Warn().Err(err).Str("file", path).Msg("side-store: leer archivo de credenciales")
			continue
		}
		cred := parse(string(raw))
		if !strings.Contains(strings.ToLower(cred.Username), needle) {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		matches = append(matches, match{name: f.Name(), modTime: info.ModTime(), cred: cred})
	}
	if len(matches) == 0 {
		return nil, nil
	}
	// El más reciente gana cuando hay varios (p. ej. credenciales re-emitidas)
	sort.Slice(matches, func(i, j int) bool { return matches[i].modTime.After(matches[j].modTime) })
	return matches[0].cred, nil
}

// parse extrae los campos etiquetados; las líneas ausentes quedan vacías.
func parse(content string) *entity.Credential {
	cred := &entity.Credential{}
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		switch {
		case strings.HasPrefix(line, labelDate):
			cred.DateCreated = strings.TrimSpace(strings.TrimPrefix(line, labelDate))
		case strings.HasPrefix(line, labelEmployee):
			cred.Employee = strings.TrimSpace(strings.TrimPrefix(line, labelEmployee))
		case strings.HasPrefix(line, labelUsername):
			cred.Username = strings.TrimSpace(strings.TrimPrefix(line, labelUsername))
		case strings.HasPrefix(line, labelPassword):
			cred.Password = strings.TrimSpace(strings.TrimPrefix(line, labelPassword))
		}
	}
	return cred
}
