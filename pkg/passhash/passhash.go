// Package passhash implementa el hash de contraseñas del sistema:
// SHA-256 sobre contraseña + salt (base64) + pepper, con salt aleatorio
// de 16 bytes por registro. El registro almacenado tiene la forma
// "base64(salt):base64(hash)". El pepper es un secreto de despliegue,
// distinto del salt por registro, y se inyecta por configuración.
package passhash

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// SaltSize tamaño del salt en bytes (128 bits).
const SaltSize = 16

// ErrEmptyPepper el hasher no puede operar sin pepper.
var ErrEmptyPepper = errors.New("passhash: pepper vacío")

// Hasher hashea y verifica contraseñas con un pepper de proceso.
type Hasher struct {
	pepper string
}

// New construye el hasher. Rechaza un pepper vacío: sin él, el hash
// queda reducido a SHA-256 salado y cualquier registro filtrado es atacable offline.
func New(pepper string) (*Hasher, error) {
	if pepper == "" {
		return nil, ErrEmptyPepper
	}
	return &Hasher{pepper: pepper}, nil
}

// Hash genera un salt aleatorio fresco y devuelve el registro "b64(salt):b64(hash)".
// Dos llamadas con la misma contraseña producen registros distintos.
func (h *Hasher) Hash(password string) (string, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("passhash: generar salt: %w", err)
	}
	saltB64 := base64.StdEncoding.EncodeToString(salt)
	digest := h.digest(password, saltB64)
	return saltB64 + ":" + base64.StdEncoding.EncodeToString(digest), nil
}

// Verify recalcula el hash con el salt almacenado y compara en tiempo
// constante. Cualquier registro malformado (número de partes distinto de
// dos, base64 inválido) devuelve false; nunca panic ni error.
func (h *Hasher) Verify(password, record string) bool {
	parts := strings.Split(record, ":")
	if len(parts) != 2 {
		return false
	}
	if _, err := base64.StdEncoding.DecodeString(parts[0]); err != nil {
		return false
	}
	stored, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return false
	}
	computed := h.digest(password, parts[0])
	return subtle.ConstantTimeCompare(computed, stored) == 1
}

// digest calcula SHA256(password || b64(salt) || pepper). El salt entra
// en su forma base64: así quedó definido el formato de los registros ya
// almacenados y cambiarlo los invalidaría todos.
func (h *Hasher) digest(password, saltB64 string) []byte {
	sum := sha256.Sum256([]byte(password + saltB64 + h.pepper))
	return sum[:]
}
