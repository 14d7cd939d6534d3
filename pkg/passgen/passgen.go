// Package passgen genera contraseñas aleatorias fuertes para cuentas
// creadas automáticamente. Toda contraseña generada contiene al menos
// una mayúscula, una minúscula, un dígito y un símbolo, sin importar el
// resultado del barajado final.
package passgen

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Clases de caracteres; la garantía de presencia cubre las cuatro.
const (
	upperCase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerCase = "abcdefghijklmnopqrstuvwxyz"
	digits    = "0123456789"
	symbols   = "!@#$%^&*"
)

// DefaultLength longitud por defecto de las contraseñas generadas.
const DefaultLength = 12

// Random genera una contraseña de la longitud indicada usando la fuente
// criptográfica del proceso. length < 4 es error: no caben las cuatro clases.
func Random(length int) (string, error) {
	if length < 4 {
		return "", fmt.Errorf("passgen: longitud %d insuficiente (mínimo 4)", length)
	}

	password := make([]byte, 0, length)

	// Una de cada clase, siempre
	for _, class := range []string{upperCase, lowerCase, digits, symbols} {
		c, err := pick(class)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	// El resto, uniforme sobre la unión de clases
	all := upperCase + lowerCase + digits + symbols
	for len(password) < length {
		c, err := pick(all)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	// Fisher–Yates para que las clases garantizadas no queden siempre al inicio
	for i := len(password) - 1; i > 0; i-- {
		j, err := randInt(i + 1)
		if err != nil {
			return "", err
		}
		password[i], password[j] = password[j], password[i]
	}

	return string(password), nil
}

func pick(class string) (byte, error) {
	i, err := randInt(len(class))
	if err != nil {
		return 0, err
	}
	return class[i], nil
}

func randInt(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("passgen: fuente aleatoria: %w", err)
	}
	return int(v.Int64()), nil
}
