package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Config parámetros de emisión/validación de tokens.
type Config struct {
	Secret   string
	Issuer   string
	Audience string
	ExpHours int // vigencia en horas (24 por defecto en configuración)
}

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// UserID identifica la cuenta y EmployeeID el registro de empleado: son
// identificadores DISTINTOS y cada consumidor debe pedir el que necesita.
// Role viaja en el token para que el middleware RBAC decida sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID     string `json:"userId"`
	EmployeeID string `json:"employeeId"`
	Role       string `json:"role"` // admin | manager | developer | employee
}

// Generate emite un token HMAC-SHA256 firmado con sub=username, jti
// único por emisión, userId, employeeId y role.
func Generate(cfg Config, username, userID, employeeID, role string) (string, error) {
	if cfg.Secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Audience:  jwt.ClaimStrings{cfg.Audience},
			Subject:   username,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.ExpHours) * time.Hour)),
		},
		UserID:     userID,
		EmployeeID: employeeID,
		Role:       role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// Parse valida firma, vigencia, issuer y audience, y devuelve los claims.
// Retorna error si el token es inválido, expirado o con firma incorrecta.
func Parse(cfg Config, tokenString string) (*Claims, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	},
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithAudience(cfg.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}

// Username devuelve el subject del token ("" si no está presente).
func (c *Claims) Username() string {
	if c == nil {
		return ""
	}
	return c.Subject
}

// ExtractUserID devuelve el claim userId, "" como centinela si falta.
func (c *Claims) ExtractUserID() string {
	if c == nil {
		return ""
	}
	return c.UserID
}

// ExtractEmployeeID devuelve el claim employeeId, "" como centinela si falta.
// Ojo: NO es el userId; las tareas referencian empleados, no cuentas.
func (c *Claims) ExtractEmployeeID() string {
	if c == nil {
		return ""
	}
	return c.EmployeeID
}
