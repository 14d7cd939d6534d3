package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/staff-api/internal/application/dto"
	"github.com/tu-usuario/staff-api/internal/domain/policy"
)

// RequirePolicy devuelve un middleware Fiber que evalúa la política
// nombrada contra el rol del token. Debe usarse DESPUÉS de
// AuthMiddleware (necesita LocalRole).
//
// Comportamiento:
//   - Sin rol en el contexto → 401 (token legacy o middleware mal ordenado).
//   - Rol que no satisface la política → 403.
func RequirePolicy(policyName string) fiber.Handler {
	// Un nombre de política desconocido es un bug de programación del
	// router, no una condición de runtime: mejor reventar al registrar rutas.
	if !policy.Exists(policyName) {
		panic("política desconocida: " + policyName)
	}
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "MISSING_ROLE",
				Message: "el token no incluye rol",
			})
		}
		if !policy.Allowed(policyName, role) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "el rol '" + role + "' no satisface la política " + policyName,
			})
		}
		return c.Next()
	}
}
