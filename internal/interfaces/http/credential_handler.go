package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/staff-api/internal/application/credentials"
	"github.com/tu-usuario/staff-api/internal/application/dto"
	"github.com/tu-usuario/staff-api/internal/domain"
)

// CredentialHandler consulta del side-store de credenciales (solo admin).
type CredentialHandler struct {
	uc *credentials.UseCase
}

// NewCredentialHandler construye el handler de credenciales.
func NewCredentialHandler(uc *credentials.UseCase) *CredentialHandler {
	return &CredentialHandler{uc: uc}
}

// GetByUsername godoc
// @Summary      Consultar el archivo de credenciales más reciente de un username
// @Tags         credentials
// @Produce      json
// @Security     BearerAuth
// @Param        username  path  string  true  "username"
// @Success      200  {object}  dto.CredentialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/credentials/{username} [get]
func (h *CredentialHandler) GetByUsername(c *fiber.Ctx) error {
	username := c.Params("username")
	if username == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username es requerido"})
	}
	out, err := h.uc.Lookup(username)
	if err != nil {
		if errors.Is(err, domain.ErrCredentialNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no hay archivo de credenciales para ese username"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
