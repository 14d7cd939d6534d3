// Package policy define la tabla estática de políticas de autorización.
// La jerarquía es fija al arranque del proceso: no hay registro dinámico
// de políticas en runtime.
package policy

import (
	"fmt"

	"github.com/tu-usuario/staff-api/internal/domain/entity"
)

// Nombres de políticas disponibles para los endpoints.
const (
	RequireAdmin     = "RequireAdmin"
	RequireManager   = "RequireManager"
	RequireDeveloper = "RequireDeveloper"
	RequireEmployee  = "RequireEmployee"
)

// allowed mapea cada política al conjunto de roles que la satisfacen.
// Admin hereda todo; manager hereda developer/employee; developer
// satisface también employee.
var allowed = map[string]map[string]bool{
	RequireAdmin: {
		entity.PositionAdmin: true,
	},
	RequireManager: {
		entity.PositionManager: true,
		entity.PositionAdmin:   true,
	},
	RequireDeveloper: {
		entity.PositionDeveloper: true,
		entity.PositionManager:   true,
		entity.PositionAdmin:     true,
	},
	RequireEmployee: {
		entity.PositionDeveloper: true,
		entity.PositionManager:   true,
		entity.PositionAdmin:     true,
	},
}

// Allowed evalúa si el rol satisface la política. Política o rol
// desconocidos deniegan siempre.
func Allowed(policyName, role string) bool {
	roles, ok := allowed[policyName]
	if !ok {
		return false
	}
	return roles[role]
}

// Exists indica si el nombre de política está registrado.
func Exists(policyName string) bool {
	_, ok := allowed[policyName]
	return ok
}

// RoleFromPosition valida la posición contra el enum cerrado de roles.
// La posición del empleado ES el rol del token; un string libre aquí
// terminaría como claim de autorización sin validar.
func RoleFromPosition(position string) (string, error) {
	switch position {
	case entity.PositionAdmin, entity.PositionManager, entity.PositionDeveloper, entity.PositionEmployee:
		return position, nil
	}
	return "", fmt.Errorf("policy: posición %q fuera del conjunto permitido", position)
}
