package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/staff-api/internal/domain/entity"
	"github.com/tu-usuario/staff-api/internal/domain/policy"
)

// Matriz completa rol × política. La jerarquía es estática: admin lo
// satisface todo, manager hereda hacia abajo, developer satisface
// developer/employee y la posición employee no satisface ninguna
// política técnica.
func TestAllowed_MatrizCompleta(t *testing.T) {
	casos := []struct {
		policyName string
		role       string
		want       bool
	}{
		// RequireAdmin: solo admin
		{policy.RequireAdmin, entity.PositionAdmin, true},
		{policy.RequireAdmin, entity.PositionManager, false},
		{policy.RequireAdmin, entity.PositionDeveloper, false},
		{policy.RequireAdmin, entity.PositionEmployee, false},

		// RequireManager: manager y admin
		{policy.RequireManager, entity.PositionAdmin, true},
		{policy.RequireManager, entity.PositionManager, true},
		{policy.RequireManager, entity.PositionDeveloper, false},
		{policy.RequireManager, entity.PositionEmployee, false},

		// RequireDeveloper: developer, manager y admin
		{policy.RequireDeveloper, entity.PositionAdmin, true},
		{policy.RequireDeveloper, entity.PositionManager, true},
		{policy.RequireDeveloper, entity.PositionDeveloper, true},
		{policy.RequireDeveloper, entity.PositionEmployee, false},

		// RequireEmployee: mismo conjunto que RequireDeveloper
		{policy.RequireEmployee, entity.PositionAdmin, true},
		{policy.RequireEmployee, entity.PositionManager, true},
		{policy.RequireEmployee, entity.PositionDeveloper, true},
		{policy.RequireEmployee, entity.PositionEmployee, false},
	}
	for _, c := range casos {
		got := policy.Allowed(c.policyName, c.role)
		assert.Equal(t, c.want, got, "política %s, rol %s", c.policyName, c.role)
	}
}

// Política desconocida o rol desconocido → denegar siempre (fail-closed).
func TestAllowed_DesconocidosDeniegan(t *testing.T) {
	assert.False(t, policy.Allowed("RequireSuperuser", entity.PositionAdmin))
	assert.False(t, policy.Allowed(policy.RequireAdmin, "root"))
	assert.False(t, policy.Allowed("", ""))
}

func TestExists(t *testing.T) {
	for _, name := range []string{policy.RequireAdmin, policy.RequireManager, policy.RequireDeveloper, policy.RequireEmployee} {
		assert.True(t, policy.Exists(name), "la política %s debe estar registrada", name)
	}
	assert.False(t, policy.Exists("RequireSuperuser"))
	assert.False(t, policy.Exists(""))
}

// ──────────────────────────────────────────────────────────────────────────────
// RoleFromPosition — enum cerrado
// ──────────────────────────────────────────────────────────────────────────────

func TestRoleFromPosition_PosicionesValidas(t *testing.T) {
	for _, p := range []string{
		entity.PositionAdmin,
		entity.PositionManager,
		entity.PositionDeveloper,
		entity.PositionEmployee,
	} {
		role, err := policy.RoleFromPosition(p)
		require.NoError(t, err, "posición %s", p)
		assert.Equal(t, p, role)
	}
}

func TestRoleFromPosition_FueraDelEnum(t *testing.T) {
	for _, p := range []string{"", "Admin", "ADMIN", "superuser", "cto", " manager"} {
		_, err := policy.RoleFromPosition(p)
		assert.Error(t, err, "posición %q debe rechazarse", p)
	}
}
