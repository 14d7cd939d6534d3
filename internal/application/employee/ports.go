package employee

import (
	"context"

	"github.com/tu-usuario/staff-api/internal/domain/repository"
)

// TxRunner ejecuta el alta de empleado dentro de una transacción: el
// empleado, su cuenta y el vínculo entre ambos se confirman juntos o no
// se confirman. El side-store de credenciales NO participa: se escribe
// después del commit.
type TxRunner interface {
	RunOnboarding(ctx context.Context, fn func(
		employeeRepo repository.EmployeeRepository,
		accountRepo repository.AccountRepository,
	) error) error
}
