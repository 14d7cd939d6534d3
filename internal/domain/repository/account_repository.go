package repository

import "github.com/tu-usuario/staff-api/internal/domain/entity"

// AccountWithOwner fila de listado: cuenta más el nombre del empleado dueño.
type AccountWithOwner struct {
	Account  entity.Account
	FullName string
}

// AccountRepository define el puerto de persistencia para Account.
// Los métodos de lectura devuelven (nil, nil) cuando no hay fila.
type AccountRepository interface {
	Create(a *entity.Account) error
	GetByUserID(userID string) (*entity.Account, error)
	GetByUsername(username string) (*entity.Account, error)
	Update(a *entity.Account) error
	List(limit, offset int) ([]AccountWithOwner, error)
}
