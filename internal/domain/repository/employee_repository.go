package repository

import "github.com/tu-usuario/staff-api/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
// Los métodos de lectura devuelven (nil, nil) cuando no hay fila.
type EmployeeRepository interface {
	Create(e *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	GetByUserID(userID string) (*entity.Employee, error)
	GetByFullName(firstName, lastName string) (*entity.Employee, error)
	List(limit, offset int) ([]*entity.Employee, error)
	Update(e *entity.Employee) error
}
