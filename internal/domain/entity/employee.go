package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Posiciones válidas para Employee. La posición hace de rol de acceso en
// el token, por eso es un conjunto cerrado: una posición fuera de esta
// lista se rechaza al crear el empleado y al emitir el token.
const (
	PositionAdmin     = "admin"
	PositionManager   = "manager"
	PositionDeveloper = "developer"
	PositionEmployee  = "employee" // resto de la plantilla sin rol técnico
)

// Categorías de contratación.
const (
	CategoryPermanent = "permanent"
	CategoryContract  = "contract"
	CategoryIntern    = "intern"
)

// Employee registro de empleado. UserID es opcional: apunta a la cuenta
// asociada y es nil durante el instante de creación, antes del vínculo.
type Employee struct {
	ID        string
	FirstName string
	LastName  string
	Gender    string // M, F, X
	Age       int
	Position  string          // admin, manager, developer, employee
	Salary    decimal.Decimal // derivado de la posición
	Tax       decimal.Decimal // derivado del salario
	Category  string          // permanent, contract, intern
	UserID    *string         // cuenta vinculada (nullable)
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName nombre para mostrar (también se escribe en el archivo de credenciales).
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
