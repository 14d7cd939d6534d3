package dto

import "time"

// AddEmployeeRequest entrada para alta de empleado. El salario y el
// impuesto no se aceptan del cliente: se derivan de la posición.
type AddEmployeeRequest struct {
	FirstName string `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string `json:"last_name" validate:"required,min=1,max=100"`
	Gender    string `json:"gender" validate:"required,oneof=M F X"`
	Age       int    `json:"age" validate:"required,min=16,max=100"`
	Position  string `json:"position" validate:"required,oneof=admin manager developer employee"`
	Category  string `json:"category" validate:"required,oneof=permanent contract intern"`
}

// UpdateEmployeeRequest entrada para edición de datos personales.
type UpdateEmployeeRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,uuid"`
	FirstName  string `json:"first_name" validate:"required,min=1,max=100"`
	LastName   string `json:"last_name" validate:"required,min=1,max=100"`
	Gender     string `json:"gender" validate:"required,oneof=M F X"`
	Age        int    `json:"age" validate:"required,min=16,max=100"`
}

// EmployeeResponse salida de un empleado (sin hash de contraseña).
type EmployeeResponse struct {
	ID        string           `json:"id"`
	FirstName string           `json:"first_name"`
	LastName  string           `json:"last_name"`
	Gender    string           `json:"gender"`
	Age       int              `json:"age"`
	Position  string           `json:"position"`
	Salary    string           `json:"salary"`
	Tax       string           `json:"tax"`
	Category  string           `json:"category"`
	Account   *AccountResponse `json:"account,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// AddEmployeeResponse alta exitosa: empleado + credenciales generadas.
// La contraseña en texto plano aparece AQUÍ una única vez; después solo
// sobrevive en el archivo de conveniencia del side-store.
type AddEmployeeResponse struct {
	Employee EmployeeResponse `json:"employee"`
	Username string           `json:"username"`
	Password string           `json:"password"`
}
