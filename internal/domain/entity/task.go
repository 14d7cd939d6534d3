package entity

import "time"

// Estados de una tarea. Transiciones: pending -> started -> completed;
// una tarea completada no admite más transiciones.
const (
	TaskPending   = "pending"
	TaskStarted   = "started"
	TaskCompleted = "completed"
)

// Task tarea asignable.
type Task struct {
	ID        string
	Name      string
	Status    string // pending, started, completed
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EmployeeTask asignación de una tarea: quién la recibe y quién la asignó.
// Los dos ids referencian EMPLEADOS (EmployeeID), no cuentas.
type EmployeeTask struct {
	ID           string
	TaskID       string
	AssignedToID string
	AssignedByID string
	CreatedAt    time.Time
}
