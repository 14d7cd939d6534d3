package repository

import "github.com/tu-usuario/staff-api/internal/domain/entity"

// AssignedTask vista de una tarea asignada A un empleado, con quién la asignó.
type AssignedTask struct {
	TaskID     string
	TaskName   string
	Status     string
	AssignedBy string // nombre completo de quien asignó
}

// DelegatedTask vista de una tarea asignada POR un empleado, con el receptor.
type DelegatedTask struct {
	TaskID     string
	TaskName   string
	Status     string
	AssignedTo string // nombre completo del receptor
}

// TaskRepository define el puerto de persistencia para Task y sus asignaciones.
type TaskRepository interface {
	CreateTask(t *entity.Task) error
	CreateAssignment(et *entity.EmployeeTask) error
	GetTask(id string) (*entity.Task, error)
	UpdateTask(t *entity.Task) error
	// ListAssignedTo excluye las tareas completadas: son la bandeja pendiente del empleado.
	ListAssignedTo(employeeID string) ([]AssignedTask, error)
	ListAssignedBy(employeeID string) ([]DelegatedTask, error)
}
