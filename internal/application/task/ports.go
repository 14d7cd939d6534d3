package task

import (
	"context"

	"github.com/tu-usuario/staff-api/internal/domain/repository"
)

// TxRunner ejecuta la asignación de una tarea en una transacción: la
// fila de la tarea y su asignación se confirman juntas.
type TxRunner interface {
	RunAssignment(ctx context.Context, fn func(taskRepo repository.TaskRepository) error) error
}
