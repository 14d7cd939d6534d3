package task

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/staff-api/internal/application/dto"
	"github.com/tu-usuario/staff-api/internal/domain"
	"github.com/tu-usuario/staff-api/internal/domain/entity"
	"github.com/tu-usuario/staff-api/internal/domain/repository"
)

// UseCase asignación y ciclo de vida de tareas.
type UseCase struct {
	tx           TxRunner
	taskRepo     repository.TaskRepository
	employeeRepo repository.EmployeeRepository
}

// NewUseCase construye el caso de uso de tareas.
func NewUseCase(tx TxRunner, taskRepo repository.TaskRepository, employeeRepo repository.EmployeeRepository) *UseCase {
	return &UseCase{tx: tx, taskRepo: taskRepo, employeeRepo: employeeRepo}
}

// Assign crea la tarea en pending y su asignación en una transacción.
// assignedByID sale del claim employeeId del token de quien asigna.
func (uc *UseCase) Assign(ctx context.Context, assignedByID string, in dto.AssignTaskRequest) (*entity.EmployeeTask, error) {
	if assignedByID == "" {
		return nil, domain.ErrInvalidInput
	}
	target, err := uc.employeeRepo.GetByID(in.AssignedToID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, domain.ErrEmployeeNotFound
	}

	now := time.Now()
	t := &entity.Task{
		ID:        uuid.New().String(),
		Name:      in.TaskName,
		Status:    entity.TaskPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	et := &entity.EmployeeTask{
		ID:           uuid.New().String(),
		TaskID:       t.ID,
		AssignedToID: in.AssignedToID,
		AssignedByID: assignedByID,
		CreatedAt:    now,
	}
	err = uc.tx.RunAssignment(ctx, func(taskRepo repository.TaskRepository) error {
		if err := taskRepo.CreateTask(t); err != nil {
			return err
		}
		return taskRepo.CreateAssignment(et)
	})
	if err != nil {
		return nil, err
	}
	return et, nil
}

// ListFor devuelve la bandeja pendiente de un empleado (sin completadas).
func (uc *UseCase) ListFor(employeeID string) ([]dto.TaskAssignedToResponse, error) {
	if employeeID == "" {
		return nil, domain.ErrInvalidInput
	}
	rows, err := uc.taskRepo.ListAssignedTo(employeeID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TaskAssignedToResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TaskAssignedToResponse{
			TaskID:     r.TaskID,
			TaskName:   r.TaskName,
			Status:     r.Status,
			AssignedBy: r.AssignedBy,
		})
	}
	return out, nil
}

// ListBy devuelve las tareas delegadas por un empleado (todas, incluidas completadas).
func (uc *UseCase) ListBy(employeeID string) ([]dto.TaskAssignedByResponse, error) {
	if employeeID == "" {
		return nil, domain.ErrInvalidInput
	}
	rows, err := uc.taskRepo.ListAssignedBy(employeeID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TaskAssignedByResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TaskAssignedByResponse{
			TaskID:     r.TaskID,
			TaskName:   r.TaskName,
			Status:     r.Status,
			AssignedTo: r.AssignedTo,
		})
	}
	return out, nil
}

// Start pasa la tarea a started. Una tarea completada no se reabre.
func (uc *UseCase) Start(taskID string) error {
	return uc.transition(taskID, entity.TaskStarted)
}

// Complete pasa la tarea a completed. Completar dos veces es error.
func (uc *UseCase) Complete(taskID string) error {
	return uc.transition(taskID, entity.TaskCompleted)
}

func (uc *UseCase) transition(taskID, status string) error {
	t, err := uc.taskRepo.GetTask(taskID)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.ErrTaskNotFound
	}
	if t.Status == entity.TaskCompleted {
		return domain.ErrTaskAlreadyComplete
	}
	t.Status = status
	t.UpdatedAt = time.Now()
	return uc.taskRepo.UpdateTask(t)
}
