package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/staff-api/internal/domain/entity"
	"github.com/tu-usuario/staff-api/internal/domain/repository"
)

var _ repository.TaskRepository = (*TaskRepo)(nil)

// TaskRepo implementación del puerto TaskRepository sobre PostgreSQL.
type TaskRepo struct {
	db querier
}

// NewTaskRepository construye el adaptador de persistencia para tareas.
func NewTaskRepository(db querier) *TaskRepo {
	return &TaskRepo{db: db}
}

// CreateTask persiste una nueva tarea.
func (r *TaskRepo) CreateTask(t *entity.Task) error {
	query := `
		INSERT INTO tasks (id, name, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(context.Background(), query, t.ID, t.Name, t.Status, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// CreateAssignment persiste la asignación de una tarea.
func (r *TaskRepo) CreateAssignment(et *entity.EmployeeTask) error {
	query := `
		INSERT INTO employee_tasks (id, task_id, assigned_to_id, assigned_by_id, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(context.Background(), query, et.ID, et.TaskID, et.AssignedToID, et.AssignedByID, et.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert employee_task: %w", err)
	}
	return nil
}

// GetTask obtiene una tarea por ID; (nil, nil) si no existe.
func (r *TaskRepo) GetTask(id string) (*entity.Task, error) {
	var t entity.Task
	err := r.db.QueryRow(context.Background(), `
		SELECT id, name, status, created_at, updated_at FROM tasks WHERE id = $1`, id).Scan(
		&t.ID, &t.Name, &t.Status, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return &t, nil
}

// UpdateTask actualiza el estado de una tarea.
func (r *TaskRepo) UpdateTask(t *entity.Task) error {
	query := `UPDATE tasks SET name = $2, status = $3, updated_at = $4 WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query, t.ID, t.Name, t.Status, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

// ListAssignedTo bandeja pendiente de un empleado: tareas asignadas a él
// que aún no están completadas, con el nombre de quien las asignó.
func (r *TaskRepo) ListAssignedTo(employeeID string) ([]repository.AssignedTask, error) {
	query := `
		SELECT t.id, t.name, t.status, b.first_name || ' ' || b.last_name
		FROM employee_tasks et
		JOIN tasks t ON t.id = et.task_id
		JOIN employees b ON b.id = et.assigned_by_id
		WHERE et.assigned_to_id = $1 AND t.status <> 'completed'
		ORDER BY et.created_at DESC`
	rows, err := r.db.Query(context.Background(), query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list assigned-to tasks: %w", err)
	}
	defer rows.Close()
	var list []repository.AssignedTask
	for rows.Next() {
		var row repository.AssignedTask
		if err := rows.Scan(&row.TaskID, &row.TaskName, &row.Status, &row.AssignedBy); err != nil {
			return nil, fmt.Errorf("scan assigned-to task: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// ListAssignedBy tareas delegadas por un empleado, con el receptor.
func (r *TaskRepo) ListAssignedBy(employeeID string) ([]repository.DelegatedTask, error) {
	query := `
		SELECT t.id, t.name, t.status, d.first_name || ' ' || d.last_name
		FROM employee_tasks et
		JOIN tasks t ON t.id = et.task_id
		JOIN employees d ON d.id = et.assigned_to_id
		WHERE et.assigned_by_id = $1
		ORDER BY et.created_at DESC`
	rows, err := r.db.Query(context.Background(), query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list assigned-by tasks: %w", err)
	}
	defer rows.Close()
	var list []repository.DelegatedTask
	for rows.Next() {
		var row repository.DelegatedTask
		if err := rows.Scan(&row.TaskID, &row.TaskName, &row.Status, &row.AssignedTo); err != nil {
			return nil, fmt.Errorf("scan assigned-by task: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
