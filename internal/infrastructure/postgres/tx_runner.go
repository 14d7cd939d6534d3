package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/staff-api/internal/application/employee"
	"github.com/tu-usuario/staff-api/internal/application/task"
	"github.com/tu-usuario/staff-api/internal/domain/repository"
)

// Ensure TxRunner implements employee.TxRunner and task.TxRunner.
var _ employee.TxRunner = (*TxRunner)(nil)
var _ task.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunOnboarding inicia una transacción para el alta empleado+cuenta,
// ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) RunOnboarding(ctx context.Context, fn func(
	employeeRepo repository.EmployeeRepository,
	accountRepo repository.AccountRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewEmployeeRepository(tx), NewAccountRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunAssignment inicia una transacción para crear tarea + asignación.
func (r *TxRunner) RunAssignment(ctx context.Context, fn func(taskRepo repository.TaskRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewTaskRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
