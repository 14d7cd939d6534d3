package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/staff-api/internal/domain"
	"github.com/tu-usuario/staff-api/internal/domain/entity"
	"github.com/tu-usuario/staff-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	db querier
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
// Acepta el pool o una transacción (vía TxRunner).
func NewEmployeeRepository(db querier) *EmployeeRepo {
	return &EmployeeRepo{db: db}
}

const employeeColumns = `id, first_name, last_name, gender, age, position, salary, tax, category, user_id, created_at, updated_at`

// Create persiste un nuevo empleado.
func (r *EmployeeRepo) Create(e *entity.Employee) error {
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(context.Background(), query,
		e.ID, e.FirstName, e.LastName, e.Gender, e.Age, e.Position,
		e.Salary, e.Tax, e.Category, e.UserID, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmployeeExists
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID; (nil, nil) si no existe.
func (r *EmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	return r.getOne(`SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id)
}

// GetByUserID obtiene el empleado dueño de una cuenta; (nil, nil) si no existe.
func (r *EmployeeRepo) GetByUserID(userID string) (*entity.Employee, error) {
	return r.getOne(`SELECT `+employeeColumns+` FROM employees WHERE user_id = $1`, userID)
}

// GetByFullName obtiene un empleado por nombre y apellido exactos.
func (r *EmployeeRepo) GetByFullName(firstName, lastName string) (*entity.Employee, error) {
	return r.getOne(
		`SELECT `+employeeColumns+` FROM employees WHERE first_name = $1 AND last_name = $2 LIMIT 1`,
		firstName, lastName,
	)
}

func (r *EmployeeRepo) getOne(query string, args ...any) (*entity.Employee, error) {
	var e entity.Employee
	err := r.db.QueryRow(context.Background(), query, args...).Scan(
		&e.ID, &e.FirstName, &e.LastName, &e.Gender, &e.Age, &e.Position,
		&e.Salary, &e.Tax, &e.Category, &e.UserID, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &e, nil
}

// List lista empleados ordenados por fecha de alta.
func (r *EmployeeRepo) List(limit, offset int) ([]*entity.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(
			&e.ID, &e.FirstName, &e.LastName, &e.Gender, &e.Age, &e.Position,
			&e.Salary, &e.Tax, &e.Category, &e.UserID, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update actualiza un empleado (incluido el vínculo con la cuenta).
func (r *EmployeeRepo) Update(e *entity.Employee) error {
	query := `
		UPDATE employees
		SET first_name = $2, last_name = $3, gender = $4, age = $5, position = $6,
		    salary = $7, tax = $8, category = $9, user_id = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		e.ID, e.FirstName, e.LastName, e.Gender, e.Age, e.Position,
		e.Salary, e.Tax, e.Category, e.UserID, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}
