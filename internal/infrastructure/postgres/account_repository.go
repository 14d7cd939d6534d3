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

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación del puerto AccountRepository sobre PostgreSQL.
type AccountRepo struct {
	db querier
}

// NewAccountRepository construye el adaptador de persistencia para cuentas.
func NewAccountRepository(db querier) *AccountRepo {
	return &AccountRepo{db: db}
}

// Create persiste una nueva cuenta.
func (r *AccountRepo) Create(a *entity.Account) error {
	query := `
		INSERT INTO accounts (user_id, username, password_hash, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(context.Background(), query,
		a.UserID, a.Username, a.PasswordHash, a.Status, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByUserID obtiene una cuenta por su id; (nil, nil) si no existe.
func (r *AccountRepo) GetByUserID(userID string) (*entity.Account, error) {
	return r.getOne(`
		SELECT user_id, username, password_hash, status, created_at, updated_at
		FROM accounts WHERE user_id = $1`, userID)
}

// GetByUsername obtiene una cuenta por username; (nil, nil) si no existe.
func (r *AccountRepo) GetByUsername(username string) (*entity.Account, error) {
	return r.getOne(`
		SELECT user_id, username, password_hash, status, created_at, updated_at
		FROM accounts WHERE username = $1 LIMIT 1`, username)
}

func (r *AccountRepo) getOne(query string, args ...any) (*entity.Account, error) {
	var a entity.Account
	err := r.db.QueryRow(context.Background(), query, args...).Scan(
		&a.UserID, &a.Username, &a.PasswordHash, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return &a, nil
}

// Update actualiza username, hash y estado de una cuenta.
func (r *AccountRepo) Update(a *entity.Account) error {
	query := `
		UPDATE accounts SET username = $2, password_hash = $3, status = $4, updated_at = $5
		WHERE user_id = $1`
	_, err := r.db.Exec(context.Background(), query,
		a.UserID, a.Username, a.PasswordHash, a.Status, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	return nil
}

// List lista cuentas con el nombre del empleado dueño (LEFT JOIN: una
// cuenta puede existir un instante sin empleado vinculado).
func (r *AccountRepo) List(limit, offset int) ([]repository.AccountWithOwner, error) {
	query := `
		SELECT a.user_id, a.username, a.password_hash, a.status, a.created_at, a.updated_at,
		       COALESCE(e.first_name || ' ' || e.last_name, '')
		FROM accounts a
		LEFT JOIN employees e ON e.user_id = a.user_id
		ORDER BY a.created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()
	var list []repository.AccountWithOwner
	for rows.Next() {
		var row repository.AccountWithOwner
		if err := rows.Scan(
			&row.Account.UserID, &row.Account.Username, &row.Account.PasswordHash,
			&row.Account.Status, &row.Account.CreatedAt, &row.Account.UpdatedAt,
			&row.FullName,
		); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
