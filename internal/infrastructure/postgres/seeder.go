package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/staff-api/internal/application/credentials"
	"github.com/tu-usuario/staff-api/internal/application/employee"
	"github.com/tu-usuario/staff-api/internal/domain/entity"
	"github.com/tu-usuario/staff-api/internal/domain/repository"
	"github.com/tu-usuario/staff-api/pkg/logger"
	"github.com/tu-usuario/staff-api/pkg/passgen"
	"github.com/tu-usuario/staff-api/pkg/passhash"
)

// IDs estáticos del superadmin: el seed es idempotente por EmployeeID.
const (
	superAdminEmployeeID = "11111111-1111-1111-1111-111111111111"
	superAdminUserID     = "22222222-2222-2222-2222-222222222222"
	superAdminUsername   = "SuperAdmin@001"
)

// Seeder crea el superadmin inicial si no existe. La contraseña se
// genera aleatoria, se persiste hasheada y el texto plano se deja en el
// side-store de credenciales para el primer acceso del operador.
type Seeder struct {
	tx           employee.TxRunner
	employeeRepo repository.EmployeeRepository
	hasher       *passhash.Hasher
	credStore    credentials.Store
	log          *logger.Logger
}

// NewSeeder construye el seeder.
func NewSeeder(tx employee.TxRunner, employeeRepo repository.EmployeeRepository, hasher *passhash.Hasher, credStore credentials.Store, log *logger.Logger) *Seeder {
	return &Seeder{tx: tx, employeeRepo: employeeRepo, hasher: hasher, credStore: credStore, log: log}
}

// SeedSuperAdmin es idempotente: si el superadmin ya existe no hace nada.
func (s *Seeder) SeedSuperAdmin(ctx context.Context) error {
	existing, err := s.employeeRepo.GetByID(superAdminEmployeeID)
	if err != nil {
		return fmt.Errorf("seed superadmin: %w", err)
	}
	if existing != nil {
		return nil
	}

	plain, err := passgen.Random(passgen.DefaultLength)
	if err != nil {
		return err
	}
	hash, err := s.hasher.Hash(plain)
	if err != nil {
		return err
	}

	now := time.Now()
	userID := superAdminUserID
	emp := &entity.Employee{
		ID:        superAdminEmployeeID,
		FirstName: "John",
		LastName:  "Doe",
		Gender:    "M",
		Age:       35,
		Position:  entity.PositionAdmin,
		Salary:    decimal.NewFromInt(50000),
		Tax:       decimal.NewFromInt(5000),
		Category:  entity.CategoryPermanent,
		CreatedAt: now,
		UpdatedAt: now,
	}
	account := &entity.Account{
		UserID:       userID,
		Username:     superAdminUsername,
		PasswordHash: hash,
		Status:       entity.AccountActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.tx.RunOnboarding(ctx, func(empRepo repository.EmployeeRepository, accRepo repository.AccountRepository) error {
		if err := empRepo.Create(emp); err != nil {
			return err
		}
		if err := accRepo.Create(account); err != nil {
			return err
		}
		emp.UserID = &userID
		return empRepo.Update(emp)
	})
	if err != nil {
		return fmt.Errorf("seed superadmin: %w", err)
	}

	s.credStore.Persist(emp.FullName(), account.Username, plain)
	s.log.Info().Str("username", account.Username).Msg("superadmin creado; credenciales iniciales en el side-store")
	return nil
}
