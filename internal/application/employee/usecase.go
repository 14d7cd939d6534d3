package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/staff-api/internal/application/credentials"
	"github.com/tu-usuario/staff-api/internal/application/dto"
	"github.com/tu-usuario/staff-api/internal/domain"
	"github.com/tu-usuario/staff-api/internal/domain/entity"
	"github.com/tu-usuario/staff-api/internal/domain/policy"
	"github.com/tu-usuario/staff-api/internal/domain/repository"
	"github.com/tu-usuario/staff-api/pkg/logger"
	"github.com/tu-usuario/staff-api/pkg/passgen"
	"github.com/tu-usuario/staff-api/pkg/passhash"
)

// UseCase altas, ediciones y consultas de empleados. El alta crea
// también la cuenta con credenciales generadas.
type UseCase struct {
	tx           TxRunner
	employeeRepo repository.EmployeeRepository
	accountRepo  repository.AccountRepository
	hasher       *passhash.Hasher
	credStore    credentials.Store
	log          *logger.Logger
}

// NewUseCase construye el caso de uso de empleados.
func NewUseCase(
	tx TxRunner,
	employeeRepo repository.EmployeeRepository,
	accountRepo repository.AccountRepository,
	hasher *passhash.Hasher,
	credStore credentials.Store,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		tx:           tx,
		employeeRepo: employeeRepo,
		accountRepo:  accountRepo,
		hasher:       hasher,
		credStore:    credStore,
		log:          log,
	}
}

// payrollForPosition deriva salario e impuesto de la posición. Los
// montos son NUMERIC en DB; decimal evita el redondeo binario de float.
func payrollForPosition(position string) (salary, tax decimal.Decimal) {
	switch position {
	case entity.PositionDeveloper:
		salary = decimal.NewFromInt(20000)
		tax = salary.Mul(decimal.NewFromFloat(0.25))
	case entity.PositionManager:
		salary = decimal.NewFromInt(30000)
		tax = salary.Mul(decimal.NewFromFloat(0.35))
	default:
		salary = decimal.NewFromInt(10000)
		tax = salary.Mul(decimal.NewFromFloat(0.15))
	}
	return salary, tax
}

// buildUsername arma el username "{Apellido}_{Nombre}@{prefijo del id}".
func buildUsername(e *entity.Employee) string {
	return fmt.Sprintf("%s_%s@%s", e.LastName, e.FirstName, e.ID[:3])
}

// Add crea empleado + cuenta en una transacción. La contraseña se
// genera aleatoria, se guarda hasheada, y el texto plano se devuelve una
// única vez y se escribe al side-store DESPUÉS del commit: un fallo del
// archivo jamás revierte el alta.
func (uc *UseCase) Add(ctx context.Context, in dto.AddEmployeeRequest) (*dto.AddEmployeeResponse, error) {
	if _, err := policy.RoleFromPosition(in.Position); err != nil {
		return nil, domain.ErrUnknownPosition
	}
	existing, err := uc.employeeRepo.GetByFullName(in.FirstName, in.LastName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmployeeExists
	}

	salary, tax := payrollForPosition(in.Position)
	now := time.Now()
	emp := &entity.Employee{
		ID:        uuid.New().String(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Gender:    in.Gender,
		Age:       in.Age,
		Position:  in.Position,
		Salary:    salary,
		Tax:       tax,
		Category:  in.Category,
		CreatedAt: now,
		UpdatedAt: now,
	}

	plain, err := passgen.Random(passgen.DefaultLength)
	if err != nil {
		return nil, err
	}
	hash, err := uc.hasher.Hash(plain)
	if err != nil {
		return nil, err
	}
	account := &entity.Account{
		UserID:       uuid.New().String(),
		Username:     buildUsername(emp),
		PasswordHash: hash,
		Status:       entity.AccountActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.tx.RunOnboarding(ctx, func(empRepo repository.EmployeeRepository, accRepo repository.AccountRepository) error {
		if err := empRepo.Create(emp); err != nil {
			return err
		}
		if err := accRepo.Create(account); err != nil {
			return err
		}
		emp.UserID = &account.UserID
		return empRepo.Update(emp)
	})
	if err != nil {
		return nil, err
	}

	// Side-store: conveniencia para el admin, fuera de la transacción.
	uc.credStore.Persist(emp.FullName(), account.Username, plain)
	uc.log.Info().Str("employee_id", emp.ID).Str("username", account.Username).Msg("empleado dado de alta con cuenta generada")

	resp := uc.toResponse(emp, account)
	return &dto.AddEmployeeResponse{
		Employee: resp,
		Username: account.Username,
		Password: plain,
	}, nil
}

// Update edita datos personales. Si cambia el nombre, el username de la
// cuenta se regenera para mantener la convención de nombres.
func (uc *UseCase) Update(in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	emp, err := uc.employeeRepo.GetByID(in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	nameChanged := emp.FirstName != in.FirstName || emp.LastName != in.LastName
	emp.FirstName = in.FirstName
	emp.LastName = in.LastName
	emp.Gender = in.Gender
	emp.Age = in.Age
	emp.UpdatedAt = time.Now()
	if err := uc.employeeRepo.Update(emp); err != nil {
		return nil, err
	}

	var account *entity.Account
	if emp.UserID != nil {
		account, err = uc.accountRepo.GetByUserID(*emp.UserID)
		if err != nil {
			return nil, err
		}
		if nameChanged && account != nil {
			account.Username = buildUsername(emp)
			account.UpdatedAt = time.Now()
			if err := uc.accountRepo.Update(account); err != nil {
				return nil, err
			}
		}
	}
	resp := uc.toResponse(emp, account)
	return &resp, nil
}

// GetByID devuelve un empleado con su cuenta (si la tiene).
func (uc *UseCase) GetByID(id string) (*dto.EmployeeResponse, error) {
	emp, err := uc.employeeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	return uc.withAccount(emp)
}

// GetByUserID devuelve el empleado dueño de una cuenta.
func (uc *UseCase) GetByUserID(userID string) (*dto.EmployeeResponse, error) {
	emp, err := uc.employeeRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	return uc.withAccount(emp)
}

// List lista empleados con paginación.
func (uc *UseCase) List(page dto.PageRequest) ([]dto.EmployeeResponse, error) {
	page.DefaultPage()
	emps, err := uc.employeeRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(emps))
	for _, emp := range emps {
		resp, err := uc.withAccount(emp)
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

func (uc *UseCase) withAccount(emp *entity.Employee) (*dto.EmployeeResponse, error) {
	var account *entity.Account
	if emp.UserID != nil {
		var err error
		account, err = uc.accountRepo.GetByUserID(*emp.UserID)
		if err != nil {
			return nil, err
		}
	}
	resp := uc.toResponse(emp, account)
	return &resp, nil
}

func (uc *UseCase) toResponse(emp *entity.Employee, account *entity.Account) dto.EmployeeResponse {
	resp := dto.EmployeeResponse{
		ID:        emp.ID,
		FirstName: emp.FirstName,
		LastName:  emp.LastName,
		Gender:    emp.Gender,
		Age:       emp.Age,
		Position:  emp.Position,
		Salary:    emp.Salary.StringFixed(2),
		Tax:       emp.Tax.StringFixed(2),
		Category:  emp.Category,
		CreatedAt: emp.CreatedAt,
		UpdatedAt: emp.UpdatedAt,
	}
	if account != nil {
		resp.Account = &dto.AccountResponse{
			UserID:   account.UserID,
			Username: account.Username,
			Status:   account.Status,
		}
	}
	return resp
}
