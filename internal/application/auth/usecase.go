package auth

import (
	"time"

	"github.com/tu-usuario/staff-api/internal/application/credentials"
	"github.com/tu-usuario/staff-api/internal/application/dto"
	"github.com/tu-usuario/staff-api/internal/domain"
	"github.com/tu-usuario/staff-api/internal/domain/entity"
	"github.com/tu-usuario/staff-api/internal/domain/policy"
	"github.com/tu-usuario/staff-api/internal/domain/repository"
	"github.com/tu-usuario/staff-api/pkg/jwt"
	"github.com/tu-usuario/staff-api/pkg/passhash"
)

// UseCase casos de uso de autenticación: login y cambio de contraseña.
type UseCase struct {
	accountRepo  repository.AccountRepository
	employeeRepo repository.EmployeeRepository
	hasher       *passhash.Hasher
	credStore    credentials.Store
	jwtCfg       jwt.Config
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(
	accountRepo repository.AccountRepository,
	employeeRepo repository.EmployeeRepository,
	hasher *passhash.Hasher,
	credStore credentials.Store,
	jwtCfg jwt.Config,
) *UseCase {
	return &UseCase{
		accountRepo:  accountRepo,
		employeeRepo: employeeRepo,
		hasher:       hasher,
		credStore:    credStore,
		jwtCfg:       jwtCfg,
	}
}

// Login verifica username/password, comprueba el estado de la cuenta y
// emite el JWT con userId, employeeId y role. Username inexistente y
// contraseña incorrecta devuelven el mismo error: no se revela cuál falló.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	account, err := uc.accountRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if account == nil || !uc.hasher.Verify(in.Password, account.PasswordHash) {
		return nil, domain.ErrUnauthorized
	}
	if !account.IsActive() {
		return nil, domain.ErrAccountDeactivated
	}
	employee, err := uc.employeeRepo.GetByUserID(account.UserID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	// La posición hace de rol: se valida contra el enum cerrado antes de
	// convertirse en claim, nunca se propaga un string libre al token.
	role, err := policy.RoleFromPosition(employee.Position)
	if err != nil {
		return nil, domain.ErrUnknownPosition
	}
	token, err := jwt.Generate(uc.jwtCfg, account.Username, account.UserID, employee.ID, role)
	if err != nil {
		return nil, err
	}
	resp := toEmployeeResponse(employee)
	resp.Account = &dto.AccountResponse{
		UserID:   account.UserID,
		Username: account.Username,
		Status:   account.Status,
	}
	return &dto.LoginResponse{Token: token, Employee: resp}, nil
}

// ChangePassword verifica la contraseña actual, re-hashea la nueva y
// purga los archivos del side-store para ese username. La purga es
// best-effort: el cambio de contraseña ya quedó persistido y un fallo
// de archivos no lo revierte.
func (uc *UseCase) ChangePassword(in dto.ChangePasswordRequest) error {
	employee, err := uc.employeeRepo.GetByID(in.EmployeeID)
	if err != nil {
		return err
	}
	if employee == nil {
		return domain.ErrEmployeeNotFound
	}
	if employee.UserID == nil {
		return domain.ErrAccountNotFound
	}
	account, err := uc.accountRepo.GetByUserID(*employee.UserID)
	if err != nil {
		return err
	}
	if account == nil {
		return domain.ErrAccountNotFound
	}
	if !uc.hasher.Verify(in.OldPassword, account.PasswordHash) {
		return domain.ErrWrongPassword
	}
	newHash, err := uc.hasher.Hash(in.NewPassword)
	if err != nil {
		return err
	}
	account.PasswordHash = newHash
	account.UpdatedAt = time.Now()
	if err := uc.accountRepo.Update(account); err != nil {
		return err
	}
	uc.credStore.Purge(account.Username)
	return nil
}

func toEmployeeResponse(e *entity.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Gender:    e.Gender,
		Age:       e.Age,
		Position:  e.Position,
		Salary:    e.Salary.StringFixed(2),
		Tax:       e.Tax.StringFixed(2),
		Category:  e.Category,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
