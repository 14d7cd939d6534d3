package account

import (
	"time"

	"github.com/tu-usuario/staff-api/internal/application/dto"
	"github.com/tu-usuario/staff-api/internal/domain"
	"github.com/tu-usuario/staff-api/internal/domain/repository"
)

// UseCase administración de cuentas: listado, consulta y activación.
type UseCase struct {
	accountRepo repository.AccountRepository
}

// NewUseCase construye el caso de uso de cuentas.
func NewUseCase(accountRepo repository.AccountRepository) *UseCase {
	return &UseCase{accountRepo: accountRepo}
}

// List lista todas las cuentas con el nombre del empleado dueño.
func (uc *UseCase) List(page dto.PageRequest) ([]dto.AccountResponse, error) {
	page.DefaultPage()
	rows, err := uc.accountRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AccountResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.AccountResponse{
			UserID:   row.Account.UserID,
			Username: row.Account.Username,
			FullName: row.FullName,
			Status:   row.Account.Status,
		})
	}
	return out, nil
}

// GetByID devuelve una cuenta por su user id (sin hash).
func (uc *UseCase) GetByID(userID string) (*dto.AccountResponse, error) {
	account, err := uc.accountRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}
	return &dto.AccountResponse{
		UserID:   account.UserID,
		Username: account.Username,
		Status:   account.Status,
	}, nil
}

// ToggleStatus alterna active/deactivated y devuelve el estado resultante.
func (uc *UseCase) ToggleStatus(userID string) (string, error) {
	account, err := uc.accountRepo.GetByUserID(userID)
	if err != nil {
		return "", err
	}
	if account == nil {
		return "", domain.ErrAccountNotFound
	}
	account.ToggleStatus()
	account.UpdatedAt = time.Now()
	if err := uc.accountRepo.Update(account); err != nil {
		return "", err
	}
	return account.Status, nil
}
