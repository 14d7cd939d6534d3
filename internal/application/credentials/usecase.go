package credentials

import (
	"github.com/tu-usuario/staff-api/internal/application/dto"
	"github.com/tu-usuario/staff-api/internal/domain"
)

// UseCase consulta del side-store de credenciales (solo admin).
type UseCase struct {
	store Store
}

// NewUseCase construye el caso de uso sobre el puerto del side-store.
func NewUseCase(store Store) *UseCase {
	return &UseCase{store: store}
}

// Lookup busca el archivo de credenciales más reciente para un username.
// Devuelve ErrCredentialNotFound si no existe ninguno.
func (uc *UseCase) Lookup(username string) (*dto.CredentialResponse, error) {
	cred, err := uc.store.Lookup(username)
	if err != nil {
		return nil, err
	}
	if cred == nil {
		return nil, domain.ErrCredentialNotFound
	}
	return &dto.CredentialResponse{
		DateCreated: cred.DateCreated,
		Employee:    cred.Employee,
		Username:    cred.Username,
		Password:    cred.Password,
	}, nil
}
