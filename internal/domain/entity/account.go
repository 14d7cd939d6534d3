package entity

import "time"

// Estados válidos para Account.
const (
	AccountActive      = "active"
	AccountDeactivated = "deactivated"
)

// Account cuenta de acceso de un empleado. Exactamente una cuenta
// opcional por empleado; su ciclo de vida es independiente (puede
// existir sin empleado vinculado un instante durante el alta).
type Account struct {
	UserID       string
	Username     string
	PasswordHash string // registro "base64(salt):base64(hash)", nunca texto plano
	Status       string // active, deactivated
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsActive indica si la cuenta puede iniciar sesión.
func (a *Account) IsActive() bool {
	return a.Status == AccountActive
}

// ToggleStatus alterna entre active y deactivated.
func (a *Account) ToggleStatus() {
	if a.Status == AccountActive {
		a.Status = AccountDeactivated
		return
	}
	a.Status = AccountActive
}
