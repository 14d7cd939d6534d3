package employee_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/staff-api/internal/application/dto"
	"github.com/tu-usuario/staff-api/internal/application/employee"
	"github.com/tu-usuario/staff-api/internal/domain"
	"github.com/tu-usuario/staff-api/internal/domain/entity"
	"github.com/tu-usuario/staff-api/internal/domain/repository"
	"github.com/tu-usuario/staff-api/pkg/logger"
	"github.com/tu-usuario/staff-api/pkg/passhash"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeEmployeeRepo struct {
	byID map[string]*entity.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{byID: map[string]*entity.Employee{}}
}

func (r *fakeEmployeeRepo) Create(e *entity.Employee) error {
	cp := *e
	r.byID[e.ID] = &cp
	return nil
}
func (r *fakeEmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	e, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}
func (r *fakeEmployeeRepo) GetByUserID(userID string) (*entity.Employee, error) {
	for _, e := range r.byID {
		if e.UserID != nil && *e.UserID == userID {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *fakeEmployeeRepo) GetByFullName(firstName, lastName string) (*entity.Employee, error) {
	for _, e := range r.byID {
		if e.FirstName == firstName && e.LastName == lastName {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *fakeEmployeeRepo) List(limit, offset int) ([]*entity.Employee, error) {
	out := make([]*entity.Employee, 0, len(r.byID))
	for _, e := range r.byID {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}
func (r *fakeEmployeeRepo) Update(e *entity.Employee) error {
	cp := *e
	r.byID[e.ID] = &cp
	return nil
}

type fakeAccountRepo struct {
	byUserID map[string]*entity.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{byUserID: map[string]*entity.Account{}}
}

func (r *fakeAccountRepo) Create(a *entity.Account) error {
	cp := *a
	r.byUserID[a.UserID] = &cp
	return nil
}
func (r *fakeAccountRepo) GetByUserID(userID string) (*entity.Account, error) {
	a, ok := r.byUserID[userID]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}
func (r *fakeAccountRepo) GetByUsername(username string) (*entity.Account, error) {
	for _, a := range r.byUserID {
		if a.Username == username {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *fakeAccountRepo) Update(a *entity.Account) error {
	cp := *a
	r.byUserID[a.UserID] = &cp
	return nil
}
func (r *fakeAccountRepo) List(limit, offset int) ([]repository.AccountWithOwner, error) {
	return nil, nil
}

type fakeTxRunner struct {
	emps *fakeEmployeeRepo
	accs *fakeAccountRepo
}

func (tx *fakeTxRunner) RunOnboarding(ctx context.Context, fn func(repository.EmployeeRepository, repository.AccountRepository) error) error {
	return fn(tx.emps, tx.accs)
}

type fakeCredStore struct {
	persisted [][3]string // employeeName, username, plainPassword
}

func (s *fakeCredStore) Persist(employeeName, username, plainPassword string) {
	s.persisted = append(s.persisted, [3]string{employeeName, username, plainPassword})
}
func (s *fakeCredStore) Purge(username string) {}
func (s *fakeCredStore) Lookup(username string) (*entity.Credential, error) {
	return nil, nil
}

type fixture struct {
	uc     *employee.UseCase
	emps   *fakeEmployeeRepo
	accs   *fakeAccountRepo
	store  *fakeCredStore
	hasher *passhash.Hasher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	hasher, err := passhash.New("pepper-de-pruebas")
	require.NoError(t, err)
	emps := newFakeEmployeeRepo()
	accs := newFakeAccountRepo()
	store := &fakeCredStore{}
	uc := employee.NewUseCase(&fakeTxRunner{emps: emps, accs: accs}, emps, accs, hasher, store, logger.Nop())
	return &fixture{uc: uc, emps: emps, accs: accs, store: store, hasher: hasher}
}

func addRequest() dto.AddEmployeeRequest {
	return dto.AddEmployeeRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Gender:    "F",
		Age:       28,
		Position:  entity.PositionDeveloper,
		Category:  entity.CategoryPermanent,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Add
// ──────────────────────────────────────────────────────────────────────────────

func TestAdd_CreaEmpleadoConCuentaVinculada(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Add(context.Background(), addRequest())
	require.NoError(t, err)
	require.NotNil(t, resp)

	// Username con la convención {Apellido}_{Nombre}@{prefijo del id}
	wantPrefix := "Lovelace_Ada@" + resp.Employee.ID[:3]
	assert.Equal(t, wantPrefix, resp.Username)

	// La contraseña vuelve en texto plano una única vez y verifica
	// contra el hash almacenado.
	require.NotEmpty(t, resp.Password)
	account, err := f.accs.GetByUsername(resp.Username)
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.True(t, f.hasher.Verify(resp.Password, account.PasswordHash))
	assert.NotContains(t, account.PasswordHash, resp.Password, "el hash no contiene el texto plano")
	assert.Equal(t, entity.AccountActive, account.Status, "toda cuenta nace activa")

	// El empleado queda vinculado a la cuenta.
	stored, err := f.emps.GetByID(resp.Employee.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.NotNil(t, stored.UserID)
	assert.Equal(t, account.UserID, *stored.UserID)
	assert.NotEqual(t, stored.ID, account.UserID, "empleado y cuenta tienen identificadores distintos")
}

// Salario e impuesto se derivan de la posición, nunca del cliente.
func TestAdd_NominaPorPosicion(t *testing.T) {
	casos := []struct {
		position   string
		wantSalary string
		wantTax    string
	}{
		{entity.PositionDeveloper, "20000.00", "5000.00"},
		{entity.PositionManager, "30000.00", "10500.00"},
		{entity.PositionEmployee, "10000.00", "1500.00"},
		{entity.PositionAdmin, "10000.00", "1500.00"},
	}
	for _, c := range casos {
		t.Run(c.position, func(t *testing.T) {
			f := newFixture(t)
			in := addRequest()
			in.Position = c.position

			resp, err := f.uc.Add(context.Background(), in)
			require.NoError(t, err)
			assert.Equal(t, c.wantSalary, resp.Employee.Salary)
			assert.Equal(t, c.wantTax, resp.Employee.Tax)
		})
	}
}

func TestAdd_EscribeElSideStore(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Add(context.Background(), addRequest())
	require.NoError(t, err)

	require.Len(t, f.store.persisted, 1)
	assert.Equal(t, "Ada Lovelace", f.store.persisted[0][0])
	assert.Equal(t, resp.Username, f.store.persisted[0][1])
	assert.Equal(t, resp.Password, f.store.persisted[0][2])
}

func TestAdd_PosicionFueraDelEnum(t *testing.T) {
	f := newFixture(t)
	in := addRequest()
	in.Position = "cto"

	_, err := f.uc.Add(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrUnknownPosition)
	assert.Empty(t, f.emps.byID)
	assert.Empty(t, f.store.persisted)
}

func TestAdd_NombreCompletoDuplicado(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Add(context.Background(), addRequest())
	require.NoError(t, err)

	_, err = f.uc.Add(context.Background(), addRequest())
	assert.ErrorIs(t, err, domain.ErrEmployeeExists)
	assert.Len(t, f.store.persisted, 1, "el duplicado no debe emitir credenciales")
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_CambioDeNombreRegeneraUsername(t *testing.T) {
	f := newFixture(t)
	added, err := f.uc.Add(context.Background(), addRequest())
	require.NoError(t, err)

	resp, err := f.uc.Update(dto.UpdateEmployeeRequest{
		EmployeeID: added.Employee.ID,
		FirstName:  "Augusta",
		LastName:   "King",
		Gender:     "F",
		Age:        29,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Account)
	assert.True(t, strings.HasPrefix(resp.Account.Username, "King_Augusta@"),
		"el username debe regenerarse con el nombre nuevo, obtuve %q", resp.Account.Username)
}

func TestUpdate_SinCambioDeNombreConservaUsername(t *testing.T) {
	f := newFixture(t)
	added, err := f.uc.Add(context.Background(), addRequest())
	require.NoError(t, err)

	resp, err := f.uc.Update(dto.UpdateEmployeeRequest{
		EmployeeID: added.Employee.ID,
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Gender:     "F",
		Age:        29,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Account)
	assert.Equal(t, added.Username, resp.Account.Username)
	assert.Equal(t, 29, resp.Age)
}

func TestUpdate_EmpleadoInexistente(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Update(dto.UpdateEmployeeRequest{
		EmployeeID: "99999999-9999-9999-9999-999999999999",
		FirstName:  "Nadie",
		LastName:   "Aquí",
		Gender:     "X",
		Age:        40,
	})
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByUserID_DevuelveElDuenoDeLaCuenta(t *testing.T) {
	f := newFixture(t)
	added, err := f.uc.Add(context.Background(), addRequest())
	require.NoError(t, err)
	require.NotNil(t, added.Employee.Account)

	resp, err := f.uc.GetByUserID(added.Employee.Account.UserID)
	require.NoError(t, err)
	assert.Equal(t, added.Employee.ID, resp.ID)
}

func TestGetByID_Inexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.GetByID("no-existe")
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}
