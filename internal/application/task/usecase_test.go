package task_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/staff-api/internal/application/dto"
	"github.com/tu-usuario/staff-api/internal/application/task"
	"github.com/tu-usuario/staff-api/internal/domain"
	"github.com/tu-usuario/staff-api/internal/domain/entity"
	"github.com/tu-usuario/staff-api/internal/domain/repository"
)

const (
	managerID   = "11111111-1111-1111-1111-111111111111"
	developerID = "33333333-3333-3333-3333-333333333333"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeTaskRepo struct {
	tasks       map[string]*entity.Task
	assignments []*entity.EmployeeTask
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[string]*entity.Task{}}
}

func (r *fakeTaskRepo) CreateTask(t *entity.Task) error {
	cp := *t
	r.tasks[t.ID] = &cp
	return nil
}
func (r *fakeTaskRepo) CreateAssignment(et *entity.EmployeeTask) error {
	cp := *et
	r.assignments = append(r.assignments, &cp)
	return nil
}
func (r *fakeTaskRepo) GetTask(id string) (*entity.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}
func (r *fakeTaskRepo) UpdateTask(t *entity.Task) error {
	cp := *t
	r.tasks[t.ID] = &cp
	return nil
}
func (r *fakeTaskRepo) ListAssignedTo(employeeID string) ([]repository.AssignedTask, error) {
	var out []repository.AssignedTask
	for _, a := range r.assignments {
		if a.AssignedToID != employeeID {
			continue
		}
		t := r.tasks[a.TaskID]
		if t.Status == entity.TaskCompleted {
			continue
		}
		out = append(out, repository.AssignedTask{
			TaskID:     t.ID,
			TaskName:   t.Name,
			Status:     t.Status,
			AssignedBy: "Quien Asignó",
		})
	}
	return out, nil
}
func (r *fakeTaskRepo) ListAssignedBy(employeeID string) ([]repository.DelegatedTask, error) {
	var out []repository.DelegatedTask
	for _, a := range r.assignments {
		if a.AssignedByID != employeeID {
			continue
		}
		t := r.tasks[a.TaskID]
		out = append(out, repository.DelegatedTask{
			TaskID:     t.ID,
			TaskName:   t.Name,
			Status:     t.Status,
			AssignedTo: "Quien Recibió",
		})
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	byID map[string]*entity.Employee
}

func (r *fakeEmployeeRepo) Create(e *entity.Employee) error { return nil }
func (r *fakeEmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	return r.byID[id], nil
}
func (r *fakeEmployeeRepo) GetByUserID(userID string) (*entity.Employee, error) { return nil, nil }
func (r *fakeEmployeeRepo) GetByFullName(firstName, lastName string) (*entity.Employee, error) {
	return nil, nil
}
func (r *fakeEmployeeRepo) List(limit, offset int) ([]*entity.Employee, error) { return nil, nil }
func (r *fakeEmployeeRepo) Update(e *entity.Employee) error                    { return nil }

// fakeTxRunner pasa el mismo repo sin transacción real.
type fakeTxRunner struct {
	repo *fakeTaskRepo
}

func (tx *fakeTxRunner) RunAssignment(ctx context.Context, fn func(repository.TaskRepository) error) error {
	return fn(tx.repo)
}

func newUseCase() (*task.UseCase, *fakeTaskRepo) {
	taskRepo := newFakeTaskRepo()
	empRepo := &fakeEmployeeRepo{byID: map[string]*entity.Employee{
		developerID: {ID: developerID, FirstName: "Dev", LastName: "Uno", Position: entity.PositionDeveloper},
		managerID:   {ID: managerID, FirstName: "Man", LastName: "Ager", Position: entity.PositionManager},
	}}
	return task.NewUseCase(&fakeTxRunner{repo: taskRepo}, taskRepo, empRepo), taskRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Assign
// ──────────────────────────────────────────────────────────────────────────────

func TestAssign_CreaTareaPendienteYAsignacion(t *testing.T) {
	uc, repo := newUseCase()

	et, err := uc.Assign(context.Background(), managerID, dto.AssignTaskRequest{
		TaskName:     "Revisar el despliegue",
		AssignedToID: developerID,
	})
	require.NoError(t, err)
	require.NotNil(t, et)
	assert.Equal(t, developerID, et.AssignedToID)
	assert.Equal(t, managerID, et.AssignedByID)

	created, err := repo.GetTask(et.TaskID)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "Revisar el despliegue", created.Name)
	assert.Equal(t, entity.TaskPending, created.Status, "toda tarea nace pendiente")
	require.Len(t, repo.assignments, 1)
}

func TestAssign_ReceptorInexistente(t *testing.T) {
	uc, repo := newUseCase()

	_, err := uc.Assign(context.Background(), managerID, dto.AssignTaskRequest{
		TaskName:     "Tarea huérfana",
		AssignedToID: "99999999-9999-9999-9999-999999999999",
	})
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
	assert.Empty(t, repo.tasks, "no debe quedar tarea creada")
	assert.Empty(t, repo.assignments)
}

func TestAssign_SinEmployeeIDDelAsignador(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.Assign(context.Background(), "", dto.AssignTaskRequest{
		TaskName:     "Tarea sin dueño",
		AssignedToID: developerID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo de vida: pending → started → completed
// ──────────────────────────────────────────────────────────────────────────────

func TestCicloDeVida_StartYComplete(t *testing.T) {
	uc, repo := newUseCase()

	et, err := uc.Assign(context.Background(), managerID, dto.AssignTaskRequest{
		TaskName:     "Migrar la base",
		AssignedToID: developerID,
	})
	require.NoError(t, err)

	require.NoError(t, uc.Start(et.TaskID))
	created, _ := repo.GetTask(et.TaskID)
	assert.Equal(t, entity.TaskStarted, created.Status)

	require.NoError(t, uc.Complete(et.TaskID))
	created, _ = repo.GetTask(et.TaskID)
	assert.Equal(t, entity.TaskCompleted, created.Status)
}

// Una tarea completada es terminal: ni reabrirse ni completarse dos veces.
func TestCicloDeVida_CompletadaEsTerminal(t *testing.T) {
	uc, _ := newUseCase()

	et, err := uc.Assign(context.Background(), managerID, dto.AssignTaskRequest{
		TaskName:     "Tarea terminada",
		AssignedToID: developerID,
	})
	require.NoError(t, err)
	require.NoError(t, uc.Complete(et.TaskID))

	assert.ErrorIs(t, uc.Complete(et.TaskID), domain.ErrTaskAlreadyComplete)
	assert.ErrorIs(t, uc.Start(et.TaskID), domain.ErrTaskAlreadyComplete)
}

func TestTransiciones_TareaInexistente(t *testing.T) {
	uc, _ := newUseCase()
	assert.ErrorIs(t, uc.Start("no-existe"), domain.ErrTaskNotFound)
	assert.ErrorIs(t, uc.Complete("no-existe"), domain.ErrTaskNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Bandejas
// ──────────────────────────────────────────────────────────────────────────────

// La bandeja del receptor excluye las completadas; la lista de quien
// delegó las conserva todas.
func TestBandejas_CompletadasSoloEnDelegadas(t *testing.T) {
	uc, _ := newUseCase()

	et1, err := uc.Assign(context.Background(), managerID, dto.AssignTaskRequest{
		TaskName: "Pendiente", AssignedToID: developerID,
	})
	require.NoError(t, err)
	_, err = uc.Assign(context.Background(), managerID, dto.AssignTaskRequest{
		TaskName: "Sigue pendiente", AssignedToID: developerID,
	})
	require.NoError(t, err)
	require.NoError(t, uc.Complete(et1.TaskID))

	inbox, err := uc.ListFor(developerID)
	require.NoError(t, err)
	require.Len(t, inbox, 1, "la bandeja no incluye completadas")
	assert.Equal(t, "Sigue pendiente", inbox[0].TaskName)
	assert.Equal(t, "Quien Asignó", inbox[0].AssignedBy,
		"la bandeja muestra el nombre de quien asignó")

	delegated, err := uc.ListBy(managerID)
	require.NoError(t, err)
	assert.Len(t, delegated, 2, "las delegadas incluyen también las completadas")
}

func TestBandejas_EmployeeIDVacio(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.ListFor("")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.ListBy("")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
