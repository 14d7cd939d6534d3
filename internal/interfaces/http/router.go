package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/staff-api/internal/application/account"
	"github.com/tu-usuario/staff-api/internal/application/auth"
	"github.com/tu-usuario/staff-api/internal/application/credentials"
	"github.com/tu-usuario/staff-api/internal/application/employee"
	"github.com/tu-usuario/staff-api/internal/application/report"
	"github.com/tu-usuario/staff-api/internal/application/task"
	"github.com/tu-usuario/staff-api/internal/domain/policy"
	"github.com/tu-usuario/staff-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	EmployeeUC   *employee.UseCase
	AccountUC    *account.UseCase
	TaskUC       *task.UseCase
	CredentialUC *credentials.UseCase
	ReportUC     *report.UseCase
	JWTConfig    jwt.Config
}

// Router registra las rutas de la API. Cada grupo protegido declara su
// política; el 401 del AuthMiddleware siempre precede al 403 de RequirePolicy.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login público; cambio de contraseña para cualquier autenticado
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/change-password", AuthMiddleware(deps.JWTConfig), authHandler.ChangePassword)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTConfig))

	// Employees
	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	reportHandler := NewReportHandler(deps.ReportUC)
	employees.Post("/", RequirePolicy(policy.RequireAdmin), employeeHandler.Add)
	employees.Put("/", RequirePolicy(policy.RequireManager), employeeHandler.Update)
	employees.Get("/", RequirePolicy(policy.RequireEmployee), employeeHandler.List)
	employees.Get("/report.pdf", RequirePolicy(policy.RequireManager), reportHandler.RosterPDF)
	employees.Get("/export.xml", RequirePolicy(policy.RequireAdmin), reportHandler.RosterXML)
	employees.Get("/by-user/:userId", RequirePolicy(policy.RequireEmployee), employeeHandler.GetByUserID)
	employees.Get("/:id", RequirePolicy(policy.RequireEmployee), employeeHandler.GetByID)

	// Accounts
	accounts := protected.Group("/accounts")
	accountHandler := NewAccountHandler(deps.AccountUC)
	accounts.Get("/", RequirePolicy(policy.RequireAdmin), accountHandler.List)
	accounts.Get("/:id", RequirePolicy(policy.RequireManager), accountHandler.GetByID)
	accounts.Put("/:id/toggle-status", RequirePolicy(policy.RequireAdmin), accountHandler.ToggleStatus)

	// Tasks
	tasks := protected.Group("/tasks")
	taskHandler := NewTaskHandler(deps.TaskUC)
	tasks.Post("/", RequirePolicy(policy.RequireManager), taskHandler.Assign)
	tasks.Get("/assigned-to-me", RequirePolicy(policy.RequireEmployee), taskHandler.AssignedToMe)
	tasks.Get("/assigned-by-me", RequirePolicy(policy.RequireManager), taskHandler.AssignedByMe)
	tasks.Put("/:taskId/start", RequirePolicy(policy.RequireDeveloper), taskHandler.Start)
	tasks.Put("/:taskId/complete", RequirePolicy(policy.RequireDeveloper), taskHandler.Complete)

	// Credenciales generadas (side-store): solo admin
	creds := protected.Group("/credentials", RequirePolicy(policy.RequireAdmin))
	credentialHandler := NewCredentialHandler(deps.CredentialUC)
	creds.Get("/:username", credentialHandler.GetByUsername)
}
