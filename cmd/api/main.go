package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/staff-api/internal/application/account"
	"github.com/tu-usuario/staff-api/internal/application/auth"
	"github.com/tu-usuario/staff-api/internal/application/credentials"
	"github.com/tu-usuario/staff-api/internal/application/employee"
	appreport "github.com/tu-usuario/staff-api/internal/application/report"
	"github.com/tu-usuario/staff-api/internal/application/task"
	"github.com/tu-usuario/staff-api/internal/infrastructure/credfile"
	"github.com/tu-usuario/staff-api/internal/infrastructure/postgres"
	infrareport "github.com/tu-usuario/staff-api/internal/infrastructure/report"
	httpRouter "github.com/tu-usuario/staff-api/internal/interfaces/http"
	"github.com/tu-usuario/staff-api/pkg/config"
	"github.com/tu-usuario/staff-api/pkg/jwt"
	"github.com/tu-usuario/staff-api/pkg/logger"
	"github.com/tu-usuario/staff-api/pkg/passhash"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	hasher, err := passhash.New(cfg.Auth.Pepper)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar hasher de contraseñas")
	}

	jwtCfg := jwt.Config{
		Secret:   cfg.JWT.Secret,
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
		ExpHours: cfg.JWT.ExpHours,
	}

	employeeRepo := postgres.NewEmployeeRepository(pool)
	accountRepo := postgres.NewAccountRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	credStore := credfile.New(cfg.Credentials.Dir, log)

	authUC := auth.NewUseCase(accountRepo, employeeRepo, hasher, credStore, jwtCfg)
	employeeUC := employee.NewUseCase(txRunner, employeeRepo, accountRepo, hasher, credStore, log)
	accountUC := account.NewUseCase(accountRepo)
	taskUC := task.NewUseCase(txRunner, taskRepo, employeeRepo)
	credentialUC := credentials.NewUseCase(credStore)
	reportUC := appreport.NewUseCase(
		employeeRepo,
		infrareport.NewMarotoRosterGenerator(),
		infrareport.NewEtreeRosterExporter(),
	)

	// Superadmin inicial: su contraseña aleatoria queda en el side-store
	// de credenciales para el primer arranque.
	seeder := postgres.NewSeeder(txRunner, employeeRepo, hasher, credStore, log)
	if err := seeder.SeedSuperAdmin(ctx); err != nil {
		log.Fatal().Err(err).Msg("seed del superadmin")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Staff API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		EmployeeUC:   employeeUC,
		AccountUC:    accountUC,
		TaskUC:       taskUC,
		CredentialUC: credentialUC,
		ReportUC:     reportUC,
		JWTConfig:    jwtCfg,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
