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

	"github.com/jhoicas/Avesta-api/internal/application/auth"
	"github.com/jhoicas/Avesta-api/internal/application/ports"
	"github.com/jhoicas/Avesta-api/internal/application/usecase"
	"github.com/jhoicas/Avesta-api/internal/domain/softdelete"
	"github.com/jhoicas/Avesta-api/internal/infrastructure/firebase"
	infrapdf "github.com/jhoicas/Avesta-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Avesta-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Avesta-api/internal/interfaces/http"
	"github.com/jhoicas/Avesta-api/pkg/config"
	"github.com/jhoicas/Avesta-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Service: cfg.App.Name,
		Env:     cfg.App.Env,
		Level:   "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	store := firebase.NewStore(cfg.Firebase.DatabaseURL, cfg.Firebase.AuthToken)

	// PostgreSQL es opcional: sin DB la API funciona sin archivo de
	// snapshots ni bitácora.
	var archive ports.SnapshotArchive
	var audit ports.AuditLog
	if cfg.DB.Enabled() {
		ctx := context.Background()
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		archive = postgres.NewSnapshotRepository(pool)
		audit = postgres.NewAuditRepository(pool)
	} else {
		log.Warn().Msg("DB no configurada: snapshots y bitácora deshabilitados")
	}

	ledgerCfg := usecase.LedgerConfig{
		DefaultYear:      cfg.Ledger.DefaultYear,
		NotificationDays: cfg.Ledger.NotificationDays,
	}

	authUC := auth.NewAuthUseCase(store, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	reportingUC := usecase.NewReportingUseCase(store, ledgerCfg)
	exportUC := usecase.NewExportUseCase(reportingUC, infrapdf.NewMarotoReportGenerator())
	recordsUC := usecase.NewRecordsUseCase(store, audit, softdelete.New(), ledgerCfg)
	trashUC := usecase.NewTrashUseCase(store, ledgerCfg)
	syncUC := usecase.NewSyncUseCase(store, archive, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Avesta API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ReportingUC: reportingUC,
		ExportUC:    exportUC,
		RecordsUC:   recordsUC,
		TrashUC:     trashUC,
		SyncUC:      syncUC,
		JWTSecret:   cfg.JWT.Secret,
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
