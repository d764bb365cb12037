package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/scorte-pro/internal/application/auth"
	"github.com/tu-usuario/scorte-pro/internal/application/consumption"
	"github.com/tu-usuario/scorte-pro/internal/application/report"
	"github.com/tu-usuario/scorte-pro/internal/application/usage"
	"github.com/tu-usuario/scorte-pro/internal/application/usecase"
	domainreport "github.com/tu-usuario/scorte-pro/internal/domain/report"
	"github.com/tu-usuario/scorte-pro/internal/domain/repository"
	"github.com/tu-usuario/scorte-pro/internal/infrastructure/excel"
	"github.com/tu-usuario/scorte-pro/internal/infrastructure/memory"
	infrapdf "github.com/tu-usuario/scorte-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/scorte-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/scorte-pro/internal/interfaces/http"
	"github.com/tu-usuario/scorte-pro/pkg/config"
	"github.com/tu-usuario/scorte-pro/pkg/logger"
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
		Str("storage", cfg.App.StorageDriver).
		Bool("multiTenant", cfg.App.MultiTenant).
		Msg("iniciando aplicación")

	var (
		productRepo repository.ProductRepository
		usageRepo   repository.UsageRepository
		userRepo    repository.UserRepository
		txRunner    repository.TxRunner
	)
	switch cfg.App.StorageDriver {
	case "memory":
		store := memory.NewStore()
		productRepo = memory.NewProductRepository(store)
		usageRepo = memory.NewUsageRepository(store)
		userRepo = memory.NewUserRepository(store)
		txRunner = memory.NewTxRunner(store)
	default:
		pool, err := postgres.NewPool(context.Background(), cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		productRepo = postgres.NewProductRepository(pool)
		usageRepo = postgres.NewUsageRepository(pool)
		userRepo = postgres.NewUserRepository(pool)
		txRunner = postgres.NewTxRunner(pool)
	}

	productUC := usecase.NewProductUseCase(productRepo, txRunner)
	consumeUC := consumption.NewUseCase(txRunner)
	usageUC := usage.NewUseCase(usageRepo, productRepo)
	reportUC := report.NewUseCase(usageRepo, productRepo, domainreport.Options{
		IncludeUsageInShortfall: cfg.Report.IncludeUsageInShortfall,
	})
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Scorte Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		ConsumeUC:   consumeUC,
		UsageUC:     usageUC,
		ReportUC:    reportUC,
		AuthUC:      authUC,
		Excel:       excel.NewReportWriter(),
		PDF:         infrapdf.NewReportWriter(),
		JWTSecret:   cfg.JWT.Secret,
		MultiTenant: cfg.App.MultiTenant,
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
