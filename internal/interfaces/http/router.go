package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/scorte-pro/internal/application/auth"
	"github.com/tu-usuario/scorte-pro/internal/application/consumption"
	"github.com/tu-usuario/scorte-pro/internal/application/report"
	"github.com/tu-usuario/scorte-pro/internal/application/usage"
	"github.com/tu-usuario/scorte-pro/internal/application/usecase"
	"github.com/tu-usuario/scorte-pro/internal/infrastructure/excel"
	"github.com/tu-usuario/scorte-pro/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC *usecase.ProductUseCase
	ConsumeUC *consumption.UseCase
	UsageUC   *usage.UseCase
	ReportUC  *report.UseCase
	AuthUC    *auth.UseCase
	Excel     *excel.ReportWriter
	PDF       *pdf.ReportWriter

	JWTSecret string
	// MultiTenant activa el middleware de auth en las rutas de datos y el
	// scoping por usuario. En false la API queda abierta (despliegue original
	// de un solo inquilino).
	MultiTenant bool
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)

	data := api.Group("/")
	if deps.MultiTenant {
		data = api.Group("/", AuthMiddleware(deps.JWTSecret))
	}

	// Prodotti
	products := data.Group("/prodotti")
	productHandler := NewProductHandler(deps.ProductUC, deps.ConsumeUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Post("/:id/utilizza", productHandler.Consume)

	// Utilizzi
	usages := data.Group("/utilizzi")
	usageHandler := NewUsageHandler(deps.UsageUC)
	usages.Get("/", usageHandler.List)
	usages.Delete("/", usageHandler.Clear)

	// Export
	export := data.Group("/export")
	exportHandler := NewExportHandler(deps.ReportUC, deps.Excel, deps.PDF)
	export.Get("/excel", exportHandler.Excel)
	export.Get("/pdf", exportHandler.PDF)
}
