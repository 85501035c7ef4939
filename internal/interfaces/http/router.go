package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/waleed-alfaifi/invoices-api/internal/application/auth"
	"github.com/waleed-alfaifi/invoices-api/internal/application/invoicing"
	"github.com/waleed-alfaifi/invoices-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.UseCase
	InvoiceUC *invoicing.UseCase
	Log       *logger.Logger
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (signup y login públicos, me protegido)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	authGroup.Post("/signup", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Invoices (protegido)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.Log)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:invoiceId", invoiceHandler.GetByID)
	invoices.Put("/:invoiceId", invoiceHandler.Update)
	invoices.Delete("/:invoiceId", invoiceHandler.Delete)
}
