package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fiorellalancissi/Vittorea/internal/application/analytics"
	"github.com/fiorellalancissi/Vittorea/internal/application/auth"
	"github.com/fiorellalancissi/Vittorea/internal/application/inventory"
	"github.com/fiorellalancissi/Vittorea/internal/application/orders"
	"github.com/fiorellalancissi/Vittorea/internal/application/ports"
	"github.com/fiorellalancissi/Vittorea/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	ProductUC       *usecase.ProductUseCase
	ClientUC        *usecase.ClientUseCase
	CatalogUC       *usecase.CatalogUseCase
	FeedbackUC      *usecase.FeedbackUseCase
	MovementUC      *inventory.MovementUseCase
	OrderUC         *orders.OrderUseCase
	MetricsUC       *analytics.MetricsUseCase
	ReportGenerator analytics.ReportGenerator
	PaymentGateway  ports.PaymentGateway
	JWTSecret       string
}

// Router registra las rutas de la API: el storefront es público, el
// back-office vive bajo /api/admin detrás del Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Storefront (público)
	productHandler := NewProductHandler(deps.ProductUC)
	api.Get("/products", productHandler.Catalog)
	api.Get("/products/:id", productHandler.GetByID)

	orderHandler := NewOrderHandler(deps.OrderUC)
	api.Post("/orders", orderHandler.Create)
	api.Get("/orders/:id", orderHandler.Status)

	paymentHandler := NewPaymentHandler(deps.OrderUC, deps.PaymentGateway)
	api.Post("/payments/preference", paymentHandler.CreatePreference)

	// Back-office (requiere Bearer Token)
	admin := api.Group("/admin", AuthMiddleware(deps.JWTSecret))

	products := admin.Group("/products")
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	admin.Get("/brands", catalogHandler.Brands)
	admin.Delete("/brands/:id", catalogHandler.DeleteBrand)
	admin.Get("/lines", catalogHandler.Lines)
	admin.Get("/volumes", catalogHandler.Volumes)

	feedbackHandler := NewFeedbackHandler(deps.FeedbackUC)
	clientHandler := NewClientHandler(deps.ClientUC, deps.OrderUC, deps.FeedbackUC)
	clients := admin.Group("/clients")
	clients.Get("/", clientHandler.List)
	clients.Post("/", clientHandler.Create)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)
	clients.Get("/:id/orders", clientHandler.Orders)
	clients.Get("/:id/feedbacks", clientHandler.Feedbacks)

	inventoryHandler := NewInventoryHandler(deps.MovementUC)
	movements := admin.Group("/movements")
	movements.Get("/", inventoryHandler.List)
	movements.Post("/", inventoryHandler.Register)
	movements.Post("/:id/confirm-transfer", inventoryHandler.ConfirmTransfer)
	movements.Post("/:id/confirm-delivery", inventoryHandler.ConfirmDelivery)
	movements.Delete("/:id", inventoryHandler.Delete)

	adminOrders := admin.Group("/orders")
	adminOrders.Get("/", orderHandler.List)
	adminOrders.Post("/", orderHandler.Create)
	adminOrders.Get("/:id", orderHandler.GetByID)
	adminOrders.Put("/:id", orderHandler.Update)

	feedbacks := admin.Group("/feedbacks")
	feedbacks.Get("/", feedbackHandler.List)
	feedbacks.Post("/", feedbackHandler.Create)
	feedbacks.Put("/:id", feedbackHandler.Update)
	feedbacks.Delete("/:id", feedbackHandler.Delete)

	metricsHandler := NewMetricsHandler(deps.MetricsUC, deps.ReportGenerator)
	metrics := admin.Group("/metrics")
	metrics.Get("/summary", metricsHandler.Stats)
	metrics.Get("/sales-by-month", metricsHandler.SalesByMonth)
	metrics.Get("/ranking", metricsHandler.Ranking)
	metrics.Get("/rotation", metricsHandler.Rotation)
	metrics.Get("/financial", metricsHandler.Financial)
	metrics.Get("/satisfaction", metricsHandler.Satisfaction)
	metrics.Put("/reinvestment", metricsHandler.SetReinvestment)
	metrics.Get("/report", metricsHandler.Report)
}
