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

	"github.com/fiorellalancissi/Vittorea/internal/application/analytics"
	"github.com/fiorellalancissi/Vittorea/internal/application/auth"
	"github.com/fiorellalancissi/Vittorea/internal/application/inventory"
	"github.com/fiorellalancissi/Vittorea/internal/application/orders"
	"github.com/fiorellalancissi/Vittorea/internal/application/usecase"
	"github.com/fiorellalancissi/Vittorea/internal/infrastructure/memory"
	"github.com/fiorellalancissi/Vittorea/internal/infrastructure/payments"
	infrapdf "github.com/fiorellalancissi/Vittorea/internal/infrastructure/pdf"
	httpRouter "github.com/fiorellalancissi/Vittorea/internal/interfaces/http"
	"github.com/fiorellalancissi/Vittorea/pkg/config"
	"github.com/fiorellalancissi/Vittorea/pkg/logger"
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

	// Ledger en memoria: las colecciones nacen vacías y viven lo que
	// dure el proceso.
	store := memory.NewStore(cfg.Metrics.ReinvestmentPercent)

	catalogUC := usecase.NewCatalogUseCase(store.Brands, store.Lines, store.Volumes)
	productUC := usecase.NewProductUseCase(store.Products, store.Brands, store.Lines, store.Volumes, catalogUC)
	clientUC := usecase.NewClientUseCase(store.Clients)
	feedbackUC := usecase.NewFeedbackUseCase(store.Feedbacks)
	movementUC := inventory.NewMovementUseCase(store.Movements, store.Products, store.Orders)
	orderUC := orders.NewOrderUseCase(store.Clients, store.Products, store.Orders, movementUC)
	metricsUC := analytics.NewMetricsUseCase(
		store.Products, store.Clients, store.Movements, store.Orders, store.Feedbacks, store.Settings,
	)

	var verifier auth.CredentialVerifier
	if cfg.Admin.PasswordHash != "" {
		verifier = auth.BcryptVerifier{
			Username:     cfg.Admin.Username,
			PasswordHash: cfg.Admin.PasswordHash,
		}
	} else {
		log.Warn().Msg("ADMIN_PASSWORD_HASH no definido, usando credencial en claro")
		verifier = auth.PlainVerifier{
			Username: cfg.Admin.Username,
			Password: cfg.Admin.Password,
		}
	}
	authUC := auth.NewAuthUseCase(verifier, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	paymentGateway := payments.NewMercadoPagoService(cfg.MP.AccessToken, cfg.MP.BaseURL, cfg.MP.BackURL)
	reportGenerator := infrapdf.NewMarotoReportGenerator()

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
		Title:    "Vittorea API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		ProductUC:       productUC,
		ClientUC:        clientUC,
		CatalogUC:       catalogUC,
		FeedbackUC:      feedbackUC,
		MovementUC:      movementUC,
		OrderUC:         orderUC,
		MetricsUC:       metricsUC,
		ReportGenerator: reportGenerator,
		PaymentGateway:  paymentGateway,
		JWTSecret:       cfg.JWT.Secret,
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
