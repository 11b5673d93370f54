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

	"github.com/clubtenis/tienda-api/internal/application/auth"
	"github.com/clubtenis/tienda-api/internal/application/cart"
	"github.com/clubtenis/tienda-api/internal/application/inventory"
	"github.com/clubtenis/tienda-api/internal/application/reporting"
	"github.com/clubtenis/tienda-api/internal/application/usecase"
	"github.com/clubtenis/tienda-api/internal/infrastructure/memorystore"
	infrapdf "github.com/clubtenis/tienda-api/internal/infrastructure/pdf"
	"github.com/clubtenis/tienda-api/internal/infrastructure/postgres"
	"github.com/clubtenis/tienda-api/internal/infrastructure/redisstore"
	httpRouter "github.com/clubtenis/tienda-api/internal/interfaces/http"
	"github.com/clubtenis/tienda-api/pkg/config"
	"github.com/clubtenis/tienda-api/pkg/logger"
)

func main() {
	startedAt := time.Now()

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

	// Repositorios
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	lossRepo := postgres.NewLossRepository(pool)
	inquiryRepo := postgres.NewInquiryRepository(pool)
	resetRepo := postgres.NewPasswordResetRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	reportSource := postgres.NewReportSource(pool)

	// Redis opcional: sin REDIS_ADDR el carrito vive en memoria y los
	// reportes no se cachean.
	var cartStore cart.Store = memorystore.NewCartStore()
	var reportCache reporting.Cache = reporting.NoopCache{}
	if cfg.Redis.Addr != "" {
		client, err := redisstore.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("conexión a Redis")
		}
		defer client.Close()
		cartStore = redisstore.NewCartStore(client)
		reportCache = redisstore.NewReportCache(client)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("Redis conectado")
	} else {
		log.Warn().Msg("REDIS_ADDR no configurado: carrito en memoria, reportes sin cache")
	}

	// Casos de uso
	authUC := auth.NewAuthUseCase(userRepo, resetRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	purchaseUC := usecase.NewPurchaseUseCase(purchaseRepo, productRepo, userRepo)
	inquiryUC := usecase.NewInquiryUseCase(inquiryRepo, userRepo)
	registerLossUC := inventory.NewRegisterLossUseCase(txRunner, lossRepo, productRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	reportUC := reporting.NewReportUseCase(reportSource, reportCache, pdfGenerator)

	cartSvc := cart.NewService(cartStore, productRepo)

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
		Title:    "Tienda Club API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	metricsHandler := httpRouter.NewMetricsHandler(startedAt)

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ProductUC:    productUC,
		UserUC:       userUC,
		PurchaseUC:   purchaseUC,
		InquiryUC:    inquiryUC,
		RegisterLoss: registerLossUC,
		ReportUC:     reportUC,
		CartSvc:      cartSvc,
		Metrics:      metricsHandler,
		JWTSecret:    cfg.JWT.Secret,
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
