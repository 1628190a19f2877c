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
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jhoicas/stock-api/docs"
	"github.com/jhoicas/stock-api/internal/application/analytics"
	"github.com/jhoicas/stock-api/internal/application/auth"
	"github.com/jhoicas/stock-api/internal/application/i18n"
	"github.com/jhoicas/stock-api/internal/application/inventory"
	"github.com/jhoicas/stock-api/internal/application/ports"
	"github.com/jhoicas/stock-api/internal/application/report"
	"github.com/jhoicas/stock-api/internal/application/usecase"
	"github.com/jhoicas/stock-api/internal/infrastructure/cache"
	"github.com/jhoicas/stock-api/internal/infrastructure/metrics"
	"github.com/jhoicas/stock-api/internal/infrastructure/migration"
	infrapdf "github.com/jhoicas/stock-api/internal/infrastructure/pdf"
	"github.com/jhoicas/stock-api/internal/infrastructure/postgres"
	"github.com/jhoicas/stock-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/stock-api/internal/interfaces/http"
	"github.com/jhoicas/stock-api/pkg/config"
	"github.com/jhoicas/stock-api/pkg/logger"
)

// @title                       Stock Management API
// @version                     1.0
// @description                 Productos, proveedores, categorías y un kardex transaccional de movimientos de stock.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx := context.Background()

	if cfg.Migrations.AutoMigrate {
		m, err := migration.New(cfg.DB.ConnectionString(), log)
		if err != nil {
			log.Fatal().Err(err).Msg("migrations")
		}
		if err := m.Up(); err != nil {
			log.Fatal().Err(err).Msg("migrations")
		}
		_ = m.Close()
	}

	pool, err := postgres.NewPool(ctx, cfg.DB, cfg.App.Name)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	appMetrics := metrics.New()

	// Caché de traducciones: Redis si está configurado, en memoria si no.
	var translationCache ports.Cache = cache.NewMemory()
	if cfg.Redis.Enabled() {
		rc, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unavailable, using in-memory cache")
		} else {
			defer rc.Close()
			translationCache = rc
		}
	}

	// Las imágenes de producto son opcionales; sin bucket el endpoint de subida responde 503.
	var images ports.ImageStore
	if cfg.Storage.Enabled() {
		store, err := storage.NewS3ImageStore(ctx, cfg.Storage)
		if err != nil {
			log.Fatal().Err(err).Msg("image storage")
		}
		images = store
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	movementUC := inventory.NewMovementUseCase(txRunner, userRepo, movementRepo, log, appMetrics)
	threshold := int64(cfg.Report.LowStockThreshold)
	reportUC := report.NewUseCase(productRepo, reportRepo, threshold, infrapdf.NewReportGenerator(cfg.App.Name))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    4 << 20,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(httpRouter.Metrics(appMetrics))
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI: http://localhost:<puerto>/docs
	docs.SwaggerInfo.Title = cfg.App.Name
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Stock Management API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		UserUC:         usecase.NewUserUseCase(userRepo),
		ProductUC:      usecase.NewProductUseCase(productRepo, movementRepo, categoryRepo, supplierRepo, images),
		CategoryUC:     usecase.NewCategoryUseCase(categoryRepo),
		SupplierUC:     usecase.NewSupplierUseCase(supplierRepo, productRepo),
		MovementUC:     movementUC,
		ReportUC:       reportUC,
		SearchUC:       usecase.NewSearchUseCase(productRepo, movementRepo),
		DashboardUC:    analytics.NewDashboardUseCase(productRepo, movementRepo, reportRepo, threshold),
		Translations:   i18n.NewService(i18n.Locales(), translationCache, cfg.I18n.CacheTTL, log),
		MetricsHandler: appMetrics.Handler(),
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
