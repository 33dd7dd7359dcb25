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
	"github.com/swaggo/swag"

	_ "github.com/jhoicas/stockops-api/docs"
	appanalytics "github.com/jhoicas/stockops-api/internal/application/analytics"
	"github.com/jhoicas/stockops-api/internal/application/auth"
	"github.com/jhoicas/stockops-api/internal/application/inventory"
	"github.com/jhoicas/stockops-api/internal/application/usecase"
	inframail "github.com/jhoicas/stockops-api/internal/infrastructure/mail"
	infrapdf "github.com/jhoicas/stockops-api/internal/infrastructure/pdf"
	"github.com/jhoicas/stockops-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/stockops-api/internal/interfaces/http"
	"github.com/jhoicas/stockops-api/pkg/config"
	"github.com/jhoicas/stockops-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}
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

	userRepo := postgres.NewUserRepository(pool)
	resetRepo := postgres.NewPasswordResetRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	contactRepo := postgres.NewContactRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	moveRepo := postgres.NewMoveHistoryRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	otpTTL := time.Duration(cfg.Auth.OTPTTLMinutes) * time.Minute
	mailer, err := inframail.NewMailer(inframail.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		User:     cfg.SMTP.User,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		TTL:      otpTTL,
	}, cfg.App.IsDevelopment(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("mailer")
	}

	authUC := auth.NewAuthUseCase(userRepo, resetRepo, txRunner, mailer, auth.Config{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
		OTPTTL:     otpTTL,
	}, log)

	documentUC := inventory.NewDocumentUseCase(
		txRunner,
		postgres.NewDeliveryRepository(pool),
		postgres.NewReceiptRepository(pool),
		infrapdf.NewSlipGenerator(cfg.App.Name),
		log,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.HTTP.CORSOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "StockOps API",
	}))

	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc()
		if err != nil {
			return c.SendStatus(fiber.StatusNotFound)
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(doc)
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "db_unavailable"})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		DocumentUC:  documentUC,
		WarehouseUC: usecase.NewWarehouseUseCase(warehouseRepo),
		LocationUC:  usecase.NewLocationUseCase(locationRepo, warehouseRepo),
		CatalogUC:   usecase.NewCatalogUseCase(productRepo, contactRepo),
		StockUC:     usecase.NewStockUseCase(stockRepo),
		MoveUC:      usecase.NewMoveHistoryUseCase(moveRepo),
		DashboardUC: appanalytics.NewDashboardUseCase(dashboardRepo),
		JWTSecret:   cfg.JWT.Secret,
		Cookie: httpRouter.CookieConfig{
			Name:   cfg.Cookie.Name,
			Secure: cfg.Cookie.Secure,
			MaxAge: time.Duration(cfg.JWT.Expiration) * time.Minute,
		},
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
