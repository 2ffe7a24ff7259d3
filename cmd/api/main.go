package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/storefront-backend/internal/application/auth"
	"github.com/jhoicas/storefront-backend/internal/application/inventory"
	"github.com/jhoicas/storefront-backend/internal/domain/entity"
	"github.com/jhoicas/storefront-backend/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/storefront-backend/internal/interfaces/http"
	"github.com/jhoicas/storefront-backend/pkg/config"
	"github.com/jhoicas/storefront-backend/pkg/logger"
)

func main() {
	migrate := flag.Bool("migrate", false, "aplicar migraciones pendientes antes de iniciar")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend_url", cfg.Admin.BackendURL).
		Msg("iniciando aplicación")

	if cfg.InsecureSecrets() {
		if cfg.IsProduction() {
			log.Fatal().Msg("JWT_SECRET y COOKIE_SECRET deben configurarse en producción")
		}
		log.Warn().Msg("usando secretos por defecto; configurar JWT_SECRET y COOKIE_SECRET")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if *migrate {
		version, err := postgres.Migrate(pool)
		if err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Uint("version", version).Msg("migraciones aplicadas")
	}

	txRunner := postgres.NewTxRunner(pool)
	locationRepo := postgres.NewStockLocationRepository(pool)
	levelRepo := postgres.NewInventoryLevelRepository(pool)
	linkRepo := postgres.NewLinkRepository(pool)
	itemRepo := postgres.NewInventoryItemRepository(pool)
	channelRepo := postgres.NewSalesChannelRepository(pool)

	stockLocationUC := inventory.NewStockLocationUseCase(txRunner, locationRepo, linkRepo)
	levelUC := inventory.NewInventoryLevelUseCase(txRunner, levelRepo)
	seedUC := inventory.NewSeedInventoryUseCase(stockLocationUC, levelUC, itemRepo, channelRepo, seedConfig(cfg.Seed), log)

	authUC := auth.NewAdminAuthUseCase(auth.Config{
		AdminEmail:        cfg.Admin.Email,
		AdminPasswordHash: cfg.Admin.PasswordHash,
		JWTSecret:         cfg.JWT.Secret,
		CookieSecret:      cfg.Cookie.Secret,
		ExpMinutes:        cfg.JWT.Expiration,
		Issuer:            cfg.JWT.Issuer,
	})
	if cfg.Admin.PasswordHash == "" {
		log.Warn().Msg("ADMIN_PASSWORD_HASH vacío: el login de admin queda deshabilitado")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Seeder:         seedUC,
		StockLocations: stockLocationUC,
		Levels:         levelUC,
		AuthUC:         authUC,
		JWTSecret:      cfg.JWT.Secret,
		CookieSecret:   cfg.Cookie.Secret,
		SessionTTL:     time.Duration(cfg.JWT.Expiration) * time.Minute,
		SecureCookie:   cfg.IsProduction(),
		StoreCORS:      cfg.HTTP.StoreCORS,
		AdminCORS:      cfg.HTTP.AdminCORS,
		AuthCORS:       cfg.HTTP.AuthCORS,
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

func seedConfig(c config.SeedConfig) inventory.SeedConfig {
	return inventory.SeedConfig{
		DefaultQuantity: c.DefaultQuantity,
		LocationName:    c.LocationName,
		Address: entity.StockLocationAddress{
			Address1:    c.Address1,
			City:        c.City,
			CountryCode: c.CountryCode,
		},
		FulfillmentProviderID: c.FulfillmentProviderID,
		SalesChannelName:      c.SalesChannelName,
	}
}
