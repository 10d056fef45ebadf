package routes

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/congo-pay/wallet_service/internal/config"
	"github.com/congo-pay/wallet_service/internal/middleware"
	"github.com/congo-pay/wallet_service/internal/notification"
	"github.com/congo-pay/wallet_service/internal/wallet"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	if d.Logger == nil {
		return fmt.Errorf("logger is required")
	}
	if !d.Cfg.IsDev() && d.Cache == nil {
		return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.AppEnv)
	}

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	} else {
		d.Logger.Warn("idempotency store disabled, retried requests will be applied again")
	}

	RegisterHealthRoutes(app, d)

	walletSvc := wallet.NewService(
		wallet.NewMemoryRepository(),
		notification.NewLoggerNotifier(d.Logger),
		wallet.WithStrictAmounts(d.Cfg.StrictAmounts),
	)
	walletHandler := wallet.NewHandler(walletSvc)

	api := app.Group("/api/v1")
	api.Get("/ping", func(c *fiber.Ctx) error {
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": middleware.GetRequestID(c),
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})
	RegisterWalletRoutes(api, walletHandler)

	return nil
}
