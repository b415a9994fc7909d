package main

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"data-marketplace/internal/authoring"
	"data-marketplace/internal/catalog"
	"data-marketplace/internal/config"
	"data-marketplace/internal/identity"
	"data-marketplace/internal/logging"
)

// main wires dependencies (dependency injection) and starts the HTTP server.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLogger(log))

	catalogClient := catalog.NewClient(cfg.CatalogAPIURL, cfg.HTTPTimeout, log)
	store := catalog.NewStore(catalogClient, log)

	identityClient := identity.NewClient(cfg.CatalogAPIURL, cfg.HTTPTimeout)
	identityStore := identity.NewStore(identityClient, log)

	// initial loads happen once at startup; failures leave a retryable error
	// state (empty collection, fail-closed identity) rather than aborting
	startupCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPTimeout)
	if err := store.Load(startupCtx); err != nil {
		log.Error().Err(err).Msg("initial catalog load failed, starting with empty collection")
	}
	if err := identityStore.Load(startupCtx); err != nil {
		log.Error().Err(err).Msg("identity unavailable, authoring stays closed")
	}
	cancel()

	catalog.NewHandler(store, log).RegisterPublicRoutes(app)
	identity.NewHandler(identityStore).RegisterPublicRoutes(app)

	editor := authoring.NewEditor(store, catalogClient, log)
	admin := app.Group("/api/authoring", identity.RequireAdmin(identityStore))
	authoring.NewHandler(editor, authoring.NewColumnSet()).RegisterRoutes(admin)

	log.Info().Str("addr", cfg.Addr).Str("catalog_api", cfg.CatalogAPIURL).Msg("starting marketplace app")
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}

func requestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Debug().
			Str("method", c.Method()).
			Str("path", c.OriginalURL()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("request")
		return err
	}
}
