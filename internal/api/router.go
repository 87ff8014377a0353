package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/minoq/storefront/internal/api/handler"
	"github.com/minoq/storefront/internal/api/middleware"
	"github.com/minoq/storefront/internal/core/domain"
	"github.com/minoq/storefront/internal/core/ports"
	"github.com/minoq/storefront/internal/core/service"
	"github.com/minoq/storefront/internal/infrastructure/http/handlers"
)

// Dependencies carries everything the router needs to assemble the service
// graph. Mongo and Redis are optional: nil handles mean the in-memory
// adapters are in play and the readiness probe skips them.
type Dependencies struct {
	Logger           zerolog.Logger
	Catalog          ports.CatalogRepository
	Notes            ports.NoteRepository
	Sessions         ports.SessionRegistry
	IDs              ports.IDGenerator
	Verifier         ports.CodeVerifier
	Links            domain.LinkBuilder
	FallbackImageURL string
	JWTSecret        string
	SessionTTL       time.Duration

	Mongo *mongo.Database
	Redis *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Services ---
	catalogService := service.NewCatalogService(deps.Catalog, deps.IDs, deps.Links, deps.FallbackImageURL, deps.Logger)
	accessService := service.NewAccessService(deps.Verifier, deps.Sessions, deps.IDs, deps.JWTSecret, deps.SessionTTL, deps.Logger)
	noteService := service.NewNoteService(deps.Notes, deps.Logger)

	// --- Handlers ---
	catalogHandler := handler.NewCatalogHandler(catalogService)
	linkHandler := handler.NewLinkHandler(catalogService)
	accessHandler := handler.NewAccessHandler(accessService)
	noteHandler := handler.NewNoteHandler(noteService)
	adminAuth := middleware.Admin(deps.JWTSecret, deps.Sessions)

	// --- Storefront routes (public) ---
	e.GET("/v1/products", catalogHandler.List)
	e.GET("/v1/products/:id/buy-link", linkHandler.BuyNow)
	e.GET("/v1/help-link", linkHandler.Help)
	e.POST("/v1/admin/access", accessHandler.Submit)

	// --- Admin routes (session required) ---
	admin := e.Group("/v1/admin", adminAuth)
	admin.POST("/products", catalogHandler.Create)
	admin.PATCH("/products/:id", catalogHandler.Update)
	admin.GET("/notes", noteHandler.Get)
	admin.PUT("/notes", noteHandler.Put)

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are optional backends up?

	return e
}
