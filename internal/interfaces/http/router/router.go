package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ims/backend/internal/infrastructure/auth"
	"github.com/ims/backend/internal/infrastructure/logger"
	"github.com/ims/backend/internal/interfaces/http/handler"
	"github.com/ims/backend/internal/interfaces/http/middleware"
)

// RouteRegistrar registers a handler's routes on a group
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Config wires the handlers and middleware dependencies of the router
type Config struct {
	Logger     *zap.Logger
	JWTService *auth.JWTService
	Blacklist  auth.TokenBlacklist

	// Health overrides the default static health handler, typically to
	// include a database ping.
	Health gin.HandlerFunc

	Auth            *handler.AuthHandler
	Company         *handler.CompanyHandler
	Users           *handler.UserHandler
	BusinessPartner *handler.BusinessPartnerHandler
	Products        *handler.ProductHandler
	Warehouses      *handler.WarehouseHandler
	Orders          *handler.OrderHandler
	OrderItems      *handler.OrderItemHandler
	Invoices        *handler.InvoiceHandler
	Analytics       *handler.AnalyticsHandler
}

// New builds the gin engine with all middleware and routes attached.
// Everything under /api/v1 except the auth endpoints requires a token.
func New(cfg Config) *gin.Engine {
	engine := gin.New()
	engine.Use(logger.RequestID())
	engine.Use(logger.GinMiddleware(cfg.Logger))
	engine.Use(logger.Recovery(cfg.Logger))

	health := cfg.Health
	if health == nil {
		health = func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		}
	}
	engine.GET("/health", health)

	api := engine.Group("/api/v1")
	cfg.Auth.RegisterPublicRoutes(api)

	protected := api.Group("")
	protected.Use(middleware.RequireAuth(cfg.JWTService, cfg.Blacklist))
	cfg.Auth.RegisterProtectedRoutes(protected)

	for _, registrar := range []RouteRegistrar{
		cfg.Company,
		cfg.Users,
		cfg.BusinessPartner,
		cfg.Products,
		cfg.Warehouses,
		cfg.Orders,
		cfg.OrderItems,
		cfg.Invoices,
		cfg.Analytics,
	} {
		registrar.RegisterRoutes(protected)
	}

	return engine
}
