package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/anderson-nunes/account-service/docs"
	"github.com/anderson-nunes/account-service/internal/api/handler"
	"github.com/anderson-nunes/account-service/internal/api/middleware"
	"github.com/anderson-nunes/account-service/internal/core/ports"
)

// Dependencies groups what the router needs to build its handlers.
// Redis may be nil when the account cache is disabled. Metrics defaults to
// the global Prometheus registry.
type Dependencies struct {
	Accounts ports.AccountService
	Mongo    *mongo.Database
	Redis    *redis.Client
	Logger   zerolog.Logger
	Metrics  *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if deps.Metrics != nil {
		registerer, gatherer = deps.Metrics, deps.Metrics
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "accounts",
		Registerer: registerer,
	}))

	// --- Account routes ---
	accountHandler := handler.NewAccountHandler(deps.Accounts)

	users := e.Group("/users")
	users.POST("/signup", accountHandler.Signup)
	users.POST("/login", accountHandler.Login)

	token := middleware.Token()
	users.GET("", accountHandler.List, token)
	users.GET("/:id", accountHandler.GetByID, token)
	users.DELETE("/:id", accountHandler.Delete, token)

	// --- Health probes, metrics and docs (no token required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger logs one structured line per request through zerolog.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}
