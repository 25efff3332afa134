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

	_ "github.com/admin-scaffold/demo-backend/docs"
	"github.com/admin-scaffold/demo-backend/internal/api/handler"
	"github.com/admin-scaffold/demo-backend/internal/api/middleware"
	"github.com/admin-scaffold/demo-backend/internal/core/ports"
)

// Dependencies are the services the router wires into handlers. Mongo and
// Redis are only used by the readiness probe and may be nil.
type Dependencies struct {
	Store   ports.StoreService
	MockAPI ports.MockAPI
	App     ports.AppService
	Counter ports.CounterService
	Mongo   *mongo.Database
	Redis   *redis.Client

	// LoginRate and LoginBurst bound POST /api/login per client IP. A zero
	// rate leaves the endpoint unlimited.
	LoginRate  float64
	LoginBurst int

	// Registry receives the HTTP metrics and backs /metrics. Nil selects the
	// prometheus default registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(log))
	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if deps.Registry != nil {
		registerer, gatherer = deps.Registry, deps.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "admin_demo",
		Registerer: registerer,
	}))

	// --- Fake auth backend ---
	mockHandler := handler.NewMockHandler(deps.MockAPI)
	loginLimit := middleware.NewRateLimiter(deps.LoginRate, deps.LoginBurst).Middleware()
	e.POST("/api/login", mockHandler.Login, loginLimit)
	e.GET("/api/user/info", mockHandler.UserInfo)

	requireAuth := middleware.Auth(deps.MockAPI)
	canEditUsers := middleware.RequireButton("cuser")

	// --- Users ---
	users := handler.NewUserHandler(deps.Store)
	g := e.Group("/api/users")
	g.GET("", users.List)
	g.GET("/fetch", users.Fetch)
	g.GET("/admins", users.Admins)
	g.POST("", users.Create, requireAuth, canEditUsers)
	g.PATCH("/:id", users.Update, requireAuth, canEditUsers)
	g.DELETE("/:id", users.Delete, requireAuth, canEditUsers)
	g.POST("/:id/toggle-status", users.ToggleStatus, requireAuth, canEditUsers)

	// --- Session ---
	session := handler.NewSessionHandler(deps.Store)
	e.GET("/api/session", session.Get)
	e.POST("/api/session", session.Login)
	e.DELETE("/api/session", session.Logout)
	e.PATCH("/api/session/profile", session.UpdateProfile)

	// --- Todos ---
	todos := handler.NewTodoHandler(deps.Store)
	e.GET("/api/todos", todos.List)
	e.POST("/api/todos", todos.Create)
	e.POST("/api/todos/:id/toggle", todos.Toggle)
	e.DELETE("/api/todos/:id", todos.Delete)

	// --- Whole store ---
	store := handler.NewStoreHandler(deps.Store)
	e.GET("/api/stats", store.Stats)
	e.GET("/api/store", store.Snapshot)
	e.POST("/api/store/reset", store.Reset, requireAuth, canEditUsers)

	// --- Shell ---
	app := handler.NewAppHandler(deps.App)
	e.GET("/api/app", app.State)
	e.POST("/api/app/sidebar/toggle", app.ToggleSidebar)
	e.PUT("/api/app/sidebar", app.SetSidebar)
	e.POST("/api/app/theme/toggle", app.ToggleTheme)
	e.PUT("/api/app/theme", app.SetTheme)
	e.PUT("/api/app/loading", app.SetLoading)
	e.PUT("/api/app/breadcrumbs", app.SetBreadcrumbs)
	e.POST("/api/app/breadcrumbs", app.AddBreadcrumb)
	e.DELETE("/api/app/breadcrumbs", app.ClearBreadcrumbs)

	// --- Counter demo ---
	counter := handler.NewCounterHandler(deps.Counter)
	e.GET("/api/counter", counter.State)
	e.PUT("/api/counter", counter.SetCount)
	e.POST("/api/counter/increment", counter.Increment)
	e.POST("/api/counter/decrement", counter.Decrement)
	e.POST("/api/counter/reset", counter.Reset)
	e.PUT("/api/counter/name", counter.UpdateName)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // process is up
	e.GET("/health/ready", healthDepsHandler.Readiness) // configured stores answer

	// --- Ops ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
