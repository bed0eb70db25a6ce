package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/malakyounes2004-ai/fitfix/internal/api/handlers"
	"github.com/malakyounes2004-ai/fitfix/internal/api/middleware"
	"github.com/malakyounes2004-ai/fitfix/internal/config"
	"github.com/malakyounes2004-ai/fitfix/internal/pkg/logger"
	"github.com/malakyounes2004-ai/fitfix/internal/pkg/metrics"
)

type Handlers struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Employee       *handlers.EmployeeHandler
	Billing        *handlers.BillingHandler
	Progress       *handlers.ProgressHandler
	Statistics     *handlers.StatisticsHandler
	Recommendation *handlers.RecommendationHandler
}

func New(cfg *config.Config, log *logger.Logger, h *Handlers) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.DefaultCORS(cfg.Server.FrontendURL))
	r.Use(middleware.RateLimit(100, 200)) // 100 req/sec, burst of 200

	// Public routes
	r.Group(func(r chi.Router) {
		// Swagger documentation
		r.Get("/swagger/*", httpSwagger.WrapHandler)

		// Prometheus metrics
		r.Handle("/metrics", metrics.Handler())

		// Health checks
		r.Get("/health", h.Health.Healthz)
		r.Get("/healthz", h.Health.Healthz)
		r.Get("/readyz", h.Health.Readyz)

		// Auth endpoints
		r.Post("/api/v1/auth/register", h.Auth.Register)
		r.Post("/api/v1/auth/login", h.Auth.Login)
		r.Post("/api/v1/auth/refresh", h.Auth.Refresh)
	})

	// Protected routes (require authentication)
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(cfg.Auth.JWTSecret))

		// Auth
		r.Get("/api/v1/auth/me", h.Auth.Me)

		// Fleet statistics
		r.Get("/api/v1/statistics", h.Statistics.Global)

		// Employees and per-employee analytics
		r.Route("/api/v1/employees", func(r chi.Router) {
			r.Get("/", h.Employee.List)
			r.Post("/", h.Employee.Create)
			r.Get("/{id}", h.Employee.Get)
			r.Put("/{id}", h.Employee.Update)
			r.Delete("/{id}", h.Employee.Delete)

			r.Put("/{id}/activity", h.Employee.RecordActivity)
			r.Get("/{id}/report", h.Employee.Report)
			r.Get("/{id}/recommendations", h.Recommendation.ForEmployee)

			r.Get("/{id}/subscription", h.Billing.GetSubscription)
			r.Put("/{id}/subscription", h.Billing.SetSubscription)
			r.Delete("/{id}/subscription", h.Billing.CancelSubscription)
			r.Get("/{id}/payments", h.Billing.ListPayments)
			r.Post("/{id}/payments", h.Billing.RecordPayment)

			r.Get("/{id}/progress", h.Progress.ListEntries)
			r.Post("/{id}/progress", h.Progress.AddEntry)
			r.Get("/{id}/progress/report", h.Progress.Report)
		})
	})

	return r
}
