package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/hrops/hr-dashboard/internal/analytics"
	"github.com/hrops/hr-dashboard/internal/auth"
	"github.com/hrops/hr-dashboard/internal/bookmark"
	"github.com/hrops/hr-dashboard/internal/employee"
	"github.com/hrops/hr-dashboard/internal/transport/middleware"
	"github.com/hrops/hr-dashboard/internal/transport/swagger"
)

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, authHandler *auth.Handler, employeeHandler *employee.Handler, bookmarkHandler *bookmark.Handler, analyticsHandler *analytics.Handler, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.CORS)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	// Mount API under /api/v1 to match OpenAPI basePath
	router.Route("/api/v1", func(r chi.Router) {
		// Health check route
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Auth routes
		if authHandler != nil {
			r.Route("/auth", func(sr chi.Router) {
				sr.Post("/login", authHandler.Login)
				sr.Post("/refresh", authHandler.RefreshToken)
				sr.Post("/logout", authHandler.Logout)
			})
		}

		if authHandler != nil {
			// Protected routes that require authentication
			r.Group(func(pr chi.Router) {
				pr.Use(authHandler.AuthMiddleware)

				if employeeHandler != nil {
					pr.Route("/employees", func(er chi.Router) {
						er.Get("/", employeeHandler.List)
						er.Post("/", employeeHandler.Create)
						er.Get("/departments", employeeHandler.ListDepartments)
						er.Get("/{id}", employeeHandler.Get)
						er.Post("/{id}/feedback", employeeHandler.SubmitFeedback)
					})
				}

				if bookmarkHandler != nil {
					pr.Route("/bookmarks", func(br chi.Router) {
						br.Get("/", bookmarkHandler.List)
						br.Post("/actions", bookmarkHandler.BulkAction)
						br.Put("/{id}", bookmarkHandler.Add)
						br.Delete("/{id}", bookmarkHandler.Remove)
					})
				}

				if analyticsHandler != nil {
					pr.Get("/analytics", analyticsHandler.GetSnapshot)
				}
			})
		}
	})
}
