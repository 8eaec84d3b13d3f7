// Package heritage предоставляет маршруты для основного приложения.
package heritage

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/edakaya/heritage-api/internal/http/handlers/auth/login"
	"github.com/edakaya/heritage-api/internal/http/handlers/auth/me"
	"github.com/edakaya/heritage-api/internal/http/handlers/auth/register"
	"github.com/edakaya/heritage-api/internal/http/handlers/sites/list"
	"github.com/edakaya/heritage-api/internal/http/handlers/sites/read"
	"github.com/edakaya/heritage-api/internal/http/middlewarectx"
	"github.com/edakaya/heritage-api/internal/lib/jwt"
	authservice "github.com/edakaya/heritage-api/internal/services/auth"
	sitesservice "github.com/edakaya/heritage-api/internal/services/sites"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, authService *authservice.AuthService,
	siteService *sitesservice.SiteService, jwtMaker jwt.Maker) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		render.JSON(w, req, map[string]string{"status": "ok", "service": "heritage-api"})
	})

	r.Route("/api", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/auth/register", register.New(logger, authService).ServeHTTP)
		r.Post("/auth/login", login.New(logger, authService).ServeHTTP)

		// Каталог открыт на чтение, но ограничен по частоте запросов
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Get("/sites", list.New(logger, siteService).ServeHTTP)
			r.Get("/sites/{id}", read.New(logger, siteService).ServeHTTP)
		})

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
			r.Get("/auth/me", me.New(logger).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
