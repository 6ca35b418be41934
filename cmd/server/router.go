package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/phrazzld/storefront-api/internal/api"
	apiMiddleware "github.com/phrazzld/storefront-api/internal/api/middleware"
)

// setupRouter creates the router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.Server.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders: []string{"X-Trace-ID"},
		MaxAge:         300,
	}))

	authHandler := api.NewAuthHandler(app.authService)
	userHandler := api.NewUserHandler(app.userService)
	productHandler := api.NewProductHandler(app.productService)
	gate := apiMiddleware.NewAuthMiddleware(app.tokens, app.tokenChecker)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			if perMinute := app.config.Server.AuthRateLimitPerMinute; perMinute > 0 {
				r.Use(apiMiddleware.NewRateLimiter(perMinute).Limit)
			}
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		r.Get("/users", userHandler.List)
		r.Put("/users/update/{id}", userHandler.Update)
		r.Delete("/users/{id}", userHandler.Delete)

		r.Get("/products", productHandler.List)
		r.Get("/products/{id}", productHandler.Get)

		// Product mutations require a valid bearer token.
		r.Group(func(r chi.Router) {
			r.Use(gate.Authenticate)
			r.Post("/products/create", productHandler.Create)
			r.Put("/products/update/{id}", productHandler.Update)
			r.Delete("/products/delete/{id}", productHandler.Delete)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
