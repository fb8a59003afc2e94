package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/aditsaputra/academy/internal/handlers"
	"github.com/aditsaputra/academy/internal/middleware"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(
	router chi.Router,
	pageHandler *handlers.PageHandler,
	authHandler *handlers.AuthHandler,
	contentHandler *handlers.ContentHandler,
	auth middleware.SessionValidator,
) {
	// Public routes - no authentication required
	router.Get("/", pageHandler.Landing)
	router.Get("/api/content", pageHandler.PublicContent)

	// Login is additionally rate limited at the transport level
	router.With(middleware.RateLimitByIP(middleware.DefaultAuthRateLimit())).
		Post("/api/auth/login", authHandler.Login)

	// Protected routes - valid session required
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(auth))

		r.Post("/api/auth/logout", authHandler.Logout)
		r.Get("/api/auth/session", authHandler.Session)
		r.Post("/api/auth/change-password", authHandler.ChangePassword)

		r.Route("/api/admin/content", func(r chi.Router) {
			r.Get("/", contentHandler.GetContent)
			r.Put("/hero", contentHandler.UpdateHero)

			r.Post("/features", contentHandler.CreateFeature)
			r.Put("/features/{id}", contentHandler.UpdateFeature)
			r.Delete("/features/{id}", contentHandler.DeleteFeature)

			r.Post("/packages", contentHandler.CreatePackage)
			r.Put("/packages/{id}", contentHandler.UpdatePackage)
			r.Delete("/packages/{id}", contentHandler.DeletePackage)

			r.Post("/testimonials", contentHandler.CreateTestimonial)
			r.Put("/testimonials/{id}", contentHandler.UpdateTestimonial)
			r.Delete("/testimonials/{id}", contentHandler.DeleteTestimonial)

			r.Post("/faqs", contentHandler.CreateFAQ)
			r.Put("/faqs/{id}", contentHandler.UpdateFAQ)
			r.Delete("/faqs/{id}", contentHandler.DeleteFAQ)
		})
	})
}
