package wire

import (
	"insekta-dashboard/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireUser configures user management routes with role-based access control
func wireUser(r chi.Router, userHandler *adaptor.UserHandler, g *guards) {
	r.Route("/api/users", func(r chi.Router) {
		// ==================== SELF ====================
		r.With(g.authed...).Put("/profile", userHandler.UpdateProfile)

		// ==================== ADMIN ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(g.admin...)
			r.Get("/", userHandler.GetUsers)           // GET /api/users?page=1&limit=10
			r.Post("/", userHandler.CreateUser)        // POST /api/users
			r.Get("/companies", userHandler.GetCompanies)
			r.Put("/{id}", userHandler.UpdateUser)
			r.Delete("/{id}", userHandler.DeleteUser) // DELETE /api/users/{user-id}
		})
	})
}
