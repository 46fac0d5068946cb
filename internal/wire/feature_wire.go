package wire

import (
	"insekta-dashboard/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireFeature(r chi.Router, featureHandler *adaptor.FeatureHandler, g *guards) {
	r.Route("/api/features", func(r chi.Router) {
		// ==================== CLIENT ====================
		r.Group(func(r chi.Router) {
			r.Use(g.authed...)
			r.Get("/", featureHandler.GetMyFeatures)
			r.Get("/my-features", featureHandler.GetMyFeatures)
		})

		// ==================== ADMIN ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(g.admin...)
			r.Post("/", featureHandler.CreateFeature)
			r.Get("/admin", featureHandler.GetAdminFeatures)
			r.Get("/{id}", featureHandler.GetFeatureByID)
			r.Put("/{id}", featureHandler.UpdateFeature)
			r.Put("/{id}/assignments/{userId}/custom", featureHandler.SetCustom)
			r.Delete("/{id}", featureHandler.DeleteFeature)
		})
	})
}
