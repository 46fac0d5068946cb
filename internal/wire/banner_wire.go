package wire

import (
	"insekta-dashboard/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBanner(r chi.Router, bannerHandler *adaptor.BannerHandler, g *guards) {
	r.Route("/api/banners", func(r chi.Router) {
		// clients see active banners only, enforced by the service
		r.Group(func(r chi.Router) {
			r.Use(g.authed...)
			r.Get("/", bannerHandler.GetBanners)
			r.Get("/{id}", bannerHandler.GetBannerByID)
		})

		r.Group(func(r chi.Router) {
			r.Use(g.admin...)
			r.Post("/", bannerHandler.CreateBanner)
			r.Put("/{id}", bannerHandler.UpdateBanner)
			r.Delete("/{id}", bannerHandler.DeleteBanner)
		})
	})
}
