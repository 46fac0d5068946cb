package wire

import (
	"insekta-dashboard/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireTeam(r chi.Router, teamHandler *adaptor.TeamHandler, g *guards) {
	r.Route("/api/teams", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(g.authed...)
			r.Get("/", teamHandler.GetTeams)
			r.Get("/areas", teamHandler.GetAreas)
			r.Get("/{id}", teamHandler.GetTeamByID)
		})

		r.Group(func(r chi.Router) {
			r.Use(g.admin...)
			r.Post("/", teamHandler.CreateTeam)
			r.Put("/{id}", teamHandler.UpdateTeam)
			r.Delete("/{id}", teamHandler.DeleteTeam)
		})
	})
}
