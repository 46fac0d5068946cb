package wire

import (
	"insekta-dashboard/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireDashboard(r chi.Router, dashboardHandler *adaptor.DashboardHandler, g *guards) {
	r.With(g.admin...).Get("/api/dashboard/stats", dashboardHandler.GetStats)
}
