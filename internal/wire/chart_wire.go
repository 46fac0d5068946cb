package wire

import (
	"insekta-dashboard/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireChart: chart management is admin only.
func wireChart(r chi.Router, chartHandler *adaptor.ChartHandler, g *guards) {
	r.Route("/api/charts", func(r chi.Router) {
		r.Use(g.admin...)

		r.Get("/", chartHandler.GetCharts)
		r.Post("/", chartHandler.CreateChart)
		r.Post("/preview", chartHandler.Preview)
		r.Post("/excel-preview", chartHandler.PreviewExcel)
		r.Get("/{id}", chartHandler.GetChartByID)
		r.Get("/{id}/render", chartHandler.RenderChart)
		r.Put("/{id}", chartHandler.UpdateChart)
		r.Delete("/{id}", chartHandler.DeleteChart)
	})
}
