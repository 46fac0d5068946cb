package adaptor

import (
	"bytes"
	"net/http"

	"insekta-dashboard/internal/dto/request"
	"insekta-dashboard/internal/usecase"
	"insekta-dashboard/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ChartHandler struct {
	service usecase.ChartService
	log     *zap.Logger
}

func NewChartHandler(service usecase.ChartService, log *zap.Logger) *ChartHandler {
	return &ChartHandler{
		service: service,
		log:     log.With(zap.String("handler", "chart")),
	}
}

// GetCharts handles GET /api/charts?search=&page=&limit=
func (h *ChartHandler) GetCharts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.ChartListRequest{
		PaginatedRequest: pageFromQuery(query),
		Search:           query.Get("search"),
	}

	charts, err := h.service.GetCharts(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get charts")
		return
	}

	utils.ResponsePaginated(w, "Charts retrieved successfully", charts.Data, charts.Pagination)
}

// GetChartByID handles GET /api/charts/{id}
func (h *ChartHandler) GetChartByID(w http.ResponseWriter, r *http.Request) {
	chart, err := h.service.GetChartByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get chart")
		return
	}

	utils.ResponseSuccess(w, "Chart retrieved successfully", chart)
}

// CreateChart handles POST /api/charts
func (h *ChartHandler) CreateChart(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.ChartRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	chart, err := h.service.CreateChart(r.Context(), &req, userID)
	if err != nil {
		handleServiceError(w, h.log, err, "create chart")
		return
	}

	utils.ResponseCreated(w, "Chart created successfully", chart)
}

// UpdateChart handles PUT /api/charts/{id}
func (h *ChartHandler) UpdateChart(w http.ResponseWriter, r *http.Request) {
	var req request.ChartUpdateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	chart, err := h.service.UpdateChart(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update chart")
		return
	}

	utils.ResponseSuccess(w, "Chart updated successfully", chart)
}

// DeleteChart handles DELETE /api/charts/{id}
func (h *ChartHandler) DeleteChart(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteChart(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete chart")
		return
	}

	utils.ResponseSuccess(w, "Chart deleted successfully", nil)
}

// ==================== SHEET DATA ====================

// Preview handles POST /api/charts/preview {url}
func (h *ChartHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req request.PreviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	preview, err := h.service.Preview(r.Context(), req.URL)
	if err != nil {
		handleServiceError(w, h.log, err, "preview sheet")
		return
	}

	utils.ResponseSuccess(w, "Sheet loaded successfully", preview)
}

// PreviewExcel handles POST /api/charts/excel-preview (multipart: file, sheet)
func (h *ChartHandler) PreviewExcel(w http.ResponseWriter, r *http.Request) {
	if err := parseMultipart(w, r); err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	file, err := formFile(r, "file")
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}
	if file == nil {
		utils.ResponseBadRequest(w, "Excel file is required", map[string]string{"file": "file is required"})
		return
	}

	preview, err := h.service.PreviewExcel(r.Context(), bytes.NewReader(file.Data), formString(r, "sheet"))
	if err != nil {
		handleServiceError(w, h.log, err, "preview excel")
		return
	}

	utils.ResponseSuccess(w, "Workbook loaded successfully", preview)
}

// RenderChart handles GET /api/charts/{id}/render
func (h *ChartHandler) RenderChart(w http.ResponseWriter, r *http.Request) {
	rendered, err := h.service.RenderChart(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "render chart")
		return
	}

	utils.ResponseSuccess(w, "Chart rendered successfully", rendered)
}
