package adaptor

import (
	"net/http"

	"insekta-dashboard/internal/dto/request"
	"insekta-dashboard/internal/usecase"
	"insekta-dashboard/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BannerHandler struct {
	service usecase.BannerService
	log     *zap.Logger
}

func NewBannerHandler(service usecase.BannerService, log *zap.Logger) *BannerHandler {
	return &BannerHandler{
		service: service,
		log:     log.With(zap.String("handler", "banner")),
	}
}

// GetBanners handles GET /api/banners?search=&type=&status=&page=&limit=
// Non-admin callers only ever see active banners.
func (h *BannerHandler) GetBanners(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.BannerListRequest{
		PaginatedRequest: pageFromQuery(query),
		Search:           query.Get("search"),
		Type:             query.Get("type"),
		Status:           query.Get("status"),
	}

	banners, err := h.service.GetBanners(r.Context(), req, utils.IsAdminFromContext(r.Context()))
	if err != nil {
		handleServiceError(w, h.log, err, "get banners")
		return
	}

	utils.ResponsePaginated(w, "Banners retrieved successfully", banners.Data, banners.Pagination)
}

// GetBannerByID handles GET /api/banners/{id}
func (h *BannerHandler) GetBannerByID(w http.ResponseWriter, r *http.Request) {
	banner, err := h.service.GetBannerByID(r.Context(), chi.URLParam(r, "id"), utils.IsAdminFromContext(r.Context()))
	if err != nil {
		handleServiceError(w, h.log, err, "get banner")
		return
	}

	utils.ResponseSuccess(w, "Banner retrieved successfully", banner)
}

// CreateBanner handles POST /api/banners (admin only)
func (h *BannerHandler) CreateBanner(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.BannerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	banner, err := h.service.CreateBanner(r.Context(), &req, userID)
	if err != nil {
		handleServiceError(w, h.log, err, "create banner")
		return
	}

	utils.ResponseCreated(w, "Banner created successfully", banner)
}

// UpdateBanner handles PUT /api/banners/{id} (admin only)
func (h *BannerHandler) UpdateBanner(w http.ResponseWriter, r *http.Request) {
	var req request.BannerUpdateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	banner, err := h.service.UpdateBanner(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update banner")
		return
	}

	utils.ResponseSuccess(w, "Banner updated successfully", banner)
}

// DeleteBanner handles DELETE /api/banners/{id} (admin only)
func (h *BannerHandler) DeleteBanner(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteBanner(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete banner")
		return
	}

	utils.ResponseSuccess(w, "Banner deleted successfully", nil)
}
