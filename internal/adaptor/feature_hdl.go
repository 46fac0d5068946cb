package adaptor

import (
	"net/http"
	"strings"

	"insekta-dashboard/internal/data/entity"
	"insekta-dashboard/internal/dto/request"
	"insekta-dashboard/internal/usecase"
	"insekta-dashboard/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FeatureHandler struct {
	service usecase.FeatureService
	log     *zap.Logger
}

func NewFeatureHandler(service usecase.FeatureService, log *zap.Logger) *FeatureHandler {
	return &FeatureHandler{
		service: service,
		log:     log.With(zap.String("handler", "feature")),
	}
}

// ==================== ADMIN ====================

// CreateFeature handles POST /api/features (multipart)
func (h *FeatureHandler) CreateFeature(w http.ResponseWriter, r *http.Request) {
	if err := parseMultipart(w, r); err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	req := &request.FeatureRequest{
		Title:       formString(r, "title"),
		DefaultType: entity.LinkType(strings.TrimSpace(formString(r, "defaultType"))),
		DefaultURL:  formString(r, "defaultUrl"),
	}

	if _, err := formJSON(r, "defaultSubMenus", &req.DefaultSubMenus); err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}
	if _, err := formJSON(r, "assignedTo", &req.AssignedTo); err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	icon, err := formFile(r, "icon")
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}
	req.Icon = icon

	feature, err := h.service.CreateFeature(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "create feature")
		return
	}

	utils.ResponseCreated(w, "Feature created successfully", feature)
}

// GetAdminFeatures handles GET /api/features/admin?search=&page=&limit=
func (h *FeatureHandler) GetAdminFeatures(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.FeatureListRequest{
		PaginatedRequest: pageFromQuery(query),
		Search:           query.Get("search"),
	}

	features, err := h.service.GetAdminFeatures(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get admin features")
		return
	}

	utils.ResponsePaginated(w, "Features retrieved successfully", features.Data, features.Pagination)
}

// GetFeatureByID handles GET /api/features/{id}
func (h *FeatureHandler) GetFeatureByID(w http.ResponseWriter, r *http.Request) {
	feature, err := h.service.GetFeatureByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get feature")
		return
	}

	utils.ResponseSuccess(w, "Feature retrieved successfully", feature)
}

// UpdateFeature handles PUT /api/features/{id} (multipart, every field optional)
func (h *FeatureHandler) UpdateFeature(w http.ResponseWriter, r *http.Request) {
	if err := parseMultipart(w, r); err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	req := &request.FeatureUpdateRequest{
		Title:      formValue(r, "title"),
		DefaultURL: formValue(r, "defaultUrl"),
	}
	if v := formValue(r, "defaultType"); v != nil {
		t := entity.LinkType(strings.TrimSpace(*v))
		req.DefaultType = &t
	}

	// A sent-but-empty list must replace, so keep a non-nil slice when present.
	subMenus := []entity.SubMenu{}
	if ok, err := formJSON(r, "defaultSubMenus", &subMenus); err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	} else if ok {
		req.DefaultSubMenus = subMenus
	}

	assigned := []entity.Assignment{}
	if ok, err := formJSON(r, "assignedTo", &assigned); err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	} else if ok {
		req.AssignedTo = assigned
	}

	icon, err := formFile(r, "icon")
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}
	req.Icon = icon

	feature, err := h.service.UpdateFeature(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		handleServiceError(w, h.log, err, "update feature")
		return
	}

	utils.ResponseSuccess(w, "Feature updated successfully", feature)
}

// SetCustom handles PUT /api/features/{id}/assignments/{userId}/custom
func (h *FeatureHandler) SetCustom(w http.ResponseWriter, r *http.Request) {
	var req request.ToggleCustomRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	feature, err := h.service.SetCustom(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "userId"), req.IsCustom)
	if err != nil {
		handleServiceError(w, h.log, err, "toggle custom config")
		return
	}

	utils.ResponseSuccess(w, "Assignment updated successfully", feature)
}

// DeleteFeature handles DELETE /api/features/{id}
func (h *FeatureHandler) DeleteFeature(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteFeature(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete feature")
		return
	}

	utils.ResponseSuccess(w, "Feature deleted successfully", nil)
}

// ==================== CLIENT ====================

// GetMyFeatures handles GET /api/features/my-features (and GET /api/features)
func (h *FeatureHandler) GetMyFeatures(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	features, err := h.service.GetMyFeatures(r.Context(), userID.String())
	if err != nil {
		handleServiceError(w, h.log, err, "get my features")
		return
	}

	utils.ResponseSuccess(w, "Features retrieved successfully", features)
}
