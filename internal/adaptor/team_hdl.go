package adaptor

import (
	"net/http"

	"insekta-dashboard/internal/dto/request"
	"insekta-dashboard/internal/usecase"
	"insekta-dashboard/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TeamHandler struct {
	service usecase.TeamService
	log     *zap.Logger
}

func NewTeamHandler(service usecase.TeamService, log *zap.Logger) *TeamHandler {
	return &TeamHandler{
		service: service,
		log:     log.With(zap.String("handler", "team")),
	}
}

// GetTeams handles GET /api/teams?search=&area=&page=&limit=
func (h *TeamHandler) GetTeams(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.TeamListRequest{
		PaginatedRequest: pageFromQuery(query),
		Search:           query.Get("search"),
		Area:             query.Get("area"),
	}

	teams, err := h.service.GetTeams(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get teams")
		return
	}

	utils.ResponsePaginated(w, "Team members retrieved successfully", teams.Data, teams.Pagination)
}

// GetAreas handles GET /api/teams/areas
func (h *TeamHandler) GetAreas(w http.ResponseWriter, r *http.Request) {
	areas, err := h.service.GetAreas(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get areas")
		return
	}

	utils.ResponseSuccess(w, "Areas retrieved successfully", areas)
}

// GetTeamByID handles GET /api/teams/{id}
func (h *TeamHandler) GetTeamByID(w http.ResponseWriter, r *http.Request) {
	member, err := h.service.GetTeamByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get team member")
		return
	}

	utils.ResponseSuccess(w, "Team member retrieved successfully", member)
}

// CreateTeam handles POST /api/teams (multipart, admin only)
func (h *TeamHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := parseMultipart(w, r); err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	req := &request.TeamRequest{
		Name:    formString(r, "name"),
		Role:    formString(r, "role"),
		Phone:   formString(r, "phone"),
		Area:    formString(r, "area"),
		Outlets: formString(r, "outlets"),
	}

	photo, err := formFile(r, "photo")
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}
	req.Photo = photo

	member, err := h.service.CreateTeam(r.Context(), req, userID)
	if err != nil {
		handleServiceError(w, h.log, err, "create team member")
		return
	}

	utils.ResponseCreated(w, "Team member created successfully", member)
}

// UpdateTeam handles PUT /api/teams/{id} (multipart, admin only)
func (h *TeamHandler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	if err := parseMultipart(w, r); err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	req := &request.TeamUpdateRequest{
		Name:    formValue(r, "name"),
		Role:    formValue(r, "role"),
		Phone:   formValue(r, "phone"),
		Area:    formValue(r, "area"),
		Outlets: formValue(r, "outlets"),
	}

	photo, err := formFile(r, "photo")
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}
	req.Photo = photo

	member, err := h.service.UpdateTeam(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		handleServiceError(w, h.log, err, "update team member")
		return
	}

	utils.ResponseSuccess(w, "Team member updated successfully", member)
}

// DeleteTeam handles DELETE /api/teams/{id} (admin only)
func (h *TeamHandler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteTeam(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete team member")
		return
	}

	utils.ResponseSuccess(w, "Team member deleted successfully", nil)
}
