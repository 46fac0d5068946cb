package usecase

import (
	"context"
	"fmt"
	"strings"

	"insekta-dashboard/internal/data/entity"
	"insekta-dashboard/internal/data/repository"
	"insekta-dashboard/internal/dto/request"
	"insekta-dashboard/internal/dto/response"
	"insekta-dashboard/pkg/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TeamService interface {
	GetTeams(ctx context.Context, req *request.TeamListRequest) (*response.PaginatedResponse[response.TeamResponse], error)
	GetAreas(ctx context.Context) ([]string, error)
	GetTeamByID(ctx context.Context, teamID string) (*response.TeamResponse, error)
	CreateTeam(ctx context.Context, req *request.TeamRequest, createdBy uuid.UUID) (*response.TeamResponse, error)
	UpdateTeam(ctx context.Context, teamID string, req *request.TeamUpdateRequest) (*response.TeamResponse, error)
	DeleteTeam(ctx context.Context, teamID string) error
}

type teamService struct {
	repo   repository.TeamRepository
	upload *uploader
	log    *zap.Logger
}

func NewTeamService(repo repository.TeamRepository, store storage.Provider, log *zap.Logger) TeamService {
	log = log.With(zap.String("service", "team"))
	return &teamService{
		repo:   repo,
		upload: &uploader{store: store, log: log},
		log:    log,
	}
}

func (s *teamService) GetTeams(ctx context.Context, req *request.TeamListRequest) (*response.PaginatedResponse[response.TeamResponse], error) {
	req.Normalize(10)
	filter := repository.TeamFilter{
		Search: req.Search,
		Area:   strings.TrimSpace(req.Area),
		Limit:  req.Limit,
		Offset: req.Offset(),
	}

	members, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get teams: %w", err)
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count teams: %w", err)
	}

	items := make([]response.TeamResponse, len(members))
	for i, m := range members {
		items[i] = response.TeamToResponse(m)
	}

	resp := response.NewPaginatedResponse(items, req.Page, req.Limit, total)
	// halaman kosong tetap dihitung 1
	if resp.Pagination.TotalPages < 1 {
		resp.Pagination.TotalPages = 1
	}
	return resp, nil
}

func (s *teamService) GetAreas(ctx context.Context) ([]string, error) {
	areas, err := s.repo.Areas(ctx)
	if err != nil {
		return nil, fmt.Errorf("get areas: %w", err)
	}
	return areas, nil
}

func (s *teamService) GetTeamByID(ctx context.Context, teamID string) (*response.TeamResponse, error) {
	member, err := s.find(ctx, teamID)
	if err != nil {
		return nil, err
	}

	resp := response.TeamToResponse(member)
	return &resp, nil
}

func (s *teamService) CreateTeam(ctx context.Context, req *request.TeamRequest, createdBy uuid.UUID) (*response.TeamResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	member := &entity.TeamMember{
		Base:    entity.NewBase(),
		Name:    strings.TrimSpace(req.Name),
		Role:    strings.TrimSpace(req.Role),
		Phone:   strings.TrimSpace(req.Phone),
		Area:    strings.TrimSpace(req.Area),
		Outlets: strings.TrimSpace(req.Outlets),
	}
	if createdBy != uuid.Nil {
		member.CreatedBy = &createdBy
	}

	if req.Photo != nil {
		ref, err := s.upload.saveImage(ctx, folderTeams, req.Photo, storage.TeamPhotoOptions)
		if err != nil {
			return nil, err
		}
		member.Photo = ref
	}

	if err := s.repo.Create(ctx, member); err != nil {
		// jangan tinggalkan file yatim
		s.upload.remove(ctx, member.Photo)
		return nil, fmt.Errorf("create team member: %w", err)
	}

	s.log.Info("Team member created",
		zap.String("team_id", member.ID.String()),
		zap.String("area", member.Area),
	)

	resp := response.TeamToResponse(member)
	return &resp, nil
}

func (s *teamService) UpdateTeam(ctx context.Context, teamID string, req *request.TeamUpdateRequest) (*response.TeamResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	member, err := s.find(ctx, teamID)
	if err != nil {
		return nil, err
	}
	oldPhoto := member.Photo

	if req.Name != nil {
		member.Name = strings.TrimSpace(*req.Name)
	}
	if req.Role != nil {
		member.Role = strings.TrimSpace(*req.Role)
	}
	if req.Phone != nil {
		member.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Area != nil {
		member.Area = strings.TrimSpace(*req.Area)
	}
	if req.Outlets != nil {
		member.Outlets = strings.TrimSpace(*req.Outlets)
	}

	if req.Photo != nil {
		ref, err := s.upload.saveImage(ctx, folderTeams, req.Photo, storage.TeamPhotoOptions)
		if err != nil {
			return nil, err
		}
		member.Photo = ref
	}

	member.Touch()
	if err := s.repo.Update(ctx, member); err != nil {
		if member.Photo != oldPhoto {
			s.upload.remove(ctx, member.Photo)
		}
		return nil, writeError("update team member", err)
	}

	if member.Photo != oldPhoto {
		s.upload.remove(ctx, oldPhoto)
	}

	s.log.Info("Team member updated", zap.String("team_id", member.ID.String()))

	resp := response.TeamToResponse(member)
	return &resp, nil
}

func (s *teamService) DeleteTeam(ctx context.Context, teamID string) error {
	member, err := s.find(ctx, teamID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, member.ID); err != nil {
		return writeError("delete team member", err)
	}

	s.upload.remove(ctx, member.Photo)

	s.log.Info("Team member deleted", zap.String("team_id", member.ID.String()))
	return nil
}

func (s *teamService) find(ctx context.Context, teamID string) (*entity.TeamMember, error) {
	id, err := uuid.Parse(teamID)
	if err != nil {
		return nil, fmt.Errorf("%w: team id", ErrInvalidInput)
	}

	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get team member: %w", err)
	}
	if member == nil {
		return nil, fmt.Errorf("team member %w", ErrNotFound)
	}
	return member, nil
}
