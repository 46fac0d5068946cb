package usecase

import (
	"context"
	"fmt"
	"strings"

	"insekta-dashboard/internal/data/entity"
	"insekta-dashboard/internal/data/repository"
	"insekta-dashboard/internal/dto/request"
	"insekta-dashboard/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BannerService interface {
	GetBanners(ctx context.Context, req *request.BannerListRequest, isAdmin bool) (*response.PaginatedResponse[response.BannerResponse], error)
	GetBannerByID(ctx context.Context, bannerID string, isAdmin bool) (*response.BannerResponse, error)
	CreateBanner(ctx context.Context, req *request.BannerRequest, createdBy uuid.UUID) (*response.BannerResponse, error)
	UpdateBanner(ctx context.Context, bannerID string, req *request.BannerUpdateRequest) (*response.BannerResponse, error)
	DeleteBanner(ctx context.Context, bannerID string) error
}

type bannerService struct {
	repo repository.BannerRepository
	log  *zap.Logger
}

func NewBannerService(repo repository.BannerRepository, log *zap.Logger) BannerService {
	return &bannerService{
		repo: repo,
		log:  log.With(zap.String("service", "banner")),
	}
}

// GetBanners lists banners. Clients only ever see active ones, whatever
// status they ask for.
func (s *bannerService) GetBanners(ctx context.Context, req *request.BannerListRequest, isAdmin bool) (*response.PaginatedResponse[response.BannerResponse], error) {
	req.Normalize(6)

	filter := repository.BannerFilter{
		Search: req.Search,
		Limit:  req.Limit,
		Offset: req.Offset(),
	}

	switch t := entity.BannerType(req.Type); t {
	case entity.BannerInfo, entity.BannerPromo, entity.BannerWarning:
		filter.Type = t
	}

	switch {
	case !isAdmin, req.Status == "active":
		active := true
		filter.Active = &active
	case req.Status == "inactive":
		active := false
		filter.Active = &active
	}

	banners, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get banners: %w", err)
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count banners: %w", err)
	}

	items := make([]response.BannerResponse, len(banners))
	for i, b := range banners {
		items[i] = response.BannerToResponse(b)
	}

	return response.NewPaginatedResponse(items, req.Page, req.Limit, total), nil
}

func (s *bannerService) GetBannerByID(ctx context.Context, bannerID string, isAdmin bool) (*response.BannerResponse, error) {
	banner, err := s.find(ctx, bannerID)
	if err != nil {
		return nil, err
	}

	if !isAdmin && !banner.IsActive {
		return nil, fmt.Errorf("banner %w", ErrNotFound)
	}

	resp := response.BannerToResponse(banner)
	return &resp, nil
}

func (s *bannerService) CreateBanner(ctx context.Context, req *request.BannerRequest, createdBy uuid.UUID) (*response.BannerResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	banner := &entity.Banner{
		Base:     entity.NewBase(),
		Title:    strings.TrimSpace(req.Title),
		Content:  req.Content,
		Type:     entity.BannerInfo,
		LinkURL:  strings.TrimSpace(req.LinkURL),
		IsActive: true,
	}
	if req.Type != "" {
		banner.Type = entity.BannerType(req.Type)
	}
	if req.IsActive != nil {
		banner.IsActive = *req.IsActive
	}
	if createdBy != uuid.Nil {
		banner.CreatedBy = &createdBy
	}

	if err := s.repo.Create(ctx, banner); err != nil {
		return nil, fmt.Errorf("create banner: %w", err)
	}

	s.log.Info("Banner created", zap.String("banner_id", banner.ID.String()))

	resp := response.BannerToResponse(banner)
	return &resp, nil
}

func (s *bannerService) UpdateBanner(ctx context.Context, bannerID string, req *request.BannerUpdateRequest) (*response.BannerResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	banner, err := s.find(ctx, bannerID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		banner.Title = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil {
		banner.Content = *req.Content
	}
	if req.Type != nil {
		banner.Type = entity.BannerType(*req.Type)
	}
	if req.LinkURL != nil {
		banner.LinkURL = strings.TrimSpace(*req.LinkURL)
	}
	if req.IsActive != nil {
		banner.IsActive = *req.IsActive
	}

	banner.Touch()
	if err := s.repo.Update(ctx, banner); err != nil {
		return nil, writeError("update banner", err)
	}

	s.log.Info("Banner updated", zap.String("banner_id", banner.ID.String()))

	resp := response.BannerToResponse(banner)
	return &resp, nil
}

func (s *bannerService) DeleteBanner(ctx context.Context, bannerID string) error {
	banner, err := s.find(ctx, bannerID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, banner.ID); err != nil {
		return writeError("delete banner", err)
	}

	s.log.Info("Banner deleted", zap.String("banner_id", banner.ID.String()))
	return nil
}

func (s *bannerService) find(ctx context.Context, bannerID string) (*entity.Banner, error) {
	id, err := uuid.Parse(bannerID)
	if err != nil {
		return nil, fmt.Errorf("%w: banner id", ErrInvalidInput)
	}

	banner, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get banner: %w", err)
	}
	if banner == nil {
		return nil, fmt.Errorf("banner %w", ErrNotFound)
	}
	return banner, nil
}
