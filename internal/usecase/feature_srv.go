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

type FeatureService interface {
	CreateFeature(ctx context.Context, req *request.FeatureRequest) (*response.AdminFeature, error)
	GetAdminFeatures(ctx context.Context, req *request.FeatureListRequest) (*response.PaginatedResponse[response.AdminFeature], error)
	GetMyFeatures(ctx context.Context, userID string) ([]response.ResolvedFeature, error)
	GetFeatureByID(ctx context.Context, featureID string) (*response.AdminFeature, error)
	UpdateFeature(ctx context.Context, featureID string, req *request.FeatureUpdateRequest) (*response.AdminFeature, error)
	SetCustom(ctx context.Context, featureID, userID string, isCustom bool) (*response.AdminFeature, error)
	DeleteFeature(ctx context.Context, featureID string) error
}

type featureService struct {
	repo   *repository.Repository
	upload *uploader
	log    *zap.Logger
}

func NewFeatureService(repo *repository.Repository, store storage.Provider, log *zap.Logger) FeatureService {
	log = log.With(zap.String("service", "feature"))
	return &featureService{
		repo:   repo,
		upload: &uploader{store: store, log: log},
		log:    log,
	}
}

func (s *featureService) CreateFeature(ctx context.Context, req *request.FeatureRequest) (*response.AdminFeature, error) {
	defaultType := req.DefaultType
	if defaultType == "" {
		defaultType = entity.LinkSingle
	}

	feature := &entity.Feature{
		Base:  entity.NewBase(),
		Title: strings.TrimSpace(req.Title),
		Icon:  DefaultFeatureIcon,
		Default: entity.LinkConfig{
			Type:     defaultType,
			URL:      strings.TrimSpace(req.DefaultURL),
			SubMenus: req.DefaultSubMenus,
		},
		AssignedTo: req.AssignedTo,
	}

	if err := ValidateFeature(feature); err != nil {
		s.log.Warn("Create feature validation failed", zap.Error(err))
		return nil, err
	}

	users, err := s.loadAssignedUsers(ctx, feature.AssignedTo)
	if err != nil {
		return nil, err
	}
	snapshotCompanies(feature, users)

	if req.Icon != nil {
		ref, err := s.upload.saveImage(ctx, folderIcons, req.Icon, storage.IconOptions)
		if err != nil {
			return nil, err
		}
		feature.Icon = ref
	}

	if err := s.repo.Feature.Create(ctx, feature); err != nil {
		s.upload.remove(ctx, feature.Icon)
		return nil, fmt.Errorf("create feature: %w", err)
	}

	s.log.Info("Feature created",
		zap.String("feature_id", feature.ID.String()),
		zap.String("title", feature.Title),
		zap.Int("assigned", len(feature.AssignedTo)),
	)

	resp := toAdminFeature(feature, users)
	return &resp, nil
}

func (s *featureService) GetAdminFeatures(ctx context.Context, req *request.FeatureListRequest) (*response.PaginatedResponse[response.AdminFeature], error) {
	req.Normalize(10)
	filter := repository.FeatureFilter{
		Search: req.Search,
		Limit:  req.Limit,
		Offset: req.Offset(),
	}

	features, err := s.repo.Feature.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get features: %w", err)
	}

	total, err := s.repo.Feature.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count features: %w", err)
	}

	// one lookup for every user on this page
	var ids []uuid.UUID
	for _, f := range features {
		for _, a := range f.AssignedTo {
			ids = append(ids, a.UserID)
		}
	}
	users, err := s.repo.User.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("populate assigned users: %w", err)
	}

	items := make([]response.AdminFeature, len(features))
	for i, f := range features {
		items[i] = toAdminFeature(f, users)
	}

	s.log.Info("Features retrieved",
		zap.Int("count", len(items)),
		zap.Int64("total", total),
		zap.Int("page", req.Page),
	)

	return response.NewPaginatedResponse(items, req.Page, req.Limit, total), nil
}

func (s *featureService) GetMyFeatures(ctx context.Context, userID string) ([]response.ResolvedFeature, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: user id", ErrInvalidInput)
	}

	features, err := s.repo.Feature.FindByAssignedUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get features for user: %w", err)
	}

	return ResolveAll(features, id), nil
}

func (s *featureService) GetFeatureByID(ctx context.Context, featureID string) (*response.AdminFeature, error) {
	feature, err := s.find(ctx, featureID)
	if err != nil {
		return nil, err
	}

	users, err := s.repo.User.FindByIDs(ctx, assignedIDs(feature.AssignedTo))
	if err != nil {
		return nil, fmt.Errorf("populate assigned users: %w", err)
	}

	resp := toAdminFeature(feature, users)
	return &resp, nil
}

func (s *featureService) UpdateFeature(ctx context.Context, featureID string, req *request.FeatureUpdateRequest) (*response.AdminFeature, error) {
	feature, err := s.find(ctx, featureID)
	if err != nil {
		return nil, err
	}
	oldIcon := feature.Icon

	if req.Title != nil {
		feature.Title = strings.TrimSpace(*req.Title)
	}
	if req.DefaultType != nil {
		feature.Default.Type = *req.DefaultType
	}
	if req.DefaultURL != nil {
		feature.Default.URL = strings.TrimSpace(*req.DefaultURL)
	}
	if req.DefaultSubMenus != nil {
		feature.Default.SubMenus = req.DefaultSubMenus
	}
	if req.AssignedTo != nil {
		feature.AssignedTo = req.AssignedTo
	}

	if err := ValidateFeature(feature); err != nil {
		s.log.Warn("Update feature validation failed", zap.Error(err), zap.String("feature_id", featureID))
		return nil, err
	}

	users, err := s.loadAssignedUsers(ctx, feature.AssignedTo)
	if err != nil {
		return nil, err
	}
	snapshotCompanies(feature, users)

	if req.Icon != nil {
		ref, err := s.upload.saveImage(ctx, folderIcons, req.Icon, storage.IconOptions)
		if err != nil {
			return nil, err
		}
		feature.Icon = ref
	}

	feature.Touch()
	if err := s.repo.Feature.Update(ctx, feature); err != nil {
		if feature.Icon != oldIcon {
			s.upload.remove(ctx, feature.Icon)
		}
		return nil, writeError("update feature", err)
	}

	if feature.Icon != oldIcon {
		s.upload.remove(ctx, oldIcon)
	}

	s.log.Info("Feature updated", zap.String("feature_id", feature.ID.String()))

	resp := toAdminFeature(feature, users)
	return &resp, nil
}

// SetCustom flips one user's assignment between inherit and custom and
// stores the reset state.
func (s *featureService) SetCustom(ctx context.Context, featureID, userID string, isCustom bool) (*response.AdminFeature, error) {
	feature, err := s.find(ctx, featureID)
	if err != nil {
		return nil, err
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: user id", ErrInvalidInput)
	}

	a, idx, ok := feature.FindAssignment(uid)
	if !ok {
		return nil, fmt.Errorf("assignment %w", ErrNotFound)
	}
	feature.AssignedTo[idx] = ToggleCustom(a, isCustom)

	feature.Touch()
	if err := s.repo.Feature.Update(ctx, feature); err != nil {
		return nil, writeError("update feature", err)
	}

	users, err := s.repo.User.FindByIDs(ctx, assignedIDs(feature.AssignedTo))
	if err != nil {
		return nil, fmt.Errorf("populate assigned users: %w", err)
	}

	s.log.Info("Assignment mode changed",
		zap.String("feature_id", feature.ID.String()),
		zap.String("user_id", uid.String()),
		zap.Bool("is_custom", isCustom),
	)

	resp := toAdminFeature(feature, users)
	return &resp, nil
}

// DeleteFeature removes the document first and the icon second; a crash in
// between leaves an orphaned file, never a dangling reference.
func (s *featureService) DeleteFeature(ctx context.Context, featureID string) error {
	feature, err := s.find(ctx, featureID)
	if err != nil {
		return err
	}

	if err := s.repo.Feature.Delete(ctx, feature.ID); err != nil {
		return writeError("delete feature", err)
	}

	s.upload.remove(ctx, feature.Icon)

	s.log.Info("Feature deleted", zap.String("feature_id", feature.ID.String()))
	return nil
}

// ==================== HELPERS ====================

func (s *featureService) find(ctx context.Context, featureID string) (*entity.Feature, error) {
	id, err := uuid.Parse(featureID)
	if err != nil {
		return nil, fmt.Errorf("%w: feature id", ErrInvalidInput)
	}

	feature, err := s.repo.Feature.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get feature: %w", err)
	}
	if feature == nil {
		return nil, fmt.Errorf("feature %w", ErrNotFound)
	}
	return feature, nil
}

// loadAssignedUsers fails when any assignment names an unknown user.
func (s *featureService) loadAssignedUsers(ctx context.Context, assigned []entity.Assignment) (map[uuid.UUID]*entity.User, error) {
	users, err := s.repo.User.FindByIDs(ctx, assignedIDs(assigned))
	if err != nil {
		return nil, fmt.Errorf("load assigned users: %w", err)
	}

	fields := map[string]string{}
	for i, a := range assigned {
		if _, ok := users[a.UserID]; !ok {
			fields[fmt.Sprintf("assignedTo[%d].user", i)] = "User does not exist"
		}
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}
	return users, nil
}

func assignedIDs(assigned []entity.Assignment) []uuid.UUID {
	ids := make([]uuid.UUID, len(assigned))
	for i, a := range assigned {
		ids[i] = a.UserID
	}
	return ids
}

func snapshotCompanies(f *entity.Feature, users map[uuid.UUID]*entity.User) {
	for i, a := range f.AssignedTo {
		if u, ok := users[a.UserID]; ok {
			f.AssignedTo[i].CompanyName = u.CompanyName
		}
	}
}

// toAdminFeature populates assignments from users. Entries whose user no
// longer exists are skipped; companyName is always the live value.
func toAdminFeature(f *entity.Feature, users map[uuid.UUID]*entity.User) response.AdminFeature {
	subs := f.Default.SubMenus
	if subs == nil {
		subs = []entity.SubMenu{}
	}

	out := response.AdminFeature{
		ID:              f.ID.String(),
		Title:           f.Title,
		Icon:            f.Icon,
		DefaultType:     f.Default.Type,
		DefaultURL:      f.Default.URL,
		DefaultSubMenus: subs,
		AssignedTo:      make([]response.AssignmentResponse, 0, len(f.AssignedTo)),
		CreatedAt:       f.CreatedAt,
		UpdatedAt:       f.UpdatedAt,
	}

	for _, a := range f.AssignedTo {
		u, ok := users[a.UserID]
		if !ok || u == nil {
			continue
		}

		link := entity.EmptyLinkConfig()
		if a.Override != nil {
			link = a.Override.Clone()
		}

		out.AssignedTo = append(out.AssignedTo, response.AssignmentResponse{
			User: response.AssignedUser{
				ID:          u.ID.String(),
				Name:        u.Name,
				Email:       u.Email,
				Avatar:      u.Avatar,
				CompanyName: u.CompanyName,
			},
			IsCustom:    a.Override != nil,
			Type:        link.Type,
			URL:         link.URL,
			SubMenus:    link.SubMenus,
			CompanyName: u.CompanyName,
		})
	}
	return out
}
