package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"

	"insekta-dashboard/internal/data/entity"
	"insekta-dashboard/internal/data/repository"
	"insekta-dashboard/internal/dto/request"
	"insekta-dashboard/internal/dto/response"
	"insekta-dashboard/pkg/sheet"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ChartService interface {
	GetCharts(ctx context.Context, req *request.ChartListRequest) (*response.PaginatedResponse[response.ChartResponse], error)
	GetChartByID(ctx context.Context, chartID string) (*response.ChartResponse, error)
	CreateChart(ctx context.Context, req *request.ChartRequest, createdBy uuid.UUID) (*response.ChartResponse, error)
	UpdateChart(ctx context.Context, chartID string, req *request.ChartUpdateRequest) (*response.ChartResponse, error)
	DeleteChart(ctx context.Context, chartID string) error
	Preview(ctx context.Context, url string) (*response.SheetPreview, error)
	PreviewExcel(ctx context.Context, file io.Reader, sheetName string) (*response.SheetPreview, error)
	RenderChart(ctx context.Context, chartID string) (*response.ChartRenderResponse, error)
}

type chartService struct {
	repo     repository.ChartRepository
	pipeline *sheet.Pipeline
	log      *zap.Logger
}

func NewChartService(repo repository.ChartRepository, pipeline *sheet.Pipeline, log *zap.Logger) ChartService {
	return &chartService{
		repo:     repo,
		pipeline: pipeline,
		log:      log.With(zap.String("service", "chart")),
	}
}

func (s *chartService) GetCharts(ctx context.Context, req *request.ChartListRequest) (*response.PaginatedResponse[response.ChartResponse], error) {
	req.Normalize(6)
	filter := repository.ChartFilter{
		Search: req.Search,
		Limit:  req.Limit,
		Offset: req.Offset(),
	}

	charts, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get charts: %w", err)
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count charts: %w", err)
	}

	items := make([]response.ChartResponse, len(charts))
	for i, c := range charts {
		items[i] = response.ChartToResponse(c)
	}

	return response.NewPaginatedResponse(items, req.Page, req.Limit, total), nil
}

func (s *chartService) GetChartByID(ctx context.Context, chartID string) (*response.ChartResponse, error) {
	chart, err := s.find(ctx, chartID)
	if err != nil {
		return nil, err
	}

	resp := response.ChartToResponse(chart)
	return &resp, nil
}

// CreateChart stores only the definition; the sheet is read on every render.
func (s *chartService) CreateChart(ctx context.Context, req *request.ChartRequest, createdBy uuid.UUID) (*response.ChartResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	if _, err := sheet.NormalizeURL(req.SheetURL); err != nil {
		return nil, sheetError(err)
	}

	chart := &entity.Chart{
		Base:        entity.NewBase(),
		Title:       strings.TrimSpace(req.Title),
		Type:        entity.ChartType(req.Type),
		SheetURL:    strings.TrimSpace(req.SheetURL),
		Description: req.Description,
	}
	if req.Config != nil {
		chart.Config = *req.Config
	}
	if createdBy != uuid.Nil {
		chart.CreatedBy = &createdBy
	}

	if err := s.repo.Create(ctx, chart); err != nil {
		return nil, fmt.Errorf("create chart: %w", err)
	}

	s.log.Info("Chart created",
		zap.String("chart_id", chart.ID.String()),
		zap.String("type", string(chart.Type)),
	)

	resp := response.ChartToResponse(chart)
	return &resp, nil
}

func (s *chartService) UpdateChart(ctx context.Context, chartID string, req *request.ChartUpdateRequest) (*response.ChartResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	chart, err := s.find(ctx, chartID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		chart.Title = strings.TrimSpace(*req.Title)
	}
	if req.Type != nil {
		chart.Type = entity.ChartType(*req.Type)
	}
	if req.SheetURL != nil {
		if _, err := sheet.NormalizeURL(*req.SheetURL); err != nil {
			return nil, sheetError(err)
		}
		chart.SheetURL = strings.TrimSpace(*req.SheetURL)
	}
	if req.Description != nil {
		chart.Description = *req.Description
	}
	if req.Config != nil {
		chart.Config = *req.Config
	}

	chart.Touch()
	if err := s.repo.Update(ctx, chart); err != nil {
		return nil, writeError("update chart", err)
	}

	s.log.Info("Chart updated", zap.String("chart_id", chart.ID.String()))

	resp := response.ChartToResponse(chart)
	return &resp, nil
}

func (s *chartService) DeleteChart(ctx context.Context, chartID string) error {
	chart, err := s.find(ctx, chartID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, chart.ID); err != nil {
		return writeError("delete chart", err)
	}

	s.log.Info("Chart deleted", zap.String("chart_id", chart.ID.String()))
	return nil
}

func (s *chartService) Preview(ctx context.Context, url string) (*response.SheetPreview, error) {
	t, err := s.pipeline.Load(ctx, url)
	if err != nil {
		s.log.Warn("Sheet preview failed", zap.Error(err), zap.String("url", url))
		return nil, sheetError(err)
	}

	preview := response.TableToPreview(t)
	return &preview, nil
}

func (s *chartService) PreviewExcel(ctx context.Context, file io.Reader, sheetName string) (*response.SheetPreview, error) {
	t, err := s.pipeline.LoadXLSX(file, sheetName)
	if err != nil {
		s.log.Warn("Excel preview failed", zap.Error(err), zap.String("sheet", sheetName))
		return nil, sheetError(err)
	}

	preview := response.TableToPreview(t)
	return &preview, nil
}

func (s *chartService) RenderChart(ctx context.Context, chartID string) (*response.ChartRenderResponse, error) {
	chart, err := s.find(ctx, chartID)
	if err != nil {
		return nil, err
	}

	cfg := sheet.AxisConfig{XAxisKey: chart.Config.XAxisKey, DataKeys: chart.Config.DataKeys}
	def, err := s.pipeline.Render(ctx, sheet.ChartType(chart.Type), chart.SheetURL, cfg)
	if err != nil {
		s.log.Warn("Chart render failed", zap.Error(err), zap.String("chart_id", chart.ID.String()))
		return nil, sheetError(err)
	}

	return &response.ChartRenderResponse{
		Chart:      response.ChartToResponse(chart),
		Definition: def,
	}, nil
}

func (s *chartService) find(ctx context.Context, chartID string) (*entity.Chart, error) {
	id, err := uuid.Parse(chartID)
	if err != nil {
		return nil, fmt.Errorf("%w: chart id", ErrInvalidInput)
	}

	chart, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get chart: %w", err)
	}
	if chart == nil {
		return nil, fmt.Errorf("chart %w", ErrNotFound)
	}
	return chart, nil
}
