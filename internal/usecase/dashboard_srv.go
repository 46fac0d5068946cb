package usecase

import (
	"context"
	"fmt"

	"insekta-dashboard/internal/data/entity"
	"insekta-dashboard/internal/data/repository"
	"insekta-dashboard/internal/dto/response"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type DashboardService interface {
	GetStats(ctx context.Context) (*response.DashboardStats, error)
}

type dashboardService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewDashboardService(repo *repository.Repository, log *zap.Logger) DashboardService {
	return &dashboardService{
		repo: repo,
		log:  log.With(zap.String("service", "dashboard")),
	}
}

// GetStats runs the independent counts concurrently; the first failure
// cancels the rest.
func (s *dashboardService) GetStats(ctx context.Context) (*response.DashboardStats, error) {
	var stats response.DashboardStats
	active := true

	g, ctx := errgroup.WithContext(ctx)

	count := func(dst *int64, name string, fn func(context.Context) (int64, error)) {
		g.Go(func() error {
			n, err := fn(ctx)
			if err != nil {
				return fmt.Errorf("count %s: %w", name, err)
			}
			*dst = n
			return nil
		})
	}

	count(&stats.TotalUsers, "users", func(ctx context.Context) (int64, error) {
		return s.repo.User.Count(ctx, repository.UserFilter{})
	})
	count(&stats.TotalClients, "clients", func(ctx context.Context) (int64, error) {
		return s.repo.User.Count(ctx, repository.UserFilter{Role: entity.RoleClient})
	})
	count(&stats.ActiveClients, "active clients", func(ctx context.Context) (int64, error) {
		return s.repo.User.Count(ctx, repository.UserFilter{Role: entity.RoleClient, Active: &active})
	})
	count(&stats.TotalFeatures, "features", func(ctx context.Context) (int64, error) {
		return s.repo.Feature.Count(ctx, repository.FeatureFilter{})
	})
	count(&stats.TotalBanners, "banners", func(ctx context.Context) (int64, error) {
		return s.repo.Banner.Count(ctx, repository.BannerFilter{})
	})
	count(&stats.ActiveBanners, "active banners", func(ctx context.Context) (int64, error) {
		return s.repo.Banner.Count(ctx, repository.BannerFilter{Active: &active})
	})
	count(&stats.TotalCharts, "charts", func(ctx context.Context) (int64, error) {
		return s.repo.Chart.Count(ctx, repository.ChartFilter{})
	})
	count(&stats.TotalTeams, "teams", func(ctx context.Context) (int64, error) {
		return s.repo.Team.Count(ctx, repository.TeamFilter{})
	})

	if err := g.Wait(); err != nil {
		s.log.Error("Failed to gather dashboard stats", zap.Error(err))
		return nil, err
	}

	return &stats, nil
}
