package usecase

import (
	"insekta-dashboard/internal/data/repository"
	"insekta-dashboard/pkg/mailer"
	"insekta-dashboard/pkg/sheet"
	"insekta-dashboard/pkg/storage"
	"insekta-dashboard/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	User      UserService
	Feature   FeatureService
	Banner    BannerService
	Chart     ChartService
	Team      TeamService
	Dashboard DashboardService
}

// Deps are the outbound adapters services talk to besides the database.
type Deps struct {
	Storage  storage.Provider
	Mailer   mailer.Mailer
	Pipeline *sheet.Pipeline
}

func NewService(repo *repository.Repository, deps Deps, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(repo, config, log),
		User:      NewUserService(repo, deps.Storage, deps.Mailer, config, log),
		Feature:   NewFeatureService(repo, deps.Storage, log),
		Banner:    NewBannerService(repo.Banner, log),
		Chart:     NewChartService(repo.Chart, deps.Pipeline, log),
		Team:      NewTeamService(repo.Team, deps.Storage, log),
		Dashboard: NewDashboardService(repo, log),
	}
}
