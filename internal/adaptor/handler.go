package adaptor

import (
	"insekta-dashboard/internal/usecase"
	"insekta-dashboard/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	User      *UserHandler
	Feature   *FeatureHandler
	Banner    *BannerHandler
	Chart     *ChartHandler
	Team      *TeamHandler
	Dashboard *DashboardHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, service.User, config, log),
		User:      NewUserHandler(service.User, log),
		Feature:   NewFeatureHandler(service.Feature, log),
		Banner:    NewBannerHandler(service.Banner, log),
		Chart:     NewChartHandler(service.Chart, log),
		Team:      NewTeamHandler(service.Team, log),
		Dashboard: NewDashboardHandler(service.Dashboard, log),
	}
}
