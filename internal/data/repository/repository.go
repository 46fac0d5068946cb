package repository

import (
	"errors"

	"insekta-dashboard/pkg/database"

	"go.uber.org/zap"
)

// ErrNotAffected is returned by Update and Delete when no row matched the id.
var ErrNotAffected = errors.New("no rows affected")

type Repository struct {
	User    UserRepository
	Feature FeatureRepository
	Banner  BannerRepository
	Chart   ChartRepository
	Team    TeamRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Feature: NewFeatureRepository(db, log),
		Banner:  NewBannerRepository(db, log),
		Chart:   NewChartRepository(db, log),
		Team:    NewTeamRepository(db, log),
	}
}
