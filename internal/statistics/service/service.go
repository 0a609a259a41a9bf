// Package service provides business logic layer for statistics module.
package service

import (
	"context"
	"math"

	"go.uber.org/zap"

	championshipRepository "github.com/abnerteste26-bot/group-champs/internal/championship/repository"
	"github.com/abnerteste26-bot/group-champs/internal/statistics/model"
	"github.com/abnerteste26-bot/group-champs/internal/statistics/repository"
)

// Service defines the interface for statistics business logic operations.
type Service interface {
	// GetChampionshipStatistics returns the counters of one championship.
	GetChampionshipStatistics(ctx context.Context, championshipID string) (*model.ChampionshipStatisticsResponse, error)
}

type service struct {
	repo          repository.Repository
	championships championshipRepository.Repository
	logger        *zap.SugaredLogger
}

// New creates a new statistics service instance.
func New(
	repo repository.Repository,
	championships championshipRepository.Repository,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:          repo,
		championships: championships,
		logger:        logger,
	}
}

// GetChampionshipStatistics returns the counters of one championship.
func (s *service) GetChampionshipStatistics(
	ctx context.Context,
	championshipID string,
) (*model.ChampionshipStatisticsResponse, error) {
	s.logger.Debugw("GetChampionshipStatistics called", "championship_id", championshipID)

	if _, err := s.championships.GetByID(ctx, championshipID); err != nil {
		return nil, err
	}

	teams, err := s.repo.GetTeamStatistics(ctx, championshipID)
	if err != nil {
		s.logger.Errorw("GetTeamStatistics failed", "error", err)
		return nil, err
	}

	matches, err := s.repo.GetMatchStatistics(ctx, championshipID)
	if err != nil {
		s.logger.Errorw("GetMatchStatistics failed", "error", err)
		return nil, err
	}
	if finished := matches.Finished(); finished > 0 {
		avg := float64(matches.Goals) / float64(finished)
		matches.AverageGoalsPerMatch = math.Round(avg*100) / 100
	}

	s.logger.Infow("GetChampionshipStatistics completed",
		"championship_id", championshipID,
		"teams", teams.Total,
		"matches", matches.Total,
	)
	return &model.ChampionshipStatisticsResponse{
		ChampionshipID: championshipID,
		Teams:          *teams,
		Matches:        *matches,
	}, nil
}
