// Package repository provides data access layer for statistics module.
package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/abnerteste26-bot/group-champs/internal/apperr"
	matchModel "github.com/abnerteste26-bot/group-champs/internal/match/model"
	registrationModel "github.com/abnerteste26-bot/group-champs/internal/registration/model"
	"github.com/abnerteste26-bot/group-champs/internal/statistics/model"
)

// Repository defines the interface for statistics data access operations.
type Repository interface {
	// GetTeamStatistics counts teams, groups and pending registrations of a championship.
	GetTeamStatistics(ctx context.Context, championshipID string) (*model.TeamStatistics, error)

	// GetMatchStatistics counts matches by status and sums the goals of final scores.
	GetMatchStatistics(ctx context.Context, championshipID string) (*model.MatchStatistics, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new statistics repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{
		db:     db,
		logger: logger,
	}
}

// GetTeamStatistics counts teams, groups and pending registrations of a championship.
func (r *repository) GetTeamStatistics(ctx context.Context, championshipID string) (*model.TeamStatistics, error) {
	r.logger.Debugw("GetTeamStatistics called", "championship_id", championshipID)

	var teams struct {
		Total  int64 `gorm:"column:total"`
		Active int64 `gorm:"column:active"`
	}
	err := r.db.WithContext(ctx).
		Table("teams").
		Select(`
			COUNT(*) as total,
			COALESCE(SUM(CASE WHEN active THEN 1 ELSE 0 END), 0) as active
		`).
		Where("championship_id = ?", championshipID).
		Scan(&teams).Error
	if err != nil {
		r.logger.Errorw("GetTeamStatistics database error", "error", err)
		return nil, apperr.Transient(err)
	}

	var groups int64
	err = r.db.WithContext(ctx).
		Table("championship_groups").
		Where("championship_id = ?", championshipID).
		Count(&groups).Error
	if err != nil {
		r.logger.Errorw("GetTeamStatistics database error", "error", err)
		return nil, apperr.Transient(err)
	}

	var pending int64
	err = r.db.WithContext(ctx).
		Table("pending_registrations").
		Where("championship_id = ? AND status = ?", championshipID, registrationModel.StatusPending).
		Count(&pending).Error
	if err != nil {
		r.logger.Errorw("GetTeamStatistics database error", "error", err)
		return nil, apperr.Transient(err)
	}

	return &model.TeamStatistics{
		Total:                int(teams.Total),
		Active:               int(teams.Active),
		Groups:               int(groups),
		PendingRegistrations: int(pending),
	}, nil
}

// GetMatchStatistics counts matches by status and sums the goals of final scores.
// AverageGoalsPerMatch is left to the caller.
func (r *repository) GetMatchStatistics(ctx context.Context, championshipID string) (*model.MatchStatistics, error) {
	r.logger.Debugw("GetMatchStatistics called", "championship_id", championshipID)

	var result struct {
		Total     int64 `gorm:"column:total"`
		Pending   int64 `gorm:"column:pending"`
		Submitted int64 `gorm:"column:submitted"`
		Confirmed int64 `gorm:"column:confirmed"`
		Adjusted  int64 `gorm:"column:adjusted"`
		Goals     int64 `gorm:"column:goals"`
	}

	err := r.db.WithContext(ctx).
		Table("matches").
		Select(`
			COUNT(*) as total,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) as pending,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) as submitted,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) as confirmed,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) as adjusted,
			COALESCE(SUM(CASE WHEN status IN ? THEN COALESCE(final_score_a, 0) + COALESCE(final_score_b, 0) ELSE 0 END), 0) as goals
		`,
			matchModel.StatusPending,
			matchModel.StatusSubmitted,
			matchModel.StatusConfirmed,
			matchModel.StatusAdjusted,
			matchModel.FinalStatuses,
		).
		Where("championship_id = ?", championshipID).
		Scan(&result).Error
	if err != nil {
		r.logger.Errorw("GetMatchStatistics database error", "error", err)
		return nil, apperr.Transient(err)
	}

	stats := &model.MatchStatistics{
		Total:     int(result.Total),
		Pending:   int(result.Pending),
		Submitted: int(result.Submitted),
		Confirmed: int(result.Confirmed),
		Adjusted:  int(result.Adjusted),
		Goals:     int(result.Goals),
	}

	r.logger.Debugw("GetMatchStatistics completed", "total", stats.Total)
	return stats, nil
}
