// Package repository provides data access layer for match module.
package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/abnerteste26-bot/group-champs/internal/apperr"
	"github.com/abnerteste26-bot/group-champs/internal/match/model"
)

// Repository defines the interface for match data access operations.
//
// Every state transition is a single conditional update keyed on the prior
// status and reports whether it applied, so two racing callers cannot both
// move the same match.
type Repository interface {
	// CreateBatch inserts matches. A duplicate pair fails the whole batch.
	CreateBatch(ctx context.Context, matches []model.Match) error
	// CountByPhase returns the number of matches of a phase in a championship.
	CountByPhase(ctx context.Context, championshipID string, phase model.Phase) (int64, error)
	// GetByID finds a match by id.
	GetByID(ctx context.Context, id string) (*model.Match, error)
	// List returns matches of a championship ordered by round.
	List(ctx context.Context, championshipID string, filter model.ListMatchesFilter) ([]model.Match, error)
	// ListFinalByGroup returns confirmed and adjusted matches of a group.
	ListFinalByGroup(ctx context.Context, groupID string) ([]model.Match, error)
	// Submit records a submitted score on a pending match.
	Submit(ctx context.Context, id string, score model.Score, by string) (bool, error)
	// ConfirmSubmitted copies the submitted score into the final score.
	ConfirmSubmitted(ctx context.Context, id string) (bool, error)
	// ConfirmPending records a final score directly on a pending match.
	ConfirmPending(ctx context.Context, id string, score model.Score, by string) (bool, error)
	// Adjust overwrites the final score from any status.
	Adjust(ctx context.Context, id string, score model.Score) error
	// DeleteOpenByTeam removes the team's pending and submitted matches.
	DeleteOpenByTeam(ctx context.Context, teamID string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new match repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateBatch inserts matches.
func (r *repository) CreateBatch(ctx context.Context, matches []model.Match) error {
	if len(matches) == 0 {
		return nil
	}
	return apperr.Transient(r.db.WithContext(ctx).Create(&matches).Error)
}

// CountByPhase returns the number of matches of a phase in a championship.
func (r *repository) CountByPhase(ctx context.Context, championshipID string, phase model.Phase) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Match{}).
		Where("championship_id = ? AND phase = ?", championshipID, phase).
		Count(&count).Error
	return count, apperr.Transient(err)
}

// GetByID finds a match by id.
func (r *repository) GetByID(ctx context.Context, id string) (*model.Match, error) {
	var m model.Match
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrMatchNotFound
		}
		return nil, apperr.Transient(err)
	}
	return &m, nil
}

// List returns matches of a championship ordered by round.
func (r *repository) List(
	ctx context.Context,
	championshipID string,
	filter model.ListMatchesFilter,
) ([]model.Match, error) {
	query := r.db.WithContext(ctx).Where("championship_id = ?", championshipID)
	if filter.GroupID != "" {
		query = query.Where("group_id = ?", filter.GroupID)
	}
	if filter.Phase != "" {
		query = query.Where("phase = ?", filter.Phase)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var matches []model.Match
	if err := query.Order("round ASC, created_at ASC, id ASC").Find(&matches).Error; err != nil {
		return nil, apperr.Transient(err)
	}
	return matches, nil
}

// ListFinalByGroup returns confirmed and adjusted matches of a group.
func (r *repository) ListFinalByGroup(ctx context.Context, groupID string) ([]model.Match, error) {
	var matches []model.Match
	err := r.db.WithContext(ctx).
		Where("group_id = ? AND phase = ? AND status IN ?", groupID, model.PhaseGroup, model.FinalStatuses).
		Order("round ASC, id ASC").
		Find(&matches).Error
	if err != nil {
		return nil, apperr.Transient(err)
	}
	return matches, nil
}

// Submit records a submitted score on a pending match.
func (r *repository) Submit(ctx context.Context, id string, score model.Score, by string) (bool, error) {
	return r.transition(ctx, id, model.StatusPending, map[string]interface{}{
		"status":            model.StatusSubmitted,
		"submitted_score_a": score.A,
		"submitted_score_b": score.B,
		"submitted_by":      by,
	})
}

// ConfirmSubmitted copies the submitted score into the final score.
func (r *repository) ConfirmSubmitted(ctx context.Context, id string) (bool, error) {
	return r.transition(ctx, id, model.StatusSubmitted, map[string]interface{}{
		"status":        model.StatusConfirmed,
		"final_score_a": gorm.Expr("submitted_score_a"),
		"final_score_b": gorm.Expr("submitted_score_b"),
	})
}

// ConfirmPending records a final score directly on a pending match.
func (r *repository) ConfirmPending(ctx context.Context, id string, score model.Score, by string) (bool, error) {
	return r.transition(ctx, id, model.StatusPending, map[string]interface{}{
		"status":            model.StatusConfirmed,
		"submitted_score_a": score.A,
		"submitted_score_b": score.B,
		"submitted_by":      by,
		"final_score_a":     score.A,
		"final_score_b":     score.B,
	})
}

// Adjust overwrites the final score from any status.
func (r *repository) Adjust(ctx context.Context, id string, score model.Score) error {
	result := r.db.WithContext(ctx).
		Model(&model.Match{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        model.StatusAdjusted,
			"final_score_a": score.A,
			"final_score_b": score.B,
			"updated_at":    time.Now().UTC(),
		})
	if result.Error != nil {
		return apperr.Transient(result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrMatchNotFound
	}
	return nil
}

// DeleteOpenByTeam removes the team's pending and submitted matches.
func (r *repository) DeleteOpenByTeam(ctx context.Context, teamID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("(side_a_id = ? OR side_b_id = ?) AND status IN ?", teamID, teamID, model.OpenStatuses).
		Delete(&model.Match{})
	if result.Error != nil {
		return 0, apperr.Transient(result.Error)
	}
	return result.RowsAffected, nil
}

// transition applies values only while the match is still in from.
func (r *repository) transition(
	ctx context.Context,
	id string,
	from model.Status,
	values map[string]interface{},
) (bool, error) {
	values["updated_at"] = time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&model.Match{}).
		Where("id = ? AND status = ?", id, from).
		Updates(values)
	if result.Error != nil {
		return false, apperr.Transient(result.Error)
	}
	return result.RowsAffected == 1, nil
}
