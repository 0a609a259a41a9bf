// Package repository provides data access layer for team module.
package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/abnerteste26-bot/group-champs/internal/apperr"
	"github.com/abnerteste26-bot/group-champs/internal/database/dberr"
	teamModel "github.com/abnerteste26-bot/group-champs/internal/team/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// Create inserts a new team.
	Create(ctx context.Context, team *teamModel.Team) error

	// GetByID finds team by id.
	GetByID(ctx context.Context, id string) (*teamModel.Team, error)

	// ListByChampionship returns the championship's teams in creation order.
	ListByChampionship(ctx context.Context, championshipID string) ([]teamModel.Team, error)

	// SetActive updates the active flag.
	SetActive(ctx context.Context, id string, active bool) error

	// SetBadge stores the badge object reference.
	SetBadge(ctx context.Context, id, badgeRef string) error

	// Delete removes the team row.
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new team repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create inserts a new team. Names are unique per championship.
func (r *repository) Create(ctx context.Context, team *teamModel.Team) error {
	now := time.Now().UTC()
	if team.CreatedAt.IsZero() {
		team.CreatedAt = now
	}
	team.UpdatedAt = now

	err := r.db.WithContext(ctx).Create(team).Error
	if err != nil {
		if dberr.IsDuplicate(err) {
			return teamModel.ErrTeamNameTaken
		}
		return apperr.Transient(err)
	}
	return nil
}

// GetByID finds team by id.
func (r *repository) GetByID(ctx context.Context, id string) (*teamModel.Team, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&team).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		return nil, apperr.Transient(err)
	}

	return &team, nil
}

// ListByChampionship returns the championship's teams in creation order.
func (r *repository) ListByChampionship(ctx context.Context, championshipID string) ([]teamModel.Team, error) {
	var teams []teamModel.Team
	err := r.db.WithContext(ctx).
		Where("championship_id = ?", championshipID).
		Order("created_at ASC, id ASC").
		Find(&teams).Error
	if err != nil {
		return nil, apperr.Transient(err)
	}

	if teams == nil {
		return []teamModel.Team{}, nil
	}
	return teams, nil
}

// SetActive updates the active flag.
func (r *repository) SetActive(ctx context.Context, id string, active bool) error {
	return r.update(ctx, id, map[string]interface{}{"active": active})
}

// SetBadge stores the badge object reference.
func (r *repository) SetBadge(ctx context.Context, id, badgeRef string) error {
	return r.update(ctx, id, map[string]interface{}{"badge_ref": badgeRef})
}

// Delete removes the team row.
func (r *repository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&teamModel.Team{})
	if result.Error != nil {
		return apperr.Transient(result.Error)
	}
	if result.RowsAffected == 0 {
		return teamModel.ErrTeamNotFound
	}
	return nil
}

func (r *repository) update(ctx context.Context, id string, values map[string]interface{}) error {
	values["updated_at"] = time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&teamModel.Team{}).
		Where("id = ?", id).
		Updates(values)
	if result.Error != nil {
		return apperr.Transient(result.Error)
	}
	if result.RowsAffected == 0 {
		return teamModel.ErrTeamNotFound
	}
	return nil
}
