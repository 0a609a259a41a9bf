// Package repository provides data access layer for standings.
package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/abnerteste26-bot/group-champs/internal/apperr"
	"github.com/abnerteste26-bot/group-champs/internal/standings/model"
)

// Repository defines the interface for standings data access operations.
type Repository interface {
	// ReplaceGroup deletes the group's rows and inserts rows in their place.
	ReplaceGroup(ctx context.Context, groupID string, rows []model.StandingRow) error
	// DeleteByTeam removes a team's row.
	DeleteByTeam(ctx context.Context, teamID string) error
	// ListTable returns the championship's rows with names, by group name then rank.
	ListTable(ctx context.Context, championshipID string) ([]model.TableRow, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new standings repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// ReplaceGroup must run inside a transaction so readers never see a
// partially replaced table.
func (r *repository) ReplaceGroup(ctx context.Context, groupID string, rows []model.StandingRow) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("group_id = ?", groupID).Delete(&model.StandingRow{}).Error; err != nil {
		return apperr.Transient(err)
	}
	if len(rows) == 0 {
		return nil
	}
	return apperr.Transient(db.Create(&rows).Error)
}

// DeleteByTeam removes a team's row.
func (r *repository) DeleteByTeam(ctx context.Context, teamID string) error {
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Delete(&model.StandingRow{}).Error
	return apperr.Transient(err)
}

// ListTable returns the championship's rows with names, by group name then rank.
func (r *repository) ListTable(ctx context.Context, championshipID string) ([]model.TableRow, error) {
	var rows []model.TableRow
	err := r.db.WithContext(ctx).
		Table("standings AS s").
		Select(`s.group_id, g.name AS group_name, s.team_id, t.name AS team_name, s.rank,
			s.played, s.won, s.drawn, s.lost, s.goals_for, s.goals_against, s.goal_difference, s.points`).
		Joins("JOIN championship_groups g ON g.id = s.group_id").
		Joins("JOIN teams t ON t.id = s.team_id").
		Where("s.championship_id = ?", championshipID).
		Order("g.name ASC, s.rank ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperr.Transient(err)
	}
	return rows, nil
}
