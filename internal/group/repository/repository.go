// Package repository provides data access layer for groups and memberships.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/abnerteste26-bot/group-champs/internal/apperr"
	"github.com/abnerteste26-bot/group-champs/internal/database/dberr"
	"github.com/abnerteste26-bot/group-champs/internal/group/model"
)

// Repository defines the interface for group data access operations.
type Repository interface {
	// CreateGroups inserts one group per name.
	CreateGroups(ctx context.Context, championshipID string, names []string) ([]model.Group, error)
	// ListByChampionship returns the championship's groups by name.
	ListByChampionship(ctx context.Context, championshipID string) ([]model.Group, error)
	// GetByID finds a group by id.
	GetByID(ctx context.Context, id string) (*model.Group, error)
	// Loads returns every group with its member count, least loaded first,
	// ties broken by name.
	Loads(ctx context.Context, championshipID string) ([]model.GroupLoad, error)
	// CountMembers returns the number of memberships in the championship.
	CountMembers(ctx context.Context, championshipID string) (int64, error)
	// AddMember inserts a membership.
	AddMember(ctx context.Context, m *model.GroupMembership) error
	// GetMembership returns the membership of a team.
	GetMembership(ctx context.Context, teamID string) (*model.GroupMembership, error)
	// DeleteMembership removes the membership of a team.
	DeleteMembership(ctx context.Context, teamID string) error
	// ListMembers returns memberships with team names, by group then join order.
	ListMembers(ctx context.Context, championshipID string) ([]model.MemberRow, error)
	// MemberIDs returns the group's team ids in join order.
	MemberIDs(ctx context.Context, groupID string) ([]string, error)
	// MemberIDsByTeamCreation returns the group's team ids in team creation order.
	MemberIDsByTeamCreation(ctx context.Context, groupID string) ([]string, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new group repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateGroups inserts one group per name.
func (r *repository) CreateGroups(ctx context.Context, championshipID string, names []string) ([]model.Group, error) {
	groups := make([]model.Group, 0, len(names))
	for _, name := range names {
		groups = append(groups, model.Group{
			ID:             uuid.NewString(),
			ChampionshipID: championshipID,
			Name:           name,
		})
	}
	if err := r.db.WithContext(ctx).Create(&groups).Error; err != nil {
		return nil, apperr.Transient(err)
	}
	return groups, nil
}

// ListByChampionship returns the championship's groups by name.
func (r *repository) ListByChampionship(ctx context.Context, championshipID string) ([]model.Group, error) {
	var groups []model.Group
	err := r.db.WithContext(ctx).
		Where("championship_id = ?", championshipID).
		Order("name ASC").
		Find(&groups).Error
	if err != nil {
		return nil, apperr.Transient(err)
	}
	return groups, nil
}

// GetByID finds a group by id.
func (r *repository) GetByID(ctx context.Context, id string) (*model.Group, error) {
	var g model.Group
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&g).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrGroupNotFound
		}
		return nil, apperr.Transient(err)
	}
	return &g, nil
}

// Loads returns every group with its member count.
func (r *repository) Loads(ctx context.Context, championshipID string) ([]model.GroupLoad, error) {
	var loads []model.GroupLoad
	err := r.db.WithContext(ctx).
		Table("championship_groups AS g").
		Select("g.id AS group_id, g.name AS name, COUNT(gm.id) AS members").
		Joins("LEFT JOIN group_memberships gm ON gm.group_id = g.id").
		Where("g.championship_id = ?", championshipID).
		Group("g.id, g.name").
		Order("members ASC, g.name ASC").
		Scan(&loads).Error
	if err != nil {
		return nil, apperr.Transient(err)
	}
	return loads, nil
}

// CountMembers returns the number of memberships in the championship.
func (r *repository) CountMembers(ctx context.Context, championshipID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.GroupMembership{}).
		Where("championship_id = ?", championshipID).
		Count(&count).Error
	return count, apperr.Transient(err)
}

// AddMember inserts a membership. A second membership for the same team
// violates the unique index on team_id.
func (r *repository) AddMember(ctx context.Context, m *model.GroupMembership) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if dberr.IsDuplicate(err) {
			return model.ErrAlreadyMember
		}
		return apperr.Transient(err)
	}
	return nil
}

// GetMembership returns the membership of a team.
func (r *repository) GetMembership(ctx context.Context, teamID string) (*model.GroupMembership, error) {
	var m model.GroupMembership
	err := r.db.WithContext(ctx).Where("team_id = ?", teamID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrMembershipNotFound
		}
		return nil, apperr.Transient(err)
	}
	return &m, nil
}

// DeleteMembership removes the membership of a team.
func (r *repository) DeleteMembership(ctx context.Context, teamID string) error {
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Delete(&model.GroupMembership{}).Error
	return apperr.Transient(err)
}

// ListMembers returns memberships with team names, by group then join order.
func (r *repository) ListMembers(ctx context.Context, championshipID string) ([]model.MemberRow, error) {
	var rows []model.MemberRow
	err := r.db.WithContext(ctx).
		Table("group_memberships AS gm").
		Select("gm.group_id, gm.team_id, t.name AS team_name, gm.joined_at").
		Joins("JOIN teams t ON t.id = gm.team_id").
		Where("gm.championship_id = ?", championshipID).
		Order("gm.group_id ASC, gm.joined_at ASC, gm.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperr.Transient(err)
	}
	return rows, nil
}

// MemberIDs returns the group's team ids in join order.
func (r *repository) MemberIDs(ctx context.Context, groupID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&model.GroupMembership{}).
		Where("group_id = ?", groupID).
		Order("joined_at ASC, id ASC").
		Pluck("team_id", &ids).Error
	if err != nil {
		return nil, apperr.Transient(err)
	}
	return ids, nil
}

// MemberIDsByTeamCreation returns the group's team ids in team creation order.
func (r *repository) MemberIDsByTeamCreation(ctx context.Context, groupID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Table("group_memberships AS gm").
		Joins("JOIN teams t ON t.id = gm.team_id").
		Where("gm.group_id = ?", groupID).
		Order("t.created_at ASC, t.id ASC").
		Pluck("gm.team_id", &ids).Error
	if err != nil {
		return nil, apperr.Transient(err)
	}
	return ids, nil
}
