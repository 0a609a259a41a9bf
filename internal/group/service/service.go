// Package service provides the group allocator.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	championshipRepository "github.com/abnerteste26-bot/group-champs/internal/championship/repository"
	"github.com/abnerteste26-bot/group-champs/internal/group/model"
	"github.com/abnerteste26-bot/group-champs/internal/group/repository"
)

// Service defines the interface for group operations.
type Service interface {
	// AssignTeamToGroup places a team in the least loaded group of its championship.
	AssignTeamToGroup(ctx context.Context, championshipID, teamID string) (*model.Assignment, error)
	// ListGroups returns the championship's groups with members in join order.
	ListGroups(ctx context.Context, championshipID string) ([]model.GroupResponse, error)
}

type service struct {
	repo   repository.Repository
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new group service instance.
func New(repo repository.Repository, db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		db:     db,
		logger: logger,
	}
}

// AssignTeamToGroup places a team in its own transaction.
func (s *service) AssignTeamToGroup(ctx context.Context, championshipID, teamID string) (*model.Assignment, error) {
	var result *model.Assignment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		result, txErr = Assign(ctx, tx, championshipID, teamID)
		return txErr
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("team assigned to group",
		"championship_id", championshipID,
		"team_id", teamID,
		"group", result.GroupName,
	)
	return result, nil
}

// Assign places a team inside tx. It takes the championship row lock first,
// so concurrent assignments to one championship are serialized and the
// capacity check cannot be raced.
func Assign(ctx context.Context, tx *gorm.DB, championshipID, teamID string) (*model.Assignment, error) {
	champRepo := championshipRepository.New(tx)
	txRepo := repository.New(tx)

	if err := champRepo.Lock(ctx, championshipID); err != nil {
		return nil, err
	}
	championship, err := champRepo.GetByID(ctx, championshipID)
	if err != nil {
		return nil, err
	}

	// Capacity counts memberships, not the admission counter
	members, err := txRepo.CountMembers(ctx, championshipID)
	if err != nil {
		return nil, err
	}
	if members >= int64(championship.MaxTeams) {
		return nil, model.ErrCapacityExceeded
	}

	loads, err := txRepo.Loads(ctx, championshipID)
	if err != nil {
		return nil, err
	}
	if len(loads) == 0 {
		return nil, model.ErrNoGroups
	}
	target := loads[0]

	membership := &model.GroupMembership{
		ID:             uuid.NewString(),
		ChampionshipID: championshipID,
		GroupID:        target.GroupID,
		TeamID:         teamID,
		JoinedAt:       time.Now().UTC(),
	}
	if err := txRepo.AddMember(ctx, membership); err != nil {
		return nil, err
	}

	return &model.Assignment{
		GroupID:   target.GroupID,
		GroupName: target.Name,
		TeamID:    teamID,
		JoinedAt:  membership.JoinedAt,
	}, nil
}

// ListGroups returns the championship's groups with members in join order.
func (s *service) ListGroups(ctx context.Context, championshipID string) ([]model.GroupResponse, error) {
	if _, err := championshipRepository.New(s.db).GetByID(ctx, championshipID); err != nil {
		return nil, err
	}

	groups, err := s.repo.ListByChampionship(ctx, championshipID)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.ListMembers(ctx, championshipID)
	if err != nil {
		return nil, err
	}

	membersByGroup := make(map[string][]model.MemberResponse, len(groups))
	for _, row := range rows {
		membersByGroup[row.GroupID] = append(membersByGroup[row.GroupID], model.MemberResponse{
			TeamID:   row.TeamID,
			TeamName: row.TeamName,
			JoinedAt: row.JoinedAt.UTC().Format(time.RFC3339),
		})
	}

	result := make([]model.GroupResponse, 0, len(groups))
	for _, g := range groups {
		members := membersByGroup[g.ID]
		if members == nil {
			members = []model.MemberResponse{}
		}
		result = append(result, model.GroupResponse{
			ID:      g.ID,
			Name:    g.Name,
			Members: members,
		})
	}
	return result, nil
}
