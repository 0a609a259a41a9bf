// Package service provides business logic layer for team module.
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/abnerteste26-bot/group-champs/internal/audit"
	championshipRepository "github.com/abnerteste26-bot/group-champs/internal/championship/repository"
	groupModel "github.com/abnerteste26-bot/group-champs/internal/group/model"
	groupRepository "github.com/abnerteste26-bot/group-champs/internal/group/repository"
	"github.com/abnerteste26-bot/group-champs/internal/identity"
	matchRepository "github.com/abnerteste26-bot/group-champs/internal/match/repository"
	"github.com/abnerteste26-bot/group-champs/internal/standings"
	standingsRepository "github.com/abnerteste26-bot/group-champs/internal/standings/repository"
	"github.com/abnerteste26-bot/group-champs/internal/storage"
	teamModel "github.com/abnerteste26-bot/group-champs/internal/team/model"
	"github.com/abnerteste26-bot/group-champs/internal/team/repository"
)

// Service defines the interface for team business logic operations.
type Service interface {
	// GetTeam returns a team.
	GetTeam(ctx context.Context, teamID string) (*teamModel.TeamResponse, error)

	// ListTeams returns the championship's teams in creation order.
	ListTeams(ctx context.Context, championshipID string) ([]teamModel.TeamResponse, error)

	// SetTeamActive toggles the active flag.
	SetTeamActive(ctx context.Context, actor identity.Identity, teamID string, active bool) (*teamModel.TeamResponse, error)

	// SetBadge stores a badge reference that exists in the object store.
	SetBadge(ctx context.Context, actor identity.Identity, teamID, badgeRef string) (*teamModel.TeamResponse, error)

	// DeleteTeam removes a team with its open matches, membership and standing.
	DeleteTeam(ctx context.Context, actor identity.Identity, teamID string) (*teamModel.DeleteTeamResponse, error)
}

type service struct {
	repo   repository.Repository
	db     *gorm.DB
	store  storage.ReferenceValidator
	audit  audit.Logger
	logger *zap.SugaredLogger
}

// New creates a new team service instance.
func New(
	repo repository.Repository,
	db *gorm.DB,
	store storage.ReferenceValidator,
	auditLog audit.Logger,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:   repo,
		db:     db,
		store:  store,
		audit:  auditLog,
		logger: logger,
	}
}

// GetTeam returns a team.
func (s *service) GetTeam(ctx context.Context, teamID string) (*teamModel.TeamResponse, error) {
	team, err := s.repo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	resp := s.toResponse(team)
	return &resp, nil
}

// ListTeams returns the championship's teams in creation order.
func (s *service) ListTeams(ctx context.Context, championshipID string) ([]teamModel.TeamResponse, error) {
	if _, err := championshipRepository.New(s.db).GetByID(ctx, championshipID); err != nil {
		return nil, err
	}

	teams, err := s.repo.ListByChampionship(ctx, championshipID)
	if err != nil {
		return nil, err
	}

	result := make([]teamModel.TeamResponse, 0, len(teams))
	for i := range teams {
		result = append(result, s.toResponse(&teams[i]))
	}
	return result, nil
}

// SetTeamActive toggles the active flag. Admin only.
func (s *service) SetTeamActive(
	ctx context.Context,
	actor identity.Identity,
	teamID string,
	active bool,
) (*teamModel.TeamResponse, error) {
	if err := identity.RequireAdmin(actor); err != nil {
		return nil, err
	}

	if err := s.repo.SetActive(ctx, teamID, active); err != nil {
		return nil, err
	}
	team, err := s.repo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor.Subject, audit.ActionSetTeamActive, map[string]interface{}{
		"team_id": teamID,
		"active":  active,
	})

	resp := s.toResponse(team)
	return &resp, nil
}

// SetBadge stores a badge reference. Allowed for administrators and the
// owning team.
func (s *service) SetBadge(
	ctx context.Context,
	actor identity.Identity,
	teamID, badgeRef string,
) (*teamModel.TeamResponse, error) {
	if !actor.IsAdmin() && !actor.ActsFor(teamID) {
		return nil, identity.ErrForbidden
	}
	if badgeRef == "" {
		return nil, teamModel.ErrInvalidBadge
	}
	if err := s.store.Validate(ctx, badgeRef); err != nil {
		return nil, err
	}

	if err := s.repo.SetBadge(ctx, teamID, badgeRef); err != nil {
		return nil, err
	}
	team, err := s.repo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor.Subject, audit.ActionSetBadge, map[string]interface{}{
		"team_id":   teamID,
		"badge_ref": badgeRef,
	})

	resp := s.toResponse(team)
	return &resp, nil
}

// DeleteTeam removes the team in one transaction. Confirmed and adjusted
// matches are kept so the opponents' results still count.
func (s *service) DeleteTeam(
	ctx context.Context,
	actor identity.Identity,
	teamID string,
) (*teamModel.DeleteTeamResponse, error) {
	if err := identity.RequireAdmin(actor); err != nil {
		return nil, err
	}

	result := &teamModel.DeleteTeamResponse{TeamID: teamID}
	var championshipID string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)
		champRepo := championshipRepository.New(tx)
		groupRepo := groupRepository.New(tx)

		team, err := txRepo.GetByID(ctx, teamID)
		if err != nil {
			return err
		}
		championshipID = team.ChampionshipID

		if err := champRepo.Lock(ctx, championshipID); err != nil {
			return err
		}

		result.MatchesDeleted, err = matchRepository.New(tx).DeleteOpenByTeam(ctx, teamID)
		if err != nil {
			return err
		}

		membership, err := groupRepo.GetMembership(ctx, teamID)
		switch {
		case err == nil:
			result.GroupID = membership.GroupID
			if err := groupRepo.DeleteMembership(ctx, teamID); err != nil {
				return err
			}
		case errors.Is(err, groupModel.ErrMembershipNotFound):
		default:
			return err
		}

		if err := standingsRepository.New(tx).DeleteByTeam(ctx, teamID); err != nil {
			return err
		}
		if err := txRepo.Delete(ctx, teamID); err != nil {
			return err
		}
		if err := champRepo.DecrementConfirmed(ctx, championshipID); err != nil {
			return err
		}

		if result.GroupID != "" {
			if _, err := standings.RecomputeInTx(ctx, tx, championshipID, result.GroupID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("team deleted",
		"team_id", teamID,
		"championship_id", championshipID,
		"matches_deleted", result.MatchesDeleted,
	)
	s.audit.Record(ctx, actor.Subject, audit.ActionDeleteTeam, map[string]interface{}{
		"team_id":         teamID,
		"championship_id": championshipID,
		"group_id":        result.GroupID,
		"matches_deleted": result.MatchesDeleted,
	})

	return result, nil
}

func (s *service) toResponse(team *teamModel.Team) teamModel.TeamResponse {
	resp := teamModel.ToResponse(team)
	if resp.BadgeRef != "" {
		resp.BadgeURL = s.store.PublicURL(resp.BadgeRef)
	}
	return resp
}
