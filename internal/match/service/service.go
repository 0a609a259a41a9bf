// Package service implements the match result workflow.
package service

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/abnerteste26-bot/group-champs/internal/audit"
	championshipModel "github.com/abnerteste26-bot/group-champs/internal/championship/model"
	championshipRepository "github.com/abnerteste26-bot/group-champs/internal/championship/repository"
	"github.com/abnerteste26-bot/group-champs/internal/identity"
	"github.com/abnerteste26-bot/group-champs/internal/match/model"
	"github.com/abnerteste26-bot/group-champs/internal/match/repository"
	"github.com/abnerteste26-bot/group-champs/internal/standings"
)

// Service defines the interface for match result operations.
type Service interface {
	// SubmitMatchScore records a participant's score for administrator review.
	SubmitMatchScore(ctx context.Context, actor identity.Identity, matchID string, req model.ScoreRequest) (*model.MatchResponse, error)
	// ConfirmMatchScore finalizes the submitted score.
	ConfirmMatchScore(ctx context.Context, actor identity.Identity, matchID string) (*model.MatchResponse, error)
	// ConfirmMatchAsWinner lets the winning side finalize its own result.
	ConfirmMatchAsWinner(ctx context.Context, actor identity.Identity, matchID string, req model.ScoreRequest) (*model.MatchResponse, error)
	// AdjustMatchScore overwrites the final score.
	AdjustMatchScore(ctx context.Context, actor identity.Identity, matchID string, req model.ScoreRequest) (*model.MatchResponse, error)
	// GetMatch returns a match.
	GetMatch(ctx context.Context, matchID string) (*model.MatchResponse, error)
	// ListMatches returns a championship's matches ordered by round.
	ListMatches(ctx context.Context, championshipID string, filter model.ListMatchesFilter) ([]model.MatchResponse, error)
}

type service struct {
	repo   repository.Repository
	db     *gorm.DB
	audit  audit.Logger
	logger *zap.SugaredLogger
}

// New creates a new match service instance.
func New(repo repository.Repository, db *gorm.DB, auditLog audit.Logger, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		db:     db,
		audit:  auditLog,
		logger: logger,
	}
}

// SubmitMatchScore moves a pending match to submitted. Only participants of
// admin_review championships may submit.
func (s *service) SubmitMatchScore(
	ctx context.Context,
	actor identity.Identity,
	matchID string,
	req model.ScoreRequest,
) (*model.MatchResponse, error) {
	score, err := req.Validate()
	if err != nil {
		return nil, err
	}

	var updated *model.Match
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		match, policy, err := s.loadForParticipant(ctx, tx, actor, matchID)
		if err != nil {
			return err
		}
		if policy != championshipModel.PolicyAdminReview {
			return model.ErrWrongPolicy
		}
		if match.Status != model.StatusPending {
			return model.ErrAlreadySubmitted
		}

		applied, err := txRepo.Submit(ctx, matchID, score, actor.Subject)
		if err != nil {
			return err
		}
		if !applied {
			return model.ErrAlreadySubmitted
		}

		updated, err = txRepo.GetByID(ctx, matchID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("match score submitted", "match_id", matchID, "team_id", actor.TeamID)
	s.audit.Record(ctx, actor.Subject, audit.ActionSubmitScore, map[string]interface{}{
		"match_id": matchID,
		"score_a":  score.A,
		"score_b":  score.B,
		"team_id":  actor.TeamID,
	})

	resp := model.ToResponse(updated)
	return &resp, nil
}

// ConfirmMatchScore copies the submitted score into the final score.
func (s *service) ConfirmMatchScore(
	ctx context.Context,
	actor identity.Identity,
	matchID string,
) (*model.MatchResponse, error) {
	if err := identity.RequireAdmin(actor); err != nil {
		return nil, err
	}

	var updated *model.Match
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		match, err := txRepo.GetByID(ctx, matchID)
		if err != nil {
			return err
		}
		switch {
		case match.Status.IsFinal():
			return model.ErrAlreadyConfirmed
		case match.Status == model.StatusPending:
			return model.ErrNothingSubmitted
		}

		applied, err := txRepo.ConfirmSubmitted(ctx, matchID)
		if err != nil {
			return err
		}
		if !applied {
			return model.ErrAlreadyConfirmed
		}

		updated, err = s.finalize(ctx, tx, matchID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("match score confirmed", "match_id", matchID)
	s.audit.Record(ctx, actor.Subject, audit.ActionConfirmScore, map[string]interface{}{
		"match_id": matchID,
		"score_a":  derefScore(updated.FinalScoreA),
		"score_b":  derefScore(updated.FinalScoreB),
	})

	resp := model.ToResponse(updated)
	return &resp, nil
}

// ConfirmMatchAsWinner finalizes a pending match on the winner's word.
// Draws and scores that are not a win for the caller are rejected before
// the match is touched.
func (s *service) ConfirmMatchAsWinner(
	ctx context.Context,
	actor identity.Identity,
	matchID string,
	req model.ScoreRequest,
) (*model.MatchResponse, error) {
	score, err := req.Validate()
	if err != nil {
		return nil, err
	}
	if score.IsDraw() {
		return nil, model.ErrDrawRequiresAdmin
	}

	var updated *model.Match
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		match, policy, err := s.loadForParticipant(ctx, tx, actor, matchID)
		if err != nil {
			return err
		}
		if policy != championshipModel.PolicyWinnerCertifies {
			return model.ErrWrongPolicy
		}

		callerIsA := match.SideAID == actor.TeamID
		if callerIsA != score.WinnerIsSideA() {
			return model.ErrNotAWinningScore
		}
		if match.Status != model.StatusPending {
			return model.ErrAlreadyConfirmed
		}

		applied, err := txRepo.ConfirmPending(ctx, matchID, score, actor.Subject)
		if err != nil {
			return err
		}
		if !applied {
			return model.ErrAlreadyConfirmed
		}

		updated, err = s.finalize(ctx, tx, matchID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("match confirmed by winner", "match_id", matchID, "team_id", actor.TeamID)
	s.audit.Record(ctx, actor.Subject, audit.ActionConfirmAsWinner, map[string]interface{}{
		"match_id": matchID,
		"score_a":  score.A,
		"score_b":  score.B,
		"team_id":  actor.TeamID,
	})

	resp := model.ToResponse(updated)
	return &resp, nil
}

// AdjustMatchScore overwrites the final score from any status.
func (s *service) AdjustMatchScore(
	ctx context.Context,
	actor identity.Identity,
	matchID string,
	req model.ScoreRequest,
) (*model.MatchResponse, error) {
	if err := identity.RequireAdmin(actor); err != nil {
		return nil, err
	}
	score, err := req.Validate()
	if err != nil {
		return nil, err
	}

	var previous model.Status
	var updated *model.Match
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		match, err := txRepo.GetByID(ctx, matchID)
		if err != nil {
			return err
		}
		previous = match.Status

		if err := txRepo.Adjust(ctx, matchID, score); err != nil {
			return err
		}

		updated, err = s.finalize(ctx, tx, matchID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("match score adjusted", "match_id", matchID, "previous_status", previous)
	s.audit.Record(ctx, actor.Subject, audit.ActionAdjustScore, map[string]interface{}{
		"match_id":        matchID,
		"score_a":         score.A,
		"score_b":         score.B,
		"previous_status": previous,
	})

	resp := model.ToResponse(updated)
	return &resp, nil
}

// GetMatch returns a match.
func (s *service) GetMatch(ctx context.Context, matchID string) (*model.MatchResponse, error) {
	match, err := s.repo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	resp := model.ToResponse(match)
	return &resp, nil
}

// ListMatches returns a championship's matches ordered by round.
func (s *service) ListMatches(
	ctx context.Context,
	championshipID string,
	filter model.ListMatchesFilter,
) ([]model.MatchResponse, error) {
	if _, err := championshipRepository.New(s.db).GetByID(ctx, championshipID); err != nil {
		return nil, err
	}

	matches, err := s.repo.List(ctx, championshipID, filter)
	if err != nil {
		return nil, err
	}

	result := make([]model.MatchResponse, 0, len(matches))
	for i := range matches {
		result = append(result, model.ToResponse(&matches[i]))
	}
	return result, nil
}

// loadForParticipant returns the match and its championship's policy after
// checking that the caller plays in it.
func (s *service) loadForParticipant(
	ctx context.Context,
	tx *gorm.DB,
	actor identity.Identity,
	matchID string,
) (*model.Match, championshipModel.ConfirmationPolicy, error) {
	if actor.Role != identity.RoleTeam {
		return nil, "", identity.ErrForbidden
	}

	match, err := repository.New(tx).GetByID(ctx, matchID)
	if err != nil {
		return nil, "", err
	}
	if !match.Involves(actor.TeamID) {
		return nil, "", model.ErrNotParticipant
	}

	championship, err := championshipRepository.New(tx).GetByID(ctx, match.ChampionshipID)
	if err != nil {
		return nil, "", err
	}
	return match, championship.ConfirmationPolicy, nil
}

// finalize reloads the match and, for group matches, recomputes the group's
// standings in the same transaction.
func (s *service) finalize(ctx context.Context, tx *gorm.DB, matchID string) (*model.Match, error) {
	match, err := repository.New(tx).GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match.Phase == model.PhaseGroup && match.GroupID != nil {
		if _, err := standings.RecomputeInTx(ctx, tx, match.ChampionshipID, *match.GroupID); err != nil {
			return nil, err
		}
	}
	return match, nil
}

func derefScore(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
