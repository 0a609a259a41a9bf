// Package service implements the championship lifecycle.
package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/abnerteste26-bot/group-champs/internal/audit"
	"github.com/abnerteste26-bot/group-champs/internal/championship/model"
	"github.com/abnerteste26-bot/group-champs/internal/championship/repository"
	clockRepository "github.com/abnerteste26-bot/group-champs/internal/clock/repository"
	clockService "github.com/abnerteste26-bot/group-champs/internal/clock/service"
	"github.com/abnerteste26-bot/group-champs/internal/config"
	"github.com/abnerteste26-bot/group-champs/internal/fixture"
	groupRepository "github.com/abnerteste26-bot/group-champs/internal/group/repository"
	"github.com/abnerteste26-bot/group-champs/internal/identity"
)

const maxLabelLength = 255

// Service defines the interface for championship lifecycle operations.
type Service interface {
	// CreateChampionship creates a championship with its groups and a stopped clock.
	CreateChampionship(ctx context.Context, actor identity.Identity, req *model.CreateChampionshipRequest) (*model.ChampionshipResponse, error)
	// GetChampionship returns a championship.
	GetChampionship(ctx context.Context, championshipID string) (*model.ChampionshipResponse, error)
	// ListActive returns the non-finished championships, oldest first.
	ListActive(ctx context.Context) ([]model.ChampionshipResponse, error)
	// CloseRegistration closes registration and generates the group fixtures.
	CloseRegistration(ctx context.Context, actor identity.Identity, championshipID string) (*model.CloseRegistrationResponse, error)
	// CloseChampionship finishes a championship and provisions its successor
	// when the pool has room.
	CloseChampionship(ctx context.Context, actor identity.Identity, championshipID string) (*model.CloseChampionshipResponse, error)
}

type service struct {
	repo   repository.Repository
	db     *gorm.DB
	cfg    config.TournamentConfig
	audit  audit.Logger
	logger *zap.SugaredLogger
}

// New creates a new championship service instance.
func New(
	repo repository.Repository,
	db *gorm.DB,
	cfg config.TournamentConfig,
	auditLog audit.Logger,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:   repo,
		db:     db,
		cfg:    cfg,
		audit:  auditLog,
		logger: logger,
	}
}

// CreateChampionship validates the request, enforces the pool bound and
// active-name uniqueness, and creates everything in one transaction.
func (s *service) CreateChampionship(
	ctx context.Context,
	actor identity.Identity,
	req *model.CreateChampionshipRequest,
) (*model.ChampionshipResponse, error) {
	if err := identity.RequireAdmin(actor); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	edition := strings.TrimSpace(req.Edition)
	if !validLabel(name) {
		return nil, model.ErrInvalidName
	}
	if !validLabel(edition) {
		return nil, model.ErrInvalidEdition
	}

	maxTeams := s.cfg.DefaultMaxTeams
	if req.MaxTeams != nil {
		maxTeams = *req.MaxTeams
	}
	if maxTeams <= 0 || maxTeams%len(model.GroupNames) != 0 {
		return nil, model.ErrInvalidMaxTeams
	}

	policy := req.ConfirmationPolicy
	if policy == "" {
		policy = model.ConfirmationPolicy(s.cfg.ConfirmationPolicy)
	}
	if !policy.Valid() {
		return nil, model.ErrInvalidPolicy
	}

	var created *model.Championship
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		active, err := repository.New(tx).ListActive(ctx)
		if err != nil {
			return err
		}
		if len(active) >= s.cfg.PoolSize {
			return model.ErrPoolFull
		}
		for _, c := range active {
			if c.Name == name {
				return model.ErrNameInUse
			}
		}

		created, err = provision(ctx, tx, name, edition, maxTeams, policy)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("championship created", "championship_id", created.ID, "name", created.Name)
	s.audit.Record(ctx, actor.Subject, audit.ActionCreateChampionship, map[string]interface{}{
		"championship_id":     created.ID,
		"name":                created.Name,
		"max_teams":           created.MaxTeams,
		"confirmation_policy": created.ConfirmationPolicy,
	})

	resp := model.ToResponse(created)
	return &resp, nil
}

// GetChampionship returns a championship.
func (s *service) GetChampionship(ctx context.Context, championshipID string) (*model.ChampionshipResponse, error) {
	c, err := s.repo.GetByID(ctx, championshipID)
	if err != nil {
		return nil, err
	}
	resp := model.ToResponse(c)
	return &resp, nil
}

// ListActive returns the non-finished championships, oldest first.
func (s *service) ListActive(ctx context.Context) ([]model.ChampionshipResponse, error) {
	list, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]model.ChampionshipResponse, 0, len(list))
	for i := range list {
		result = append(result, model.ToResponse(&list[i]))
	}
	return result, nil
}

// CloseRegistration closes registration early and generates the fixtures
// for the teams admitted so far.
func (s *service) CloseRegistration(
	ctx context.Context,
	actor identity.Identity,
	championshipID string,
) (*model.CloseRegistrationResponse, error) {
	if err := identity.RequireAdmin(actor); err != nil {
		return nil, err
	}

	var count int
	var updated *model.Championship
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		if err := txRepo.Lock(ctx, championshipID); err != nil {
			return err
		}
		c, err := txRepo.GetByID(ctx, championshipID)
		if err != nil {
			return err
		}
		if c.IsFinished() {
			return model.ErrAlreadyFinished
		}
		if !c.RegistrationOpen {
			return model.ErrRegistrationAlreadyClosed
		}

		if err := txRepo.SetStatus(ctx, championshipID, model.StatusRegistrationClosed, false); err != nil {
			return err
		}
		count, err = fixture.GenerateInTx(ctx, tx, championshipID)
		if err != nil {
			return err
		}

		updated, err = txRepo.GetByID(ctx, championshipID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("registration closed", "championship_id", championshipID, "fixtures", count)
	s.audit.Record(ctx, actor.Subject, audit.ActionCloseRegistration, map[string]interface{}{
		"championship_id":  championshipID,
		"fixtures_created": count,
	})

	return &model.CloseRegistrationResponse{
		Championship:    model.ToResponse(updated),
		FixturesCreated: count,
	}, nil
}

// CloseChampionship finishes the championship and, when the pool has room,
// provisions a successor in the same transaction.
func (s *service) CloseChampionship(
	ctx context.Context,
	actor identity.Identity,
	championshipID string,
) (*model.CloseChampionshipResponse, error) {
	if err := identity.RequireAdmin(actor); err != nil {
		return nil, err
	}

	var closed, successor *model.Championship
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		if err := txRepo.Lock(ctx, championshipID); err != nil {
			return err
		}
		c, err := txRepo.GetByID(ctx, championshipID)
		if err != nil {
			return err
		}
		if c.IsFinished() {
			return model.ErrAlreadyFinished
		}
		if err := txRepo.SetStatus(ctx, championshipID, model.StatusFinished, false); err != nil {
			return err
		}
		closed, err = txRepo.GetByID(ctx, championshipID)
		if err != nil {
			return err
		}

		active, err := txRepo.ListActive(ctx)
		if err != nil {
			return err
		}
		if len(active) >= s.cfg.PoolSize {
			return nil
		}

		names := make([]string, 0, len(active))
		for _, a := range active {
			names = append(names, a.Name)
		}
		successor, err = provision(ctx, tx, SuccessorName(closed.Name, names), closed.Edition, model.DefaultMaxTeams, closed.ConfirmationPolicy)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("championship closed", "championship_id", championshipID)
	s.audit.Record(ctx, actor.Subject, audit.ActionCloseChampionship, map[string]interface{}{
		"championship_id": championshipID,
	})

	resp := &model.CloseChampionshipResponse{Championship: model.ToResponse(closed)}
	if successor != nil {
		s.logger.Infow("successor provisioned", "championship_id", successor.ID, "name", successor.Name)
		s.audit.Record(ctx, actor.Subject, audit.ActionProvisionSuccessor, map[string]interface{}{
			"championship_id": successor.ID,
			"predecessor_id":  championshipID,
			"name":            successor.Name,
		})
		next := model.ToResponse(successor)
		resp.Successor = &next
	}
	return resp, nil
}

// provision inserts an open championship with its groups and a stopped clock.
func provision(
	ctx context.Context,
	tx *gorm.DB,
	name, edition string,
	maxTeams int,
	policy model.ConfirmationPolicy,
) (*model.Championship, error) {
	now := time.Now().UTC()
	c := &model.Championship{
		ID:                 uuid.NewString(),
		Name:               name,
		Edition:            edition,
		Status:             model.StatusRegistrationOpen,
		RegistrationOpen:   true,
		MaxTeams:           maxTeams,
		ConfirmationPolicy: policy,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := repository.New(tx).Create(ctx, c); err != nil {
		return nil, err
	}
	if _, err := groupRepository.New(tx).CreateGroups(ctx, c.ID, model.GroupNames); err != nil {
		return nil, err
	}
	if err := clockRepository.New(tx).Create(ctx, clockService.NewStopped(c.ID, now)); err != nil {
		return nil, err
	}
	return c, nil
}

func validLabel(s string) bool {
	n := utf8.RuneCountInString(s)
	return n > 0 && n <= maxLabelLength
}
