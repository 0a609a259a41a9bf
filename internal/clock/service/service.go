// Package service implements the per-championship session clock.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"gorm.io/gorm"

	championshipRepository "github.com/abnerteste26-bot/group-champs/internal/championship/repository"
	"github.com/abnerteste26-bot/group-champs/internal/clock/model"
	"github.com/abnerteste26-bot/group-champs/internal/clock/repository"
	"github.com/abnerteste26-bot/group-champs/internal/identity"
)

// Service defines the interface for session clock operations.
type Service interface {
	// StartClock starts the clock, creating it if needed. Starting a running
	// clock changes nothing.
	StartClock(ctx context.Context, actor identity.Identity, championshipID string) (*model.ClockResponse, error)
	// PauseClock stops a running clock and accumulates the elapsed interval.
	PauseClock(ctx context.Context, actor identity.Identity, championshipID string) (*model.ClockResponse, error)
	// ResetClock stops the clock and zeroes it.
	ResetClock(ctx context.Context, actor identity.Identity, championshipID string) (*model.ClockResponse, error)
	// GetClock returns the clock with its elapsed time.
	GetClock(ctx context.Context, championshipID string) (*model.ClockResponse, error)
}

type service struct {
	repo   repository.Repository
	db     *gorm.DB
	clock  clockwork.Clock
	logger *zap.SugaredLogger
}

// New creates a new clock service instance.
func New(repo repository.Repository, db *gorm.DB, clock clockwork.Clock, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		db:     db,
		clock:  clock,
		logger: logger,
	}
}

// NewStopped returns a stopped clock for a championship.
func NewStopped(championshipID string, now time.Time) *model.SessionClock {
	return &model.SessionClock{
		ID:             uuid.NewString(),
		ChampionshipID: championshipID,
		Status:         model.StatusStopped,
		UpdatedAt:      now,
	}
}

// StartClock starts the clock.
func (s *service) StartClock(
	ctx context.Context,
	actor identity.Identity,
	championshipID string,
) (*model.ClockResponse, error) {
	if err := identity.RequireAdmin(actor); err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	var clock *model.SessionClock
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo, err := s.ensure(ctx, tx, championshipID, now)
		if err != nil {
			return err
		}

		started, err := txRepo.Start(ctx, championshipID, now)
		if err != nil {
			return err
		}
		if started {
			s.logger.Infow("clock started", "championship_id", championshipID)
		}

		clock, err = txRepo.Get(ctx, championshipID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return s.respond(clock), nil
}

// PauseClock stops a running clock. The update is keyed on the observed
// started_at so a concurrent pause cannot add the interval twice.
func (s *service) PauseClock(
	ctx context.Context,
	actor identity.Identity,
	championshipID string,
) (*model.ClockResponse, error) {
	if err := identity.RequireAdmin(actor); err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	var clock *model.SessionClock
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		current, err := txRepo.Get(ctx, championshipID)
		if err != nil {
			return err
		}
		if current.Status != model.StatusRunning || current.StartedAt == nil {
			return model.ErrClockNotRunning
		}

		interval := now.Sub(*current.StartedAt).Seconds()
		if interval < 0 {
			interval = 0
		}

		paused, err := txRepo.Pause(ctx, championshipID, *current.StartedAt, now, interval)
		if err != nil {
			return err
		}
		if !paused {
			return model.ErrClockNotRunning
		}

		clock, err = txRepo.Get(ctx, championshipID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("clock paused", "championship_id", championshipID, "accumulated_seconds", clock.AccumulatedSeconds)
	return s.respond(clock), nil
}

// ResetClock stops the clock and zeroes it from any state.
func (s *service) ResetClock(
	ctx context.Context,
	actor identity.Identity,
	championshipID string,
) (*model.ClockResponse, error) {
	if err := identity.RequireAdmin(actor); err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	var clock *model.SessionClock
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo, err := s.ensure(ctx, tx, championshipID, now)
		if err != nil {
			return err
		}
		if err := txRepo.Reset(ctx, championshipID, now); err != nil {
			return err
		}

		clock, err = txRepo.Get(ctx, championshipID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("clock reset", "championship_id", championshipID)
	return s.respond(clock), nil
}

// GetClock returns the clock with its elapsed time.
func (s *service) GetClock(ctx context.Context, championshipID string) (*model.ClockResponse, error) {
	clock, err := s.repo.Get(ctx, championshipID)
	if err != nil {
		return nil, err
	}
	return s.respond(clock), nil
}

// ensure creates a stopped clock for an existing championship that has none.
func (s *service) ensure(
	ctx context.Context,
	tx *gorm.DB,
	championshipID string,
	now time.Time,
) (repository.Repository, error) {
	txRepo := repository.New(tx)

	_, err := txRepo.Get(ctx, championshipID)
	if err == nil {
		return txRepo, nil
	}
	if !errors.Is(err, model.ErrClockNotFound) {
		return nil, err
	}

	if _, err := championshipRepository.New(tx).GetByID(ctx, championshipID); err != nil {
		return nil, err
	}
	if err := txRepo.Create(ctx, NewStopped(championshipID, now)); err != nil {
		return nil, err
	}
	return txRepo, nil
}

func (s *service) respond(c *model.SessionClock) *model.ClockResponse {
	elapsed := c.Elapsed(s.clock.Now())
	resp := &model.ClockResponse{
		ChampionshipID:     c.ChampionshipID,
		Status:             c.Status,
		AccumulatedSeconds: c.AccumulatedSeconds,
		ElapsedSeconds:     elapsed.Seconds(),
		Display:            FormatElapsed(elapsed),
	}
	if c.StartedAt != nil {
		resp.StartedAt = c.StartedAt.UTC().Format(time.RFC3339)
	}
	if c.PausedAt != nil {
		resp.PausedAt = c.PausedAt.UTC().Format(time.RFC3339)
	}
	return resp
}

// FormatElapsed renders d as HH:MM:SS, truncating fractions of a second.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total/60)%60, total%60)
}
