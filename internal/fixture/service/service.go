// Package service exposes fixture generation as an administrative operation.
package service

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/abnerteste26-bot/group-champs/internal/audit"
	"github.com/abnerteste26-bot/group-champs/internal/fixture"
	"github.com/abnerteste26-bot/group-champs/internal/identity"
)

// Service defines the interface for fixture operations.
type Service interface {
	// GenerateGroupFixtures creates every group-stage match of a championship.
	GenerateGroupFixtures(ctx context.Context, actor identity.Identity, championshipID string) (int, error)
}

type service struct {
	db     *gorm.DB
	audit  audit.Logger
	logger *zap.SugaredLogger
}

// New creates a new fixture service instance.
func New(db *gorm.DB, auditLog audit.Logger, logger *zap.SugaredLogger) Service {
	return &service{
		db:     db,
		audit:  auditLog,
		logger: logger,
	}
}

// GenerateGroupFixtures creates every group-stage match of a championship.
func (s *service) GenerateGroupFixtures(
	ctx context.Context,
	actor identity.Identity,
	championshipID string,
) (int, error) {
	if err := identity.RequireAdmin(actor); err != nil {
		return 0, err
	}

	var created int
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		created, txErr = fixture.GenerateInTx(ctx, tx, championshipID)
		return txErr
	})
	if err != nil {
		return 0, err
	}

	s.logger.Infow("group fixtures generated", "championship_id", championshipID, "matches", created)
	s.audit.Record(ctx, actor.Subject, audit.ActionGenerateFixtures, map[string]interface{}{
		"championship_id": championshipID,
		"count":           created,
	})
	return created, nil
}
