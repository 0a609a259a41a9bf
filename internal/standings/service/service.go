// Package service provides business logic layer for standings.
package service

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/abnerteste26-bot/group-champs/internal/audit"
	championshipRepository "github.com/abnerteste26-bot/group-champs/internal/championship/repository"
	groupRepository "github.com/abnerteste26-bot/group-champs/internal/group/repository"
	"github.com/abnerteste26-bot/group-champs/internal/identity"
	"github.com/abnerteste26-bot/group-champs/internal/standings"
	"github.com/abnerteste26-bot/group-champs/internal/standings/model"
	"github.com/abnerteste26-bot/group-champs/internal/standings/repository"
)

// Service defines the interface for standings operations.
type Service interface {
	// RecomputeStandings rebuilds one group's table on administrator request.
	RecomputeStandings(
		ctx context.Context,
		actor identity.Identity,
		championshipID, groupID string,
	) (*model.RecomputeResponse, error)
	// GetStandings returns every group's table, by group name then rank.
	GetStandings(ctx context.Context, championshipID string) (*model.StandingsResponse, error)
}

type service struct {
	repo   repository.Repository
	db     *gorm.DB
	audit  audit.Logger
	logger *zap.SugaredLogger
}

// New creates a new standings service instance.
func New(repo repository.Repository, db *gorm.DB, auditLog audit.Logger, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		db:     db,
		audit:  auditLog,
		logger: logger,
	}
}

// RecomputeStandings rebuilds one group's table on administrator request.
func (s *service) RecomputeStandings(
	ctx context.Context,
	actor identity.Identity,
	championshipID, groupID string,
) (*model.RecomputeResponse, error) {
	if err := identity.RequireAdmin(actor); err != nil {
		return nil, err
	}

	var rows []model.StandingRow
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		rows, txErr = standings.RecomputeInTx(ctx, tx, championshipID, groupID)
		return txErr
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("standings recomputed", "championship_id", championshipID, "group_id", groupID, "rows", len(rows))
	s.audit.Record(ctx, actor.Subject, audit.ActionRecomputeStandings, map[string]interface{}{
		"championship_id": championshipID,
		"group_id":        groupID,
	})

	return &model.RecomputeResponse{GroupID: groupID, Rows: len(rows)}, nil
}

// GetStandings returns every group's table. Groups without rows are listed empty.
func (s *service) GetStandings(ctx context.Context, championshipID string) (*model.StandingsResponse, error) {
	if _, err := championshipRepository.New(s.db).GetByID(ctx, championshipID); err != nil {
		return nil, err
	}

	groups, err := groupRepository.New(s.db).ListByChampionship(ctx, championshipID)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.ListTable(ctx, championshipID)
	if err != nil {
		return nil, err
	}

	byGroup := make(map[string][]model.TableRow, len(groups))
	for _, row := range rows {
		byGroup[row.GroupID] = append(byGroup[row.GroupID], row)
	}

	resp := &model.StandingsResponse{
		ChampionshipID: championshipID,
		Groups:         make([]model.GroupTable, 0, len(groups)),
	}
	for _, g := range groups {
		table := byGroup[g.ID]
		if table == nil {
			table = []model.TableRow{}
		}
		resp.Groups = append(resp.Groups, model.GroupTable{
			GroupID:   g.ID,
			GroupName: g.Name,
			Rows:      table,
		})
	}
	return resp, nil
}
