package standings

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	groupRepository "github.com/abnerteste26-bot/group-champs/internal/group/repository"
	matchRepository "github.com/abnerteste26-bot/group-champs/internal/match/repository"
	"github.com/abnerteste26-bot/group-champs/internal/standings/model"
	"github.com/abnerteste26-bot/group-champs/internal/standings/repository"
)

// RecomputeInTx rebuilds a group's table from its confirmed and adjusted
// matches and replaces the stored rows inside tx.
func RecomputeInTx(ctx context.Context, tx *gorm.DB, championshipID, groupID string) ([]model.StandingRow, error) {
	groupRepo := groupRepository.New(tx)

	group, err := groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group.ChampionshipID != championshipID {
		return nil, model.ErrGroupNotInChampionship
	}

	teams, err := groupRepo.MemberIDsByTeamCreation(ctx, groupID)
	if err != nil {
		return nil, err
	}
	matches, err := matchRepository.New(tx).ListFinalByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(matches))
	for _, m := range matches {
		if m.FinalScoreA == nil || m.FinalScoreB == nil {
			continue
		}
		results = append(results, Result{
			SideA:  m.SideAID,
			SideB:  m.SideBID,
			GoalsA: *m.FinalScoreA,
			GoalsB: *m.FinalScoreB,
		})
	}

	rows := Calculate(teams, results)
	now := time.Now().UTC()
	for i := range rows {
		rows[i].ID = uuid.NewString()
		rows[i].ChampionshipID = championshipID
		rows[i].GroupID = groupID
		rows[i].UpdatedAt = now
	}

	if err := repository.New(tx).ReplaceGroup(ctx, groupID, rows); err != nil {
		return nil, err
	}
	return rows, nil
}
