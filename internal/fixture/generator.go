// Package fixture generates group-stage round-robin fixtures.
package fixture

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/abnerteste26-bot/group-champs/internal/apperr"
	championshipModel "github.com/abnerteste26-bot/group-champs/internal/championship/model"
	championshipRepository "github.com/abnerteste26-bot/group-champs/internal/championship/repository"
	"github.com/abnerteste26-bot/group-champs/internal/database/dberr"
	groupRepository "github.com/abnerteste26-bot/group-champs/internal/group/repository"
	matchModel "github.com/abnerteste26-bot/group-champs/internal/match/model"
	matchRepository "github.com/abnerteste26-bot/group-champs/internal/match/repository"
	"github.com/abnerteste26-bot/group-champs/internal/standings"
)

// ErrAlreadyGenerated indicates that group fixtures exist for the championship.
var ErrAlreadyGenerated = apperr.New(apperr.KindFixturesAlreadyGenerated, "group fixtures already generated")

// Pairing is one match of a round-robin schedule.
type Pairing struct {
	Round int
	SideA string
	SideB string
}

// RoundRobin schedules every unordered pair of teams exactly once using the
// circle method. An even n gives n-1 rounds of n/2 matches; an odd n adds a
// bye, and the team drawn against it sits the round out.
func RoundRobin(teams []string) []Pairing {
	if len(teams) < 2 {
		return nil
	}

	circle := make([]string, len(teams), len(teams)+1)
	copy(circle, teams)
	if len(circle)%2 == 1 {
		circle = append(circle, "")
	}
	n := len(circle)

	pairings := make([]Pairing, 0, len(teams)*(len(teams)-1)/2)
	for round := 1; round < n; round++ {
		for i := 0; i < n/2; i++ {
			a, b := circle[i], circle[n-1-i]
			if a == "" || b == "" {
				continue
			}
			pairings = append(pairings, Pairing{Round: round, SideA: a, SideB: b})
		}
		// The first team stays fixed; the rest rotate one step clockwise.
		last := circle[n-1]
		copy(circle[2:], circle[1:n-1])
		circle[1] = last
	}
	return pairings
}

// GenerateInTx creates the group-stage fixtures of a championship inside tx,
// seeds a zeroed table for every group and moves the championship to
// group_stage with registration closed. It returns the number of matches
// created.
//
// The championship row lock makes the existence check and the inserts atomic
// with respect to other generators; the unique pair index is the backstop.
func GenerateInTx(ctx context.Context, tx *gorm.DB, championshipID string) (int, error) {
	champRepo := championshipRepository.New(tx)
	groupRepo := groupRepository.New(tx)
	matchRepo := matchRepository.New(tx)

	if err := champRepo.Lock(ctx, championshipID); err != nil {
		return 0, err
	}
	championship, err := champRepo.GetByID(ctx, championshipID)
	if err != nil {
		return 0, err
	}
	if championship.IsFinished() {
		return 0, championshipModel.ErrAlreadyFinished
	}

	existing, err := matchRepo.CountByPhase(ctx, championshipID, matchModel.PhaseGroup)
	if err != nil {
		return 0, err
	}
	if existing > 0 {
		return 0, ErrAlreadyGenerated
	}

	groups, err := groupRepo.ListByChampionship(ctx, championshipID)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	var matches []matchModel.Match
	for _, g := range groups {
		members, err := groupRepo.MemberIDs(ctx, g.ID)
		if err != nil {
			return 0, err
		}
		groupID := g.ID
		for _, p := range RoundRobin(members) {
			matches = append(matches, matchModel.Match{
				ID:             uuid.NewString(),
				ChampionshipID: championshipID,
				GroupID:        &groupID,
				Phase:          matchModel.PhaseGroup,
				SideAID:        p.SideA,
				SideBID:        p.SideB,
				Round:          p.Round,
				Status:         matchModel.StatusPending,
				CreatedAt:      now,
				UpdatedAt:      now,
			})
		}
	}

	if err := matchRepo.CreateBatch(ctx, matches); err != nil {
		if dberr.IsDuplicate(err) {
			return 0, ErrAlreadyGenerated
		}
		return 0, err
	}

	// Never move a championship backwards from the knockout stage
	next := championship.Status
	if championship.Status.CanAdvanceTo(championshipModel.StatusGroupStage) {
		next = championshipModel.StatusGroupStage
	}
	if err := champRepo.SetStatus(ctx, championshipID, next, false); err != nil {
		return 0, err
	}

	for _, g := range groups {
		if _, err := standings.RecomputeInTx(ctx, tx, championshipID, g.ID); err != nil {
			return 0, err
		}
	}

	return len(matches), nil
}
