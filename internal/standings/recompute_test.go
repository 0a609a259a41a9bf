package standings

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	championshipModel "github.com/abnerteste26-bot/group-champs/internal/championship/model"
	"github.com/abnerteste26-bot/group-champs/internal/database/dbtest"
	groupModel "github.com/abnerteste26-bot/group-champs/internal/group/model"
	matchModel "github.com/abnerteste26-bot/group-champs/internal/match/model"
	"github.com/abnerteste26-bot/group-champs/internal/standings/model"
)

func seedMatch(t *testing.T, db *gorm.DB, g groupModel.Group, a, b string, status matchModel.Status, scoreA, scoreB *int) {
	t.Helper()
	groupID := g.ID
	now := time.Now().UTC()
	require.NoError(t, db.Create(&matchModel.Match{
		ID:             uuid.NewString(),
		ChampionshipID: g.ChampionshipID,
		GroupID:        &groupID,
		Phase:          matchModel.PhaseGroup,
		SideAID:        a,
		SideBID:        b,
		Round:          1,
		Status:         status,
		FinalScoreA:    scoreA,
		FinalScoreB:    scoreB,
		CreatedAt:      now,
		UpdatedAt:      now,
	}).Error)
}

func intPtr(v int) *int { return &v }

func recompute(t *testing.T, db *gorm.DB, championshipID, groupID string) ([]model.StandingRow, error) {
	var rows []model.StandingRow
	err := db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		rows, txErr = RecomputeInTx(context.Background(), tx, championshipID, groupID)
		return txErr
	})
	return rows, err
}

func TestRecomputeInTx(t *testing.T) {
	db := dbtest.Open(t)
	champ := dbtest.SeedChampionship(t, db, "Corujão", 16, championshipModel.PolicyAdminReview)
	group := champ.Groups["A"]

	leoes := dbtest.SeedMember(t, db, group, "Leões")
	tigres := dbtest.SeedMember(t, db, group, "Tigres")
	aguias := dbtest.SeedMember(t, db, group, "Águias")

	seedMatch(t, db, group, leoes.ID, tigres.ID, matchModel.StatusConfirmed, intPtr(1), intPtr(0))
	seedMatch(t, db, group, tigres.ID, aguias.ID, matchModel.StatusAdjusted, intPtr(2), intPtr(2))
	seedMatch(t, db, group, leoes.ID, aguias.ID, matchModel.StatusSubmitted, nil, nil)

	rows, err := recompute(t, db, champ.ID, group.ID)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, leoes.ID, rows[0].TeamID)
	assert.Equal(t, 3, rows[0].Points)
	assert.Equal(t, tigres.ID, rows[2].TeamID, "tigres has worse goal difference")

	var stored []model.StandingRow
	require.NoError(t, db.Where("group_id = ?", group.ID).Order("rank").Find(&stored).Error)
	require.Len(t, stored, 3)
	assert.Equal(t, champ.ID, stored[0].ChampionshipID)

	t.Run("rows are replaced, not appended", func(t *testing.T) {
		_, err := recompute(t, db, champ.ID, group.ID)
		require.NoError(t, err)

		var count int64
		require.NoError(t, db.Model(&model.StandingRow{}).Where("group_id = ?", group.ID).Count(&count).Error)
		assert.Equal(t, int64(3), count)
	})

	t.Run("group of another championship", func(t *testing.T) {
		other := dbtest.SeedChampionship(t, db, "Noite", 16, championshipModel.PolicyAdminReview)
		_, err := recompute(t, db, other.ID, group.ID)
		assert.ErrorIs(t, err, model.ErrGroupNotInChampionship)
	})

	t.Run("unknown group", func(t *testing.T) {
		_, err := recompute(t, db, champ.ID, "missing")
		assert.ErrorIs(t, err, groupModel.ErrGroupNotFound)
	})
}
