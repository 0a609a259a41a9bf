package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	championshipModel "github.com/abnerteste26-bot/group-champs/internal/championship/model"
	"github.com/abnerteste26-bot/group-champs/internal/clock/model"
	"github.com/abnerteste26-bot/group-champs/internal/database/dbtest"
)

func TestRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	repo := New(db)
	champ := dbtest.SeedChampionship(t, db, "Corujão", 16, championshipModel.PolicyAdminReview)
	base := time.Date(2025, 3, 1, 22, 0, 0, 0, time.UTC)

	_, err := repo.Get(ctx, champ.ID)
	require.ErrorIs(t, err, model.ErrClockNotFound)

	clock := &model.SessionClock{ID: "clk-1", ChampionshipID: champ.ID, Status: model.StatusStopped, UpdatedAt: base}
	require.NoError(t, repo.Create(ctx, clock))

	t.Run("second create is ignored", func(t *testing.T) {
		dup := &model.SessionClock{ID: "clk-2", ChampionshipID: champ.ID, Status: model.StatusRunning, UpdatedAt: base}
		require.NoError(t, repo.Create(ctx, dup))

		got, err := repo.Get(ctx, champ.ID)
		require.NoError(t, err)
		assert.Equal(t, "clk-1", got.ID)
		assert.Equal(t, model.StatusStopped, got.Status)
	})

	t.Run("start only applies to a stopped clock", func(t *testing.T) {
		applied, err := repo.Start(ctx, champ.ID, base)
		require.NoError(t, err)
		assert.True(t, applied)

		applied, err = repo.Start(ctx, champ.ID, base.Add(time.Minute))
		require.NoError(t, err)
		assert.False(t, applied)
	})

	t.Run("pause is keyed on the observed start", func(t *testing.T) {
		got, err := repo.Get(ctx, champ.ID)
		require.NoError(t, err)
		require.NotNil(t, got.StartedAt)

		applied, err := repo.Pause(ctx, champ.ID, got.StartedAt.Add(time.Second), base.Add(5*time.Second), 5)
		require.NoError(t, err)
		assert.False(t, applied)

		applied, err = repo.Pause(ctx, champ.ID, *got.StartedAt, base.Add(5*time.Second), 5)
		require.NoError(t, err)
		assert.True(t, applied)

		applied, err = repo.Pause(ctx, champ.ID, *got.StartedAt, base.Add(6*time.Second), 1)
		require.NoError(t, err)
		assert.False(t, applied)

		got, err = repo.Get(ctx, champ.ID)
		require.NoError(t, err)
		assert.Equal(t, model.StatusStopped, got.Status)
		assert.InDelta(t, 5.0, got.AccumulatedSeconds, 0.001)
	})

	t.Run("reset clears the clock", func(t *testing.T) {
		require.NoError(t, repo.Reset(ctx, champ.ID, base.Add(time.Hour)))

		got, err := repo.Get(ctx, champ.ID)
		require.NoError(t, err)
		assert.Zero(t, got.AccumulatedSeconds)
		assert.Nil(t, got.StartedAt)
		assert.Nil(t, got.PausedAt)

		assert.ErrorIs(t, repo.Reset(ctx, "missing", base), model.ErrClockNotFound)
	})
}
