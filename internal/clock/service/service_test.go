package service

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	championshipModel "github.com/abnerteste26-bot/group-champs/internal/championship/model"
	"github.com/abnerteste26-bot/group-champs/internal/clock/model"
	"github.com/abnerteste26-bot/group-champs/internal/clock/repository"
	"github.com/abnerteste26-bot/group-champs/internal/database/dbtest"
	"github.com/abnerteste26-bot/group-champs/internal/identity"
)

var admin = identity.Identity{Subject: "admin-1", Role: identity.RoleAdmin}

func setup(t *testing.T) (Service, *clockwork.FakeClock, string) {
	db := dbtest.Open(t)
	champ := dbtest.SeedChampionship(t, db, "Corujão", 16, championshipModel.PolicyAdminReview)
	fake := clockwork.NewFakeClockAt(time.Date(2025, 3, 1, 22, 0, 0, 0, time.UTC))
	return New(repository.New(db), db, fake, zap.NewNop().Sugar()), fake, champ.ID
}

func TestService_Accumulates(t *testing.T) {
	ctx := context.Background()
	svc, fake, champID := setup(t)

	started, err := svc.StartClock(ctx, admin, champID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusRunning, started.Status)
	assert.Equal(t, "00:00:00", started.Display)

	fake.Advance(5 * time.Second)
	paused, err := svc.PauseClock(ctx, admin, champID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusStopped, paused.Status)
	assert.InDelta(t, 5.0, paused.AccumulatedSeconds, 0.001)
	assert.Equal(t, "00:00:05", paused.Display)

	fake.Advance(time.Minute)
	got, err := svc.GetClock(ctx, champID)
	require.NoError(t, err)
	assert.Equal(t, "00:00:05", got.Display, "stopped clock does not advance")

	_, err = svc.StartClock(ctx, admin, champID)
	require.NoError(t, err)
	fake.Advance(3 * time.Second)

	got, err = svc.GetClock(ctx, champID)
	require.NoError(t, err)
	assert.InDelta(t, 8.0, got.ElapsedSeconds, 0.001)
	assert.InDelta(t, 5.0, got.AccumulatedSeconds, 0.001, "reads do not mutate")

	paused, err = svc.PauseClock(ctx, admin, champID)
	require.NoError(t, err)
	assert.InDelta(t, 8.0, paused.AccumulatedSeconds, 0.001)
}

func TestService_StartIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, fake, champID := setup(t)

	first, err := svc.StartClock(ctx, admin, champID)
	require.NoError(t, err)

	fake.Advance(10 * time.Second)
	second, err := svc.StartClock(ctx, admin, champID)
	require.NoError(t, err)
	assert.Equal(t, first.StartedAt, second.StartedAt)
	assert.Equal(t, "00:00:10", second.Display)
}

func TestService_Reset(t *testing.T) {
	ctx := context.Background()
	svc, fake, champID := setup(t)

	_, err := svc.StartClock(ctx, admin, champID)
	require.NoError(t, err)
	fake.Advance(90 * time.Minute)

	reset, err := svc.ResetClock(ctx, admin, champID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusStopped, reset.Status)
	assert.Zero(t, reset.AccumulatedSeconds)
	assert.Empty(t, reset.StartedAt)
	assert.Empty(t, reset.PausedAt)
	assert.Equal(t, "00:00:00", reset.Display)
}

func TestService_PauseErrors(t *testing.T) {
	ctx := context.Background()
	svc, _, champID := setup(t)

	_, err := svc.PauseClock(ctx, admin, champID)
	assert.ErrorIs(t, err, model.ErrClockNotFound)

	_, err = svc.ResetClock(ctx, admin, champID)
	require.NoError(t, err)
	_, err = svc.PauseClock(ctx, admin, champID)
	assert.ErrorIs(t, err, model.ErrClockNotRunning)

	team := identity.Identity{Subject: "owner", Role: identity.RoleTeam, TeamID: "t1"}
	_, err = svc.StartClock(ctx, team, champID)
	assert.ErrorIs(t, err, identity.ErrForbidden)

	_, err = svc.StartClock(ctx, admin, "missing")
	assert.ErrorIs(t, err, championshipModel.ErrChampionshipNotFound)
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "00:00:00", FormatElapsed(0))
	assert.Equal(t, "00:01:05", FormatElapsed(65*time.Second+400*time.Millisecond))
	assert.Equal(t, "27:46:40", FormatElapsed(100000*time.Second))
	assert.Equal(t, "00:00:00", FormatElapsed(-time.Second))
}
