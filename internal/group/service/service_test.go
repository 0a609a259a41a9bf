package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	championshipModel "github.com/abnerteste26-bot/group-champs/internal/championship/model"
	"github.com/abnerteste26-bot/group-champs/internal/database/dbtest"
	"github.com/abnerteste26-bot/group-champs/internal/group/model"
	"github.com/abnerteste26-bot/group-champs/internal/group/repository"
)

func newService(t *testing.T) (Service, *dbtest.Championship, func(name string) string) {
	db := dbtest.Open(t)
	champ := dbtest.SeedChampionship(t, db, "Corujão", 8, championshipModel.PolicyAdminReview)
	svc := New(repository.New(db), db, zap.NewNop().Sugar())
	newTeam := func(name string) string {
		return dbtest.SeedTeam(t, db, champ.ID, name).ID
	}
	return svc, champ, newTeam
}

func TestService_AssignTeamToGroup(t *testing.T) {
	ctx := context.Background()

	t.Run("fills the least loaded group, ties by name", func(t *testing.T) {
		svc, champ, newTeam := newService(t)

		var names []string
		for i := 0; i < 6; i++ {
			a, err := svc.AssignTeamToGroup(ctx, champ.ID, newTeam(fmt.Sprintf("Team %d", i)))
			require.NoError(t, err)
			names = append(names, a.GroupName)
		}

		assert.Equal(t, []string{"A", "B", "C", "D", "A", "B"}, names)
	})

	t.Run("capacity exceeded", func(t *testing.T) {
		svc, champ, newTeam := newService(t)
		for i := 0; i < 8; i++ {
			_, err := svc.AssignTeamToGroup(ctx, champ.ID, newTeam(fmt.Sprintf("Team %d", i)))
			require.NoError(t, err)
		}

		_, err := svc.AssignTeamToGroup(ctx, champ.ID, newTeam("Late"))
		assert.ErrorIs(t, err, model.ErrCapacityExceeded)
	})

	t.Run("team already placed", func(t *testing.T) {
		svc, champ, newTeam := newService(t)
		id := newTeam("Leões")
		_, err := svc.AssignTeamToGroup(ctx, champ.ID, id)
		require.NoError(t, err)

		_, err = svc.AssignTeamToGroup(ctx, champ.ID, id)
		assert.ErrorIs(t, err, model.ErrAlreadyMember)
	})

	t.Run("unknown championship", func(t *testing.T) {
		svc, _, newTeam := newService(t)
		_, err := svc.AssignTeamToGroup(ctx, "missing", newTeam("Leões"))
		assert.ErrorIs(t, err, championshipModel.ErrChampionshipNotFound)
	})

	t.Run("concurrent assignments never exceed capacity", func(t *testing.T) {
		svc, champ, newTeam := newService(t)
		ids := make([]string, 12)
		for i := range ids {
			ids[i] = newTeam(fmt.Sprintf("Team %d", i))
		}

		var placed, rejected atomic.Int32
		var g errgroup.Group
		for _, id := range ids {
			g.Go(func() error {
				_, err := svc.AssignTeamToGroup(ctx, champ.ID, id)
				switch {
				case err == nil:
					placed.Add(1)
				case errors.Is(err, model.ErrCapacityExceeded):
					rejected.Add(1)
				default:
					return err
				}
				return nil
			})
		}
		require.NoError(t, g.Wait())

		assert.Equal(t, int32(8), placed.Load())
		assert.Equal(t, int32(4), rejected.Load())

		groups, err := svc.ListGroups(ctx, champ.ID)
		require.NoError(t, err)
		for _, group := range groups {
			assert.Len(t, group.Members, 2, "group %s", group.Name)
		}
	})
}

func TestService_ListGroups(t *testing.T) {
	ctx := context.Background()
	svc, champ, newTeam := newService(t)

	first := newTeam("Leões")
	second := newTeam("Tigres")
	for _, id := range []string{first, second} {
		_, err := svc.AssignTeamToGroup(ctx, champ.ID, id)
		require.NoError(t, err)
	}

	groups, err := svc.ListGroups(ctx, champ.ID)
	require.NoError(t, err)
	require.Len(t, groups, 4)
	assert.Equal(t, "A", groups[0].Name)
	require.Len(t, groups[0].Members, 1)
	assert.Equal(t, "Leões", groups[0].Members[0].TeamName)
	assert.Equal(t, "Tigres", groups[1].Members[0].TeamName)
	assert.Empty(t, groups[3].Members)

	_, err = svc.ListGroups(ctx, "missing")
	assert.ErrorIs(t, err, championshipModel.ErrChampionshipNotFound)
}
