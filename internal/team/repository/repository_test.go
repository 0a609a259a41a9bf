package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	championshipModel "github.com/abnerteste26-bot/group-champs/internal/championship/model"
	"github.com/abnerteste26-bot/group-champs/internal/database/dbtest"
	teamModel "github.com/abnerteste26-bot/group-champs/internal/team/model"
)

func newTeam(championshipID, name string) *teamModel.Team {
	return &teamModel.Team{
		ID:              uuid.NewString(),
		ChampionshipID:  championshipID,
		Name:            name,
		ResponsibleName: "Carlos",
		Active:          true,
		OwnerID:         uuid.NewString(),
		Login:           uuid.NewString() + "@copamaster.com",
		PasswordHash:    "hash",
	}
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	repo := New(db)
	champ := dbtest.SeedChampionship(t, db, "Corujão", 16, championshipModel.PolicyAdminReview)
	other := dbtest.SeedChampionship(t, db, "Noite", 16, championshipModel.PolicyAdminReview)

	t.Run("success", func(t *testing.T) {
		team := newTeam(champ.ID, "Leões")
		require.NoError(t, repo.Create(ctx, team))
		assert.False(t, team.CreatedAt.IsZero())

		got, err := repo.GetByID(ctx, team.ID)
		require.NoError(t, err)
		assert.Equal(t, "Leões", got.Name)
		assert.True(t, got.Active)
	})

	t.Run("duplicate name in championship", func(t *testing.T) {
		err := repo.Create(ctx, newTeam(champ.ID, "Leões"))
		assert.ErrorIs(t, err, teamModel.ErrTeamNameTaken)
	})

	t.Run("same name in another championship", func(t *testing.T) {
		assert.NoError(t, repo.Create(ctx, newTeam(other.ID, "Leões")))
	})
}

func TestRepository_Updates(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	repo := New(db)
	champ := dbtest.SeedChampionship(t, db, "Corujão", 16, championshipModel.PolicyAdminReview)
	team := dbtest.SeedTeam(t, db, champ.ID, "Leões")

	require.NoError(t, repo.SetActive(ctx, team.ID, false))
	require.NoError(t, repo.SetBadge(ctx, team.ID, "badges/leoes.png"))

	got, err := repo.GetByID(ctx, team.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)
	require.NotNil(t, got.BadgeRef)
	assert.Equal(t, "badges/leoes.png", *got.BadgeRef)

	assert.ErrorIs(t, repo.SetActive(ctx, "missing", true), teamModel.ErrTeamNotFound)
	assert.ErrorIs(t, repo.SetBadge(ctx, "missing", "x.png"), teamModel.ErrTeamNotFound)
}

func TestRepository_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	repo := New(db)
	champ := dbtest.SeedChampionship(t, db, "Corujão", 16, championshipModel.PolicyAdminReview)

	first := dbtest.SeedTeam(t, db, champ.ID, "Tigres")
	second := dbtest.SeedTeam(t, db, champ.ID, "Águias")

	teams, err := repo.ListByChampionship(ctx, champ.ID)
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, first.ID, teams[0].ID)

	require.NoError(t, repo.Delete(ctx, first.ID))
	assert.ErrorIs(t, repo.Delete(ctx, first.ID), teamModel.ErrTeamNotFound)

	teams, err = repo.ListByChampionship(ctx, champ.ID)
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, second.ID, teams[0].ID)

	empty, err := repo.ListByChampionship(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
