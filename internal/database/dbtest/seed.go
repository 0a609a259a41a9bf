package dbtest

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	championshipModel "github.com/abnerteste26-bot/group-champs/internal/championship/model"
	groupModel "github.com/abnerteste26-bot/group-champs/internal/group/model"
	teamModel "github.com/abnerteste26-bot/group-champs/internal/team/model"
)

// Championship is a seeded championship with its groups by name.
type Championship struct {
	*championshipModel.Championship
	Groups map[string]groupModel.Group
}

// SeedChampionship inserts an open championship with groups A to D.
func SeedChampionship(
	t testing.TB,
	db *gorm.DB,
	name string,
	maxTeams int,
	policy championshipModel.ConfirmationPolicy,
) *Championship {
	t.Helper()

	now := time.Now().UTC()
	c := &championshipModel.Championship{
		ID:                 uuid.NewString(),
		Name:               name,
		Edition:            "2025",
		Status:             championshipModel.StatusRegistrationOpen,
		RegistrationOpen:   true,
		MaxTeams:           maxTeams,
		ConfirmationPolicy: policy,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	require.NoError(t, db.Create(c).Error)

	groups := make(map[string]groupModel.Group, len(championshipModel.GroupNames))
	for _, name := range championshipModel.GroupNames {
		g := groupModel.Group{ID: uuid.NewString(), ChampionshipID: c.ID, Name: name, CreatedAt: now}
		require.NoError(t, db.Create(&g).Error)
		groups[name] = g
	}
	return &Championship{Championship: c, Groups: groups}
}

// SeedTeam inserts an active team. Consecutive calls get increasing created_at.
func SeedTeam(t testing.TB, db *gorm.DB, championshipID, name string) *teamModel.Team {
	t.Helper()

	created := time.Now().UTC().Add(time.Duration(seq.Add(1)) * time.Millisecond)
	team := &teamModel.Team{
		ID:              uuid.NewString(),
		ChampionshipID:  championshipID,
		Name:            name,
		ResponsibleName: "Responsible " + name,
		Active:          true,
		OwnerID:         uuid.NewString(),
		Login:           uuid.NewString() + "@test",
		PasswordHash:    "x",
		CreatedAt:       created,
		UpdatedAt:       created,
	}
	require.NoError(t, db.Create(team).Error)
	return team
}

// SeedMember inserts a team and places it in group.
func SeedMember(t testing.TB, db *gorm.DB, group groupModel.Group, name string) *teamModel.Team {
	t.Helper()

	team := SeedTeam(t, db, group.ChampionshipID, name)
	require.NoError(t, db.Create(&groupModel.GroupMembership{
		ID:             uuid.NewString(),
		ChampionshipID: group.ChampionshipID,
		GroupID:        group.ID,
		TeamID:         team.ID,
		JoinedAt:       team.CreatedAt,
	}).Error)
	return team
}
