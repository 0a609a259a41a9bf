package standings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abnerteste26-bot/group-champs/internal/standings/model"
)

func byTeam(rows []model.StandingRow) map[string]model.StandingRow {
	out := make(map[string]model.StandingRow, len(rows))
	for _, r := range rows {
		out[r.TeamID] = r
	}
	return out
}

func TestCalculate(t *testing.T) {
	t.Run("no results keeps creation order", func(t *testing.T) {
		rows := Calculate([]string{"a", "b", "c", "d"}, nil)

		require.Len(t, rows, 4)
		for i, id := range []string{"a", "b", "c", "d"} {
			assert.Equal(t, id, rows[i].TeamID)
			assert.Equal(t, i+1, rows[i].Rank)
			assert.Zero(t, rows[i].Points)
		}
	})

	t.Run("points are three per win and one per draw", func(t *testing.T) {
		rows := Calculate([]string{"a", "b", "c"}, []Result{
			{SideA: "a", SideB: "b", GoalsA: 2, GoalsB: 0},
			{SideA: "a", SideB: "c", GoalsA: 1, GoalsB: 1},
			{SideA: "b", SideB: "c", GoalsA: 0, GoalsB: 3},
		})

		got := byTeam(rows)
		assert.Equal(t, 4, got["a"].Points)
		assert.Equal(t, 4, got["c"].Points)
		assert.Equal(t, 0, got["b"].Points)
		for _, r := range rows {
			assert.Equal(t, 3*r.Won+r.Drawn, r.Points)
			assert.Equal(t, r.Won+r.Drawn+r.Lost, r.Played)
			assert.Equal(t, r.GoalsFor-r.GoalsAgainst, r.GoalDifference)
		}

		// c: GD +3, a: GD +2
		assert.Equal(t, "c", rows[0].TeamID)
		assert.Equal(t, "a", rows[1].TeamID)
		assert.Equal(t, "b", rows[2].TeamID)
	})

	t.Run("goals for breaks equal goal difference", func(t *testing.T) {
		rows := Calculate([]string{"a", "b", "c", "d"}, []Result{
			{SideA: "a", SideB: "c", GoalsA: 1, GoalsB: 0},
			{SideA: "b", SideB: "d", GoalsA: 3, GoalsB: 2},
		})

		assert.Equal(t, "b", rows[0].TeamID)
		assert.Equal(t, "a", rows[1].TeamID)
	})

	t.Run("full tie falls back to creation order", func(t *testing.T) {
		rows := Calculate([]string{"late", "early"}, []Result{
			{SideA: "early", SideB: "late", GoalsA: 2, GoalsB: 2},
		})

		assert.Equal(t, "late", rows[0].TeamID)
		assert.Equal(t, 1, rows[0].Rank)
		assert.Equal(t, "early", rows[1].TeamID)
		assert.Equal(t, 2, rows[1].Rank)
	})

	t.Run("results against a removed team count for the remaining side", func(t *testing.T) {
		rows := Calculate([]string{"a"}, []Result{
			{SideA: "gone", SideB: "a", GoalsA: 0, GoalsB: 2},
		})

		require.Len(t, rows, 1)
		assert.Equal(t, 1, rows[0].Won)
		assert.Equal(t, 3, rows[0].Points)
	})
}
