// Package standings computes group tables from final match scores.
package standings

import (
	"cmp"
	"slices"

	"github.com/abnerteste26-bot/group-champs/internal/standings/model"
)

// Result is a final score between two teams.
type Result struct {
	SideA  string
	SideB  string
	GoalsA int
	GoalsB int
}

// Calculate builds one row per team, in ranking order. teams must be in team
// creation order, which breaks ties left after points, goal difference and
// goals for. Results involving a team outside teams only count for the side
// that is listed. Calculate does not set ids or group fields.
func Calculate(teams []string, results []Result) []model.StandingRow {
	rows := make([]model.StandingRow, len(teams))
	index := make(map[string]int, len(teams))
	for i, id := range teams {
		rows[i].TeamID = id
		index[id] = i
	}

	record := func(team string, goalsFor, goalsAgainst int) {
		i, ok := index[team]
		if !ok {
			return
		}
		row := &rows[i]
		row.Played++
		row.GoalsFor += goalsFor
		row.GoalsAgainst += goalsAgainst
		switch {
		case goalsFor > goalsAgainst:
			row.Won++
		case goalsFor == goalsAgainst:
			row.Drawn++
		default:
			row.Lost++
		}
	}
	for _, r := range results {
		record(r.SideA, r.GoalsA, r.GoalsB)
		record(r.SideB, r.GoalsB, r.GoalsA)
	}

	for i := range rows {
		rows[i].GoalDifference = rows[i].GoalsFor - rows[i].GoalsAgainst
		rows[i].Points = model.PointsWin*rows[i].Won + model.PointsDraw*rows[i].Drawn
	}

	// Stable sort keeps creation order among fully tied teams
	slices.SortStableFunc(rows, func(a, b model.StandingRow) int {
		if c := cmp.Compare(b.Points, a.Points); c != 0 {
			return c
		}
		if c := cmp.Compare(b.GoalDifference, a.GoalDifference); c != 0 {
			return c
		}
		return cmp.Compare(b.GoalsFor, a.GoalsFor)
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}
