// Package model provides data transfer objects for statistics module.
package model

// TeamStatistics counts the participants of a championship.
type TeamStatistics struct {
	Total                int `json:"total"`
	Active               int `json:"active"`
	Groups               int `json:"groups"`
	PendingRegistrations int `json:"pending_registrations"`
}

// MatchStatistics counts matches by status and the goals of final scores.
type MatchStatistics struct {
	Total                int     `json:"total"`
	Pending              int     `json:"pending"`
	Submitted            int     `json:"submitted"`
	Confirmed            int     `json:"confirmed"`
	Adjusted             int     `json:"adjusted"`
	Goals                int     `json:"goals"`
	AverageGoalsPerMatch float64 `json:"average_goals_per_match"`
}

// Finished returns the number of matches with an authoritative score.
func (m MatchStatistics) Finished() int {
	return m.Confirmed + m.Adjusted
}

// ChampionshipStatisticsResponse is the body of GET /championships/:id/statistics.
type ChampionshipStatisticsResponse struct {
	ChampionshipID string          `json:"championship_id"`
	Teams          TeamStatistics  `json:"teams"`
	Matches        MatchStatistics `json:"matches"`
}
