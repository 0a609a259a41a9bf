// Package model provides domain models for group standings.
package model

import (
	"time"

	"github.com/abnerteste26-bot/group-champs/internal/apperr"
)

// Points awarded per result.
const (
	PointsWin  = 3
	PointsDraw = 1
)

// StandingRow is one team's line in its group table.
type StandingRow struct {
	ID             string    `gorm:"primaryKey;column:id;type:varchar(36)"                                                 json:"id"`
	ChampionshipID string    `gorm:"column:championship_id;type:varchar(36);not null;index"                                json:"championship_id"`
	GroupID        string    `gorm:"column:group_id;type:varchar(36);not null;uniqueIndex:uq_standings_team,priority:1"     json:"group_id"`
	TeamID         string    `gorm:"column:team_id;type:varchar(36);not null;uniqueIndex:uq_standings_team,priority:2"      json:"team_id"`
	Played         int       `gorm:"column:played;not null"                                                                json:"played"`
	Won            int       `gorm:"column:won;not null"                                                                   json:"won"`
	Drawn          int       `gorm:"column:drawn;not null"                                                                 json:"drawn"`
	Lost           int       `gorm:"column:lost;not null"                                                                  json:"lost"`
	GoalsFor       int       `gorm:"column:goals_for;not null"                                                             json:"goals_for"`
	GoalsAgainst   int       `gorm:"column:goals_against;not null"                                                         json:"goals_against"`
	GoalDifference int       `gorm:"column:goal_difference;not null"                                                       json:"goal_difference"`
	Points         int       `gorm:"column:points;not null"                                                                json:"points"`
	Rank           int       `gorm:"column:rank;not null"                                                                  json:"rank"`
	UpdatedAt      time.Time `gorm:"column:updated_at;not null"                                                            json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (StandingRow) TableName() string {
	return "standings"
}

// TableRow is a standing line joined with team and group names.
type TableRow struct {
	GroupID        string `gorm:"column:group_id"        json:"group_id"`
	GroupName      string `gorm:"column:group_name"      json:"group_name"`
	TeamID         string `gorm:"column:team_id"         json:"team_id"`
	TeamName       string `gorm:"column:team_name"       json:"team_name"`
	Rank           int    `gorm:"column:rank"            json:"rank"`
	Played         int    `gorm:"column:played"          json:"played"`
	Won            int    `gorm:"column:won"             json:"won"`
	Drawn          int    `gorm:"column:drawn"           json:"drawn"`
	Lost           int    `gorm:"column:lost"            json:"lost"`
	GoalsFor       int    `gorm:"column:goals_for"       json:"goals_for"`
	GoalsAgainst   int    `gorm:"column:goals_against"   json:"goals_against"`
	GoalDifference int    `gorm:"column:goal_difference" json:"goal_difference"`
	Points         int    `gorm:"column:points"          json:"points"`
}

// GroupTable is the ordered table of one group.
type GroupTable struct {
	GroupID   string     `json:"group_id"`
	GroupName string     `json:"group_name"`
	Rows      []TableRow `json:"rows"`
}

// StandingsResponse is the body of GET /championships/:id/standings.
type StandingsResponse struct {
	ChampionshipID string       `json:"championship_id"`
	Groups         []GroupTable `json:"groups"`
}

// RecomputeResponse reports a manual recompute.
type RecomputeResponse struct {
	GroupID string `json:"group_id"`
	Rows    int    `json:"rows"`
}

// ErrGroupNotInChampionship indicates a group id that does not belong to the championship.
var ErrGroupNotInChampionship = apperr.New(apperr.KindNotFound, "group not found in championship")
