// Package model provides domain models and DTOs for the match module.
package model

import "time"

// Phase is the tournament phase a match belongs to.
type Phase string

// Phases.
const (
	PhaseGroup     Phase = "group"
	PhaseRoundOf16 Phase = "round_of_16"
	PhaseQuarter   Phase = "quarter"
	PhaseSemi      Phase = "semi"
	PhaseFinal     Phase = "final"
)

// Status is a match result state.
type Status string

// Statuses.
const (
	StatusPending   Status = "pending"
	StatusSubmitted Status = "submitted"
	StatusConfirmed Status = "confirmed"
	StatusAdjusted  Status = "adjusted"
)

// IsFinal reports whether the match has an authoritative score.
func (s Status) IsFinal() bool {
	return s == StatusConfirmed || s == StatusAdjusted
}

// FinalStatuses are the statuses counted by standings.
var FinalStatuses = []Status{StatusConfirmed, StatusAdjusted}

// OpenStatuses are the statuses removed when a team is deleted.
var OpenStatuses = []Status{StatusPending, StatusSubmitted}

// Match is a fixture between two teams.
type Match struct {
	ID              string    `gorm:"primaryKey;column:id;type:varchar(36)"                                                json:"id"`
	ChampionshipID  string    `gorm:"column:championship_id;type:varchar(36);not null;uniqueIndex:uq_matches_pair,priority:1" json:"championship_id"`
	GroupID         *string   `gorm:"column:group_id;type:varchar(36);index"                                               json:"group_id,omitempty"`
	Phase           Phase     `gorm:"column:phase;type:varchar(16);not null;uniqueIndex:uq_matches_pair,priority:2"        json:"phase"`
	SideAID         string    `gorm:"column:side_a_id;type:varchar(36);not null;uniqueIndex:uq_matches_pair,priority:3"    json:"side_a_id"`
	SideBID         string    `gorm:"column:side_b_id;type:varchar(36);not null;uniqueIndex:uq_matches_pair,priority:4"    json:"side_b_id"`
	Round           int       `gorm:"column:round;not null"                                                                json:"round"`
	Status          Status    `gorm:"column:status;type:varchar(16);not null;index"                                        json:"status"`
	SubmittedScoreA *int      `gorm:"column:submitted_score_a"                                                             json:"submitted_score_a,omitempty"`
	SubmittedScoreB *int      `gorm:"column:submitted_score_b"                                                             json:"submitted_score_b,omitempty"`
	SubmittedBy     *string   `gorm:"column:submitted_by;type:varchar(255)"                                                json:"submitted_by,omitempty"`
	FinalScoreA     *int      `gorm:"column:final_score_a"                                                                 json:"final_score_a,omitempty"`
	FinalScoreB     *int      `gorm:"column:final_score_b"                                                                 json:"final_score_b,omitempty"`
	CreatedAt       time.Time `gorm:"column:created_at;not null"                                                           json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;not null"                                                           json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Match) TableName() string {
	return "matches"
}

// Involves reports whether teamID plays in the match.
func (m *Match) Involves(teamID string) bool {
	return teamID != "" && (m.SideAID == teamID || m.SideBID == teamID)
}

// Score is a pair of goal counts.
type Score struct {
	A int
	B int
}

// IsDraw reports whether both sides scored the same.
func (s Score) IsDraw() bool {
	return s.A == s.B
}

// WinnerIsSideA reports whether side A won.
func (s Score) WinnerIsSideA() bool {
	return s.A > s.B
}
