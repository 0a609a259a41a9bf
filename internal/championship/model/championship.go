// Package model provides domain models and DTOs for the championship module.
package model

import "time"

// Status is a championship lifecycle phase.
type Status string

// Statuses in lifecycle order.
const (
	StatusRegistrationOpen   Status = "registration_open"
	StatusRegistrationClosed Status = "registration_closed"
	StatusGroupStage         Status = "group_stage"
	StatusKnockoutStage      Status = "knockout_stage"
	StatusFinished           Status = "finished"
)

var statusRank = map[Status]int{
	StatusRegistrationOpen:   0,
	StatusRegistrationClosed: 1,
	StatusGroupStage:         2,
	StatusKnockoutStage:      3,
	StatusFinished:           4,
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// CanAdvanceTo reports whether moving from s to next keeps the lifecycle
// monotonic. Finished is always reachable.
func (s Status) CanAdvanceTo(next Status) bool {
	if next == StatusFinished {
		return true
	}
	return next.Valid() && statusRank[next] >= statusRank[s]
}

// ConfirmationPolicy selects who may finalize a match score.
type ConfirmationPolicy string

// Confirmation policies.
const (
	// PolicyAdminReview lets participants submit and administrators confirm.
	PolicyAdminReview ConfirmationPolicy = "admin_review"
	// PolicyWinnerCertifies lets the winning side confirm its own result.
	PolicyWinnerCertifies ConfirmationPolicy = "winner_certifies"
)

// Valid reports whether p is a known policy.
func (p ConfirmationPolicy) Valid() bool {
	return p == PolicyAdminReview || p == PolicyWinnerCertifies
}

// DefaultMaxTeams is the capacity used for provisioned successors.
const DefaultMaxTeams = 16

// GroupNames are the groups created with every championship.
var GroupNames = []string{"A", "B", "C", "D"}

// Championship is one tournament instance.
type Championship struct {
	ID                 string             `gorm:"primaryKey;column:id;type:varchar(36)"          json:"id"`
	Name               string             `gorm:"column:name;type:varchar(255);not null;index"   json:"name"`
	Edition            string             `gorm:"column:edition;type:varchar(255);not null"      json:"edition"`
	Status             Status             `gorm:"column:status;type:varchar(32);not null;index"  json:"status"`
	RegistrationOpen   bool               `gorm:"column:registration_open;not null"              json:"registration_open"`
	MaxTeams           int                `gorm:"column:max_teams;not null"                      json:"max_teams"`
	ConfirmedTeamCount int                `gorm:"column:confirmed_team_count;not null"           json:"confirmed_team_count"`
	ConfirmationPolicy ConfirmationPolicy `gorm:"column:confirmation_policy;type:varchar(32);not null" json:"confirmation_policy"`
	CreatedAt          time.Time          `gorm:"column:created_at;not null"                     json:"created_at"`
	UpdatedAt          time.Time          `gorm:"column:updated_at;not null"                     json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Championship) TableName() string {
	return "championships"
}

// IsFinished reports whether the championship is terminal.
func (c *Championship) IsFinished() bool {
	return c.Status == StatusFinished
}

// IsFull reports whether every slot has been taken.
func (c *Championship) IsFull() bool {
	return c.ConfirmedTeamCount >= c.MaxTeams
}
