// Package audit records administrative and workflow actions on a best-effort basis.
package audit

import (
	"time"

	"gorm.io/datatypes"
)

// Actions.
const (
	ActionCreateChampionship  = "create_championship"
	ActionCloseRegistration   = "close_registration"
	ActionCloseChampionship   = "close_championship"
	ActionProvisionSuccessor  = "provision_successor"
	ActionGenerateFixtures    = "generate_fixtures"
	ActionSubmitRegistration  = "submit_registration"
	ActionApproveRegistration = "approve_registration"
	ActionRejectRegistration  = "reject_registration"
	ActionSubmitScore         = "submit_score"
	ActionConfirmScore        = "confirm_score"
	ActionConfirmAsWinner     = "confirm_as_winner"
	ActionAdjustScore         = "adjust_score"
	ActionRecomputeStandings  = "recompute_standings"
	ActionDeleteTeam          = "delete_team"
	ActionSetTeamActive       = "set_team_active"
	ActionSetBadge            = "set_badge"
)

// Entry is one append-only audit log line.
type Entry struct {
	ID        string         `gorm:"primaryKey;column:id;type:varchar(36)"          json:"id"`
	ActorID   string         `gorm:"column:actor_id;type:varchar(255);not null;index" json:"actor_id"`
	Action    string         `gorm:"column:action;type:varchar(64);not null;index"  json:"action"`
	Detail    datatypes.JSON `gorm:"column:detail"                                  json:"detail"`
	CreatedAt time.Time      `gorm:"column:created_at;not null"                     json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Entry) TableName() string {
	return "audit_log"
}
