// Package model provides the session clock model.
package model

import (
	"time"

	"github.com/abnerteste26-bot/group-champs/internal/apperr"
)

// Status is the clock state.
type Status string

// Statuses.
const (
	StatusStopped Status = "stopped"
	StatusRunning Status = "running"
)

// SessionClock is the pause/resume timer of a championship.
type SessionClock struct {
	ID                 string     `gorm:"primaryKey;column:id;type:varchar(36)"                         json:"id"`
	ChampionshipID     string     `gorm:"column:championship_id;type:varchar(36);not null;uniqueIndex"  json:"championship_id"`
	Status             Status     `gorm:"column:status;type:varchar(16);not null"                       json:"status"`
	StartedAt          *time.Time `gorm:"column:started_at"                                             json:"started_at,omitempty"`
	PausedAt           *time.Time `gorm:"column:paused_at"                                              json:"paused_at,omitempty"`
	AccumulatedSeconds float64    `gorm:"column:accumulated_seconds;not null"                           json:"accumulated_seconds"`
	UpdatedAt          time.Time  `gorm:"column:updated_at;not null"                                    json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (SessionClock) TableName() string {
	return "session_clocks"
}

// Elapsed returns the accumulated time plus the running interval, if any.
// It never mutates the clock.
func (c *SessionClock) Elapsed(now time.Time) time.Duration {
	elapsed := time.Duration(c.AccumulatedSeconds * float64(time.Second))
	if c.Status == StatusRunning && c.StartedAt != nil && now.After(*c.StartedAt) {
		elapsed += now.Sub(*c.StartedAt)
	}
	return elapsed
}

// ClockResponse is the public view of a clock.
type ClockResponse struct {
	ChampionshipID     string  `json:"championship_id"`
	Status             Status  `json:"status"`
	StartedAt          string  `json:"started_at,omitempty"`
	PausedAt           string  `json:"paused_at,omitempty"`
	AccumulatedSeconds float64 `json:"accumulated_seconds"`
	ElapsedSeconds     float64 `json:"elapsed_seconds"`
	// Display is the elapsed time as HH:MM:SS.
	Display string `json:"display"`
}

var (
	// ErrClockNotFound indicates that the championship has no clock yet.
	ErrClockNotFound = apperr.New(apperr.KindNotFound, "clock not found")
	// ErrClockNotRunning indicates a pause of a clock that is not running.
	ErrClockNotRunning = apperr.New(apperr.KindAlreadyProcessed, "clock is not running")
)
