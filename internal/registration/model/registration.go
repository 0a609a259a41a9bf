// Package model provides domain models and DTOs for registration admission.
package model

import (
	"time"

	"github.com/abnerteste26-bot/group-champs/internal/apperr"
)

// Status is the state of a pending registration.
type Status string

// Statuses. Approved and rejected are terminal.
const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// PendingRegistration is a team's request to join a championship.
type PendingRegistration struct {
	ID              string    `gorm:"primaryKey;column:id;type:varchar(36)"                  json:"id"`
	ChampionshipID  string    `gorm:"column:championship_id;type:varchar(36);not null;index" json:"championship_id"`
	TeamName        string    `gorm:"column:team_name;type:varchar(255);not null"            json:"team_name"`
	ResponsibleName string    `gorm:"column:responsible_name;type:varchar(255);not null"     json:"responsible_name"`
	ContactPhone    string    `gorm:"column:contact_phone;type:varchar(64)"                  json:"contact_phone"`
	ReceiptRef      *string   `gorm:"column:receipt_ref;type:varchar(1024)"                  json:"receipt_ref,omitempty"`
	BadgeRef        *string   `gorm:"column:badge_ref;type:varchar(1024)"                    json:"badge_ref,omitempty"`
	AcceptedRules   bool      `gorm:"column:accepted_rules;not null"                         json:"accepted_rules"`
	Notes           *string   `gorm:"column:notes;type:text"                                 json:"notes,omitempty"`
	Status          Status    `gorm:"column:status;type:varchar(16);not null;index"          json:"status"`
	TeamID          *string   `gorm:"column:team_id;type:varchar(36)"                        json:"team_id,omitempty"`
	CreatedAt       time.Time `gorm:"column:created_at;not null"                             json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;not null"                             json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (PendingRegistration) TableName() string {
	return "pending_registrations"
}

// SubmitRegistrationRequest is the body of POST /registrations.
type SubmitRegistrationRequest struct {
	ChampionshipID  string  `json:"championship_id"  binding:"required"`
	TeamName        string  `json:"team_name"        binding:"required"`
	ResponsibleName string  `json:"responsible_name" binding:"required"`
	ContactPhone    string  `json:"contact_phone"`
	ReceiptRef      *string `json:"receipt_ref,omitempty"`
	BadgeRef        *string `json:"badge_ref,omitempty"`
	AcceptedRules   bool    `json:"accepted_rules"`
	Notes           *string `json:"notes,omitempty"`
}

// RegistrationResponse is the public view of a pending registration.
type RegistrationResponse struct {
	ID              string  `json:"id"`
	ChampionshipID  string  `json:"championship_id"`
	TeamName        string  `json:"team_name"`
	ResponsibleName string  `json:"responsible_name"`
	ContactPhone    string  `json:"contact_phone,omitempty"`
	ReceiptURL      string  `json:"receipt_url,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	Status          Status  `json:"status"`
	CreatedAt       string  `json:"created_at"`
}

// ApprovalResult is returned once per approval. Password is the only
// place the plaintext credential is ever exposed.
type ApprovalResult struct {
	RegistrationID     string `json:"registration_id"`
	TeamID             string `json:"team_id"`
	GroupID            string `json:"group_id"`
	GroupName          string `json:"group_name"`
	Login              string `json:"login"`
	Password           string `json:"password"`
	RegistrationClosed bool   `json:"registration_closed"`
	FixturesCreated    int    `json:"fixtures_created"`
}

// ToResponse converts a registration to its public view.
func ToResponse(r *PendingRegistration) RegistrationResponse {
	return RegistrationResponse{
		ID:              r.ID,
		ChampionshipID:  r.ChampionshipID,
		TeamName:        r.TeamName,
		ResponsibleName: r.ResponsibleName,
		ContactPhone:    r.ContactPhone,
		Notes:           r.Notes,
		Status:          r.Status,
		CreatedAt:       r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

var (
	// ErrRegistrationNotFound indicates that the pending registration does not exist.
	ErrRegistrationNotFound = apperr.New(apperr.KindNotFound, "registration not found")
	// ErrAlreadyProcessed indicates that the registration was already approved or rejected.
	ErrAlreadyProcessed = apperr.New(apperr.KindAlreadyProcessed, "registration already processed")
	// ErrRegistrationClosed indicates that the championship does not accept registrations.
	ErrRegistrationClosed = apperr.New(apperr.KindRegistrationClosed, "registration is closed for this championship")
	// ErrChampionshipFull indicates that all slots are taken.
	ErrChampionshipFull = apperr.New(apperr.KindCapacityExceeded, "championship is full")
	// ErrRulesNotAccepted indicates that the rules were not accepted.
	ErrRulesNotAccepted = apperr.New(apperr.KindInvalidRequest, "the championship rules must be accepted")
	// ErrInvalidTeamName indicates an empty or too long team name.
	ErrInvalidTeamName = apperr.New(apperr.KindInvalidRequest, "team_name must be between 1 and 255 characters")
	// ErrInvalidResponsible indicates an empty or too long responsible name.
	ErrInvalidResponsible = apperr.New(apperr.KindInvalidRequest, "responsible_name must be between 1 and 255 characters")
)
