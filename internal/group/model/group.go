// Package model provides domain models for groups and memberships.
package model

import (
	"time"

	"github.com/abnerteste26-bot/group-champs/internal/apperr"
)

// Group is one of the fixed groups of a championship.
type Group struct {
	ID             string    `gorm:"primaryKey;column:id;type:varchar(36)"                                           json:"id"`
	ChampionshipID string    `gorm:"column:championship_id;type:varchar(36);not null;uniqueIndex:uq_championship_groups_name,priority:1" json:"championship_id"`
	Name           string    `gorm:"column:name;type:varchar(8);not null;uniqueIndex:uq_championship_groups_name,priority:2"       json:"name"`
	CreatedAt      time.Time `gorm:"column:created_at;not null"                                                      json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Group) TableName() string {
	return "championship_groups"
}

// GroupMembership links a team to its group. A team has at most one.
type GroupMembership struct {
	ID             string    `gorm:"primaryKey;column:id;type:varchar(36)"                       json:"id"`
	ChampionshipID string    `gorm:"column:championship_id;type:varchar(36);not null;index"      json:"championship_id"`
	GroupID        string    `gorm:"column:group_id;type:varchar(36);not null;index"             json:"group_id"`
	TeamID         string    `gorm:"column:team_id;type:varchar(36);not null;uniqueIndex"        json:"team_id"`
	JoinedAt       time.Time `gorm:"column:joined_at;not null"                                   json:"joined_at"`
}

// TableName specifies the table name for GORM.
func (GroupMembership) TableName() string {
	return "group_memberships"
}

// Assignment is the outcome of placing a team in a group.
type Assignment struct {
	GroupID   string    `json:"group_id"`
	GroupName string    `json:"group_name"`
	TeamID    string    `json:"team_id"`
	JoinedAt  time.Time `json:"joined_at"`
}

// MemberRow is a membership joined with its team name.
type MemberRow struct {
	GroupID  string    `gorm:"column:group_id"`
	TeamID   string    `gorm:"column:team_id"`
	TeamName string    `gorm:"column:team_name"`
	JoinedAt time.Time `gorm:"column:joined_at"`
}

// GroupLoad is a group with its current member count.
type GroupLoad struct {
	GroupID string `gorm:"column:group_id"`
	Name    string `gorm:"column:name"`
	Members int    `gorm:"column:members"`
}

// MemberResponse is a member team in a group listing.
type MemberResponse struct {
	TeamID   string `json:"team_id"`
	TeamName string `json:"team_name"`
	JoinedAt string `json:"joined_at"`
}

// GroupResponse is a group with its members in join order.
type GroupResponse struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Members []MemberResponse `json:"members"`
}

var (
	// ErrGroupNotFound indicates that the group does not exist in the championship.
	ErrGroupNotFound = apperr.New(apperr.KindNotFound, "group not found")
	// ErrMembershipNotFound indicates that the team has no group.
	ErrMembershipNotFound = apperr.New(apperr.KindNotFound, "group membership not found")
	// ErrCapacityExceeded indicates that every slot of the championship is taken.
	ErrCapacityExceeded = apperr.New(apperr.KindCapacityExceeded, "championship has no free slot")
	// ErrAlreadyMember indicates that the team already has a group.
	ErrAlreadyMember = apperr.New(apperr.KindAlreadyProcessed, "team already belongs to a group")
	// ErrNoGroups indicates that the championship has no groups to allocate into.
	ErrNoGroups = apperr.New(apperr.KindInternal, "championship has no groups")
)
