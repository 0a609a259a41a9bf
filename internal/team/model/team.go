// Package model provides domain models and DTOs for team module.
package model

import "time"

// Team is a confirmed participant of one championship.
type Team struct {
	ID              string    `gorm:"primaryKey;column:id;type:varchar(36)"                                              json:"id"`
	ChampionshipID  string    `gorm:"column:championship_id;type:varchar(36);not null;uniqueIndex:uq_teams_name,priority:1" json:"championship_id"`
	Name            string    `gorm:"column:name;type:varchar(255);not null;uniqueIndex:uq_teams_name,priority:2"       json:"name"`
	ResponsibleName string    `gorm:"column:responsible_name;type:varchar(255);not null"                                 json:"responsible_name"`
	ContactPhone    string    `gorm:"column:contact_phone;type:varchar(64)"                                              json:"contact_phone"`
	BadgeRef        *string   `gorm:"column:badge_ref;type:varchar(1024)"                                                json:"badge_ref,omitempty"`
	Active          bool      `gorm:"column:active;not null"                                                             json:"active"`
	OwnerID         string    `gorm:"column:owner_id;type:varchar(255);not null;index"                                   json:"owner_id"`
	Login           string    `gorm:"column:login;type:varchar(255);not null;uniqueIndex"                                json:"login"`
	PasswordHash    string    `gorm:"column:password_hash;type:varchar(255);not null"                                    json:"-"`
	CreatedAt       time.Time `gorm:"column:created_at;not null;index"                                                   json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;not null"                                                         json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}
