// Package model defines the feature request entity and its request shapes.
package model

import "time"

// Status values for a feature request. The UI treats accepted/rejected as
// terminal but the server does not enforce it.
const (
	StatusOpen     = "open"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// MinDescriptionLen is the minimum length for the description field.
const MinDescriptionLen = 50

// FeatureRequest represents a community feature suggestion owned by one
// of the two developers.
type FeatureRequest struct {
	ID                uint      `gorm:"primaryKey;column:id"                                       json:"id"`
	Developer         string    `gorm:"column:developer;type:varchar(64);not null;index"           json:"developer"`
	Category          string    `gorm:"column:category;type:varchar(64);not null"                  json:"category"`
	Class             string    `gorm:"column:class;type:varchar(64)"                              json:"class,omitempty"`
	Description       string    `gorm:"column:description;type:text;not null"                      json:"description"`
	Status            string    `gorm:"column:status;type:varchar(16);not null;default:open;index" json:"status"`
	IsPrivate         bool      `gorm:"column:is_private;not null;default:false"                   json:"isPrivate"`
	DiscordMessageID  string    `gorm:"column:discord_message_id;type:varchar(64)"                 json:"-"`
	ReporterName      string    `gorm:"column:reporter_name;type:varchar(128)"                     json:"reporter_name,omitempty"`
	ReporterAccountID *uint     `gorm:"column:reporter_account_id"                                 json:"reporter_account_id,omitempty"`
	CreatedAt         time.Time `gorm:"column:created_at;not null"                                 json:"created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at;not null"                                 json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (FeatureRequest) TableName() string {
	return "feature_requests"
}

// ValidStatus reports whether s is a known feature status.
func ValidStatus(s string) bool {
	return s == StatusOpen || s == StatusAccepted || s == StatusRejected
}
