// Package model defines the code change log entity.
package model

import "time"

// CodeChange is one entry in the code-change activity log. Entries are
// created manually by a developer or automatically from attributed GitHub
// commits, and are never updated afterwards.
type CodeChange struct {
	ID          uint      `gorm:"primaryKey;column:id"                              json:"id"`
	ProfileID   uint      `gorm:"column:profile_id;not null;index"                  json:"profile_id"`
	FilePath    string    `gorm:"column:file_path;type:varchar(512);not null"       json:"file_path"`
	Description string    `gorm:"column:description;type:text;not null"             json:"description"`
	ChangeType  string    `gorm:"column:change_type;type:varchar(16);not null"      json:"change_type"`
	TicketID    *uint     `gorm:"column:ticket_id"                                  json:"ticket_id,omitempty"`
	ExternalURL string    `gorm:"column:external_url;type:varchar(512)"             json:"external_url,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;not null"                        json:"created_at"`
}

// TableName specifies the table name for GORM.
func (CodeChange) TableName() string {
	return "code_changes"
}
