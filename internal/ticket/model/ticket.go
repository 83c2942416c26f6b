// Package model defines the bug ticket entity and its request shapes.
package model

import "time"

// Status values for a bug ticket. Transitions are not strictly monotonic:
// a resolved ticket may be reopened.
const (
	StatusOpen       = "open"
	StatusInProgress = "in-progress"
	StatusResolved   = "resolved"
)

// Priority values, lowest to highest.
const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

// MinBehaviorLen is the minimum length for the free-text behavior fields.
const MinBehaviorLen = 50

// BugTicket represents a community-submitted bug report owned by one of
// the two developers.
type BugTicket struct {
	ID                uint      `gorm:"primaryKey;column:id"                                          json:"id"`
	Developer         string    `gorm:"column:developer;type:varchar(64);not null;index"              json:"developer"`
	Class             string    `gorm:"column:class;type:varchar(64);not null"                        json:"class"`
	Spec              string    `gorm:"column:spec;type:varchar(64)"                                  json:"spec,omitempty"`
	CurrentBehavior   string    `gorm:"column:current_behavior;type:text;not null"                    json:"current_behavior"`
	ExpectedBehavior  string    `gorm:"column:expected_behavior;type:text;not null"                   json:"expected_behavior"`
	Priority          string    `gorm:"column:priority;type:varchar(16);not null;default:medium"      json:"priority"`
	Status            string    `gorm:"column:status;type:varchar(16);not null;default:open;index"    json:"status"`
	IsArchived        bool      `gorm:"column:is_archived;not null;default:false;index"               json:"isArchived"`
	ResolveReason     string    `gorm:"column:resolve_reason;type:varchar(128)"                       json:"resolveReason,omitempty"`
	DiscordMessageID  string    `gorm:"column:discord_message_id;type:varchar(64)"                    json:"-"`
	ReporterName      string    `gorm:"column:reporter_name;type:varchar(128)"                        json:"reporter_name,omitempty"`
	ReporterAccountID *uint     `gorm:"column:reporter_account_id"                                    json:"reporter_account_id,omitempty"`
	CreatedAt         time.Time `gorm:"column:created_at;not null"                                    json:"created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at;not null"                                    json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (BugTicket) TableName() string {
	return "bug_tickets"
}

// ValidStatus reports whether s is a known ticket status.
func ValidStatus(s string) bool {
	return s == StatusOpen || s == StatusInProgress || s == StatusResolved
}

// ValidPriority reports whether p is a known priority.
func ValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh || p == PriorityCritical
}
