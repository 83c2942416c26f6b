// Package model defines account and profile entities.
package model

import "time"

// Account represents a developer account. Only identities on the
// registration allow-list may ever hold one.
type Account struct {
	ID            uint      `gorm:"primaryKey;column:id"                                  json:"id"`
	Username      string    `gorm:"column:username;type:varchar(64);not null;uniqueIndex" json:"username"`
	Email         string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex"   json:"email"`
	PasswordHash  string    `gorm:"column:password_hash;type:varchar(255);not null"       json:"-"`
	DeveloperType string    `gorm:"column:developer_type;type:varchar(64);not null"       json:"developer_type"`
	CreatedAt     time.Time `gorm:"column:created_at;not null"                            json:"-"`
}

// TableName specifies the table name for GORM.
func (Account) TableName() string {
	return "accounts"
}

// Profile is the public developer profile, one per account. It duplicates
// the username and developer tag so lookups never need a join.
type Profile struct {
	ID            uint      `gorm:"primaryKey;column:id"                            json:"id"`
	AccountID     uint      `gorm:"column:account_id;not null;uniqueIndex"          json:"account_id"`
	Username      string    `gorm:"column:username;type:varchar(64);not null"       json:"username"`
	DeveloperType string    `gorm:"column:developer_type;type:varchar(64);not null" json:"developer_type"`
	AvatarURL     string    `gorm:"column:avatar_url;type:varchar(512)"             json:"avatar_url,omitempty"`
	CreatedAt     time.Time `gorm:"column:created_at;not null"                      json:"-"`
}

// TableName specifies the table name for GORM.
func (Profile) TableName() string {
	return "profiles"
}
