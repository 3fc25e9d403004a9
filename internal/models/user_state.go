// Package models defines the persisted data structures for ymstat.
package models

import "time"

// UserState is the per-user state, keyed by pseudonymous id.
// The raw email is never stored.
type UserState struct {
	ID string `gorm:"primaryKey;size:64" json:"id"`
	// CompletedLearning is nil until the user answers the course prompt.
	CompletedLearning *bool     `json:"completed_learning"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (UserState) TableName() string {
	return "user_state"
}

// HasAnsweredLearning returns true once the user accepted or declined the course.
func (s *UserState) HasAnsweredLearning() bool {
	return s.CompletedLearning != nil
}

// InstallState holds the singleton anonymous install id.
type InstallState struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	InstallID string    `gorm:"size:64" json:"install_id"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (InstallState) TableName() string {
	return "install_state"
}
