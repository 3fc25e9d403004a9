package models

import "time"

// FileSource names where an uploaded file lives.
type FileSource string

const (
	FileSourceLocal    FileSource = "local"
	FileSourceS3       FileSource = "s3"
	FileSourceFirebase FileSource = "firebase"
	FileSourceOpenAI   FileSource = "openai"
)

// PendingFile is a temporary upload queued for deletion.
// Pointer fields are nil when the client never set them.
type PendingFile struct {
	FileID     string     `gorm:"primaryKey;size:128" json:"file_id"`
	Filepath   *string    `json:"filepath,omitempty"`
	Source     FileSource `gorm:"size:32" json:"source,omitempty"`
	Embedded   *bool      `json:"embedded,omitempty"`
	TempFileID string     `gorm:"size:128" json:"temp_file_id,omitempty"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"-"`
}

// TableName specifies the table name for GORM.
func (PendingFile) TableName() string {
	return "pending_files"
}
