package db

import (
	"gorm.io/gorm/clause"

	"github.com/asteroid-belt/ymstat/internal/models"
)

// AddPendingFile queues a file for cleanup, replacing any entry with the same id.
func (db *DB) AddPendingFile(f *models.PendingFile) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "file_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"filepath", "source", "embedded", "temp_file_id"}),
	}).Create(f).Error
}

// ListPendingFiles returns all queued files ordered by file id.
func (db *DB) ListPendingFiles() ([]models.PendingFile, error) {
	var files []models.PendingFile
	if err := db.Order("file_id").Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

// PendingFiles returns the queue keyed by file id.
func (db *DB) PendingFiles() (map[string]models.PendingFile, error) {
	files, err := db.ListPendingFiles()
	if err != nil {
		return nil, err
	}
	out := make(map[string]models.PendingFile, len(files))
	for _, f := range files {
		out[f.FileID] = f
	}
	return out, nil
}

// RemovePendingFiles drops the given ids from the cleanup queue.
// Unknown ids are ignored.
func (db *DB) RemovePendingFiles(fileIDs []string) error {
	if len(fileIDs) == 0 {
		return nil
	}
	return db.Where("file_id IN ?", fileIDs).Delete(&models.PendingFile{}).Error
}
