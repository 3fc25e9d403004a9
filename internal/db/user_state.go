package db

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/asteroid-belt/ymstat/internal/models"
)

const installStateID = "default"

// GetUserState retrieves the state for a pseudonymous user id.
// It returns nil without error when the user has no stored state.
func (db *DB) GetUserState(userID string) (*models.UserState, error) {
	var state models.UserState
	err := db.Where("id = ?", userID).First(&state).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &state, nil
}

// GetLearning returns the stored course answer, or nil if never answered.
func (db *DB) GetLearning(userID string) (*bool, error) {
	state, err := db.GetUserState(userID)
	if err != nil {
		return nil, err
	}
	if state == nil || !state.HasAnsweredLearning() {
		return nil, nil
	}
	return state.CompletedLearning, nil
}

// SetLearning stores the course answer for a pseudonymous user id.
func (db *DB) SetLearning(userID string, completed bool) error {
	state := models.UserState{
		ID:                userID,
		CompletedLearning: &completed,
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"completed_learning", "updated_at"}),
	}).Create(&state).Error
}

// ResetLearning clears the stored answer so the prompt shows again.
func (db *DB) ResetLearning(userID string) error {
	return db.Model(&models.UserState{}).
		Where("id = ?", userID).
		Update("completed_learning", nil).Error
}

// GetOrCreateInstallID returns the persistent install ID, creating one if it doesn't exist.
// On any error, it falls back to generating a per-session ID.
func (db *DB) GetOrCreateInstallID() string {
	var state models.InstallState
	err := db.Where("id = ?", installStateID).First(&state).Error
	if err == nil && state.InstallID != "" {
		return state.InstallID
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return generateInstallID()
	}

	installID := generateInstallID()
	state = models.InstallState{ID: installStateID, InstallID: installID}
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"install_id", "updated_at"}),
	}).Create(&state).Error
	if err != nil {
		// Even if save fails, return the generated ID for this session
		return installID
	}

	return installID
}

func generateInstallID() string {
	return uuid.New().String()
}
