package repository

import (
	"context"

	"broadcast-ops-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CallsheetTransitionRepository handles database operations for the call-sheet
// transition log.
type CallsheetTransitionRepository struct {
	db *gorm.DB
}

// NewCallsheetTransitionRepository creates a new call-sheet transition repository
func NewCallsheetTransitionRepository(db *gorm.DB) *CallsheetTransitionRepository {
	return &CallsheetTransitionRepository{db: db}
}

// GetByCallsheetID retrieves the full transition history of a call sheet, oldest first
func (r *CallsheetTransitionRepository) GetByCallsheetID(ctx context.Context, callsheetID uuid.UUID) ([]models.CallsheetTransition, error) {
	var transitions []models.CallsheetTransition
	err := r.db.WithContext(ctx).
		Where("callsheet_id = ?", callsheetID).
		Order("timestamp ASC, id ASC").
		Find(&transitions).Error
	if err != nil {
		return nil, err
	}
	return transitions, nil
}
