package repository

import (
	"context"

	"broadcast-ops-backend/internal/database/models"
	apperrors "broadcast-ops-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CallsheetRepository handles database operations for call-sheet requests
type CallsheetRepository struct {
	db *gorm.DB
}

// NewCallsheetRepository creates a new call-sheet repository
func NewCallsheetRepository(db *gorm.DB) *CallsheetRepository {
	return &CallsheetRepository{db: db}
}

// Create inserts a call sheet together with its creation transition record in
// a single transaction.
func (r *CallsheetRepository) Create(ctx context.Context, cs *models.CallsheetRequest, initial *models.CallsheetTransition) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(cs).Error; err != nil {
			return err
		}
		initial.CallsheetID = cs.ID
		return tx.Create(initial).Error
	})
}

// GetByID retrieves a call sheet by ID
func (r *CallsheetRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.CallsheetRequest, error) {
	var cs models.CallsheetRequest
	err := r.db.WithContext(ctx).First(&cs, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &cs, nil
}

// List retrieves call sheets with pagination, optionally filtered by status,
// newest first
func (r *CallsheetRepository) List(ctx context.Context, status models.CallsheetStatus, limit, offset int) ([]models.CallsheetRequest, int64, error) {
	var sheets []models.CallsheetRequest
	var total int64

	query := r.db.WithContext(ctx).Model(&models.CallsheetRequest{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&sheets).Error
	if err != nil {
		return nil, 0, err
	}

	return sheets, total, nil
}

// CommitTransition atomically persists an accepted call-sheet transition
// together with its transition record and planned notifications. The update is
// guarded by the version the caller read.
func (r *CallsheetRepository) CommitTransition(ctx context.Context, cs *models.CallsheetRequest, tr *models.CallsheetTransition, notifications []models.Notification) error {
	expected := cs.Version
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.CallsheetRequest{}).
			Where("id = ? AND version = ?", cs.ID, expected).
			Updates(map[string]interface{}{
				"status":             cs.Status,
				"equipment_assigned": cs.EquipmentAssigned,
				"last_action_by":     cs.LastActionBy,
				"last_comment":       cs.LastComment,
				"updated_at":         cs.UpdatedAt,
				"updated_by":         cs.UpdatedBy,
				"version":            expected + 1,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrVersionConflict
		}

		tr.CallsheetID = cs.ID
		if err := tx.Create(tr).Error; err != nil {
			return err
		}

		for i := range notifications {
			notifications[i].SubjectID = cs.ID
			if err := tx.Create(&notifications[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	cs.Version = expected + 1
	return nil
}
