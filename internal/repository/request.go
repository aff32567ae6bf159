package repository

import (
	"context"

	"broadcast-ops-backend/internal/database/models"
	apperrors "broadcast-ops-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequestRepository handles database operations for booking requests
type RequestRepository struct {
	db *gorm.DB
}

// NewRequestRepository creates a new booking request repository
func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

// Create inserts a request together with its creation transition record in a
// single transaction. The detail row (feed or guest) is created through the
// association.
func (r *RequestRepository) Create(ctx context.Context, req *models.Request, initial *models.WorkflowTransition) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(req).Error; err != nil {
			return err
		}
		initial.RequestID = req.ID
		return tx.Create(initial).Error
	})
}

// GetByID retrieves a request by ID
func (r *RequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Request, error) {
	var req models.Request
	err := r.db.WithContext(ctx).First(&req, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// GetWithDetails retrieves a request with its type-specific detail row preloaded
func (r *RequestRepository) GetWithDetails(ctx context.Context, id uuid.UUID) (*models.Request, error) {
	var req models.Request
	err := r.db.WithContext(ctx).
		Preload("Feed").
		Preload("Guest").
		First(&req, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// List retrieves requests matching the filter with pagination, newest first
func (r *RequestRepository) List(ctx context.Context, filter RequestFilter, limit, offset int) ([]models.Request, int64, error) {
	var requests []models.Request
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Request{})
	if filter.State != "" {
		query = query.Where("state = ?", filter.State)
	}
	if filter.BookingType != "" {
		query = query.Where("booking_type = ?", filter.BookingType)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}
	if filter.CreatedBy != "" {
		query = query.Where("created_by = ?", filter.CreatedBy)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Feed").
		Preload("Guest").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&requests).Error
	if err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

// CommitTransition atomically persists an accepted transition: the request
// update, the transition record and any allocation and notification rows
// planned for it. The update is guarded by the version the caller read;
// a concurrent writer winning the race yields ErrVersionConflict and nothing
// is written.
func (r *RequestRepository) CommitTransition(ctx context.Context, req *models.Request, tr *models.WorkflowTransition, alloc *models.ResourceAllocation, notifications []models.Notification) error {
	expected := req.Version
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Request{}).
			Where("id = ? AND version = ?", req.ID, expected).
			Updates(map[string]interface{}{
				"state":           req.State,
				"not_done_reason": req.NotDoneReason,
				"updated_at":      req.UpdatedAt,
				"updated_by":      req.UpdatedBy,
				"version":         expected + 1,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrVersionConflict
		}

		tr.RequestID = req.ID
		if err := tx.Create(tr).Error; err != nil {
			return err
		}

		if alloc != nil {
			alloc.RequestID = req.ID
			if err := tx.Create(alloc).Error; err != nil {
				return err
			}
		}

		for i := range notifications {
			notifications[i].SubjectID = req.ID
			if err := tx.Create(&notifications[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	req.Version = expected + 1
	return nil
}
