package repository

import (
	"context"

	"broadcast-ops-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResourceAllocationRepository handles database operations for resource
// allocations. Rows are created inside the request repository's commit
// transaction, never directly.
type ResourceAllocationRepository struct {
	db *gorm.DB
}

// NewResourceAllocationRepository creates a new resource allocation repository
func NewResourceAllocationRepository(db *gorm.DB) *ResourceAllocationRepository {
	return &ResourceAllocationRepository{db: db}
}

// GetByRequestID retrieves all allocations recorded for a request, oldest first
func (r *ResourceAllocationRepository) GetByRequestID(ctx context.Context, requestID uuid.UUID) ([]models.ResourceAllocation, error) {
	var allocations []models.ResourceAllocation
	err := r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Order("allocated_at ASC").
		Find(&allocations).Error
	if err != nil {
		return nil, err
	}
	return allocations, nil
}
