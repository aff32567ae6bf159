package repository

import (
	"context"

	"broadcast-ops-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkflowTransitionRepository handles database operations for the booking
// transition log. The log is append-only; writes happen inside the request
// repository's transactions.
type WorkflowTransitionRepository struct {
	db *gorm.DB
}

// NewWorkflowTransitionRepository creates a new booking transition repository
func NewWorkflowTransitionRepository(db *gorm.DB) *WorkflowTransitionRepository {
	return &WorkflowTransitionRepository{db: db}
}

// GetByRequestID retrieves the full transition history of a request, oldest first
func (r *WorkflowTransitionRepository) GetByRequestID(ctx context.Context, requestID uuid.UUID) ([]models.WorkflowTransition, error) {
	var transitions []models.WorkflowTransition
	err := r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Order("timestamp ASC, id ASC").
		Find(&transitions).Error
	if err != nil {
		return nil, err
	}
	return transitions, nil
}
