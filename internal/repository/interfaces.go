package repository

import (
	"context"

	"broadcast-ops-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// RequestFilter narrows request listings. Zero-valued fields are ignored.
type RequestFilter struct {
	State       models.WorkflowState
	BookingType models.BookingType
	Priority    models.Priority
	CreatedBy   string
}

// RequestRepositoryInterface defines the interface for booking request repository operations
type RequestRepositoryInterface interface {
	Create(ctx context.Context, req *models.Request, initial *models.WorkflowTransition) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Request, error)
	GetWithDetails(ctx context.Context, id uuid.UUID) (*models.Request, error)
	List(ctx context.Context, filter RequestFilter, limit, offset int) ([]models.Request, int64, error)
	CommitTransition(ctx context.Context, req *models.Request, tr *models.WorkflowTransition, alloc *models.ResourceAllocation, notifications []models.Notification) error
}

// WorkflowTransitionRepositoryInterface defines the interface for booking transition log operations
type WorkflowTransitionRepositoryInterface interface {
	GetByRequestID(ctx context.Context, requestID uuid.UUID) ([]models.WorkflowTransition, error)
}

// ResourceAllocationRepositoryInterface defines the interface for resource allocation repository operations
type ResourceAllocationRepositoryInterface interface {
	GetByRequestID(ctx context.Context, requestID uuid.UUID) ([]models.ResourceAllocation, error)
}

// CallsheetRepositoryInterface defines the interface for call-sheet repository operations
type CallsheetRepositoryInterface interface {
	Create(ctx context.Context, cs *models.CallsheetRequest, initial *models.CallsheetTransition) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.CallsheetRequest, error)
	List(ctx context.Context, status models.CallsheetStatus, limit, offset int) ([]models.CallsheetRequest, int64, error)
	CommitTransition(ctx context.Context, cs *models.CallsheetRequest, tr *models.CallsheetTransition, notifications []models.Notification) error
}

// CallsheetTransitionRepositoryInterface defines the interface for call-sheet transition log operations
type CallsheetTransitionRepositoryInterface interface {
	GetByCallsheetID(ctx context.Context, callsheetID uuid.UUID) ([]models.CallsheetTransition, error)
}

// NotificationRepositoryInterface defines the interface for notification repository operations
type NotificationRepositoryInterface interface {
	GetByRecipient(ctx context.Context, recipient string, unreadOnly bool, limit, offset int) ([]models.Notification, int64, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context, recipient string) error
}
