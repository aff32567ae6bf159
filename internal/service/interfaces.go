package service

import (
	"context"

	"broadcast-ops-backend/internal/database/models"
	"broadcast-ops-backend/internal/workflow"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// BookingWorkflowServiceInterface defines the interface for booking workflow operations
type BookingWorkflowServiceInterface interface {
	CreateRequest(ctx context.Context, req *CreateRequestRequest, actor string) (*RequestResponse, error)
	ApplyAction(ctx context.Context, id uuid.UUID, action workflow.Action, role models.Role, p workflow.Payload) (*RequestResponse, error)
	GetRequest(ctx context.Context, id uuid.UUID) (*RequestResponse, error)
	GetState(ctx context.Context, id uuid.UUID) (models.WorkflowState, error)
	GetHistory(ctx context.Context, id uuid.UUID) ([]TransitionResponse, error)
	GetAllocations(ctx context.Context, id uuid.UUID) ([]models.ResourceAllocation, error)
	ListRequests(ctx context.Context, query *ListRequestsQuery) (*RequestListResponse, error)
}

// CallsheetServiceInterface defines the interface for call-sheet workflow operations
type CallsheetServiceInterface interface {
	CreateCallsheet(ctx context.Context, req *CreateCallsheetRequest, actor string) (*CallsheetResponse, error)
	ApplyAction(ctx context.Context, id uuid.UUID, action workflow.Action, role models.CallsheetRole, p workflow.Payload) (*CallsheetResponse, error)
	GetCallsheet(ctx context.Context, id uuid.UUID) (*CallsheetResponse, error)
	ListCallsheets(ctx context.Context, status string, page, pageSize int) (*CallsheetListResponse, error)
	GetHistory(ctx context.Context, id uuid.UUID) ([]CallsheetTransitionResponse, error)
}

// NotificationServiceInterface defines the interface for notification-center operations
type NotificationServiceInterface interface {
	List(ctx context.Context, recipient string, unreadOnly bool, page, pageSize int) (*NotificationListResponse, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context, recipient string) error
}
