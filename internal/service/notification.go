package service

import (
	"context"
	"errors"
	"time"

	apperrors "broadcast-ops-backend/internal/errors"
	"broadcast-ops-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationService serves the notification center: role-scoped listings and
// read bookkeeping. Notification rows themselves are written by the workflow
// commit transactions.
type NotificationService struct {
	repo repository.NotificationRepositoryInterface
}

// NewNotificationService creates a new notification service
func NewNotificationService(repo repository.NotificationRepositoryInterface) *NotificationService {
	return &NotificationService{repo: repo}
}

// NotificationResponse represents a notification in API responses
type NotificationResponse struct {
	ID        uuid.UUID `json:"id"`
	SubjectID uuid.UUID `json:"subject_id"`
	Recipient string    `json:"recipient"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationListResponse represents a paginated list of notifications
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

// List retrieves notifications for a recipient role, newest first
func (s *NotificationService) List(ctx context.Context, recipient string, unreadOnly bool, page, pageSize int) (*NotificationListResponse, error) {
	if recipient == "" {
		return nil, &apperrors.ValidationError{Field: "recipient", Message: "recipient is required"}
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	notifications, total, err := s.repo.GetByRecipient(ctx, recipient, unreadOnly, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, &apperrors.PersistenceError{Op: "list notifications", AfterWrite: false, Err: err}
	}

	out := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, NotificationResponse{
			ID:        n.ID,
			SubjectID: n.SubjectID,
			Recipient: n.Recipient,
			Message:   n.Message,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}
	return &NotificationListResponse{
		Notifications: out,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

// MarkRead marks a single notification as read
func (s *NotificationService) MarkRead(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.MarkRead(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotificationNotFound
		}
		return &apperrors.PersistenceError{Op: "mark notification read", AfterWrite: false, Err: err}
	}
	return nil
}

// MarkAllRead marks every unread notification of a recipient as read
func (s *NotificationService) MarkAllRead(ctx context.Context, recipient string) error {
	if recipient == "" {
		return &apperrors.ValidationError{Field: "recipient", Message: "recipient is required"}
	}
	if err := s.repo.MarkAllRead(ctx, recipient); err != nil {
		return &apperrors.PersistenceError{Op: "mark notifications read", AfterWrite: false, Err: err}
	}
	return nil
}
