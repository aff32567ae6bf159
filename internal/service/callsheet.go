package service

import (
	"context"
	"errors"
	"time"

	"broadcast-ops-backend/internal/database/models"
	apperrors "broadcast-ops-backend/internal/errors"
	"broadcast-ops-backend/internal/events"
	"broadcast-ops-backend/internal/logger"
	"broadcast-ops-backend/internal/repository"
	"broadcast-ops-backend/internal/workflow"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CallsheetService drives call-sheet requests through the approval workflow.
type CallsheetService struct {
	repo        repository.CallsheetRepositoryInterface
	transitions repository.CallsheetTransitionRepositoryInterface
	engine      *workflow.CallsheetEngine
	publisher   events.Publisher
	validator   *validator.Validate
	locks       *entityLocks
	log         *logger.Logger
}

// NewCallsheetService creates a new call-sheet service
func NewCallsheetService(
	repo repository.CallsheetRepositoryInterface,
	transitions repository.CallsheetTransitionRepositoryInterface,
	publisher events.Publisher,
	validator *validator.Validate,
) *CallsheetService {
	return &CallsheetService{
		repo:        repo,
		transitions: transitions,
		engine:      workflow.NewCallsheetEngine(),
		publisher:   publisher,
		validator:   validator,
		locks:       newEntityLocks(),
		log:         logger.New(),
	}
}

// CreateCallsheetRequest represents the request to create a call sheet
type CreateCallsheetRequest struct {
	Title              string    `json:"title" validate:"required,max=200"`
	Date               time.Time `json:"date" validate:"required"`
	DriverNeeded       bool      `json:"driver_needed"`
	EquipmentRequested []string  `json:"equipment_requested,omitempty" validate:"dive,max=200"`
}

// CallsheetActionRequest carries the caller-supplied payload of a call-sheet action
type CallsheetActionRequest struct {
	Comment   string   `json:"comment,omitempty"`
	Equipment []string `json:"equipment,omitempty" validate:"dive,max=200"`
}

// CallsheetResponse represents a call sheet in API responses
type CallsheetResponse struct {
	ID                 uuid.UUID              `json:"id"`
	Title              string                 `json:"title"`
	Date               time.Time              `json:"date"`
	DriverNeeded       bool                   `json:"driver_needed"`
	EquipmentRequested []string               `json:"equipment_requested"`
	EquipmentAssigned  []string               `json:"equipment_assigned"`
	Status             models.CallsheetStatus `json:"status"`
	LastActionBy       models.CallsheetRole   `json:"last_action_by,omitempty"`
	LastComment        string                 `json:"last_comment,omitempty"`
	Version            int64                  `json:"version"`
	CreatedAt          string                 `json:"created_at"`
	CreatedBy          string                 `json:"created_by"`
	UpdatedAt          string                 `json:"updated_at"`
	UpdatedBy          string                 `json:"updated_by,omitempty"`
}

// CallsheetListResponse represents a paginated list of call sheets
type CallsheetListResponse struct {
	Callsheets []CallsheetResponse `json:"callsheets"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
}

// CallsheetTransitionResponse represents one entry of a call sheet's history
type CallsheetTransitionResponse struct {
	ID         uuid.UUID               `json:"id"`
	FromStatus *models.CallsheetStatus `json:"from_status"`
	ToStatus   models.CallsheetStatus  `json:"to_status"`
	Actor      string                  `json:"actor"`
	Role       models.CallsheetRole    `json:"role"`
	Notes      string                  `json:"notes,omitempty"`
	Timestamp  time.Time               `json:"timestamp"`
}

// CreateCallsheet creates a call sheet and runs the creation action through
// the engine: without a driver the sheet completes immediately, otherwise it
// enters technical review. Entity and transition record are committed together.
func (s *CallsheetService) CreateCallsheet(ctx context.Context, req *CreateCallsheetRequest, actor string) (*CallsheetResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	cs := &models.CallsheetRequest{
		Title:              req.Title,
		Date:               req.Date,
		DriverNeeded:       req.DriverNeeded,
		EquipmentRequested: append(models.StringList{}, req.EquipmentRequested...),
		Status:             models.CallsheetStatusNew,
		Version:            1,
	}
	cs.CreatedBy = actor
	cs.UpdatedBy = actor

	outcome, err := s.engine.Apply(cs, workflow.ActionCreate, models.CallsheetRoleRequester, workflow.Payload{Actor: actor})
	if err != nil {
		return nil, err
	}

	created := outcome.Callsheet
	created.Version = 1
	// Creation is one transaction; a failure writes nothing and is retryable.
	if err := s.repo.Create(ctx, created, &outcome.Transition); err != nil {
		return nil, &apperrors.PersistenceError{Op: "create call sheet", AfterWrite: false, Err: err}
	}

	s.publish(ctx, created, nil)
	return s.toResponse(created), nil
}

// ApplyAction runs one workflow action against a call sheet, committing the
// status update and transition record atomically under the version guard.
func (s *CallsheetService) ApplyAction(ctx context.Context, id uuid.UUID, action workflow.Action, role models.CallsheetRole, p workflow.Payload) (*CallsheetResponse, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	var lastErr error
	for attempt := 0; attempt < commitRetries; attempt++ {
		// The operation deadline bounds the whole retry loop.
		if err := ctx.Err(); err != nil {
			return nil, &apperrors.PersistenceError{Op: "apply action", AfterWrite: false, Err: err}
		}

		cs, err := s.repo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrCallsheetNotFound
			}
			return nil, &apperrors.PersistenceError{Op: "load call sheet", AfterWrite: false, Err: err}
		}

		outcome, err := s.engine.Apply(cs, action, role, p)
		if err != nil {
			return nil, err
		}

		notifications := s.materializeEffects(outcome)
		if err := s.repo.CommitTransition(ctx, outcome.Callsheet, &outcome.Transition, notifications); err != nil {
			if errors.Is(err, apperrors.ErrVersionConflict) {
				lastErr = err
				continue
			}
			return nil, &apperrors.PersistenceError{Op: "commit transition", AfterWrite: true, Err: err}
		}

		s.publish(ctx, outcome.Callsheet, outcome.Transition.FromStatus)
		return s.toResponse(outcome.Callsheet), nil
	}

	return nil, &apperrors.PersistenceError{Op: "commit transition", AfterWrite: false, Err: lastErr}
}

// GetCallsheet retrieves a call sheet by ID
func (s *CallsheetService) GetCallsheet(ctx context.Context, id uuid.UUID) (*CallsheetResponse, error) {
	cs, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCallsheetNotFound
		}
		return nil, &apperrors.PersistenceError{Op: "load call sheet", AfterWrite: false, Err: err}
	}
	return s.toResponse(cs), nil
}

// ListCallsheets retrieves call sheets with pagination, optionally filtered by status
func (s *CallsheetService) ListCallsheets(ctx context.Context, status string, page, pageSize int) (*CallsheetListResponse, error) {
	if status != "" && !models.CallsheetStatus(status).IsValid() {
		return nil, &apperrors.ValidationError{Field: "status", Message: "unknown call-sheet status"}
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	sheets, total, err := s.repo.List(ctx, models.CallsheetStatus(status), pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, &apperrors.PersistenceError{Op: "list call sheets", AfterWrite: false, Err: err}
	}

	out := make([]CallsheetResponse, 0, len(sheets))
	for i := range sheets {
		out = append(out, *s.toResponse(&sheets[i]))
	}
	return &CallsheetListResponse{
		Callsheets: out,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// GetHistory retrieves the full transition log of a call sheet, oldest first
func (s *CallsheetService) GetHistory(ctx context.Context, id uuid.UUID) ([]CallsheetTransitionResponse, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCallsheetNotFound
		}
		return nil, &apperrors.PersistenceError{Op: "load call sheet", AfterWrite: false, Err: err}
	}

	transitions, err := s.transitions.GetByCallsheetID(ctx, id)
	if err != nil {
		return nil, &apperrors.PersistenceError{Op: "load transition history", AfterWrite: false, Err: err}
	}

	history := make([]CallsheetTransitionResponse, 0, len(transitions))
	for _, t := range transitions {
		history = append(history, CallsheetTransitionResponse{
			ID:         t.ID,
			FromStatus: t.FromStatus,
			ToStatus:   t.ToStatus,
			Actor:      t.Actor,
			Role:       t.Role,
			Notes:      t.Notes,
			Timestamp:  t.Timestamp,
		})
	}
	return history, nil
}

func (s *CallsheetService) materializeEffects(outcome *workflow.CallsheetOutcome) []models.Notification {
	var notifications []models.Notification
	for _, effect := range outcome.Effects {
		if effect.Type == workflow.EffectNotifyRole {
			notifications = append(notifications, models.Notification{
				Recipient: effect.Recipient,
				Message:   effect.Message,
			})
		}
	}
	return notifications
}

func (s *CallsheetService) publish(ctx context.Context, cs *models.CallsheetRequest, fromStatus *models.CallsheetStatus) {
	if s.publisher == nil {
		return
	}
	payload := map[string]interface{}{
		"callsheet_id": cs.ID,
		"title":        cs.Title,
		"status":       cs.Status,
	}
	if fromStatus != nil {
		payload["from_status"] = *fromStatus
	}
	if err := s.publisher.Publish(ctx, events.EventCallsheetUpdated, payload); err != nil {
		s.log.WithField("event", string(events.EventCallsheetUpdated)).Warnf("event publish failed: %v", err)
	}
}

func (s *CallsheetService) toResponse(cs *models.CallsheetRequest) *CallsheetResponse {
	return &CallsheetResponse{
		ID:                 cs.ID,
		Title:              cs.Title,
		Date:               cs.Date,
		DriverNeeded:       cs.DriverNeeded,
		EquipmentRequested: cs.EquipmentRequested,
		EquipmentAssigned:  cs.EquipmentAssigned,
		Status:             cs.Status,
		LastActionBy:       cs.LastActionBy,
		LastComment:        cs.LastComment,
		Version:            cs.Version,
		CreatedAt:          cs.CreatedAt.Format(time.RFC3339),
		CreatedBy:          cs.CreatedBy,
		UpdatedAt:          cs.UpdatedAt.Format(time.RFC3339),
		UpdatedBy:          cs.UpdatedBy,
	}
}
