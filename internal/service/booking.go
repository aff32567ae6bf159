package service

import (
	"context"
	"errors"
	"fmt"
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

// commitRetries bounds version-conflict retries for a single operation.
const commitRetries = 3

// BookingWorkflowService drives booking requests through the workflow: it
// loads the entity, lets the engine validate and apply the transition, commits
// the outcome atomically and publishes events after the commit succeeded.
type BookingWorkflowService struct {
	repo        repository.RequestRepositoryInterface
	transitions repository.WorkflowTransitionRepositoryInterface
	allocations repository.ResourceAllocationRepositoryInterface
	engine      *workflow.BookingEngine
	publisher   events.Publisher
	validator   *validator.Validate
	locks       *entityLocks
	log         *logger.Logger
}

// NewBookingWorkflowService creates a new booking workflow service
func NewBookingWorkflowService(
	repo repository.RequestRepositoryInterface,
	transitions repository.WorkflowTransitionRepositoryInterface,
	allocations repository.ResourceAllocationRepositoryInterface,
	publisher events.Publisher,
	validator *validator.Validate,
) *BookingWorkflowService {
	return &BookingWorkflowService{
		repo:        repo,
		transitions: transitions,
		allocations: allocations,
		engine:      workflow.NewBookingEngine(),
		publisher:   publisher,
		validator:   validator,
		locks:       newEntityLocks(),
		log:         logger.New(),
	}
}

// FeedDetailsRequest carries the incoming-feed field group on creation
type FeedDetailsRequest struct {
	SourceType      string `json:"source_type" validate:"required,oneof=vmix srt satellite"`
	VMixInputNumber string `json:"vmix_input_number,omitempty" validate:"max=20"`
	ReturnPath      string `json:"return_path,omitempty" validate:"omitempty,oneof=enabled disabled"`
	KeyFill         string `json:"key_fill,omitempty" validate:"omitempty,oneof=none key fill"`
}

// GuestDetailsRequest carries the guest-rundown field group on creation
type GuestDetailsRequest struct {
	GuestName       string `json:"guest_name" validate:"required,max=200"`
	GuestContact    string `json:"guest_contact,omitempty" validate:"max=200"`
	INewsRundownID  string `json:"inews_rundown_id,omitempty" validate:"max=100"`
	StorySlug       string `json:"story_slug,omitempty" validate:"max=100"`
	RundownPosition string `json:"rundown_position,omitempty" validate:"max=50"`
}

// CreateRequestRequest represents the request to create a booking request
type CreateRequestRequest struct {
	BookingType     string    `json:"booking_type" validate:"required,oneof=incoming_feed guest_rundown"`
	Title           string    `json:"title" validate:"required,max=200"`
	ProgramSegment  string    `json:"program_segment" validate:"required,max=200"`
	AirDateTime     time.Time `json:"air_date_time" validate:"required"`
	Language        string    `json:"language,omitempty" validate:"omitempty,oneof=english arabic"`
	Priority        string    `json:"priority,omitempty" validate:"omitempty,oneof=normal high urgent"`
	NOCRequired     *bool     `json:"noc_required,omitempty"`
	ResourcesNeeded string    `json:"resources_needed,omitempty"`
	NewsroomTicket  string    `json:"newsroom_ticket,omitempty" validate:"max=100"`
	ComplianceTags  string    `json:"compliance_tags,omitempty" validate:"max=200"`
	Notes           string    `json:"notes,omitempty"`

	Feed  *FeedDetailsRequest  `json:"feed,omitempty"`
	Guest *GuestDetailsRequest `json:"guest,omitempty"`

	// Submit immediately instead of leaving the request in draft
	Submit bool `json:"submit,omitempty"`
}

// ActionRequest carries the caller-supplied payload of a workflow action
type ActionRequest struct {
	Comment      string `json:"comment,omitempty"`
	Notes        string `json:"notes,omitempty"`
	ResourceType string `json:"resource_type,omitempty" validate:"max=100"`
	Resources    string `json:"resources,omitempty"`
	Reason       string `json:"reason,omitempty"`
}

// RequestResponse represents a booking request in API responses
type RequestResponse struct {
	ID              uuid.UUID            `json:"id"`
	BookingType     models.BookingType   `json:"booking_type"`
	Title           string               `json:"title"`
	ProgramSegment  string               `json:"program_segment"`
	AirDateTime     time.Time            `json:"air_date_time"`
	Language        models.Language      `json:"language"`
	Priority        models.Priority      `json:"priority"`
	NOCRequired     bool                 `json:"noc_required"`
	ResourcesNeeded string               `json:"resources_needed,omitempty"`
	NewsroomTicket  string               `json:"newsroom_ticket,omitempty"`
	ComplianceTags  string               `json:"compliance_tags,omitempty"`
	Notes           string               `json:"notes,omitempty"`
	State           models.WorkflowState `json:"state"`
	NotDoneReason   string               `json:"not_done_reason,omitempty"`
	Version         int64                `json:"version"`
	CreatedAt       string               `json:"created_at"`
	CreatedBy       string               `json:"created_by"`
	UpdatedAt       string               `json:"updated_at"`
	UpdatedBy       string               `json:"updated_by,omitempty"`
	Feed            *models.FeedDetails  `json:"feed,omitempty"`
	Guest           *models.GuestDetails `json:"guest,omitempty"`
}

// RequestListResponse represents a paginated list of booking requests
type RequestListResponse struct {
	Requests []RequestResponse `json:"requests"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// TransitionResponse represents one entry of a request's transition history
type TransitionResponse struct {
	ID        uuid.UUID             `json:"id"`
	FromState *models.WorkflowState `json:"from_state"`
	ToState   models.WorkflowState  `json:"to_state"`
	Actor     string                `json:"actor"`
	Role      models.Role           `json:"role"`
	Notes     string                `json:"notes,omitempty"`
	Timestamp time.Time             `json:"timestamp"`
}

// ListRequestsQuery narrows and paginates request listings
type ListRequestsQuery struct {
	State       string `form:"state" validate:"omitempty,oneof=draft submitted with_noc clarification_requested resources_added with_ingest completed not_done"`
	BookingType string `form:"booking_type" validate:"omitempty,oneof=incoming_feed guest_rundown"`
	Priority    string `form:"priority" validate:"omitempty,oneof=normal high urgent"`
	CreatedBy   string `form:"created_by"`
	Page        int    `form:"page" validate:"omitempty,min=1"`
	PageSize    int    `form:"page_size" validate:"omitempty,min=1,max=100"`
}

// CreateRequest creates a booking request in draft, writing the creation
// transition record in the same transaction. With Submit set the request is
// submitted right away as the creating actor.
func (s *BookingWorkflowService) CreateRequest(ctx context.Context, req *CreateRequestRequest, actor string) (*RequestResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	nocRequired := true
	if req.NOCRequired != nil {
		nocRequired = *req.NOCRequired
	}

	request := &models.Request{
		BookingType:     models.BookingType(req.BookingType),
		Title:           req.Title,
		ProgramSegment:  req.ProgramSegment,
		AirDateTime:     req.AirDateTime,
		Language:        models.Language(req.Language),
		Priority:        models.Priority(req.Priority),
		NOCRequired:     nocRequired,
		ResourcesNeeded: req.ResourcesNeeded,
		NewsroomTicket:  req.NewsroomTicket,
		ComplianceTags:  req.ComplianceTags,
		Notes:           req.Notes,
		State:           models.WorkflowStateDraft,
		Version:         1,
	}
	if request.Language == "" {
		request.Language = models.LanguageEnglish
	}
	if request.Priority == "" {
		request.Priority = models.PriorityNormal
	}
	request.CreatedBy = actor
	request.UpdatedBy = actor

	if req.Feed != nil {
		request.Feed = &models.FeedDetails{
			SourceType:      models.SourceType(req.Feed.SourceType),
			VMixInputNumber: req.Feed.VMixInputNumber,
			ReturnPath:      models.ReturnPath(req.Feed.ReturnPath),
			KeyFill:         models.KeyFill(req.Feed.KeyFill),
		}
		if request.Feed.ReturnPath == "" {
			request.Feed.ReturnPath = models.ReturnPathDisabled
		}
		if request.Feed.KeyFill == "" {
			request.Feed.KeyFill = models.KeyFillNone
		}
	}
	if req.Guest != nil {
		request.Guest = &models.GuestDetails{
			GuestName:       req.Guest.GuestName,
			GuestContact:    req.Guest.GuestContact,
			INewsRundownID:  req.Guest.INewsRundownID,
			StorySlug:       req.Guest.StorySlug,
			RundownPosition: req.Guest.RundownPosition,
		}
	}
	if !request.DetailsMatchType() {
		return nil, &apperrors.ValidationError{
			Field:   "booking_type",
			Message: fmt.Sprintf("a %s request must carry exactly its %s field group", request.BookingType, request.BookingType),
		}
	}

	initial := &models.WorkflowTransition{
		FromState: nil,
		ToState:   models.WorkflowStateDraft,
		Actor:     actor,
		Role:      models.RoleBooking,
		Notes:     "Request created",
		Timestamp: time.Now(),
	}
	// The creation transaction either commits or rolls back whole, so a
	// failure leaves nothing behind and the caller may retry.
	if err := s.repo.Create(ctx, request, initial); err != nil {
		return nil, &apperrors.PersistenceError{Op: "create request", AfterWrite: false, Err: err}
	}

	s.publish(ctx, events.EventRequestCreated, map[string]interface{}{
		"request_id": request.ID,
		"state":      request.State,
		"title":      request.Title,
	})

	if req.Submit {
		return s.ApplyAction(ctx, request.ID, workflow.ActionSubmit, models.RoleBooking, workflow.Payload{Actor: actor})
	}
	return s.toResponse(request), nil
}

// ApplyAction runs one workflow action against a request. The engine decides
// acceptance; on acceptance the state update, transition record and planned
// side effects are committed in one transaction guarded by the entity version.
// Events go out only after the commit succeeded; a publish failure is logged
// and never fails the operation.
func (s *BookingWorkflowService) ApplyAction(ctx context.Context, id uuid.UUID, action workflow.Action, role models.Role, p workflow.Payload) (*RequestResponse, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	var lastErr error
	for attempt := 0; attempt < commitRetries; attempt++ {
		// The operation deadline bounds the whole retry loop.
		if err := ctx.Err(); err != nil {
			return nil, &apperrors.PersistenceError{Op: "apply action", AfterWrite: false, Err: err}
		}

		request, err := s.repo.GetWithDetails(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrRequestNotFound
			}
			return nil, &apperrors.PersistenceError{Op: "load request", AfterWrite: false, Err: err}
		}

		outcome, err := s.engine.Apply(request, action, role, p)
		if err != nil {
			return nil, err
		}

		alloc, notifications := s.materializeEffects(outcome)
		if err := s.repo.CommitTransition(ctx, outcome.Request, &outcome.Transition, alloc, notifications); err != nil {
			if errors.Is(err, apperrors.ErrVersionConflict) {
				// Another writer won the race; reload and re-run the engine
				// against current state.
				lastErr = err
				continue
			}
			return nil, &apperrors.PersistenceError{Op: "commit transition", AfterWrite: true, Err: err}
		}

		s.publishOutcome(ctx, action, outcome)
		return s.toResponse(outcome.Request), nil
	}

	return nil, &apperrors.PersistenceError{Op: "commit transition", AfterWrite: false, Err: lastErr}
}

// GetRequest retrieves a request with its type-specific field group
func (s *BookingWorkflowService) GetRequest(ctx context.Context, id uuid.UUID) (*RequestResponse, error) {
	request, err := s.repo.GetWithDetails(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, &apperrors.PersistenceError{Op: "load request", AfterWrite: false, Err: err}
	}
	return s.toResponse(request), nil
}

// GetState retrieves just the current workflow state of a request
func (s *BookingWorkflowService) GetState(ctx context.Context, id uuid.UUID) (models.WorkflowState, error) {
	request, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrRequestNotFound
		}
		return "", &apperrors.PersistenceError{Op: "load request", AfterWrite: false, Err: err}
	}
	return request.State, nil
}

// GetHistory retrieves the full transition log of a request, oldest first
func (s *BookingWorkflowService) GetHistory(ctx context.Context, id uuid.UUID) ([]TransitionResponse, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, &apperrors.PersistenceError{Op: "load request", AfterWrite: false, Err: err}
	}

	transitions, err := s.transitions.GetByRequestID(ctx, id)
	if err != nil {
		return nil, &apperrors.PersistenceError{Op: "load transition history", AfterWrite: false, Err: err}
	}

	history := make([]TransitionResponse, 0, len(transitions))
	for _, t := range transitions {
		history = append(history, TransitionResponse{
			ID:        t.ID,
			FromState: t.FromState,
			ToState:   t.ToState,
			Actor:     t.Actor,
			Role:      t.Role,
			Notes:     t.Notes,
			Timestamp: t.Timestamp,
		})
	}
	return history, nil
}

// GetAllocations retrieves all resource allocations recorded for a request
func (s *BookingWorkflowService) GetAllocations(ctx context.Context, id uuid.UUID) ([]models.ResourceAllocation, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, &apperrors.PersistenceError{Op: "load request", AfterWrite: false, Err: err}
	}

	allocations, err := s.allocations.GetByRequestID(ctx, id)
	if err != nil {
		return nil, &apperrors.PersistenceError{Op: "load allocations", AfterWrite: false, Err: err}
	}
	return allocations, nil
}

// ListRequests retrieves requests matching the query with pagination
func (s *BookingWorkflowService) ListRequests(ctx context.Context, query *ListRequestsQuery) (*RequestListResponse, error) {
	if err := s.validator.Struct(query); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	filter := repository.RequestFilter{
		State:       models.WorkflowState(query.State),
		BookingType: models.BookingType(query.BookingType),
		Priority:    models.Priority(query.Priority),
		CreatedBy:   query.CreatedBy,
	}
	requests, total, err := s.repo.List(ctx, filter, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, &apperrors.PersistenceError{Op: "list requests", AfterWrite: false, Err: err}
	}

	out := make([]RequestResponse, 0, len(requests))
	for i := range requests {
		out = append(out, *s.toResponse(&requests[i]))
	}
	return &RequestListResponse{
		Requests: out,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// materializeEffects converts planned effect descriptors into rows for the
// commit transaction. EffectRecordReason is already reflected on the entity by
// the engine.
func (s *BookingWorkflowService) materializeEffects(outcome *workflow.BookingOutcome) (*models.ResourceAllocation, []models.Notification) {
	var alloc *models.ResourceAllocation
	var notifications []models.Notification
	for _, effect := range outcome.Effects {
		switch effect.Type {
		case workflow.EffectCreateResourceAllocation:
			alloc = &models.ResourceAllocation{
				ResourceType: effect.Allocation.ResourceType,
				Details:      effect.Allocation.Details,
				AllocatedBy:  effect.Allocation.AllocatedBy,
				AllocatedAt:  outcome.Transition.Timestamp,
			}
		case workflow.EffectNotifyRole:
			notifications = append(notifications, models.Notification{
				Recipient: effect.Recipient,
				Message:   effect.Message,
			})
		}
	}
	return alloc, notifications
}

func (s *BookingWorkflowService) publishOutcome(ctx context.Context, action workflow.Action, outcome *workflow.BookingOutcome) {
	payload := map[string]interface{}{
		"request_id": outcome.Request.ID,
		"title":      outcome.Request.Title,
		"from_state": outcome.Transition.FromState,
		"to_state":   outcome.Transition.ToState,
		"actor":      outcome.Transition.Actor,
	}
	s.publish(ctx, events.EventStatusChanged, payload)
	if action == workflow.ActionAssignResources {
		s.publish(ctx, events.EventResourcesAdded, payload)
	}
	s.publish(ctx, events.EventRequestUpdated, payload)
}

func (s *BookingWorkflowService) publish(ctx context.Context, eventType events.EventType, payload interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, eventType, payload); err != nil {
		s.log.WithField("event", string(eventType)).Warnf("event publish failed: %v", err)
	}
}

func (s *BookingWorkflowService) toResponse(r *models.Request) *RequestResponse {
	resp := &RequestResponse{
		ID:              r.ID,
		BookingType:     r.BookingType,
		Title:           r.Title,
		ProgramSegment:  r.ProgramSegment,
		AirDateTime:     r.AirDateTime,
		Language:        r.Language,
		Priority:        r.Priority,
		NOCRequired:     r.NOCRequired,
		ResourcesNeeded: r.ResourcesNeeded,
		NewsroomTicket:  r.NewsroomTicket,
		ComplianceTags:  r.ComplianceTags,
		Notes:           r.Notes,
		State:           r.State,
		NotDoneReason:   r.NotDoneReason,
		Version:         r.Version,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
		CreatedBy:       r.CreatedBy,
		UpdatedAt:       r.UpdatedAt.Format(time.RFC3339),
		UpdatedBy:       r.UpdatedBy,
		Feed:            r.Feed,
		Guest:           r.Guest,
	}
	return resp
}
