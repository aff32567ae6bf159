package workflow

import (
	"fmt"
	"strings"
	"time"

	"broadcast-ops-backend/internal/database/models"
	apperrors "broadcast-ops-backend/internal/errors"
)

// BookingOutcome is the result of a successfully validated booking transition.
// Nothing has been written to storage yet; persisting Request, Transition and
// the planned Effects atomically is the workflow service's responsibility.
type BookingOutcome struct {
	Request    *models.Request
	Transition models.WorkflowTransition
	Effects    []Effect
}

// BookingEngine validates a requested transition against the booking table and
// applies it to a copy of the entity. It performs no I/O and is deterministic
// apart from the timestamp it stamps on the transition record.
type BookingEngine struct {
	table       *BookingTable
	coordinator *Coordinator
	now         func() time.Time
}

// NewBookingEngine creates a new booking workflow engine
func NewBookingEngine() *BookingEngine {
	return &BookingEngine{
		table:       NewBookingTable(),
		coordinator: NewCoordinator(),
		now:         time.Now,
	}
}

// Table exposes the engine's transition table for history replay.
func (e *BookingEngine) Table() *BookingTable {
	return e.table
}

// Apply validates (action, role, payload) against the entity's current state
// and returns the updated entity, the transition record and the planned side
// effects. On any error the input entity is untouched and nothing may be
// persisted.
func (e *BookingEngine) Apply(req *models.Request, action Action, role models.Role, p Payload) (*BookingOutcome, error) {
	rule, ok := e.table.Lookup(req.State, action)
	if !ok || (rule.Guard != nil && !rule.Guard(req)) {
		return nil, &apperrors.InvalidTransitionError{State: string(req.State), Action: string(action)}
	}
	if role != rule.RequiredRole {
		return nil, &apperrors.UnauthorizedError{
			Action:       string(action),
			Role:         string(role),
			RequiredRole: string(rule.RequiredRole),
		}
	}
	if err := validateBookingPayload(action, p); err != nil {
		return nil, err
	}

	next := rule.NextState
	if rule.Resolve != nil {
		next = rule.Resolve(req)
	}

	now := e.now()
	updated := *req
	updated.State = next
	updated.UpdatedAt = now
	if p.Actor != "" {
		updated.UpdatedBy = p.Actor
	}
	if action == ActionMarkNotDone {
		updated.NotDoneReason = p.Reason
	}

	from := req.State
	transition := models.WorkflowTransition{
		RequestID: req.ID,
		FromState: &from,
		ToState:   next,
		Actor:     p.Actor,
		Role:      role,
		Notes:     bookingNotes(action, p),
		Timestamp: now,
	}

	return &BookingOutcome{
		Request:    &updated,
		Transition: transition,
		Effects:    e.coordinator.PlanBooking(rule, &updated, p),
	}, nil
}

func validateBookingPayload(action Action, p Payload) error {
	switch action {
	case ActionRequestClarification:
		if strings.TrimSpace(p.Comment) == "" {
			return &apperrors.ValidationError{Field: "comment", Message: "clarification comment is required"}
		}
	case ActionAssignResources:
		if strings.TrimSpace(p.Resources) == "" {
			return &apperrors.ValidationError{Field: "resources", Message: "assigned resources are required"}
		}
	case ActionMarkNotDone:
		if strings.TrimSpace(p.Reason) == "" {
			return &apperrors.ValidationError{Field: "reason", Message: "a reason is required for not done"}
		}
	}
	return nil
}

func bookingNotes(action Action, p Payload) string {
	if p.Notes != "" {
		return p.Notes
	}
	switch action {
	case ActionSubmit:
		return "Request submitted"
	case ActionAcknowledge:
		return "NOC acknowledged the request"
	case ActionAssignResources:
		return fmt.Sprintf("NOC assigned resources: %s", p.Resources)
	case ActionRequestClarification:
		return fmt.Sprintf("Clarification requested: %s", p.Comment)
	case ActionForwardToIngest:
		return "Request forwarded to Ingest team"
	case ActionMarkCompleted:
		return "Request completed successfully"
	case ActionMarkNotDone:
		return fmt.Sprintf("Not Done: %s", p.Reason)
	default:
		return string(action)
	}
}
