package workflow

import (
	"strings"
	"time"

	"broadcast-ops-backend/internal/database/models"
	apperrors "broadcast-ops-backend/internal/errors"
)

// CallsheetOutcome is the result of a successfully validated call-sheet
// transition; persistence is the service's responsibility.
type CallsheetOutcome struct {
	Callsheet  *models.CallsheetRequest
	Transition models.CallsheetTransition
	Effects    []Effect
}

// CallsheetEngine validates transitions against the call-sheet table. Same
// contract as the booking engine: pure computation, no I/O, no mutation of
// the input entity.
type CallsheetEngine struct {
	table       *CallsheetTable
	coordinator *Coordinator
	now         func() time.Time
}

// NewCallsheetEngine creates a new call-sheet workflow engine
func NewCallsheetEngine() *CallsheetEngine {
	return &CallsheetEngine{
		table:       NewCallsheetTable(),
		coordinator: NewCoordinator(),
		now:         time.Now,
	}
}

// Table exposes the engine's transition table for history replay.
func (e *CallsheetEngine) Table() *CallsheetTable {
	return e.table
}

// Apply validates (action, role, payload) against the call sheet's current
// status and returns the updated entity, transition record and planned side
// effects.
func (e *CallsheetEngine) Apply(cs *models.CallsheetRequest, action Action, role models.CallsheetRole, p Payload) (*CallsheetOutcome, error) {
	rule, ok := e.table.Lookup(cs.Status, action)
	if !ok {
		return nil, &apperrors.InvalidTransitionError{State: string(cs.Status), Action: string(action)}
	}
	if role != rule.RequiredRole {
		return nil, &apperrors.UnauthorizedError{
			Action:       string(action),
			Role:         string(role),
			RequiredRole: string(rule.RequiredRole),
		}
	}
	if action == ActionRequestClarification && strings.TrimSpace(p.Comment) == "" {
		return nil, &apperrors.ValidationError{Field: "comment", Message: "clarification comment is required"}
	}

	next := rule.NextStatus
	if rule.Resolve != nil {
		next = rule.Resolve(cs, p)
	}

	now := e.now()
	updated := *cs
	updated.Status = next
	updated.UpdatedAt = now
	updated.LastActionBy = role
	if p.Actor != "" {
		updated.UpdatedBy = p.Actor
	}
	if action == ActionSubmitEquipment {
		// EquipmentAssigned is a set; duplicate submissions collapse.
		updated.EquipmentAssigned = append(models.StringList{}, uniqueEquipment(p.Equipment)...)
	}
	updated.LastComment = callsheetComment(action, p)

	from := cs.Status
	transition := models.CallsheetTransition{
		CallsheetID: cs.ID,
		FromStatus:  &from,
		ToStatus:    next,
		Actor:       p.Actor,
		Role:        role,
		Notes:       updated.LastComment,
		Timestamp:   now,
	}

	return &CallsheetOutcome{
		Callsheet:  &updated,
		Transition: transition,
		Effects:    e.coordinator.PlanCallsheet(rule, &updated, p),
	}, nil
}

func callsheetComment(action Action, p Payload) string {
	if strings.TrimSpace(p.Comment) != "" {
		return p.Comment
	}
	switch action {
	case ActionCreate:
		return "Call sheet created"
	case ActionSubmitEquipment:
		return "Equipment submitted by technical store"
	case ActionApprove:
		return "Approved"
	default:
		return string(action)
	}
}
