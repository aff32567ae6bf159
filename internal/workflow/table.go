package workflow

import (
	"broadcast-ops-backend/internal/database/models"
)

// BookingRule describes one entry of the booking transition table: the role
// allowed to perform the action, the resulting state and the side effects the
// coordinator must plan when the transition is accepted.
type BookingRule struct {
	RequiredRole models.Role
	NextState    models.WorkflowState
	Effects      []EffectType
	NotifyRole   models.Role

	// Guard further restricts the rule to entities it applies to; nil means
	// the rule always applies.
	Guard func(req *models.Request) bool

	// Resolve overrides NextState for conditional branches; nil means the
	// rule is unconditional.
	Resolve func(req *models.Request) models.WorkflowState
}

type bookingRuleKey struct {
	State  models.WorkflowState
	Action Action
}

// BookingTable is the static (state, action) -> rule mapping for the booking
// workflow. It is a partial function: at most one rule per key. The table is
// immutable after construction and safe for unlimited concurrent readers.
type BookingTable struct {
	rules map[bookingRuleKey]BookingRule
}

// NewBookingTable builds the authoritative booking transition table.
//
// No rule is defined out of completed or not_done: any action attempted from a
// terminal state fails lookup. A request with noc_required=false may be
// forwarded to Ingest directly from submitted, skipping the NOC stage.
func NewBookingTable() *BookingTable {
	t := &BookingTable{rules: map[bookingRuleKey]BookingRule{}}

	t.add(models.WorkflowStateDraft, ActionSubmit, BookingRule{
		RequiredRole: models.RoleBooking,
		NextState:    models.WorkflowStateSubmitted,
		Resolve: func(req *models.Request) models.WorkflowState {
			if req.NOCRequired {
				return models.WorkflowStateWithNOC
			}
			return models.WorkflowStateSubmitted
		},
	})

	for _, from := range []models.WorkflowState{
		models.WorkflowStateSubmitted,
		models.WorkflowStateWithNOC,
		models.WorkflowStateClarificationRequested,
	} {
		t.add(from, ActionAcknowledge, BookingRule{
			RequiredRole: models.RoleNOC,
			NextState:    models.WorkflowStateWithNOC,
		})
	}

	t.add(models.WorkflowStateWithNOC, ActionAssignResources, BookingRule{
		RequiredRole: models.RoleNOC,
		NextState:    models.WorkflowStateResourcesAdded,
		Effects:      []EffectType{EffectCreateResourceAllocation},
	})

	for _, from := range []models.WorkflowState{
		models.WorkflowStateWithNOC,
		models.WorkflowStateClarificationRequested,
	} {
		t.add(from, ActionRequestClarification, BookingRule{
			RequiredRole: models.RoleNOC,
			NextState:    models.WorkflowStateClarificationRequested,
			Effects:      []EffectType{EffectNotifyRole},
			NotifyRole:   models.RoleBooking,
		})
	}

	forward := BookingRule{
		RequiredRole: models.RoleNOC,
		NextState:    models.WorkflowStateWithIngest,
		Effects:      []EffectType{EffectNotifyRole},
		NotifyRole:   models.RoleIngest,
	}
	t.add(models.WorkflowStateWithNOC, ActionForwardToIngest, forward)
	t.add(models.WorkflowStateResourcesAdded, ActionForwardToIngest, forward)

	// Direct forwarding is legal from submitted only when NOC review was
	// waived at creation.
	skipNOC := forward
	skipNOC.Guard = func(req *models.Request) bool { return !req.NOCRequired }
	t.add(models.WorkflowStateSubmitted, ActionForwardToIngest, skipNOC)

	t.add(models.WorkflowStateWithIngest, ActionMarkCompleted, BookingRule{
		RequiredRole: models.RoleIngest,
		NextState:    models.WorkflowStateCompleted,
		Effects:      []EffectType{EffectNotifyAll},
	})

	t.add(models.WorkflowStateWithIngest, ActionMarkNotDone, BookingRule{
		RequiredRole: models.RoleIngest,
		NextState:    models.WorkflowStateNotDone,
		Effects:      []EffectType{EffectRecordReason, EffectNotifyAll},
	})

	return t
}

func (t *BookingTable) add(state models.WorkflowState, action Action, rule BookingRule) {
	key := bookingRuleKey{State: state, Action: action}
	if _, exists := t.rules[key]; exists {
		panic("duplicate booking rule for " + string(state) + "/" + string(action))
	}
	t.rules[key] = rule
}

// Lookup returns the rule for (state, action), if one is defined. Guards are
// evaluated by the engine against the concrete entity.
func (t *BookingTable) Lookup(state models.WorkflowState, action Action) (BookingRule, bool) {
	rule, ok := t.rules[bookingRuleKey{State: state, Action: action}]
	return rule, ok
}

// Defined reports whether the table has a rule for (state, action).
func (t *BookingTable) Defined(state models.WorkflowState, action Action) bool {
	_, ok := t.Lookup(state, action)
	return ok
}
