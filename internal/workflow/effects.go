package workflow

import (
	"fmt"

	"broadcast-ops-backend/internal/database/models"
)

// EffectType classifies a side effect required by a transition rule.
type EffectType string

const (
	EffectCreateResourceAllocation EffectType = "create_resource_allocation"
	EffectNotifyRole               EffectType = "notify_role"
	EffectNotifyAll                EffectType = "notify_all"
	EffectRecordReason             EffectType = "record_reason"
	EffectFreezeEquipment          EffectType = "freeze_equipment"
)

// Effect is a declarative side-effect descriptor. The coordinator decides
// what must happen; the workflow service performs the actual persistence and
// publish calls. Effects are planned only for accepted transitions, never
// speculatively.
type Effect struct {
	Type       EffectType
	Recipient  string // role name for notify effects
	Message    string
	Allocation *AllocationSpec // populated for create_resource_allocation
}

// AllocationSpec describes a ResourceAllocation row to be created alongside
// the transition.
type AllocationSpec struct {
	ResourceType string
	Details      string
	AllocatedBy  string
}

// Coordinator turns a rule's declared effect types into concrete descriptors
// for the entity and payload at hand. It performs no I/O.
type Coordinator struct{}

// NewCoordinator creates a new side-effect coordinator
func NewCoordinator() *Coordinator {
	return &Coordinator{}
}

// PlanBooking builds the side-effect descriptors for an accepted booking
// transition. req is the post-transition entity.
func (c *Coordinator) PlanBooking(rule BookingRule, req *models.Request, p Payload) []Effect {
	var effects []Effect
	for _, et := range rule.Effects {
		switch et {
		case EffectCreateResourceAllocation:
			resourceType := p.ResourceType
			if resourceType == "" {
				resourceType = "NOC Resources"
			}
			effects = append(effects, Effect{
				Type: EffectCreateResourceAllocation,
				Allocation: &AllocationSpec{
					ResourceType: resourceType,
					Details:      p.Resources,
					AllocatedBy:  p.Actor,
				},
			})
		case EffectNotifyRole:
			effects = append(effects, Effect{
				Type:      EffectNotifyRole,
				Recipient: string(rule.NotifyRole),
				Message:   bookingNotifyMessage(rule.NotifyRole, req, p),
			})
		case EffectNotifyAll:
			for _, role := range []models.Role{models.RoleBooking, models.RoleNOC, models.RoleIngest} {
				effects = append(effects, Effect{
					Type:      EffectNotifyRole,
					Recipient: string(role),
					Message:   bookingOutcomeMessage(req, p),
				})
			}
		case EffectRecordReason:
			effects = append(effects, Effect{
				Type:    EffectRecordReason,
				Message: p.Reason,
			})
		}
	}
	return effects
}

// PlanCallsheet builds the side-effect descriptors for an accepted call-sheet
// transition. cs is the post-transition entity.
func (c *Coordinator) PlanCallsheet(rule CallsheetRule, cs *models.CallsheetRequest, p Payload) []Effect {
	var effects []Effect
	for _, et := range rule.Effects {
		switch et {
		case EffectNotifyRole:
			effects = append(effects, Effect{
				Type:      EffectNotifyRole,
				Recipient: string(rule.NotifyRole),
				Message:   fmt.Sprintf("Clarification requested for call sheet %q: %s", cs.Title, p.Comment),
			})
		case EffectFreezeEquipment:
			effects = append(effects, Effect{Type: EffectFreezeEquipment})
		}
	}
	return effects
}

func bookingNotifyMessage(recipient models.Role, req *models.Request, p Payload) string {
	switch recipient {
	case models.RoleBooking:
		return fmt.Sprintf("Clarification requested for %q: %s", req.Title, p.Comment)
	case models.RoleIngest:
		return fmt.Sprintf("Request %q forwarded to Ingest", req.Title)
	default:
		return fmt.Sprintf("Request %q updated", req.Title)
	}
}

func bookingOutcomeMessage(req *models.Request, p Payload) string {
	if req.State == models.WorkflowStateNotDone {
		return fmt.Sprintf("Request %q marked not done: %s", req.Title, p.Reason)
	}
	return fmt.Sprintf("Request %q completed", req.Title)
}
