package workflow

// Action identifies a workflow operation requested by a caller.
type Action string

// Booking workflow actions
const (
	ActionSubmit               Action = "submit"
	ActionAcknowledge          Action = "acknowledge"
	ActionAssignResources      Action = "assign_resources"
	ActionRequestClarification Action = "request_clarification"
	ActionForwardToIngest      Action = "forward_to_ingest"
	ActionMarkCompleted        Action = "mark_completed"
	ActionMarkNotDone          Action = "mark_not_done"
)

// Call-sheet workflow actions (ActionRequestClarification is shared)
const (
	ActionCreate          Action = "create"
	ActionSubmitEquipment Action = "submit_equipment"
	ActionApprove         Action = "approve"
)

// BookingActions lists every action defined somewhere in the booking table.
var BookingActions = []Action{
	ActionSubmit,
	ActionAcknowledge,
	ActionAssignResources,
	ActionRequestClarification,
	ActionForwardToIngest,
	ActionMarkCompleted,
	ActionMarkNotDone,
}

// CallsheetActions lists every action defined somewhere in the call-sheet table.
var CallsheetActions = []Action{
	ActionCreate,
	ActionSubmitEquipment,
	ActionApprove,
	ActionRequestClarification,
}

// IsValid checks if the Action is valid
func (a Action) IsValid() bool {
	switch a {
	case ActionSubmit, ActionAcknowledge, ActionAssignResources,
		ActionRequestClarification, ActionForwardToIngest, ActionMarkCompleted,
		ActionMarkNotDone, ActionCreate, ActionSubmitEquipment, ActionApprove:
		return true
	}
	return false
}

// Payload carries caller-supplied data for a transition. Which fields are
// required depends on the action; the engine validates before applying.
type Payload struct {
	Actor        string   // acting user, recorded on transition and allocation rows
	Notes        string   // optional override for the transition log notes
	Comment      string   // clarification text, required for request_clarification
	ResourceType string   // resource allocation category, defaults to "NOC Resources"
	Resources    string   // free text describing assigned resources
	Reason       string   // required for mark_not_done
	Equipment    []string // equipment set submitted by the technical store
}
