package models

// WorkflowState represents the lifecycle state of a booking request.
// The set is closed: a request is never in a state outside this enum.
type WorkflowState string

const (
	WorkflowStateDraft                  WorkflowState = "draft"
	WorkflowStateSubmitted              WorkflowState = "submitted"
	WorkflowStateWithNOC                WorkflowState = "with_noc"
	WorkflowStateClarificationRequested WorkflowState = "clarification_requested"
	WorkflowStateResourcesAdded         WorkflowState = "resources_added"
	WorkflowStateWithIngest             WorkflowState = "with_ingest"
	WorkflowStateCompleted              WorkflowState = "completed"
	WorkflowStateNotDone                WorkflowState = "not_done"
)

// AllWorkflowStates lists every booking workflow state.
var AllWorkflowStates = []WorkflowState{
	WorkflowStateDraft,
	WorkflowStateSubmitted,
	WorkflowStateWithNOC,
	WorkflowStateClarificationRequested,
	WorkflowStateResourcesAdded,
	WorkflowStateWithIngest,
	WorkflowStateCompleted,
	WorkflowStateNotDone,
}

// IsValid checks if the WorkflowState is valid
func (s WorkflowState) IsValid() bool {
	switch s {
	case WorkflowStateDraft, WorkflowStateSubmitted, WorkflowStateWithNOC,
		WorkflowStateClarificationRequested, WorkflowStateResourcesAdded,
		WorkflowStateWithIngest, WorkflowStateCompleted, WorkflowStateNotDone:
		return true
	}
	return false
}

// IsTerminal reports whether no transition is defined out of the state.
func (s WorkflowState) IsTerminal() bool {
	return s == WorkflowStateCompleted || s == WorkflowStateNotDone
}

// BookingType determines which optional field group a request carries.
type BookingType string

const (
	BookingTypeIncomingFeed BookingType = "incoming_feed"
	BookingTypeGuestRundown BookingType = "guest_rundown"
)

// IsValid checks if the BookingType is valid
func (t BookingType) IsValid() bool {
	return t == BookingTypeIncomingFeed || t == BookingTypeGuestRundown
}

// Priority is informational only; it does not affect transition rules.
type Priority string

const (
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// IsValid checks if the Priority is valid
func (p Priority) IsValid() bool {
	return p == PriorityNormal || p == PriorityHigh || p == PriorityUrgent
}

// Role represents an acting role in the booking workflow.
type Role string

const (
	RoleBooking Role = "booking"
	RoleNOC     Role = "noc"
	RoleIngest  Role = "ingest"
	RoleAdmin   Role = "admin"
)

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleBooking, RoleNOC, RoleIngest, RoleAdmin:
		return true
	}
	return false
}

// Language of the booked program segment.
type Language string

const (
	LanguageEnglish Language = "english"
	LanguageArabic  Language = "arabic"
)

// SourceType of an incoming feed.
type SourceType string

const (
	SourceTypeVMix      SourceType = "vmix"
	SourceTypeSRT       SourceType = "srt"
	SourceTypeSatellite SourceType = "satellite"
)

// IsValid checks if the SourceType is valid
func (s SourceType) IsValid() bool {
	return s == SourceTypeVMix || s == SourceTypeSRT || s == SourceTypeSatellite
}

// ReturnPath setting for an incoming feed.
type ReturnPath string

const (
	ReturnPathEnabled  ReturnPath = "enabled"
	ReturnPathDisabled ReturnPath = "disabled"
)

// KeyFill setting for an incoming feed.
type KeyFill string

const (
	KeyFillNone KeyFill = "none"
	KeyFillKey  KeyFill = "key"
	KeyFillFill KeyFill = "fill"
)

// CallsheetStatus represents the lifecycle state of a call-sheet request.
type CallsheetStatus string

const (
	CallsheetStatusNew                      CallsheetStatus = "new"
	CallsheetStatusPendingTechnical         CallsheetStatus = "pending_technical"
	CallsheetStatusPendingRequesterApproval CallsheetStatus = "pending_requester_approval"
	CallsheetStatusClarificationRequested   CallsheetStatus = "clarification_requested"
	CallsheetStatusCompleted                CallsheetStatus = "completed"
)

// AllCallsheetStatuses lists every call-sheet workflow status.
var AllCallsheetStatuses = []CallsheetStatus{
	CallsheetStatusNew,
	CallsheetStatusPendingTechnical,
	CallsheetStatusPendingRequesterApproval,
	CallsheetStatusClarificationRequested,
	CallsheetStatusCompleted,
}

// IsValid checks if the CallsheetStatus is valid
func (s CallsheetStatus) IsValid() bool {
	switch s {
	case CallsheetStatusNew, CallsheetStatusPendingTechnical,
		CallsheetStatusPendingRequesterApproval, CallsheetStatusClarificationRequested,
		CallsheetStatusCompleted:
		return true
	}
	return false
}

// IsTerminal reports whether no transition is defined out of the status.
func (s CallsheetStatus) IsTerminal() bool {
	return s == CallsheetStatusCompleted
}

// CallsheetRole represents an acting role in the call-sheet workflow.
type CallsheetRole string

const (
	CallsheetRoleRequester      CallsheetRole = "callsheet"
	CallsheetRoleTechnicalStore CallsheetRole = "technical_store"
)

// IsValid checks if the CallsheetRole is valid
func (r CallsheetRole) IsValid() bool {
	return r == CallsheetRoleRequester || r == CallsheetRoleTechnicalStore
}
