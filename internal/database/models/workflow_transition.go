package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkflowTransition is an append-only log entry for a booking request.
// Rows are never updated or deleted; ordered by Timestamp they reconstruct a
// valid walk through the transition table from the initial state onwards.
type WorkflowTransition struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	RequestID uuid.UUID      `json:"request_id" gorm:"type:uuid;not null;index" validate:"required"`
	FromState *WorkflowState `json:"from_state" gorm:"type:varchar(50)"` // nil for the creation record
	ToState   WorkflowState  `json:"to_state" gorm:"type:varchar(50);not null" validate:"required"`
	Actor     string         `json:"actor" gorm:"size:100;not null"`
	Role      Role           `json:"role" gorm:"type:varchar(20);not null" validate:"required"`
	Notes     string         `json:"notes" gorm:"type:text"`
	Timestamp time.Time      `json:"timestamp" gorm:"not null;index"`
}

// TableName returns the table name for WorkflowTransition
func (WorkflowTransition) TableName() string {
	return "workflow_transitions"
}

// BeforeCreate sets the UUID if not already set
func (t *WorkflowTransition) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// CallsheetTransition is the append-only log entry for a call-sheet request.
type CallsheetTransition struct {
	ID          uuid.UUID        `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CallsheetID uuid.UUID        `json:"callsheet_id" gorm:"type:uuid;not null;index" validate:"required"`
	FromStatus  *CallsheetStatus `json:"from_status" gorm:"type:varchar(50)"` // nil for the creation record
	ToStatus    CallsheetStatus  `json:"to_status" gorm:"type:varchar(50);not null" validate:"required"`
	Actor       string           `json:"actor" gorm:"size:100;not null"`
	Role        CallsheetRole    `json:"role" gorm:"type:varchar(20);not null" validate:"required"`
	Notes       string           `json:"notes" gorm:"type:text"`
	Timestamp   time.Time        `json:"timestamp" gorm:"not null;index"`
}

// TableName returns the table name for CallsheetTransition
func (CallsheetTransition) TableName() string {
	return "callsheet_transitions"
}

// BeforeCreate sets the UUID if not already set
func (t *CallsheetTransition) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
