package models

import (
	"time"
)

// CallsheetRequest represents a production-day logistics request negotiated
// between the call-sheet requester and the technical store. EquipmentAssigned
// may diverge from EquipmentRequested only while the request is in a
// technical-review status; once completed it is frozen.
type CallsheetRequest struct {
	BaseModel
	Title              string          `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Date               time.Time       `json:"date" gorm:"not null" validate:"required"`
	DriverNeeded       bool            `json:"driver_needed" gorm:"not null;default:false"`
	EquipmentRequested StringList      `json:"equipment_requested" gorm:"type:jsonb"`
	EquipmentAssigned  StringList      `json:"equipment_assigned" gorm:"type:jsonb"`
	Status             CallsheetStatus `json:"status" gorm:"type:varchar(50);not null;default:'new';index" validate:"required"`
	LastActionBy       CallsheetRole   `json:"last_action_by" gorm:"type:varchar(20)"`
	LastComment        string          `json:"last_comment" gorm:"type:text"`
	Version            int64           `json:"version" gorm:"not null;default:1"`
}

// TableName returns the table name for CallsheetRequest
func (CallsheetRequest) TableName() string {
	return "callsheet_requests"
}

// IsTerminal reports whether the call sheet reached its terminal status.
func (c *CallsheetRequest) IsTerminal() bool {
	return c.Status.IsTerminal()
}

// InTechnicalReview reports whether equipment assignment may still change.
func (c *CallsheetRequest) InTechnicalReview() bool {
	switch c.Status {
	case CallsheetStatusPendingTechnical, CallsheetStatusPendingRequesterApproval,
		CallsheetStatusClarificationRequested:
		return true
	}
	return false
}
