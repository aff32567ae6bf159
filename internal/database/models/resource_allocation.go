package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResourceAllocation records technical resources assigned by NOC. Rows are
// created only as a side effect of an assign-resources transition, never
// independently.
type ResourceAllocation struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	RequestID    uuid.UUID `json:"request_id" gorm:"type:uuid;not null;index" validate:"required"`
	ResourceType string    `json:"resource_type" gorm:"size:100;not null" validate:"required,max=100"`
	Details      string    `json:"details" gorm:"type:text;not null" validate:"required"`
	AllocatedBy  string    `json:"allocated_by" gorm:"size:100;not null"`
	AllocatedAt  time.Time `json:"allocated_at" gorm:"not null"`
}

// TableName returns the table name for ResourceAllocation
func (ResourceAllocation) TableName() string {
	return "resource_allocations"
}

// BeforeCreate sets the UUID if not already set
func (a *ResourceAllocation) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
