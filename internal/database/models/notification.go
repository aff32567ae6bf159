package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification is a persisted notification-center entry, written as part of a
// transition's notification side effect. SubjectID points at the booking
// request or call sheet the notification refers to.
type Notification struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	SubjectID uuid.UUID `json:"subject_id" gorm:"type:uuid;not null;index" validate:"required"`
	Recipient string    `json:"recipient" gorm:"size:40;not null;index" validate:"required"`
	Message   string    `json:"message" gorm:"type:text;not null" validate:"required"`
	Read      bool      `json:"read" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}

// BeforeCreate sets the UUID if not already set
func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
