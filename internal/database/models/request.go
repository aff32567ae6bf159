package models

import (
	"time"

	"github.com/google/uuid"
)

// Request represents a booking request moving through the NOC/Ingest workflow.
// Its State field is mutated only by the workflow engine; Version backs the
// optimistic concurrency check on every transition commit.
type Request struct {
	BaseModel
	BookingType     BookingType   `json:"booking_type" gorm:"type:varchar(50);not null;index" validate:"required"`
	Title           string        `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	ProgramSegment  string        `json:"program_segment" gorm:"size:200" validate:"required,max=200"`
	AirDateTime     time.Time     `json:"air_date_time" gorm:"not null" validate:"required"`
	Language        Language      `json:"language" gorm:"type:varchar(20);default:'english'"`
	Priority        Priority      `json:"priority" gorm:"type:varchar(20);default:'normal'" validate:"required"`
	NOCRequired     bool          `json:"noc_required" gorm:"not null;default:true"`
	ResourcesNeeded string        `json:"resources_needed" gorm:"type:text"`
	NewsroomTicket  string        `json:"newsroom_ticket" gorm:"size:100"`
	ComplianceTags  string        `json:"compliance_tags" gorm:"size:200"`
	Notes           string        `json:"notes" gorm:"type:text"`
	State           WorkflowState `json:"state" gorm:"type:varchar(50);not null;default:'draft';index" validate:"required"`
	NotDoneReason   string        `json:"not_done_reason" gorm:"type:text"`
	Version         int64         `json:"version" gorm:"not null;default:1"`

	// Exactly one of Feed/Guest is populated, matching BookingType.
	Feed  *FeedDetails  `json:"feed,omitempty" gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE"`
	Guest *GuestDetails `json:"guest,omitempty" gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Request
func (Request) TableName() string {
	return "requests"
}

// IsTerminal reports whether the request reached a terminal state.
func (r *Request) IsTerminal() bool {
	return r.State.IsTerminal()
}

// DetailsMatchType reports whether exactly the field group matching the
// booking type is populated.
func (r *Request) DetailsMatchType() bool {
	switch r.BookingType {
	case BookingTypeIncomingFeed:
		return r.Feed != nil && r.Guest == nil
	case BookingTypeGuestRundown:
		return r.Guest != nil && r.Feed == nil
	}
	return false
}

// FeedDetails is the field group populated for incoming-feed bookings.
type FeedDetails struct {
	RequestID       uuid.UUID  `json:"request_id" gorm:"type:uuid;primary_key"`
	SourceType      SourceType `json:"source_type" gorm:"type:varchar(20);not null" validate:"required"`
	VMixInputNumber string     `json:"vmix_input_number" gorm:"size:20"`
	ReturnPath      ReturnPath `json:"return_path" gorm:"type:varchar(20);default:'disabled'"`
	KeyFill         KeyFill    `json:"key_fill" gorm:"type:varchar(20);default:'none'"`
}

// TableName returns the table name for FeedDetails
func (FeedDetails) TableName() string {
	return "request_feed_details"
}

// GuestDetails is the field group populated for guest-rundown bookings.
type GuestDetails struct {
	RequestID       uuid.UUID `json:"request_id" gorm:"type:uuid;primary_key"`
	GuestName       string    `json:"guest_name" gorm:"size:200" validate:"required,max=200"`
	GuestContact    string    `json:"guest_contact" gorm:"size:200"`
	INewsRundownID  string    `json:"inews_rundown_id" gorm:"size:100"`
	StorySlug       string    `json:"story_slug" gorm:"size:100"`
	RundownPosition string    `json:"rundown_position" gorm:"size:50"`
}

// TableName returns the table name for GuestDetails
func (GuestDetails) TableName() string {
	return "request_guest_details"
}
