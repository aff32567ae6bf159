package testutils

import (
	"time"

	"broadcast-ops-backend/internal/database/models"

	"github.com/google/uuid"
)

// RequestFactory provides methods to create test booking Request data
type RequestFactory struct{}

// NewRequestFactory creates a new RequestFactory
func NewRequestFactory() *RequestFactory {
	return &RequestFactory{}
}

// Create creates an incoming-feed Request in draft with default values
func (f *RequestFactory) Create() *models.Request {
	return &models.Request{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			CreatedBy: "producer-1",
			UpdatedAt: time.Now(),
			UpdatedBy: "producer-1",
		},
		BookingType:    models.BookingTypeIncomingFeed,
		Title:          "Evening satellite window",
		ProgramSegment: "Evening News / Block C",
		AirDateTime:    time.Now().Add(24 * time.Hour),
		Language:       models.LanguageEnglish,
		Priority:       models.PriorityNormal,
		NOCRequired:    true,
		State:          models.WorkflowStateDraft,
		Version:        1,
		Feed: &models.FeedDetails{
			SourceType: models.SourceTypeSRT,
			ReturnPath: models.ReturnPathDisabled,
			KeyFill:    models.KeyFillNone,
		},
	}
}

// WithGuest converts the request into a guest-rundown booking
func (f *RequestFactory) WithGuest() *models.Request {
	req := f.Create()
	req.BookingType = models.BookingTypeGuestRundown
	req.Title = "Studio guest: Dr. Salem"
	req.Feed = nil
	req.Guest = &models.GuestDetails{
		GuestName:      "Dr. Salem",
		GuestContact:   "+1-555-0142",
		INewsRundownID: "RUN-2209",
		StorySlug:      "ELECTIONS-PANEL",
	}
	return req
}

// WithState sets a custom workflow state for the request
func (f *RequestFactory) WithState(state models.WorkflowState) *models.Request {
	req := f.Create()
	req.State = state
	return req
}

// WithoutNOC waives the NOC review stage
func (f *RequestFactory) WithoutNOC() *models.Request {
	req := f.Create()
	req.NOCRequired = false
	return req
}

// WithPriority sets a custom priority for the request
func (f *RequestFactory) WithPriority(priority models.Priority) *models.Request {
	req := f.Create()
	req.Priority = priority
	return req
}

// CallsheetFactory provides methods to create test CallsheetRequest data
type CallsheetFactory struct{}

// NewCallsheetFactory creates a new CallsheetFactory
func NewCallsheetFactory() *CallsheetFactory {
	return &CallsheetFactory{}
}

// Create creates a driver-needing CallsheetRequest in technical review
func (f *CallsheetFactory) Create() *models.CallsheetRequest {
	return &models.CallsheetRequest{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			CreatedBy: "field-producer",
			UpdatedAt: time.Now(),
			UpdatedBy: "field-producer",
		},
		Title:              "Field shoot at the port",
		Date:               time.Now().Add(48 * time.Hour),
		DriverNeeded:       true,
		EquipmentRequested: models.StringList{"Camera A", "Tripod", "Wireless mic kit"},
		Status:             models.CallsheetStatusPendingTechnical,
		Version:            1,
	}
}

// WithStatus sets a custom status for the call sheet
func (f *CallsheetFactory) WithStatus(status models.CallsheetStatus) *models.CallsheetRequest {
	cs := f.Create()
	cs.Status = status
	return cs
}

// WithoutDriver creates a call sheet that needs no driver
func (f *CallsheetFactory) WithoutDriver() *models.CallsheetRequest {
	cs := f.Create()
	cs.DriverNeeded = false
	return cs
}

// WithEquipment sets the requested equipment list
func (f *CallsheetFactory) WithEquipment(items ...string) *models.CallsheetRequest {
	cs := f.Create()
	cs.EquipmentRequested = append(models.StringList{}, items...)
	return cs
}

// NotificationFactory provides methods to create test Notification data
type NotificationFactory struct{}

// NewNotificationFactory creates a new NotificationFactory
func NewNotificationFactory() *NotificationFactory {
	return &NotificationFactory{}
}

// Create creates an unread Notification with default values
func (f *NotificationFactory) Create() *models.Notification {
	return &models.Notification{
		ID:        uuid.New(),
		SubjectID: uuid.New(),
		Recipient: string(models.RoleBooking),
		Message:   "Clarification requested for \"Evening satellite window\"",
		Read:      false,
		CreatedAt: time.Now(),
	}
}

// WithRecipient sets a custom recipient role for the notification
func (f *NotificationFactory) WithRecipient(recipient string) *models.Notification {
	n := f.Create()
	n.Recipient = recipient
	return n
}

// WithSubject ties the notification to a specific entity
func (f *NotificationFactory) WithSubject(subjectID uuid.UUID) *models.Notification {
	n := f.Create()
	n.SubjectID = subjectID
	return n
}

// FactorySet provides access to all factories
type FactorySet struct {
	Request      *RequestFactory
	Callsheet    *CallsheetFactory
	Notification *NotificationFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Request:      NewRequestFactory(),
		Callsheet:    NewCallsheetFactory(),
		Notification: NewNotificationFactory(),
	}
}
