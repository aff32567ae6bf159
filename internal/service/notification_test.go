package service_test

import (
	"context"
	"testing"
	"time"

	"broadcast-ops-backend/internal/database/models"
	apperrors "broadcast-ops-backend/internal/errors"
	"broadcast-ops-backend/internal/mocks"
	"broadcast-ops-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// NotificationServiceTestSuite defines the test suite for NotificationService
type NotificationServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockNotificationRepositoryInterface
	service  *service.NotificationService
	ctx      context.Context
}

// SetupTest sets up the test suite
func (suite *NotificationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockNotificationRepositoryInterface(suite.ctrl)
	suite.service = service.NewNotificationService(suite.mockRepo)
	suite.ctx = context.Background()
}

// TearDownTest cleans up after each test
func (suite *NotificationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListForRecipient tests role-scoped listing with pagination defaults
func (suite *NotificationServiceTestSuite) TestListForRecipient() {
	stored := []models.Notification{
		{ID: uuid.New(), SubjectID: uuid.New(), Recipient: "booking", Message: "Clarification requested", Read: false, CreatedAt: time.Now()},
		{ID: uuid.New(), SubjectID: uuid.New(), Recipient: "booking", Message: "Request completed", Read: true, CreatedAt: time.Now().Add(-time.Hour)},
	}
	suite.mockRepo.EXPECT().
		GetByRecipient(gomock.Any(), "booking", false, 20, 0).
		Return(stored, int64(2), nil)

	resp, err := suite.service.List(suite.ctx, "booking", false, 0, 0)

	suite.NoError(err)
	suite.Len(resp.Notifications, 2)
	suite.Equal(int64(2), resp.Total)
	suite.Equal(1, resp.Page)
	suite.Equal(20, resp.PageSize)
	suite.Equal("Clarification requested", resp.Notifications[0].Message)
}

// TestListUnreadOnly tests that the unread filter reaches the repository
func (suite *NotificationServiceTestSuite) TestListUnreadOnly() {
	suite.mockRepo.EXPECT().
		GetByRecipient(gomock.Any(), "noc", true, 10, 10).
		Return([]models.Notification{}, int64(0), nil)

	resp, err := suite.service.List(suite.ctx, "noc", true, 2, 10)

	suite.NoError(err)
	suite.Empty(resp.Notifications)
	suite.Equal(2, resp.Page)
}

// TestListRequiresRecipient tests recipient validation
func (suite *NotificationServiceTestSuite) TestListRequiresRecipient() {
	_, err := suite.service.List(suite.ctx, "", false, 1, 20)
	suite.True(apperrors.IsValidation(err))
}

// TestMarkRead tests single-notification read bookkeeping
func (suite *NotificationServiceTestSuite) TestMarkRead() {
	id := uuid.New()
	suite.mockRepo.EXPECT().MarkRead(gomock.Any(), id).Return(nil)

	suite.NoError(suite.service.MarkRead(suite.ctx, id))
}

// TestMarkReadNotFound tests the missing-notification path
func (suite *NotificationServiceTestSuite) TestMarkReadNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().MarkRead(gomock.Any(), id).Return(gorm.ErrRecordNotFound)

	err := suite.service.MarkRead(suite.ctx, id)
	suite.ErrorIs(err, apperrors.ErrNotificationNotFound)
}

// TestMarkAllRead tests bulk read bookkeeping
func (suite *NotificationServiceTestSuite) TestMarkAllRead() {
	suite.mockRepo.EXPECT().MarkAllRead(gomock.Any(), "ingest").Return(nil)

	suite.NoError(suite.service.MarkAllRead(suite.ctx, "ingest"))
}

// TestMarkAllReadRequiresRecipient tests recipient validation
func (suite *NotificationServiceTestSuite) TestMarkAllReadRequiresRecipient() {
	err := suite.service.MarkAllRead(suite.ctx, "")
	suite.True(apperrors.IsValidation(err))
}

// Run the test suite
func TestNotificationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}
