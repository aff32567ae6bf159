package handlers_test

import (
	"net/http"
	"testing"

	"broadcast-ops-backend/internal/api/handlers"
	"broadcast-ops-backend/internal/database/models"
	apperrors "broadcast-ops-backend/internal/errors"
	"broadcast-ops-backend/internal/mocks"
	"broadcast-ops-backend/internal/service"
	"broadcast-ops-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// NotificationHandlerTestSuite defines the test suite for NotificationHandler
type NotificationHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockNotificationServiceInterface
	http        *testutils.HTTPTestSuite
	router      *gin.Engine
}

// SetupTest sets up the test suite
func (suite *NotificationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockNotificationServiceInterface(suite.ctrl)
	handler := handlers.NewNotificationHandler(suite.mockService)

	suite.http = testutils.SetupHTTPTest()
	suite.router = suite.http.Router
	// Stand-in for the auth middleware identity
	suite.router.Use(func(c *gin.Context) {
		c.Set("username", "noc-operator")
		c.Set("role", models.RoleNOC)
		c.Next()
	})
	notifications := suite.router.Group("/api/v1/notifications")
	{
		notifications.GET("", handler.ListNotifications)
		notifications.POST("/:id/read", handler.MarkRead)
		notifications.POST("/read-all", handler.MarkAllRead)
	}
}

// TearDownTest cleans up after each test
func (suite *NotificationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListUsesCallerRoleAsRecipient tests that the listing is scoped to the
// authenticated role
func (suite *NotificationHandlerTestSuite) TestListUsesCallerRoleAsRecipient() {
	suite.mockService.EXPECT().
		List(gomock.Any(), "noc", false, 1, 20).
		Return(&service.NotificationListResponse{Total: 0, Page: 1, PageSize: 20}, nil)

	w := suite.http.MakeRequest("GET", "/api/v1/notifications", nil)
	suite.Equal(http.StatusOK, w.Code)
}

// TestListUnreadOnly tests the unread filter
func (suite *NotificationHandlerTestSuite) TestListUnreadOnly() {
	suite.mockService.EXPECT().
		List(gomock.Any(), "noc", true, 2, 10).
		Return(&service.NotificationListResponse{Total: 0, Page: 2, PageSize: 10}, nil)

	w := suite.http.MakeRequest("GET", "/api/v1/notifications?unread_only=true&page=2&page_size=10", nil)
	suite.Equal(http.StatusOK, w.Code)
}

// TestMarkRead tests single-notification read
func (suite *NotificationHandlerTestSuite) TestMarkRead() {
	id := uuid.New()
	suite.mockService.EXPECT().MarkRead(gomock.Any(), id).Return(nil)

	w := suite.http.MakeRequest("POST", "/api/v1/notifications/"+id.String()+"/read", nil)
	suite.Equal(http.StatusOK, w.Code)
}

// TestMarkReadNotFound tests the 404 mapping
func (suite *NotificationHandlerTestSuite) TestMarkReadNotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().MarkRead(gomock.Any(), id).Return(apperrors.ErrNotificationNotFound)

	w := suite.http.MakeRequest("POST", "/api/v1/notifications/"+id.String()+"/read", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

// TestMarkReadInvalidID tests UUID parsing
func (suite *NotificationHandlerTestSuite) TestMarkReadInvalidID() {
	w := suite.http.MakeRequest("POST", "/api/v1/notifications/not-a-uuid/read", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

// TestMarkAllRead tests bulk read for the caller's role
func (suite *NotificationHandlerTestSuite) TestMarkAllRead() {
	suite.mockService.EXPECT().MarkAllRead(gomock.Any(), "noc").Return(nil)

	w := suite.http.MakeRequest("POST", "/api/v1/notifications/read-all", nil)
	suite.Equal(http.StatusOK, w.Code)
}

// Run the test suite
func TestNotificationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationHandlerTestSuite))
}
