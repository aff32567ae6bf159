package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"broadcast-ops-backend/internal/api/handlers"
	"broadcast-ops-backend/internal/database/models"
	apperrors "broadcast-ops-backend/internal/errors"
	"broadcast-ops-backend/internal/mocks"
	"broadcast-ops-backend/internal/service"
	"broadcast-ops-backend/internal/testutils"
	"broadcast-ops-backend/internal/workflow"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// RequestHandlerTestSuite defines the test suite for RequestHandler
type RequestHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockBookingWorkflowServiceInterface
	http        *testutils.HTTPTestSuite
	router      *gin.Engine
}

// SetupTest sets up the test suite
func (suite *RequestHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockBookingWorkflowServiceInterface(suite.ctrl)
	handler := handlers.NewRequestHandler(suite.mockService)

	suite.http = testutils.SetupHTTPTest()
	suite.router = suite.http.Router
	// Stand-in for the auth middleware identity
	suite.router.Use(func(c *gin.Context) {
		c.Set("username", "producer-1")
		c.Set("role", models.RoleBooking)
		c.Next()
	})
	requests := suite.router.Group("/api/v1/requests")
	{
		requests.POST("", handler.CreateRequest)
		requests.GET("", handler.ListRequests)
		requests.GET("/:id", handler.GetRequest)
		requests.GET("/:id/state", handler.GetState)
		requests.GET("/:id/history", handler.GetHistory)
		requests.GET("/:id/allocations", handler.GetAllocations)
		requests.POST("/:id/submit", handler.Submit)
		requests.POST("/:id/acknowledge", handler.Acknowledge)
		requests.POST("/:id/assign-resources", handler.AssignResources)
		requests.POST("/:id/request-clarification", handler.RequestClarification)
		requests.POST("/:id/forward-to-ingest", handler.ForwardToIngest)
		requests.POST("/:id/complete", handler.MarkCompleted)
		requests.POST("/:id/not-done", handler.MarkNotDone)
	}
}

// TearDownTest cleans up after each test
func (suite *RequestHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateRequest tests successful request creation
func (suite *RequestHandlerTestSuite) TestCreateRequest() {
	expected := &service.RequestResponse{
		ID:    uuid.New(),
		Title: "Evening satellite window",
		State: models.WorkflowStateDraft,
	}
	suite.mockService.EXPECT().
		CreateRequest(gomock.Any(), gomock.Any(), "producer-1").
		DoAndReturn(func(_ interface{}, req *service.CreateRequestRequest, _ string) (*service.RequestResponse, error) {
			suite.Equal("incoming_feed", req.BookingType)
			suite.Equal("Evening satellite window", req.Title)
			return expected, nil
		})

	w := suite.http.MakeRequest("POST", "/api/v1/requests", map[string]interface{}{
		"booking_type":    "incoming_feed",
		"title":           "Evening satellite window",
		"program_segment": "Evening News / Block C",
		"air_date_time":   time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		"feed":            map[string]string{"source_type": "satellite"},
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp service.RequestResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.ID, resp.ID)
}

// TestCreateRequestInvalidBody tests malformed JSON rejection
func (suite *RequestHandlerTestSuite) TestCreateRequestInvalidBody() {
	req, _ := http.NewRequest("POST", "/api/v1/requests", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

// TestCreateRequestValidationError tests the 400 mapping
func (suite *RequestHandlerTestSuite) TestCreateRequestValidationError() {
	suite.mockService.EXPECT().
		CreateRequest(gomock.Any(), gomock.Any(), "producer-1").
		Return(nil, &apperrors.ValidationError{Field: "booking_type", Message: "mismatched field group"})

	w := suite.http.MakeRequest("POST", "/api/v1/requests", map[string]interface{}{
		"booking_type":    "incoming_feed",
		"title":           "Mismatched",
		"program_segment": "Block A",
		"air_date_time":   time.Now().Format(time.RFC3339),
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

// TestGetRequestInvalidID tests UUID parsing
func (suite *RequestHandlerTestSuite) TestGetRequestInvalidID() {
	w := suite.http.MakeRequest("GET", "/api/v1/requests/not-a-uuid", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

// TestGetRequestNotFound tests the 404 mapping
func (suite *RequestHandlerTestSuite) TestGetRequestNotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().GetRequest(gomock.Any(), id).Return(nil, apperrors.ErrRequestNotFound)

	w := suite.http.MakeRequest("GET", "/api/v1/requests/"+id.String(), nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

// TestSubmitWithoutBody tests that action routes accept an empty body
func (suite *RequestHandlerTestSuite) TestSubmitWithoutBody() {
	id := uuid.New()
	suite.mockService.EXPECT().
		ApplyAction(gomock.Any(), id, workflow.ActionSubmit, models.RoleBooking, workflow.Payload{Actor: "producer-1"}).
		Return(&service.RequestResponse{ID: id, State: models.WorkflowStateWithNOC}, nil)

	req, _ := http.NewRequest("POST", "/api/v1/requests/"+id.String()+"/submit", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
}

// TestAssignResourcesForwardsPayload tests payload plumbing into the workflow
func (suite *RequestHandlerTestSuite) TestAssignResourcesForwardsPayload() {
	id := uuid.New()
	suite.mockService.EXPECT().
		ApplyAction(gomock.Any(), id, workflow.ActionAssignResources, models.RoleBooking, workflow.Payload{
			Actor:     "producer-1",
			Resources: "Encoder-01, SRT-RX-2",
		}).
		Return(&service.RequestResponse{ID: id, State: models.WorkflowStateResourcesAdded}, nil)

	w := suite.http.MakeRequest("POST", "/api/v1/requests/"+id.String()+"/assign-resources", map[string]string{
		"resources": "Encoder-01, SRT-RX-2",
	})
	suite.Equal(http.StatusOK, w.Code)
}

// TestActionConflict tests the 409 mapping for undefined transitions
func (suite *RequestHandlerTestSuite) TestActionConflict() {
	id := uuid.New()
	suite.mockService.EXPECT().
		ApplyAction(gomock.Any(), id, workflow.ActionSubmit, models.RoleBooking, gomock.Any()).
		Return(nil, &apperrors.InvalidTransitionError{State: "completed", Action: "submit"})

	w := suite.http.MakeRequest("POST", "/api/v1/requests/"+id.String()+"/submit", nil)
	suite.Equal(http.StatusConflict, w.Code)
}

// TestActionForbidden tests the 403 mapping for role violations
func (suite *RequestHandlerTestSuite) TestActionForbidden() {
	id := uuid.New()
	suite.mockService.EXPECT().
		ApplyAction(gomock.Any(), id, workflow.ActionMarkCompleted, models.RoleBooking, gomock.Any()).
		Return(nil, &apperrors.UnauthorizedError{Action: "mark_completed", Role: "booking", RequiredRole: "ingest"})

	w := suite.http.MakeRequest("POST", "/api/v1/requests/"+id.String()+"/complete", nil)
	suite.Equal(http.StatusForbidden, w.Code)
}

// TestPersistenceFailureReportsRetryable tests the 500 mapping and retry hint
func (suite *RequestHandlerTestSuite) TestPersistenceFailureReportsRetryable() {
	id := uuid.New()
	suite.mockService.EXPECT().
		ApplyAction(gomock.Any(), id, workflow.ActionAcknowledge, models.RoleBooking, gomock.Any()).
		Return(nil, &apperrors.PersistenceError{Op: "commit transition", AfterWrite: false, Err: errors.New("version conflict")})

	w := suite.http.MakeRequest("POST", "/api/v1/requests/"+id.String()+"/acknowledge", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	var body map[string]interface{}
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(true, body["retryable"])
}

// TestListRequestsForwardsFilters tests query binding
func (suite *RequestHandlerTestSuite) TestListRequestsForwardsFilters() {
	suite.mockService.EXPECT().
		ListRequests(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, query *service.ListRequestsQuery) (*service.RequestListResponse, error) {
			suite.Equal("with_noc", query.State)
			suite.Equal("high", query.Priority)
			suite.Equal(2, query.Page)
			return &service.RequestListResponse{Page: 2, PageSize: 20}, nil
		})

	w := suite.http.MakeRequest("GET", "/api/v1/requests?state=with_noc&priority=high&page=2", nil)
	suite.Equal(http.StatusOK, w.Code)
}

// TestGetState tests the state shortcut endpoint
func (suite *RequestHandlerTestSuite) TestGetState() {
	id := uuid.New()
	suite.mockService.EXPECT().GetState(gomock.Any(), id).Return(models.WorkflowStateWithIngest, nil)

	w := suite.http.MakeRequest("GET", "/api/v1/requests/"+id.String()+"/state", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body map[string]string
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("with_ingest", body["state"])
}

// TestGetHistory tests the history endpoint
func (suite *RequestHandlerTestSuite) TestGetHistory() {
	id := uuid.New()
	from := models.WorkflowStateDraft
	suite.mockService.EXPECT().GetHistory(gomock.Any(), id).Return([]service.TransitionResponse{
		{ID: uuid.New(), FromState: nil, ToState: models.WorkflowStateDraft},
		{ID: uuid.New(), FromState: &from, ToState: models.WorkflowStateWithNOC},
	}, nil)

	w := suite.http.MakeRequest("GET", "/api/v1/requests/"+id.String()+"/history", nil)

	suite.Equal(http.StatusOK, w.Code)
	var history []service.TransitionResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &history))
	suite.Len(history, 2)
}

// Run the test suite
func TestRequestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RequestHandlerTestSuite))
}
