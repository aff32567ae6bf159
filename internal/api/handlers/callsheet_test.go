package handlers_test

import (
	"encoding/json"
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

// CallsheetHandlerTestSuite defines the test suite for CallsheetHandler
type CallsheetHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockCallsheetServiceInterface
	http        *testutils.HTTPTestSuite
	router      *gin.Engine
}

// SetupTest sets up the test suite
func (suite *CallsheetHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockCallsheetServiceInterface(suite.ctrl)
	handler := handlers.NewCallsheetHandler(suite.mockService)

	suite.http = testutils.SetupHTTPTest()
	suite.router = suite.http.Router
	// Stand-in for the auth middleware identity
	suite.router.Use(func(c *gin.Context) {
		c.Set("username", "store-keeper")
		c.Set("callsheet_role", models.CallsheetRoleTechnicalStore)
		c.Next()
	})
	callsheets := suite.router.Group("/api/v1/callsheets")
	{
		callsheets.POST("", handler.CreateCallsheet)
		callsheets.GET("", handler.ListCallsheets)
		callsheets.GET("/:id", handler.GetCallsheet)
		callsheets.GET("/:id/history", handler.GetHistory)
		callsheets.POST("/:id/equipment", handler.SubmitEquipment)
		callsheets.POST("/:id/approve", handler.Approve)
		callsheets.POST("/:id/request-clarification", handler.RequestClarification)
	}
}

// TearDownTest cleans up after each test
func (suite *CallsheetHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateCallsheet tests successful creation
func (suite *CallsheetHandlerTestSuite) TestCreateCallsheet() {
	expected := &service.CallsheetResponse{
		ID:     uuid.New(),
		Title:  "Field shoot at the port",
		Status: models.CallsheetStatusPendingTechnical,
	}
	suite.mockService.EXPECT().
		CreateCallsheet(gomock.Any(), gomock.Any(), "store-keeper").
		DoAndReturn(func(_ interface{}, req *service.CreateCallsheetRequest, _ string) (*service.CallsheetResponse, error) {
			suite.True(req.DriverNeeded)
			suite.Equal([]string{"Camera A", "Tripod"}, req.EquipmentRequested)
			return expected, nil
		})

	w := suite.http.MakeRequest("POST", "/api/v1/callsheets", map[string]interface{}{
		"title":               "Field shoot at the port",
		"date":                time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		"driver_needed":       true,
		"equipment_requested": []string{"Camera A", "Tripod"},
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp service.CallsheetResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.ID, resp.ID)
}

// TestSubmitEquipmentForwardsSet tests equipment payload plumbing
func (suite *CallsheetHandlerTestSuite) TestSubmitEquipmentForwardsSet() {
	id := uuid.New()
	suite.mockService.EXPECT().
		ApplyAction(gomock.Any(), id, workflow.ActionSubmitEquipment, models.CallsheetRoleTechnicalStore, workflow.Payload{
			Actor:     "store-keeper",
			Equipment: []string{"Camera B", "Tripod"},
		}).
		Return(&service.CallsheetResponse{ID: id, Status: models.CallsheetStatusPendingRequesterApproval}, nil)

	w := suite.http.MakeRequest("POST", "/api/v1/callsheets/"+id.String()+"/equipment", map[string]interface{}{
		"equipment": []string{"Camera B", "Tripod"},
	})

	suite.Equal(http.StatusOK, w.Code)
}

// TestApproveWithoutBody tests that the approve route accepts an empty body
func (suite *CallsheetHandlerTestSuite) TestApproveWithoutBody() {
	id := uuid.New()
	suite.mockService.EXPECT().
		ApplyAction(gomock.Any(), id, workflow.ActionApprove, models.CallsheetRoleTechnicalStore, workflow.Payload{Actor: "store-keeper"}).
		Return(&service.CallsheetResponse{ID: id, Status: models.CallsheetStatusCompleted}, nil)

	req, _ := http.NewRequest("POST", "/api/v1/callsheets/"+id.String()+"/approve", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
}

// TestActionForbidden tests the 403 mapping
func (suite *CallsheetHandlerTestSuite) TestActionForbidden() {
	id := uuid.New()
	suite.mockService.EXPECT().
		ApplyAction(gomock.Any(), id, workflow.ActionApprove, models.CallsheetRoleTechnicalStore, gomock.Any()).
		Return(nil, &apperrors.UnauthorizedError{Action: "approve", Role: "technical_store", RequiredRole: "callsheet"})

	w := suite.http.MakeRequest("POST", "/api/v1/callsheets/"+id.String()+"/approve", nil)
	suite.Equal(http.StatusForbidden, w.Code)
}

// TestActionConflict tests the 409 mapping for completed sheets
func (suite *CallsheetHandlerTestSuite) TestActionConflict() {
	id := uuid.New()
	suite.mockService.EXPECT().
		ApplyAction(gomock.Any(), id, workflow.ActionSubmitEquipment, models.CallsheetRoleTechnicalStore, gomock.Any()).
		Return(nil, &apperrors.InvalidTransitionError{State: "completed", Action: "submit_equipment"})

	w := suite.http.MakeRequest("POST", "/api/v1/callsheets/"+id.String()+"/equipment", map[string]interface{}{
		"equipment": []string{"Camera A"},
	})
	suite.Equal(http.StatusConflict, w.Code)
}

// TestGetCallsheetNotFound tests the 404 mapping
func (suite *CallsheetHandlerTestSuite) TestGetCallsheetNotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().GetCallsheet(gomock.Any(), id).Return(nil, apperrors.ErrCallsheetNotFound)

	w := suite.http.MakeRequest("GET", "/api/v1/callsheets/"+id.String(), nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

// TestListCallsheetsInvalidStatus tests the 400 mapping for bad filters
func (suite *CallsheetHandlerTestSuite) TestListCallsheetsInvalidStatus() {
	suite.mockService.EXPECT().
		ListCallsheets(gomock.Any(), "archived", 1, 20).
		Return(nil, &apperrors.ValidationError{Field: "status", Message: "unknown call-sheet status"})

	w := suite.http.MakeRequest("GET", "/api/v1/callsheets?status=archived", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

// Run the test suite
func TestCallsheetHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CallsheetHandlerTestSuite))
}
