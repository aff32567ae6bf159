package handlers

import (
	"net/http"
	"strconv"

	"broadcast-ops-backend/internal/service"
	"broadcast-ops-backend/internal/workflow"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestHandler handles HTTP requests for booking requests
type RequestHandler struct {
	service service.BookingWorkflowServiceInterface
}

// NewRequestHandler creates a new booking request handler
func NewRequestHandler(service service.BookingWorkflowServiceInterface) *RequestHandler {
	return &RequestHandler{service: service}
}

// CreateRequest handles POST /api/v1/requests
// @Summary Create a booking request
// @Description Create a booking request in draft, optionally submitting it right away
// @Tags requests
// @Accept json
// @Produce json
// @Param request body service.CreateRequestRequest true "Booking request data"
// @Success 201 {object} service.RequestResponse "Successfully created request"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /requests [post]
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	var req service.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.CreateRequest(c.Request.Context(), &req, actorFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListRequests handles GET /api/v1/requests
// @Summary List booking requests
// @Description List booking requests with optional state, type, priority and creator filters
// @Tags requests
// @Produce json
// @Param state query string false "Workflow state filter"
// @Param booking_type query string false "Booking type filter"
// @Param priority query string false "Priority filter"
// @Param created_by query string false "Creator filter"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} service.RequestListResponse "Paginated requests"
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /requests [get]
func (h *RequestHandler) ListRequests(c *gin.Context) {
	var query service.ListRequestsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters", "details": err.Error()})
		return
	}

	resp, err := h.service.ListRequests(c.Request.Context(), &query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetRequest handles GET /api/v1/requests/:id
// @Summary Get a booking request
// @Tags requests
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Success 200 {object} service.RequestResponse "Request"
// @Failure 400 {object} ErrorResponse "Invalid request ID"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Security BearerAuth
// @Router /requests/{id} [get]
func (h *RequestHandler) GetRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID: invalid UUID format"})
		return
	}

	resp, err := h.service.GetRequest(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetState handles GET /api/v1/requests/:id/state
// @Summary Get the current workflow state of a request
// @Tags requests
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Success 200 {object} map[string]string "Current state"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Security BearerAuth
// @Router /requests/{id}/state [get]
func (h *RequestHandler) GetState(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID: invalid UUID format"})
		return
	}

	state, err := h.service.GetState(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": state})
}

// GetHistory handles GET /api/v1/requests/:id/history
// @Summary Get the transition history of a request
// @Description Full append-only transition log, oldest first
// @Tags requests
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Success 200 {array} service.TransitionResponse "Transition history"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Security BearerAuth
// @Router /requests/{id}/history [get]
func (h *RequestHandler) GetHistory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID: invalid UUID format"})
		return
	}

	history, err := h.service.GetHistory(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// GetAllocations handles GET /api/v1/requests/:id/allocations
// @Summary Get the resource allocations of a request
// @Tags requests
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Success 200 {array} models.ResourceAllocation "Allocations"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Security BearerAuth
// @Router /requests/{id}/allocations [get]
func (h *RequestHandler) GetAllocations(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID: invalid UUID format"})
		return
	}

	allocations, err := h.service.GetAllocations(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, allocations)
}

// Submit handles POST /api/v1/requests/:id/submit
// @Summary Submit a draft request
// @Description Moves a draft into the workflow; lands in NOC review unless NOC was waived
// @Tags requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Param payload body service.ActionRequest false "Optional notes"
// @Success 200 {object} service.RequestResponse "Updated request"
// @Failure 403 {object} ErrorResponse "Role not allowed"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Failure 409 {object} ErrorResponse "No transition defined"
// @Security BearerAuth
// @Router /requests/{id}/submit [post]
func (h *RequestHandler) Submit(c *gin.Context) {
	h.applyAction(c, workflow.ActionSubmit)
}

// Acknowledge handles POST /api/v1/requests/:id/acknowledge
// @Summary Acknowledge a request as NOC
// @Tags requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Param payload body service.ActionRequest false "Optional notes"
// @Success 200 {object} service.RequestResponse "Updated request"
// @Failure 403 {object} ErrorResponse "Role not allowed"
// @Failure 409 {object} ErrorResponse "No transition defined"
// @Security BearerAuth
// @Router /requests/{id}/acknowledge [post]
func (h *RequestHandler) Acknowledge(c *gin.Context) {
	h.applyAction(c, workflow.ActionAcknowledge)
}

// AssignResources handles POST /api/v1/requests/:id/assign-resources
// @Summary Assign technical resources as NOC
// @Description Records a resource allocation alongside the transition
// @Tags requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Param payload body service.ActionRequest true "Assigned resources"
// @Success 200 {object} service.RequestResponse "Updated request"
// @Failure 400 {object} ErrorResponse "Missing resources"
// @Failure 403 {object} ErrorResponse "Role not allowed"
// @Failure 409 {object} ErrorResponse "No transition defined"
// @Security BearerAuth
// @Router /requests/{id}/assign-resources [post]
func (h *RequestHandler) AssignResources(c *gin.Context) {
	h.applyAction(c, workflow.ActionAssignResources)
}

// RequestClarification handles POST /api/v1/requests/:id/request-clarification
// @Summary Request clarification from the requester
// @Tags requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Param payload body service.ActionRequest true "Clarification comment"
// @Success 200 {object} service.RequestResponse "Updated request"
// @Failure 400 {object} ErrorResponse "Missing comment"
// @Failure 403 {object} ErrorResponse "Role not allowed"
// @Failure 409 {object} ErrorResponse "No transition defined"
// @Security BearerAuth
// @Router /requests/{id}/request-clarification [post]
func (h *RequestHandler) RequestClarification(c *gin.Context) {
	h.applyAction(c, workflow.ActionRequestClarification)
}

// ForwardToIngest handles POST /api/v1/requests/:id/forward-to-ingest
// @Summary Forward a request to the Ingest team
// @Tags requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Param payload body service.ActionRequest false "Optional notes"
// @Success 200 {object} service.RequestResponse "Updated request"
// @Failure 403 {object} ErrorResponse "Role not allowed"
// @Failure 409 {object} ErrorResponse "No transition defined"
// @Security BearerAuth
// @Router /requests/{id}/forward-to-ingest [post]
func (h *RequestHandler) ForwardToIngest(c *gin.Context) {
	h.applyAction(c, workflow.ActionForwardToIngest)
}

// MarkCompleted handles POST /api/v1/requests/:id/complete
// @Summary Mark a request completed as Ingest
// @Tags requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Param payload body service.ActionRequest false "Optional notes"
// @Success 200 {object} service.RequestResponse "Updated request"
// @Failure 403 {object} ErrorResponse "Role not allowed"
// @Failure 409 {object} ErrorResponse "No transition defined"
// @Security BearerAuth
// @Router /requests/{id}/complete [post]
func (h *RequestHandler) MarkCompleted(c *gin.Context) {
	h.applyAction(c, workflow.ActionMarkCompleted)
}

// MarkNotDone handles POST /api/v1/requests/:id/not-done
// @Summary Mark a request not done as Ingest
// @Description Terminal failure outcome; a reason is required
// @Tags requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Param payload body service.ActionRequest true "Reason"
// @Success 200 {object} service.RequestResponse "Updated request"
// @Failure 400 {object} ErrorResponse "Missing reason"
// @Failure 403 {object} ErrorResponse "Role not allowed"
// @Failure 409 {object} ErrorResponse "No transition defined"
// @Security BearerAuth
// @Router /requests/{id}/not-done [post]
func (h *RequestHandler) MarkNotDone(c *gin.Context) {
	h.applyAction(c, workflow.ActionMarkNotDone)
}

func (h *RequestHandler) applyAction(c *gin.Context, action workflow.Action) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID: invalid UUID format"})
		return
	}

	var body service.ActionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}
	}

	payload := workflow.Payload{
		Actor:        actorFromContext(c),
		Notes:        body.Notes,
		Comment:      body.Comment,
		ResourceType: body.ResourceType,
		Resources:    body.Resources,
		Reason:       body.Reason,
	}

	resp, err := h.service.ApplyAction(c.Request.Context(), id, action, roleFromContext(c), payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// parsePagination reads page/page_size query parameters with defaults
func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return page, pageSize
}
