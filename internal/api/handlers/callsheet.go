package handlers

import (
	"net/http"

	"broadcast-ops-backend/internal/service"
	"broadcast-ops-backend/internal/workflow"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CallsheetHandler handles HTTP requests for call sheets
type CallsheetHandler struct {
	service service.CallsheetServiceInterface
}

// NewCallsheetHandler creates a new call-sheet handler
func NewCallsheetHandler(service service.CallsheetServiceInterface) *CallsheetHandler {
	return &CallsheetHandler{service: service}
}

// CreateCallsheet handles POST /api/v1/callsheets
// @Summary Create a call sheet
// @Description Without a driver the sheet completes immediately; with one it enters technical review
// @Tags callsheets
// @Accept json
// @Produce json
// @Param callsheet body service.CreateCallsheetRequest true "Call sheet data"
// @Success 201 {object} service.CallsheetResponse "Successfully created call sheet"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Role not allowed"
// @Security BearerAuth
// @Router /callsheets [post]
func (h *CallsheetHandler) CreateCallsheet(c *gin.Context) {
	var req service.CreateCallsheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.CreateCallsheet(c.Request.Context(), &req, actorFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListCallsheets handles GET /api/v1/callsheets
// @Summary List call sheets
// @Tags callsheets
// @Produce json
// @Param status query string false "Status filter"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} service.CallsheetListResponse "Paginated call sheets"
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Security BearerAuth
// @Router /callsheets [get]
func (h *CallsheetHandler) ListCallsheets(c *gin.Context) {
	page, pageSize := parsePagination(c)
	resp, err := h.service.ListCallsheets(c.Request.Context(), c.Query("status"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetCallsheet handles GET /api/v1/callsheets/:id
// @Summary Get a call sheet
// @Tags callsheets
// @Produce json
// @Param id path string true "Call sheet ID (UUID)"
// @Success 200 {object} service.CallsheetResponse "Call sheet"
// @Failure 404 {object} ErrorResponse "Call sheet not found"
// @Security BearerAuth
// @Router /callsheets/{id} [get]
func (h *CallsheetHandler) GetCallsheet(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid call sheet ID: invalid UUID format"})
		return
	}

	resp, err := h.service.GetCallsheet(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetHistory handles GET /api/v1/callsheets/:id/history
// @Summary Get the transition history of a call sheet
// @Tags callsheets
// @Produce json
// @Param id path string true "Call sheet ID (UUID)"
// @Success 200 {array} service.CallsheetTransitionResponse "Transition history"
// @Failure 404 {object} ErrorResponse "Call sheet not found"
// @Security BearerAuth
// @Router /callsheets/{id}/history [get]
func (h *CallsheetHandler) GetHistory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid call sheet ID: invalid UUID format"})
		return
	}

	history, err := h.service.GetHistory(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// SubmitEquipment handles POST /api/v1/callsheets/:id/equipment
// @Summary Submit assigned equipment as the technical store
// @Description A set matching the requested equipment completes the sheet; a diverging set needs requester approval
// @Tags callsheets
// @Accept json
// @Produce json
// @Param id path string true "Call sheet ID (UUID)"
// @Param payload body service.CallsheetActionRequest true "Assigned equipment"
// @Success 200 {object} service.CallsheetResponse "Updated call sheet"
// @Failure 403 {object} ErrorResponse "Role not allowed"
// @Failure 409 {object} ErrorResponse "No transition defined"
// @Security BearerAuth
// @Router /callsheets/{id}/equipment [post]
func (h *CallsheetHandler) SubmitEquipment(c *gin.Context) {
	h.applyAction(c, workflow.ActionSubmitEquipment)
}

// Approve handles POST /api/v1/callsheets/:id/approve
// @Summary Approve substituted equipment as the requester
// @Tags callsheets
// @Accept json
// @Produce json
// @Param id path string true "Call sheet ID (UUID)"
// @Param payload body service.CallsheetActionRequest false "Optional comment"
// @Success 200 {object} service.CallsheetResponse "Updated call sheet"
// @Failure 403 {object} ErrorResponse "Role not allowed"
// @Failure 409 {object} ErrorResponse "No transition defined"
// @Security BearerAuth
// @Router /callsheets/{id}/approve [post]
func (h *CallsheetHandler) Approve(c *gin.Context) {
	h.applyAction(c, workflow.ActionApprove)
}

// RequestClarification handles POST /api/v1/callsheets/:id/request-clarification
// @Summary Push back on substituted equipment as the requester
// @Tags callsheets
// @Accept json
// @Produce json
// @Param id path string true "Call sheet ID (UUID)"
// @Param payload body service.CallsheetActionRequest true "Clarification comment"
// @Success 200 {object} service.CallsheetResponse "Updated call sheet"
// @Failure 400 {object} ErrorResponse "Missing comment"
// @Failure 403 {object} ErrorResponse "Role not allowed"
// @Failure 409 {object} ErrorResponse "No transition defined"
// @Security BearerAuth
// @Router /callsheets/{id}/request-clarification [post]
func (h *CallsheetHandler) RequestClarification(c *gin.Context) {
	h.applyAction(c, workflow.ActionRequestClarification)
}

func (h *CallsheetHandler) applyAction(c *gin.Context, action workflow.Action) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid call sheet ID: invalid UUID format"})
		return
	}

	var body service.CallsheetActionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}
	}

	payload := workflow.Payload{
		Actor:     actorFromContext(c),
		Comment:   body.Comment,
		Equipment: body.Equipment,
	}

	resp, err := h.service.ApplyAction(c.Request.Context(), id, action, callsheetRoleFromContext(c), payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
