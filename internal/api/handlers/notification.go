package handlers

import (
	"net/http"

	"broadcast-ops-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// NotificationHandler handles HTTP requests for the notification center
type NotificationHandler struct {
	service service.NotificationServiceInterface
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(service service.NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// ListNotifications handles GET /api/v1/notifications
// @Summary List notifications for the caller's role
// @Tags notifications
// @Produce json
// @Param unread_only query bool false "Only unread notifications"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} service.NotificationListResponse "Paginated notifications"
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Security BearerAuth
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	page, pageSize := parsePagination(c)
	unreadOnly := c.Query("unread_only") == "true"
	recipient := string(roleFromContext(c))

	resp, err := h.service.List(c.Request.Context(), recipient, unreadOnly, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MarkRead handles POST /api/v1/notifications/:id/read
// @Summary Mark a notification as read
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID (UUID)"
// @Success 200 {object} map[string]string "Marked read"
// @Failure 404 {object} ErrorResponse "Notification not found"
// @Security BearerAuth
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification ID: invalid UUID format"})
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "read"})
}

// MarkAllRead handles POST /api/v1/notifications/read-all
// @Summary Mark all notifications of the caller's role as read
// @Tags notifications
// @Produce json
// @Success 200 {object} map[string]string "Marked read"
// @Security BearerAuth
// @Router /notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.service.MarkAllRead(c.Request.Context(), string(roleFromContext(c))); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "read"})
}
