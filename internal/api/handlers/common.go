package handlers

import (
	"net/http"

	"broadcast-ops-backend/internal/database/models"
	apperrors "broadcast-ops-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// respondError maps the workflow error taxonomy onto HTTP status codes:
// rejected payloads are 400, role violations 403, missing entities 404,
// undefined transitions 409 and storage failures 500.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsUnauthorized(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsInvalidTransition(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsPersistence(err):
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Storage failure",
			"details":   err.Error(),
			"retryable": apperrors.IsRetryablePersistence(err),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// actorFromContext returns the authenticated username set by the auth middleware
func actorFromContext(c *gin.Context) string {
	return c.GetString("username")
}

// roleFromContext returns the authenticated booking role
func roleFromContext(c *gin.Context) models.Role {
	if v, ok := c.Get("role"); ok {
		if role, ok := v.(models.Role); ok {
			return role
		}
	}
	return ""
}

// callsheetRoleFromContext returns the authenticated call-sheet role
func callsheetRoleFromContext(c *gin.Context) models.CallsheetRole {
	if v, ok := c.Get("callsheet_role"); ok {
		if role, ok := v.(models.CallsheetRole); ok {
			return role
		}
	}
	return ""
}
