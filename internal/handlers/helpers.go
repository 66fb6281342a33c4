package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"chairai-backend/internal/middleware"
	"chairai-backend/internal/models"
)

// principal extracts the authenticated user id and role set by the auth
// middleware. On failure it writes the error response and returns ok=false.
func principal(c *gin.Context) (uuid.UUID, models.Role, bool) {
	userIDStr, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: models.ErrorBody{Code: "UNAUTHORIZED", Message: "user id not found"},
		})
		return uuid.Nil, "", false
	}

	userID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorBody{Code: "BAD_REQUEST", Message: "invalid user id"},
		})
		return uuid.Nil, "", false
	}

	role, _ := c.Get(middleware.RoleKey)
	roleStr, _ := role.(string)
	return userID, models.Role(roleStr), true
}

// requireRole rejects callers whose role does not match.
func requireRole(c *gin.Context, role, want models.Role) bool {
	if role != want {
		respondError(c, models.ErrForbidden)
		return false
	}
	return true
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorBody{Code: "BAD_REQUEST", Message: "invalid " + name},
		})
		return uuid.Nil, false
	}
	return id, true
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorBody{Code: "BAD_REQUEST", Message: err.Error()},
	})
}

// respondError maps a service error to its HTTP response. Errors that are not
// ServiceError instances become opaque 500s.
func respondError(c *gin.Context, err error) {
	var svcErr *models.ServiceError
	if errors.As(err, &svcErr) {
		c.JSON(svcErr.StatusCode, models.ErrorResponse{
			Error: models.ErrorBody{Code: svcErr.Code, Message: svcErr.Message},
		})
		return
	}
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error: models.ErrorBody{Code: "INTERNAL_ERROR", Message: "internal server error"},
	})
}
