package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brickbase-api-io/api/internal/auth"
	"brickbase-api-io/api/pkg/models"
	"brickbase-api-io/api/pkg/services"
	"brickbase-api-io/api/pkg/util"
)

// Role gates attach declaratively at route registration, after Auth, so
// the protected surface is auditable in one place.

// AdminOnly restricts access to admin users.
func AdminOnly(userService services.UserService) gin.HandlerFunc {
	return requireRole(userService, models.RoleAdmin)
}

// AgentOnly restricts access to agent users.
func AgentOnly(userService services.UserService) gin.HandlerFunc {
	return requireRole(userService, models.RoleAgent)
}

func requireRole(userService services.UserService, want models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := auth.GetSession(c)
		if err != nil {
			util.HandleError(c, http.StatusUnauthorized, err)
			c.Abort()
			return
		}

		role, err := userService.GetUserRole(c.Request.Context(), session.Email)
		if err != nil {
			util.HandleError(c, http.StatusUnauthorized, err)
			c.Abort()
			return
		}

		if role != want {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "insufficient permissions: " + string(want) + " access required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// IsAdmin reports whether the authenticated caller holds the admin role.
// Used by handlers whose behavior widens for admins instead of gating.
func IsAdmin(c *gin.Context, userService services.UserService) bool {
	session, err := auth.GetSession(c)
	if err != nil {
		return false
	}

	role, err := userService.GetUserRole(c.Request.Context(), session.Email)
	if err != nil {
		return false
	}

	return role == models.RoleAdmin
}
