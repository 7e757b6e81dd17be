package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/crewtrack/crewtime/internal/domain/user"
	"github.com/crewtrack/crewtime/pkg/response"
	"github.com/crewtrack/crewtime/pkg/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RequireRole allows the request only when the token's role is one of
// the given roles. Admin always passes.
func RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.MustGet("claims").(*types.Claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token claims"})
			return
		}

		if claims.Role == user.RoleAdmin {
			c.Next()
			return
		}
		for _, r := range roles {
			if claims.Role == r {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "insufficient role"})
	}
}

// Admin restricts the route to admins.
func Admin() gin.HandlerFunc {
	return RequireRole()
}

// Approver covers every role that can act on a pending timesheet.
func Approver() gin.HandlerFunc {
	return RequireRole(user.RoleSuperintendent, user.RoleProjectManager, user.RolePayroll)
}

// CORSMiddleware allows local frontends during development.
func CORSMiddleware() gin.HandlerFunc {
	config := cors.Config{
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost:") {
				return true
			}
			if strings.HasPrefix(origin, "http://127.0.0.1:") {
				return true
			}
			return false
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	return cors.New(config)
}
