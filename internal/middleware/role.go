package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"barbershop/internal/domain/user"
	"barbershop/internal/pkg/response"
)

// RequireRoles lets the request through only when the role set by JWTAuth is one of roles.
func RequireRoles(roles ...user.Role) gin.HandlerFunc {
	allowed := make(map[user.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		raw := c.GetString("role")
		if raw == "" {
			response.Abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			return
		}

		role, err := user.ParseRole(raw)
		if err != nil || !allowed[role] {
			response.Abort(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			return
		}

		c.Next()
	}
}

func OwnerOnly() gin.HandlerFunc {
	return RequireRoles(user.RoleOwner)
}
