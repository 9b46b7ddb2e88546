package middleware

import (
	"net/http"

	"github.com/mdowais-techno/team-hub-server/utils"

	"github.com/gin-gonic/gin"
)

// RequireRoles rejects callers whose token role is not in the allow list.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		role := c.GetString("role")
		if _, ok := allowed[role]; !ok {
			utils.Error(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}
