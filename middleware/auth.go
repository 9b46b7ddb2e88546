package middleware

import (
	"net/http"
	"strings"

	"github.com/mdowais-techno/team-hub-server/utils"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Error(c, http.StatusUnauthorized, "authentication token is missing")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.Error(c, http.StatusUnauthorized, "authentication token is malformed")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(parts[1])
		if err != nil {
			utils.Error(c, http.StatusUnauthorized, "authentication token is invalid or expired")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		if claims.DepartmentID != nil {
			c.Set("department_id", *claims.DepartmentID)
		}
		if claims.JobProfileID != nil {
			c.Set("job_profile_id", *claims.JobProfileID)
		}
		c.Next()
	}
}
