package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"luxurystay-backend/services"
	"luxurystay-backend/utils"
)

// AuthMiddleware verifies the Bearer token and, when roles are given, rejects
// identities outside them. It stores userID/userRole in the gin context for
// the handlers downstream. This is the authorization gate: it runs on the
// server in front of every protected route, never in the client.
func AuthMiddleware(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.JSONError(c, 401, "authentication required")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		info, err := services.ParseToken(tokenString)
		if err != nil {
			utils.JSONError(c, 401, "invalid or expired token")
			c.Abort()
			return
		}

		if len(roles) > 0 {
			hasRole := false
			for _, role := range roles {
				if role == info.Role {
					hasRole = true
					break
				}
			}
			if !hasRole {
				utils.JSONError(c, 403, "admin access required")
				c.Abort()
				return
			}
		}

		c.Set("userID", info.UserID)
		c.Set("userRole", info.Role)
		c.Next()
	}
}

// CurrentActor reads the identity that AuthMiddleware stored.
func CurrentActor(c *gin.Context) services.Actor {
	actor := services.Actor{}
	if id, ok := c.Get("userID"); ok {
		actor.UserID = id.(uint)
	}
	if role, ok := c.Get("userRole"); ok {
		actor.Role = role.(string)
	}
	return actor
}
