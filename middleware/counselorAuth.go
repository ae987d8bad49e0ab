package middleware

import (
	"net/http"
	"strings"

	"campusminds/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// JWTAuthCounselorMiddleware guards counselor-only routes. It validates the
// bearer token, requires the counselor role, and checks the session has not
// been revoked. The counselor id lands in the context under "counselorID".
func JWTAuthCounselorMiddleware(authCache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		subject, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || role != "counselor" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		if authCache != nil {
			if _, err := utils.GetAuthSession(authCache, utils.HashToken(tokenString)); err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Session expired, please sign in again",
				})
				return
			}
		}

		c.Set("counselorID", subject)
		c.Next()
	}
}
