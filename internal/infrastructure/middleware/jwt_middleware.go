package middleware

import (
	"net/http"
	"strings"

	"gather_server/pkg/errorx"
	"gather_server/pkg/util/jwt"

	"github.com/gin-gonic/gin"
)

// JWTAuth validates the access token and stores the caller identity in the
// request context. Every engine operation receives its callerId from here;
// handlers never trust ids from the payload.
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Read the Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": errorx.CodeUnauthorized,
				"msg":  "authentication required",
			})
			return
		}

		// 2. Parse the Bearer scheme
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": errorx.CodeUnauthorized,
				"msg":  "malformed authorization header, expected Bearer token",
			})
			return
		}

		// 3. Validate the token
		claims, err := jwt.ParseToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": errorx.CodeUnauthorized,
				"msg":  "token expired or invalid",
			})
			return
		}

		// 4. Refresh tokens cannot be used on the API surface
		if claims.Subject != "access_token" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": errorx.CodeUnauthorized,
				"msg":  "access token required",
			})
			return
		}

		// 5. Expose the authenticated caller to handlers
		c.Set("user_id", claims.UserID)
		c.Next()
	}
}

// CallerID returns the authenticated user id set by JWTAuth.
func CallerID(c *gin.Context) string {
	return c.GetString("user_id")
}
