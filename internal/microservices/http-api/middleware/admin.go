package middleware

import (
	"errors"
	"net/http"
	"strings"

	"justco/internal/logger"
	adminjwt "justco/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// AdminMiddleware guards administrative routes with an HS256 bearer token
// carrying role "admin". With an empty secret the guarded routes are
// disabled outright and answer 403.
func AdminMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin endpoint disabled"})
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}

		// format: "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			return
		}

		claims, err := adminjwt.ParseAdminToken(secret, parts[1])
		if err != nil {
			if errors.Is(err, adminjwt.ErrNotAdmin) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		log := logger.Ctx(c.Request.Context()).With().Str("admin", claims.Subject).Logger()
		c.Request = c.Request.WithContext(logger.WithLogger(c.Request.Context(), log))
		c.Set("role", claims.Role)
		c.Next()
	}
}
