package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sharpcutlabs/barbershop-api/internal/models"
)

// RequireRoles bloqueia a requisição quando o papel autenticado não está na
// lista. Deve vir depois do AuthMiddleware.
func RequireRoles(required ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, exists := c.Get(ContextIdentity)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_identity"})
			return
		}

		if !ident.(Identity).Role.OneOf(required...) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient_role"})
			return
		}

		c.Next()
	}
}
