package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sharpcutlabs/barbershop-api/internal/auth"
	"github.com/sharpcutlabs/barbershop-api/internal/config"
	"github.com/sharpcutlabs/barbershop-api/internal/models"
)

const ContextIdentity = "identity"

// Identity é a identidade autenticada da requisição, montada uma única vez
// pelo middleware e lida pelos handlers.
type Identity struct {
	UserID uint
	Role   models.Role
}

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		claims, err := auth.ParseToken(cfg.JWTSecret, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		c.Set(ContextIdentity, Identity{
			UserID: claims.UserID,
			Role:   claims.Role,
		})

		c.Next()
	}
}

// MustIdentity lê a identidade colocada no contexto pelo AuthMiddleware.
func MustIdentity(c *gin.Context) Identity {
	return c.MustGet(ContextIdentity).(Identity)
}
