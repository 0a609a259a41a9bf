package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abnerteste26-bot/group-champs/internal/apperr"
	"github.com/abnerteste26-bot/group-champs/internal/httpx"
	"github.com/abnerteste26-bot/group-champs/internal/identity"
)

const bearerPrefix = "Bearer "

// Authenticate resolves the bearer token, if present, and stores the identity
// in the request context. Requests without a token pass through anonymously;
// a token that fails to resolve is rejected.
func Authenticate(resolver identity.Resolver, logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		if !strings.HasPrefix(header, bearerPrefix) {
			unauthorized(c)
			return
		}

		id, err := resolver.Resolve(c.Request.Context(), strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			logger.Debugw("token rejected", "path", c.Request.URL.Path, "error", err)
			unauthorized(c)
			return
		}

		c.Request = c.Request.WithContext(identity.WithIdentity(c.Request.Context(), id))
		c.Next()
	}
}

// RequireIdentity rejects requests without a resolved identity.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := identity.FromContext(c.Request.Context()); !ok {
			unauthorized(c)
			return
		}
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	httpx.ErrorJSON(c, string(apperr.KindUnauthorized), identity.ErrUnauthorized.Message, http.StatusUnauthorized)
}
