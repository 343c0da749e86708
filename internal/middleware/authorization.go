package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/coffee-builder/internal/domain/dto"
	"github.com/guttosm/coffee-builder/internal/i18n"
	"github.com/guttosm/coffee-builder/internal/logger"
)

// RequireScope returns a middleware that rejects tokens lacking scope.
// It must run after JWTAuth; a request without claims is unauthorized.
func RequireScope(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok {
			abortUnauthorized(c, i18n.ErrKeyUnauthorized)
			return
		}

		if !claims.HasScope(scope) {
			log := logger.Logger()
			log.Warn().
				Str("request_id", GetRequestID(c)).
				Str("subject", claims.Subject).
				Str("required_scope", scope).
				Strs("scopes", claims.Scopes).
				Msg("Token lacks required scope")

			message := i18n.GetTranslator().Translate(i18n.ErrKeyInsufficientScope, i18n.GetLocale(c))
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewError(dto.ErrCodeForbidden, message).WithRequestID(GetRequestID(c)))
			return
		}

		c.Next()
	}
}
