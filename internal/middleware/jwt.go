package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/coffee-builder/internal/domain/dto"
	"github.com/guttosm/coffee-builder/internal/i18n"
	"github.com/guttosm/coffee-builder/internal/service"
)

const bearerPrefix = "Bearer "

// JWTAuth returns a middleware that requires a valid bearer token and stores
// its subject and claims on the context.
func JWTAuth(verifier service.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, key := authenticate(c, verifier)
		if key != "" {
			abortUnauthorized(c, key)
			return
		}

		c.Set(string(SubjectKey), claims.Subject)
		c.Set(string(ClaimsKey), claims)
		c.Next()
	}
}

// authenticate returns the verified claims, or the i18n key describing why
// the request is unauthenticated.
func authenticate(c *gin.Context, verifier service.TokenVerifier) (*service.AdminClaims, string) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, i18n.ErrKeyTokenRequired
	}
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return nil, i18n.ErrKeyInvalidToken
	}

	tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
	if tokenString == "" {
		return nil, i18n.ErrKeyTokenRequired
	}

	claims, err := verifier.Verify(tokenString)
	if err != nil {
		if !errors.Is(err, service.ErrInvalidToken) {
			_ = c.Error(err)
		}
		return nil, i18n.ErrKeyInvalidToken
	}
	return claims, ""
}

func abortUnauthorized(c *gin.Context, key string) {
	message := i18n.GetTranslator().Translate(key, i18n.GetLocale(c))
	c.Header("WWW-Authenticate", `Bearer realm="coffee-builder"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewError(dto.ErrCodeUnauthorized, message).WithRequestID(GetRequestID(c)))
}

// GetClaims returns the claims stored by JWTAuth.
func GetClaims(c *gin.Context) (*service.AdminClaims, bool) {
	value, exists := c.Get(string(ClaimsKey))
	if !exists {
		return nil, false
	}
	claims, ok := value.(*service.AdminClaims)
	return claims, ok
}
