package service

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken is returned when a token is malformed, expired, or signed with another key.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrInsufficientScope is returned when a valid token lacks the required scope.
	ErrInsufficientScope = errors.New("token lacks required scope")
	// ErrSigningKeyMissing is returned when no signing key is configured.
	ErrSigningKeyMissing = errors.New("jwt signing key not configured")
)

// ScopeCatalogWrite allows publishing catalog versions.
const ScopeCatalogWrite = "catalog:write"

// AdminClaims are the claims carried by catalog administration tokens.
type AdminClaims struct {
	Scopes []string `json:"scopes"`
	jwt.RegisteredClaims
}

// HasScope reports whether the claims grant scope.
func (c *AdminClaims) HasScope(scope string) bool {
	return slices.Contains(c.Scopes, scope)
}

// TokenVerifier issues and verifies HS256 administration tokens.
type TokenVerifier interface {
	Issue(subject string, scopes ...string) (string, time.Time, error)
	Verify(tokenString string) (*AdminClaims, error)
}

// TokenConfig configures the token service.
type TokenConfig struct {
	SecretKey string
	Issuer    string
	TTL       time.Duration
}

// TokenService implements TokenVerifier with a shared HMAC secret.
type TokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService returns ErrSigningKeyMissing when cfg has no secret.
func NewTokenService(cfg TokenConfig) (*TokenService, error) {
	if cfg.SecretKey == "" {
		return nil, ErrSigningKeyMissing
	}
	if cfg.TTL <= 0 {
		cfg.TTL = time.Hour
	}
	return &TokenService{
		secret: []byte(cfg.SecretKey),
		issuer: cfg.Issuer,
		ttl:    cfg.TTL,
		now:    time.Now,
	}, nil
}

// Issue signs a token for subject with the given scopes.
func (s *TokenService) Issue(subject string, scopes ...string) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)

	claims := AdminClaims{
		Scopes: scopes,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify parses tokenString and checks signature, issuer and expiry.
func (s *TokenService) Verify(tokenString string) (*AdminClaims, error) {
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, parserOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
