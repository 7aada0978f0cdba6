// Package service provides identity services: token issuance and validation,
// password hashing and verification, and principal resolution.
package service

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/allisson/vidshare/internal/config"
	apperrors "github.com/allisson/vidshare/internal/errors"
	"github.com/allisson/vidshare/internal/identity/domain"
)

// signingAlgorithm is the only accepted JWT algorithm.
const signingAlgorithm = "HS256"

// tokenClaims is the JWT claim set carried by identity tokens.
type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// tokenService implements TokenService using HMAC-SHA256 signed JWTs.
type tokenService struct {
	secret   []byte
	ttl      time.Duration
	issuer   string
	audience string
}

// NewTokenService creates a TokenService from configuration. It fails fast
// when the signing secret is absent so a token is never signed with an empty
// secret.
func NewTokenService(cfg *config.Config) (TokenService, error) {
	if cfg.JWTSecret == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "JWT_SECRET is not set")
	}

	ttl := cfg.JWTExpiration
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}

	return &tokenService{
		secret:   []byte(cfg.JWTSecret),
		ttl:      ttl,
		issuer:   cfg.JWTIssuer,
		audience: cfg.JWTAudience,
	}, nil
}

// Issue signs a token for subject with the configured lifetime.
func (t *tokenService) Issue(subject string, role domain.Role) (string, error) {
	return t.IssueWithTTL(subject, role, t.ttl)
}

// IssueWithTTL signs a token with an explicit lifetime.
func (t *tokenService) IssueWithTTL(subject string, role domain.Role, ttl time.Duration) (string, error) {
	subject = strings.ToLower(strings.TrimSpace(subject))
	if subject == "" {
		return "", apperrors.Wrap(apperrors.ErrInvalidInput, "subject is required")
	}
	if role == "" {
		return "", apperrors.Wrap(apperrors.ErrInvalidInput, "role is required")
	}
	if ttl <= 0 {
		ttl = t.ttl
	}

	now := time.Now()
	claims := tokenClaims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	if t.issuer != "" {
		claims.Issuer = t.issuer
	}
	if t.audience != "" {
		claims.Audience = jwt.ClaimStrings{t.audience}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to sign token")
	}
	return signed, nil
}

// Verify validates a token and returns its payload, or nil on any failure.
func (t *tokenService) Verify(tokenString string) *TokenPayload {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{signingAlgorithm}),
		jwt.WithExpirationRequired(),
	}
	if t.issuer != "" {
		opts = append(opts, jwt.WithIssuer(t.issuer))
	}
	if t.audience != "" {
		opts = append(opts, jwt.WithAudience(t.audience))
	}

	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return t.secret, nil
	}, opts...)
	if err != nil || !parsed.Valid {
		return nil
	}
	if claims.Subject == "" {
		return nil
	}

	payload := &TokenPayload{
		Subject: strings.ToLower(claims.Subject),
		Role:    claims.Role,
	}
	if claims.IssuedAt != nil {
		payload.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		payload.ExpiresAt = claims.ExpiresAt.Time
	}
	return payload
}
