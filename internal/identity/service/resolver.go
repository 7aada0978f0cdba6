package service

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/allisson/vidshare/internal/identity/domain"
)

// Identity source headers.
const (
	// HeaderPlatformPrincipal carries the base64-encoded JSON identity
	// document injected by a trusted edge gateway.
	HeaderPlatformPrincipal = "X-Ms-Client-Principal"
	// HeaderDevEmail and HeaderDevRole are the development-only override
	// headers. They are accepted unconditionally when the dev strategy is
	// enabled, so that strategy must never be exposed to untrusted networks.
	HeaderDevEmail = "X-User-Email"
	HeaderDevRole  = "X-User-Role"
)

// chainResolver tries each strategy in priority order; first success wins and
// there is no merging across sources.
type chainResolver struct {
	strategies []ResolverStrategy
}

// NewPrincipalResolver builds the resolver chain: bearer token, then platform
// header, then (only when enabled) the dev override headers.
func NewPrincipalResolver(tokens TokenService, devHeadersEnabled bool) PrincipalResolver {
	strategies := []ResolverStrategy{
		&bearerTokenStrategy{tokens: tokens},
		&platformHeaderStrategy{},
	}
	if devHeadersEnabled {
		strategies = append(strategies, &devHeaderStrategy{})
	}
	return &chainResolver{strategies: strategies}
}

// Resolve returns the first principal any strategy produces, or nil.
func (c *chainResolver) Resolve(r *http.Request) *domain.Principal {
	for _, strategy := range c.strategies {
		if principal := strategy.Resolve(r); principal != nil {
			return principal
		}
	}
	return nil
}

// bearerTokenStrategy resolves a principal from a "Bearer <token>"
// Authorization header via the token service.
type bearerTokenStrategy struct {
	tokens TokenService
}

func (s *bearerTokenStrategy) Resolve(r *http.Request) *domain.Principal {
	authHeader := r.Header.Get("Authorization")
	const bearerPrefix = "bearer "
	if len(authHeader) <= len(bearerPrefix) ||
		!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
		return nil
	}

	payload := s.tokens.Verify(strings.TrimSpace(authHeader[len(bearerPrefix):]))
	if payload == nil {
		return nil
	}

	principal := &domain.Principal{
		ID:       strings.ToLower(payload.Subject),
		Provider: domain.ProviderToken,
	}
	// An unrecognized role claim leaves the role unresolved rather than
	// passing the raw value through.
	if role, ok := domain.ParseRole(payload.Role); ok {
		principal.Role = role
	}
	return principal
}

// platformPrincipal is the identity document shape injected by the hosting
// platform's edge.
type platformPrincipal struct {
	UserDetails string   `json:"userDetails"`
	UserRoles   []string `json:"userRoles"`
}

// platformHeaderStrategy resolves a principal from the platform-injected
// identity header. The user store remains the authority on role; a role claim
// in the header is only a hint.
type platformHeaderStrategy struct{}

func (s *platformHeaderStrategy) Resolve(r *http.Request) *domain.Principal {
	encoded := r.Header.Get(HeaderPlatformPrincipal)
	if encoded == "" {
		return nil
	}

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil
	}

	var doc platformPrincipal
	if err := json.Unmarshal(decoded, &doc); err != nil {
		return nil
	}

	id := strings.ToLower(strings.TrimSpace(doc.UserDetails))
	if id == "" {
		return nil
	}

	principal := &domain.Principal{
		ID:       id,
		Provider: domain.ProviderPlatform,
	}
	for _, raw := range doc.UserRoles {
		if role, ok := domain.ParseRole(raw); ok {
			principal.Role = role
			break
		}
	}
	return principal
}

// devHeaderStrategy resolves a principal from plain override headers. Local
// and testing use only; the chain omits it unless explicitly enabled.
type devHeaderStrategy struct{}

func (s *devHeaderStrategy) Resolve(r *http.Request) *domain.Principal {
	email := strings.ToLower(strings.TrimSpace(r.Header.Get(HeaderDevEmail)))
	if email == "" {
		return nil
	}

	principal := &domain.Principal{
		ID:       email,
		Provider: domain.ProviderDev,
	}
	if role, ok := domain.ParseRole(r.Header.Get(HeaderDevRole)); ok {
		principal.Role = role
	}
	return principal
}
