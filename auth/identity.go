package auth

import (
	"context"
	"net/http"
	"time"
)

// Method identifies how an identity was authenticated.
type Method string

const (
	// MethodAPIKey indicates API key authentication.
	MethodAPIKey Method = "api_key"
	// MethodJWT indicates JWT bearer token authentication.
	MethodJWT Method = "jwt"
)

// Identity is an authenticated caller.
type Identity struct {
	// Principal is the caller's identifier: the key ID for API keys, the
	// sub claim for JWTs.
	Principal string

	// Method is the authentication method that produced this identity.
	Method Method

	// ExpiresAt is when the credential expires (zero = never).
	ExpiresAt time.Time

	// IssuedAt is when the credential was issued (zero = unknown).
	IssuedAt time.Time

	// Claims holds the raw token claims for JWT identities.
	Claims map[string]any
}

// Authenticator validates credentials on an HTTP request.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: credential failures return a sentinel error from this package;
//   other errors indicate an internal fault.
type Authenticator interface {
	// Name returns the scheme name.
	Name() string

	// Supports reports whether the request carries this scheme's credential.
	Supports(r *http.Request) bool

	// Authenticate validates the credential and returns the caller identity.
	Authenticate(ctx context.Context, r *http.Request) (*Identity, error)
}

type identityKey struct{}

// WithIdentity returns a context carrying the identity.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the identity attached by the middleware, or
// nil when the request was anonymous.
func IdentityFromContext(ctx context.Context) *Identity {
	id, _ := ctx.Value(identityKey{}).(*Identity)
	return id
}
