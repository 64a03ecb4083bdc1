package auth

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"strings"
)

// DefaultAPIKeyHeader is the header checked for API keys.
const DefaultAPIKeyHeader = "X-API-Key"

// APIKeyConfig configures the API key authenticator.
type APIKeyConfig struct {
	// HeaderName is the header containing the API key.
	// Default: "X-API-Key"
	HeaderName string
}

// APIKeyAuthenticator validates requests against a static set of keys.
// Keys are stored as SHA-256 hashes so a leaked config does not leak the
// credentials themselves.
type APIKeyAuthenticator struct {
	config APIKeyConfig
	hashes map[string]struct{}
}

// NewAPIKeyAuthenticator creates an authenticator accepting the given keys.
func NewAPIKeyAuthenticator(config APIKeyConfig, keys []string) *APIKeyAuthenticator {
	if config.HeaderName == "" {
		config.HeaderName = DefaultAPIKeyHeader
	}

	hashes := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		hashes[HashAPIKey(key)] = struct{}{}
	}

	return &APIKeyAuthenticator{
		config: config,
		hashes: hashes,
	}
}

// Name returns "api_key".
func (a *APIKeyAuthenticator) Name() string {
	return "api_key"
}

// Supports returns true if the request contains an API key header.
func (a *APIKeyAuthenticator) Supports(r *http.Request) bool {
	return r.Header.Get(a.config.HeaderName) != ""
}

// Authenticate validates the API key.
func (a *APIKeyAuthenticator) Authenticate(_ context.Context, r *http.Request) (*Identity, error) {
	key := strings.TrimSpace(r.Header.Get(a.config.HeaderName))
	if key == "" {
		return nil, ErrMissingCredentials
	}

	hash := HashAPIKey(key)
	if _, ok := a.hashes[hash]; !ok {
		return nil, ErrInvalidCredentials
	}

	return &Identity{
		Principal: hash[:12],
		Method:    MethodAPIKey,
	}, nil
}

// HashAPIKey hashes an API key using SHA-256 for storage.
func HashAPIKey(key string) string {
	hash := sha256.Sum256([]byte(key))
	return hex.EncodeToString(hash[:])
}

// ConstantTimeCompare performs constant-time comparison of two strings.
func ConstantTimeCompare(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

var _ Authenticator = (*APIKeyAuthenticator)(nil)
