package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTConfig configures the JWT authenticator.
type JWTConfig struct {
	// Secret is the HS256 signing secret.
	Secret []byte

	// Issuer is the expected token issuer (iss claim). Empty disables the
	// check.
	Issuer string

	// Audience is the expected token audience (aud claim). Empty disables
	// the check.
	Audience string

	// HeaderName is the header containing the token.
	// Default: "Authorization"
	HeaderName string

	// TokenPrefix is the prefix before the token in the header.
	// Default: "Bearer "
	TokenPrefix string
}

// JWTAuthenticator validates HS256-signed bearer tokens.
type JWTAuthenticator struct {
	config JWTConfig
}

// NewJWTAuthenticator creates a new JWT authenticator.
func NewJWTAuthenticator(config JWTConfig) *JWTAuthenticator {
	if config.HeaderName == "" {
		config.HeaderName = "Authorization"
	}
	if config.TokenPrefix == "" {
		config.TokenPrefix = "Bearer "
	}

	return &JWTAuthenticator{config: config}
}

// Name returns "jwt".
func (a *JWTAuthenticator) Name() string {
	return "jwt"
}

// Supports returns true if the request contains a bearer token.
func (a *JWTAuthenticator) Supports(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get(a.config.HeaderName), a.config.TokenPrefix)
}

// Authenticate parses and validates the bearer token.
func (a *JWTAuthenticator) Authenticate(_ context.Context, r *http.Request) (*Identity, error) {
	header := r.Header.Get(a.config.HeaderName)
	if header == "" {
		return nil, ErrMissingCredentials
	}

	tokenString := strings.TrimPrefix(header, a.config.TokenPrefix)
	if tokenString == header {
		return nil, ErrMissingCredentials
	}
	tokenString = strings.TrimSpace(tokenString)

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"HS256"}),
	}
	if a.config.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.config.Issuer))
	}
	if a.config.Audience != "" {
		opts = append(opts, jwt.WithAudience(a.config.Audience))
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return a.config.Secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, ErrTokenMalformed
		}
		return nil, ErrInvalidCredentials
	}
	if !token.Valid {
		return nil, ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenMalformed
	}

	return buildIdentity(claims), nil
}

func buildIdentity(claims jwt.MapClaims) *Identity {
	identity := &Identity{
		Method: MethodJWT,
		Claims: make(map[string]any, len(claims)),
	}

	for k, v := range claims {
		identity.Claims[k] = v
	}

	if sub, ok := claims["sub"].(string); ok {
		identity.Principal = sub
	}
	if exp, ok := claims["exp"].(float64); ok {
		identity.ExpiresAt = time.Unix(int64(exp), 0)
	}
	if iat, ok := claims["iat"].(float64); ok {
		identity.IssuedAt = time.Unix(int64(iat), 0)
	}

	return identity
}

var _ Authenticator = (*JWTAuthenticator)(nil)
