package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var testSecret = []byte("test-signing-secret")

func signToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}
	return signed
}

func bearerRequest(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/working-days", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestJWTAuthenticatorValidToken(t *testing.T) {
	a := NewJWTAuthenticator(JWTConfig{Secret: testSecret})

	now := time.Now()
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "service-account",
		"iat": now.Unix(),
		"exp": now.Add(time.Hour).Unix(),
	})

	id, err := a.Authenticate(context.Background(), bearerRequest(token))
	if err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	if id.Principal != "service-account" {
		t.Errorf("principal = %q, want %q", id.Principal, "service-account")
	}
	if id.Method != MethodJWT {
		t.Errorf("method = %q, want %q", id.Method, MethodJWT)
	}
	if id.ExpiresAt.IsZero() {
		t.Error("expiry not extracted")
	}
}

func TestJWTAuthenticatorExpired(t *testing.T) {
	a := NewJWTAuthenticator(JWTConfig{Secret: testSecret})

	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "service-account",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err := a.Authenticate(context.Background(), bearerRequest(token))
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("Authenticate() error = %v, want %v", err, ErrTokenExpired)
	}
}

func TestJWTAuthenticatorWrongSecret(t *testing.T) {
	a := NewJWTAuthenticator(JWTConfig{Secret: testSecret})

	token := signToken(t, []byte("other-secret"), jwt.MapClaims{
		"sub": "service-account",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := a.Authenticate(context.Background(), bearerRequest(token))
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("Authenticate() error = %v, want %v", err, ErrInvalidCredentials)
	}
}

func TestJWTAuthenticatorMalformed(t *testing.T) {
	a := NewJWTAuthenticator(JWTConfig{Secret: testSecret})

	_, err := a.Authenticate(context.Background(), bearerRequest("not-a-token"))
	if !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("Authenticate() error = %v, want %v", err, ErrTokenMalformed)
	}
}

func TestJWTAuthenticatorIssuerAudience(t *testing.T) {
	a := NewJWTAuthenticator(JWTConfig{
		Secret:   testSecret,
		Issuer:   "workdays-idp",
		Audience: "workdays-api",
	})

	valid := jwt.MapClaims{
		"sub": "service-account",
		"iss": "workdays-idp",
		"aud": "workdays-api",
		"exp": time.Now().Add(time.Hour).Unix(),
	}

	if _, err := a.Authenticate(context.Background(), bearerRequest(signToken(t, testSecret, valid))); err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}

	wrongIssuer := jwt.MapClaims{
		"sub": "service-account",
		"iss": "someone-else",
		"aud": "workdays-api",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	if _, err := a.Authenticate(context.Background(), bearerRequest(signToken(t, testSecret, wrongIssuer))); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong issuer error = %v, want %v", err, ErrInvalidCredentials)
	}

	wrongAudience := jwt.MapClaims{
		"sub": "service-account",
		"iss": "workdays-idp",
		"aud": "other-api",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	if _, err := a.Authenticate(context.Background(), bearerRequest(signToken(t, testSecret, wrongAudience))); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong audience error = %v, want %v", err, ErrInvalidCredentials)
	}
}

func TestJWTSupports(t *testing.T) {
	a := NewJWTAuthenticator(JWTConfig{Secret: testSecret})

	req := httptest.NewRequest(http.MethodGet, "/working-days", nil)
	if a.Supports(req) {
		t.Error("Supports() = true for request without bearer token")
	}

	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	if a.Supports(req) {
		t.Error("Supports() = true for non-bearer authorization")
	}

	req.Header.Set("Authorization", "Bearer abc")
	if !a.Supports(req) {
		t.Error("Supports() = false for bearer token")
	}
}
