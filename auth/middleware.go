package auth

import (
	"encoding/json"
	"errors"
	"net/http"
)

func writeUnauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Bearer realm="workdays"`)
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}

// Middleware wraps a handler with request authentication. Authenticators
// are tried in order; the first one whose credential is present on the
// request decides the outcome. With no authenticators the middleware is a
// pass-through.
func Middleware(authenticators []Authenticator, next http.Handler) http.Handler {
	if len(authenticators) == 0 {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, a := range authenticators {
			if !a.Supports(r) {
				continue
			}

			id, err := a.Authenticate(r.Context(), r)
			if err != nil {
				writeUnauthorized(w, detailFor(err))
				return
			}

			ctx := WithIdentity(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		writeUnauthorized(w, "Authentication required")
	})
}

func detailFor(err error) string {
	switch {
	case errors.Is(err, ErrTokenExpired):
		return "Token expired"
	case errors.Is(err, ErrTokenMalformed):
		return "Token malformed"
	case errors.Is(err, ErrMissingCredentials):
		return "Authentication required"
	default:
		return "Invalid credentials"
	}
}
