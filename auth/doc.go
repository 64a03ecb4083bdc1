// Package auth provides request authentication for the working-days service.
//
// Two schemes are supported: static API keys presented in the X-API-Key
// header, and HS256-signed JWT bearer tokens. The HTTP middleware tries each
// configured authenticator in order and rejects unauthenticated requests
// with a 401 and a JSON detail body. When no authenticators are configured
// the middleware is a pass-through, so anonymous deployments pay nothing.
package auth
