// Package api provides the HTTP transport for the working-days service.
//
// Two query endpoints are exposed: GET /working-days returns the working-day
// count for an inclusive date range, and GET /working-days-list returns the
// dates themselves. Validation failures map to 400 responses with a JSON
// detail body; every other error is a 500 with a generic detail so internal
// state never leaks to callers.
package api
