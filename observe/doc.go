// Package observe provides the observability stack for the working-days
// service: OpenTelemetry tracing and metrics, a JSON structured logger, and
// the HTTP middleware that instruments every query.
//
// It is pure instrumentation: no business logic, no transport, no I/O beyond
// exporter setup. The daemon builds one Observer at startup and wires it
// into the HTTP layer.
package observe
