// Package health provides health checking for the working-days service.
//
// It defines a small checker framework, an aggregator that fans checks out
// with a timeout, HTTP probe handlers, and the concrete checkers for the
// service's dependencies: the holiday oracle and the count cache.
package health
