// Package config loads the working-days service configuration from the
// environment.
//
// Every knob is a WORKDAYS_* environment variable with a sensible default,
// so the daemon runs with zero configuration. Secret-bearing values support
// strict ${VAR} expansion so a config value can reference another
// environment variable and fail loudly when it is missing.
package config
