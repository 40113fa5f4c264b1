// Package observability groups the logging, metrics and tracing packages
// used by the clinic records API.
//
// Subpackages:
//   - logging: slog construction and request-scoped loggers
//   - metrics: Prometheus collectors for storage, uploads and the circuit breaker
//   - tracing: OpenTelemetry provider and HTTP server spans
package observability
