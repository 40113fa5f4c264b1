// Package tracing provides OpenTelemetry tracing for the HTTP server.
//
// NewProvider installs an SDK tracer provider as the global provider so
// every request gets a sampled span and a trace id. Middleware starts one
// server span per request, continues W3C trace context from the caller and
// returns the trace id in the X-Trace-Id header.
//
//	shutdown, err := tracing.NewProvider("clinic-api", version)
//	if err != nil { ... }
//	defer shutdown(context.Background())
//
//	handler := tracing.Middleware(mux)
package tracing
