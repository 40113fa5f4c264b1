// Package metrics holds the Prometheus collectors for database operations,
// file uploads, object storage calls and circuit breakers. HTTP metrics
// live with the HTTP middleware; pagination metrics live in the pagination
// package.
//
// All collectors are registered with the default registry and exposed on
// /metrics.
//
//	defer metrics.ObserveDBQuery("doctors", "find_all", time.Now())
package metrics
