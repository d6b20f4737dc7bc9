// Package metrics collects per-route request counts, status codes and latency
// percentiles for the status server. Events are sent on a buffered channel and
// aggregated by a single collector goroutine; snapshots are served as JSON.
package metrics
