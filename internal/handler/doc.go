// Package handler implements the HTTP endpoints of the status server: a JSON
// report of both environment domains with secrets masked, a health probe and
// the request instrumentation feeding the metrics collector.
package handler
