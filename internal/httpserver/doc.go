// Package httpserver wraps net/http.Server for the status surface: it
// validates the listen address up front and shuts down gracefully.
package httpserver
