// Package startup validates the environment once during bootstrap and turns a
// failure into a non-zero exit code before any request is served.
package startup
