// Package config loads the runtime settings of the envkit binary (listen host,
// fallback port, log level) from ENVKIT_* environment variables. It never reads
// files and is separate from the validated application environment in package env.
package config
