package main

import (
	"log/slog"
	"net/http"

	"github.com/angeloszaimis/typesafe-env/env"
	"github.com/angeloszaimis/typesafe-env/internal/handler"
	"github.com/angeloszaimis/typesafe-env/internal/metrics"
)

func setupRouter(log *slog.Logger, e *env.Env, collector *metrics.Collector) *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("GET /api/env", handler.Instrument(log, collector, "/api/env", handler.NewEnvHandler(log, e)))
	mux.Handle("GET /healthz", handler.Instrument(log, collector, "/healthz", http.HandlerFunc(handler.Health)))
	mux.HandleFunc("GET /metrics", collector.Handler(serviceName))

	return mux
}
