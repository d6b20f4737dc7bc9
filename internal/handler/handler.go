package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/angeloszaimis/typesafe-env/env"
)

const portNotSet = "not set"

type ServerReport struct {
	NodeEnv      env.NodeEnv `json:"NODE_ENV"`
	CookieSecret string      `json:"COOKIE_SECRET"`
	Port         string      `json:"PORT"`
	IsDev        bool        `json:"isDev"`
	IsProd       bool        `json:"isProd"`
}

type ClientReport struct {
	NodeEnv env.NodeEnv `json:"NODE_ENV"`
	AppURL  string      `json:"NEXT_PUBLIC_APP_URL"`
	IsDev   bool        `json:"isDev"`
	IsProd  bool        `json:"isProd"`
}

type Report struct {
	Server ServerReport `json:"server"`
	Client ClientReport `json:"client"`
}

// EnvHandler reports both environment domains as JSON. Secrets are masked.
type EnvHandler struct {
	logger *slog.Logger
	env    *env.Env
}

func NewEnvHandler(logger *slog.Logger, e *env.Env) *EnvHandler {
	return &EnvHandler{
		logger: logger,
		env:    e,
	}
}

func (h *EnvHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	report, err := h.report()
	if err != nil {
		h.logger.Error("failed to read environment",
			slog.String("path", r.URL.Path),
			slog.Any("err", err))

		var verr *env.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusInternalServerError, verr)
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (h *EnvHandler) report() (*Report, error) {
	server, err := h.env.ServerEnv()
	if err != nil {
		return nil, err
	}
	client, err := h.env.ClientEnv()
	if err != nil {
		return nil, err
	}

	port := portNotSet
	if p, ok := server.Port(); ok {
		port = strconv.Itoa(p)
	}

	return &Report{
		Server: ServerReport{
			NodeEnv:      server.NodeEnv(),
			CookieSecret: env.MaskSecret(server.CookieSecret()),
			Port:         port,
			IsDev:        server.IsDev(),
			IsProd:       server.IsProd(),
		},
		Client: ClientReport{
			NodeEnv: client.NodeEnv(),
			AppURL:  client.AppURL(),
			IsDev:   client.IsDev(),
			IsProd:  client.IsProd(),
		},
	}, nil
}

// Health always answers ok once the process is serving.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
