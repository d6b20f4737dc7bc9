package env

import (
	"errors"
	"log/slog"
)

// Env owns the validated server and client domains of one process.
type Env struct {
	source  Source
	target  Target
	logger  *slog.Logger
	observe Observer

	server domain[ServerEnv]
	client domain[ClientEnv]
}

type Option func(*Env)

// Observer is told the outcome of every parse of a domain and of every refused
// server read. Cached reads are not reported. err is nil on success.
type Observer func(ctx Context, err error)

// WithTarget sets the execution context. Defaults to DefaultTarget().
func WithTarget(t Target) Option {
	return func(e *Env) {
		e.target = t
	}
}

// WithLogger sets the diagnostic sink used for client failures on a browser target.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Env) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithObserver sets the callback receiving domain outcomes.
func WithObserver(o Observer) Option {
	return func(e *Env) {
		if o != nil {
			e.observe = o
		}
	}
}

func New(src Source, opts ...Option) *Env {
	e := &Env{
		source:  src,
		target:  DefaultTarget(),
		logger:  slog.Default(),
		observe: func(Context, error) {},
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

func (e *Env) Target() Target {
	return e.target
}

// ServerEnv returns the validated server domain, parsing it on first use.
// Failures are returned as *ValidationError and are not cached.
func (e *Env) ServerEnv() (*ServerEnv, error) {
	if e.target == TargetBrowser {
		e.observe(ContextServer, ErrServerOnClient)
		return nil, ErrServerOnClient
	}

	return e.server.get(func() (*ServerEnv, error) {
		s, err := parseServerEnv(e.source)
		e.observe(ContextServer, err)
		return s, err
	})
}

// ClientEnv returns the validated client domain, parsing it on first use.
func (e *Env) ClientEnv() (*ClientEnv, error) {
	return e.client.get(func() (*ClientEnv, error) {
		c, err := parseClientEnv(e.source)
		e.observe(ContextClient, err)
		if err != nil && e.target == TargetBrowser {
			var verr *ValidationError
			if errors.As(err, &verr) {
				e.logger.Error(verr.FormattedMessage(),
					slog.Any("variables", verr.MissingVariables()))
			}
		}
		return c, err
	})
}

// ResetServerEnv drops the cached server domain. Tests only.
func (e *Env) ResetServerEnv() {
	e.server.reset()
}

// ResetClientEnv drops the cached client domain. Tests only.
func (e *Env) ResetClientEnv() {
	e.client.reset()
}

// Validate checks the server domain (except on a browser target) and then the
// client domain, returning the first failure.
func (e *Env) Validate() error {
	if err := e.ValidateServer(); err != nil {
		return err
	}
	return e.ValidateClient()
}

// ValidateServer checks the server domain. It does nothing on a browser target.
func (e *Env) ValidateServer() error {
	if e.target == TargetBrowser {
		return nil
	}
	_, err := e.ServerEnv()
	return err
}

func (e *Env) ValidateClient() error {
	_, err := e.ClientEnv()
	return err
}

// Server returns the guarded accessor for server variables.
func (e *Env) Server() ServerAccessor {
	return ServerAccessor{env: e}
}

// Client returns the accessor for client variables.
func (e *Env) Client() ClientAccessor {
	return ClientAccessor{env: e}
}
