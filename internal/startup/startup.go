package startup

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/angeloszaimis/typesafe-env/env"
)

const (
	ExitOK      = 0
	ExitFailure = 1
)

// Validator is the part of *env.Env that Check needs.
type Validator interface {
	Validate() error
	ClientEnv() (*env.ClientEnv, error)
}

// Check validates both domains of v. Failures are written to stderr, formatted
// when they are validation errors, and yield ExitFailure.
func Check(v Validator, logger *slog.Logger, stderr io.Writer) int {
	if err := v.Validate(); err != nil {
		var verr *env.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprint(stderr, verr.FormattedMessage())
			logger.Error("environment validation failed",
				slog.String("context", string(verr.Context)),
				slog.Any("variables", verr.MissingVariables()))
		} else {
			fmt.Fprintf(stderr, "Environment validation error: %v\n", err)
			logger.Error("environment validation error", slog.Any("err", err))
		}
		return ExitFailure
	}

	if c, err := v.ClientEnv(); err == nil && c.IsDev() {
		logger.Info("environment validated successfully")
	}

	return ExitOK
}

// MustCheck runs Check and exits the process on failure.
func MustCheck(v Validator, logger *slog.Logger) {
	if code := Check(v, logger, os.Stderr); code != ExitOK {
		os.Exit(code)
	}
}
