package env

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/angeloszaimis/typesafe-env/env/schema"
)

// Context tags which domain a ValidationError came from.
type Context string

const (
	ContextServer Context = "Server"
	ContextClient Context = "Client"
)

const (
	validationErrorName = "EnvValidationError"
	dividerWidth        = 60
	remediationHint     = "Create a .env.local file with the required variables."
)

var (
	// ErrServerOnClient is returned when the server environment is requested on a browser target.
	ErrServerOnClient = errors.New("server environment cannot be read on the client, use ClientEnv for client-safe variables")

	// ErrUnknownField is returned by Get for a name the domain does not define.
	ErrUnknownField = errors.New("unknown environment field")
)

// FieldError is one failing variable: {variable, message, code}.
type FieldError = schema.Issue

// ValidationError reports every variable of one domain that is missing or invalid.
type ValidationError struct {
	Context Context
	Errors  []FieldError
}

// NewValidationError builds a ValidationError from a non-empty failure list.
func NewValidationError(ctx Context, issues []FieldError) *ValidationError {
	if len(issues) == 0 {
		panic("env: validation error without field errors")
	}

	return &ValidationError{
		Context: ctx,
		Errors:  append([]FieldError(nil), issues...),
	}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing %s environment variables: %s",
		strings.ToLower(string(e.Context)), strings.Join(e.MissingVariables(), ", "))
}

// MissingVariables returns the failing variable names in schema order.
func (e *ValidationError) MissingVariables() []string {
	names := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		names = append(names, fe.Variable)
	}
	return names
}

// FormattedMessage renders the multi-line report written to the diagnostic
// stream at startup.
func (e *ValidationError) FormattedMessage() string {
	divider := strings.Repeat("─", dividerWidth)

	lines := []string{
		"",
		fmt.Sprintf("%s Environment Validation Failed", e.Context),
		divider,
		"",
		"Missing or invalid environment variables:",
		"",
	}

	for _, fe := range e.Errors {
		lines = append(lines,
			"  ✗ "+fe.Variable,
			"    └─ "+fe.Message,
			"",
		)
	}

	lines = append(lines, divider, "", remediationHint, "")

	return strings.Join(lines, "\n")
}

func (e *ValidationError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name    string       `json:"name"`
		Context Context      `json:"context"`
		Message string       `json:"message"`
		Errors  []FieldError `json:"errors"`
	}{
		Name:    validationErrorName,
		Context: e.Context,
		Message: e.Error(),
		Errors:  e.Errors,
	})
}

// AccessViolationError is returned when a server variable is read from a
// browser target. It always indicates a packaging defect.
type AccessViolationError struct {
	Field string
}

func (e *AccessViolationError) Error() string {
	return fmt.Sprintf("security error: cannot access server variable %q on client: "+
		"server variables contain sensitive data and must never be exposed to the browser", e.Field)
}
