package schema

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// LookupFunc reads a raw value. The boolean reports whether the key is set at all,
// which is distinct from being set to the empty string.
type LookupFunc func(key string) (string, bool)

// Issue is a single field failure.
type Issue struct {
	Variable string `json:"variable"`
	Message  string `json:"message"`
	Code     string `json:"code"`
}

// Issues is the ordered list of field failures returned by Schema.Parse.
type Issues []Issue

func (is Issues) Error() string {
	parts := make([]string, 0, len(is))
	for _, i := range is {
		parts = append(parts, i.Variable+": "+i.Message)
	}
	return strings.Join(parts, "; ")
}

// Variables returns the failing field names in order.
func (is Issues) Variables() []string {
	names := make([]string, 0, len(is))
	for _, i := range is {
		names = append(names, i.Variable)
	}
	return names
}

// Values holds the typed result of a successful parse. Optional fields that were
// absent have no entry.
type Values map[string]any

func (v Values) String(name string) string {
	s, _ := v[name].(string)
	return s
}

func (v Values) Int(name string) (int, bool) {
	n, ok := v[name].(int)
	return n, ok
}

// Schema is an ordered set of fields.
type Schema struct {
	fields []Field
}

// New builds a schema from fields in declaration order. Field names must be unique.
func New(fields ...Field) *Schema {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if f.name == "" {
			panic("schema: field without a name")
		}
		if _, dup := seen[f.name]; dup {
			panic(fmt.Sprintf("schema: duplicate field %q", f.name))
		}
		seen[f.name] = struct{}{}
	}

	return &Schema{fields: append([]Field(nil), fields...)}
}

// Fields returns the field names in declaration order.
func (s *Schema) Fields() []string {
	names := make([]string, 0, len(s.fields))
	for _, f := range s.fields {
		names = append(names, f.name)
	}
	return names
}

// Parse validates every field against lookup. On failure the returned error is
// Issues listing every failing field; an error of any other type means a rule
// broke internally and no field result is meaningful.
func (s *Schema) Parse(lookup LookupFunc) (Values, error) {
	values := make(Values, len(s.fields))
	var issues Issues

	for _, f := range s.fields {
		raw, ok := lookup(f.name)

		v, err := f.parse(raw, ok)
		if err != nil {
			var verr validation.Error
			if !errors.As(err, &verr) {
				return nil, fmt.Errorf("field %s: %w", f.name, err)
			}
			issues = append(issues, Issue{
				Variable: f.name,
				Message:  verr.Error(),
				Code:     verr.Code(),
			})
			continue
		}

		if v != nil {
			values[f.name] = v
		}
	}

	if len(issues) > 0 {
		return nil, issues
	}

	return values, nil
}
