package schema

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	// DefaultSecretLength is the minimum length RequiredSecret callers normally use.
	DefaultSecretLength = 32

	MinPort = 1
	MaxPort = 65535
)

var (
	ErrNotANumber   = validation.NewError("validation_not_a_number", "must be a number")
	ErrNotAnInteger = validation.NewError("validation_not_an_integer", "must be an integer")
	ErrInvalidURL   = validation.NewError("validation_is_url", "must be a valid URL")
)

// Field is one named rule of a schema: how a missing value is reported, an
// optional coercion of the raw string and the rules checked on the result.
type Field struct {
	name     string
	optional bool
	missing  validation.Error
	coerce   func(raw string) (any, error)
	rules    []validation.Rule
}

func (f Field) Name() string { return f.name }

// Optional returns a copy of f for which an absent value is not a failure.
// A present value is still validated.
func (f Field) Optional() Field {
	f.optional = true
	return f
}

func (f Field) IsOptional() bool { return f.optional }

func (f Field) parse(raw string, present bool) (any, error) {
	if !present {
		if f.optional {
			return nil, nil
		}
		return nil, f.missing
	}

	var value any = raw
	if f.coerce != nil {
		v, err := f.coerce(raw)
		if err != nil {
			return nil, err
		}
		value = v
	}

	if err := validation.Validate(value, f.rules...); err != nil {
		return nil, err
	}

	return value, nil
}

func required(name string) validation.Error {
	return validation.ErrRequired.SetMessage(name + " is required")
}

// Enum accepts exactly one of values (case-sensitive).
func Enum(name string, values ...string) Field {
	msg := fmt.Sprintf("%s must be %s", name, quoteChoices(values))

	allowed := make([]any, len(values))
	for i, v := range values {
		allowed[i] = v
	}

	return Field{
		name:    name,
		missing: validation.ErrInInvalid.SetMessage(msg),
		rules: []validation.Rule{
			validation.Required.ErrorObject(validation.ErrInInvalid.SetMessage(msg)),
			validation.In(allowed...).Error(msg),
		},
	}
}

// RequiredString accepts any non-empty value.
func RequiredString(name string) Field {
	return Field{
		name:    name,
		missing: required(name),
		rules: []validation.Rule{
			validation.Required.Error(name + " cannot be empty"),
		},
	}
}

// Custom builds a required field checked by rules. A rule failing with an
// error that is not a validation.Error aborts Schema.Parse.
func Custom(name string, rules ...validation.Rule) Field {
	return Field{
		name:    name,
		missing: required(name),
		rules:   rules,
	}
}

// RequiredURL accepts an absolute URL: a scheme plus either a host or an opaque part.
func RequiredURL(name string) Field {
	invalid := ErrInvalidURL.SetMessage(name + " must be a valid URL")

	return Field{
		name:    name,
		missing: required(name),
		rules: []validation.Rule{
			validation.By(func(value any) error {
				s, _ := value.(string)
				u, err := url.Parse(s)
				if err != nil || u.Scheme == "" || (u.Host == "" && u.Opaque == "") {
					return invalid
				}
				return nil
			}),
		},
	}
}

// RequiredSecret accepts a value of at least minLength characters.
func RequiredSecret(name string, minLength int) Field {
	tooShort := validation.ErrLengthTooShort.SetMessage(fmt.Sprintf("%s must be at least %d characters", name, minLength))

	return Field{
		name:    name,
		missing: required(name),
		rules: []validation.Rule{
			validation.By(func(value any) error {
				s, _ := value.(string)
				if utf8.RuneCountInString(s) < minLength {
					return tooShort
				}
				return nil
			}),
		},
	}
}

// OptionalPort accepts an absent value or an integer in [MinPort, MaxPort].
// The value is coerced the way a numeric form field would be: surrounding blanks
// are ignored and an empty string counts as zero.
func OptionalPort(name string) Field {
	notPositive := validation.ErrMinGreaterEqualThanRequired.SetMessage(name + " must be positive")
	tooLarge := fmt.Sprintf("%s must be less than %d", name, MaxPort+1)

	return Field{
		name:     name,
		optional: true,
		coerce:   coerceInt(name),
		rules: []validation.Rule{
			validation.Required.ErrorObject(notPositive),
			validation.Min(MinPort).ErrorObject(notPositive),
			validation.Max(MaxPort).Error(tooLarge),
		},
	}
}

func coerceInt(name string) func(string) (any, error) {
	return func(raw string) (any, error) {
		s := strings.TrimSpace(raw)
		if s == "" {
			return 0, nil
		}

		f, ok := parseNumber(s)
		if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, ErrNotANumber.SetMessage(name + " must be a number")
		}
		if f != math.Trunc(f) {
			return nil, ErrNotAnInteger.SetMessage(name + " must be an integer")
		}

		// Clamp to keep the conversion defined; anything this large fails the range rules anyway.
		f = math.Max(math.Min(f, math.MaxInt32), math.MinInt32)

		return int(f), nil
	}
}

// parseNumber reads decimal and exponent forms plus unsigned 0x, 0o and 0b
// integers. Digit separators, signed prefixed integers and hex floats are
// rejected.
func parseNumber(s string) (float64, bool) {
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			n, err := strconv.ParseUint(s[2:], base, 64)
			return float64(n), err == nil
		}
	}

	if strings.ContainsAny(s, "_xXpP") {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}

// quoteChoices renders 'a', 'b', or 'c'.
func quoteChoices(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + v + "'"
	}

	switch len(quoted) {
	case 0:
		return "one of no values"
	case 1:
		return quoted[0]
	case 2:
		return quoted[0] + " or " + quoted[1]
	default:
		return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
	}
}
