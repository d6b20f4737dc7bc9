package env

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/angeloszaimis/typesafe-env/env/schema"
)

// domain is one cache slot. Concurrent first reads may parse more than once;
// the first stored result wins so every caller observes the same value.
type domain[T any] struct {
	cached atomic.Pointer[T]
}

func (d *domain[T]) get(parse func() (*T, error)) (*T, error) {
	if v := d.cached.Load(); v != nil {
		return v, nil
	}

	v, err := parse()
	if err != nil {
		return nil, err
	}

	for {
		if d.cached.CompareAndSwap(nil, v) {
			return v, nil
		}
		if cur := d.cached.Load(); cur != nil {
			return cur, nil
		}
	}
}

func (d *domain[T]) reset() {
	d.cached.Store(nil)
}

func parseValues(ctx Context, s *schema.Schema, src Source) (schema.Values, error) {
	values, err := s.Parse(src.LookupEnv)
	if err != nil {
		var issues schema.Issues
		if errors.As(err, &issues) {
			return nil, NewValidationError(ctx, issues)
		}
		return nil, fmt.Errorf("parse %s environment: %w", ctx, err)
	}
	return values, nil
}
