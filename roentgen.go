package roentgen

import (
	"sync"

	"github.com/aretw0/roentgen/pkg/domain"
	"github.com/aretw0/roentgen/pkg/registry"
	"github.com/aretw0/roentgen/pkg/schema"
	"github.com/aretw0/roentgen/pkg/validators"
)

// New creates a registry preloaded with the built-in types.
// Register custom types on it before building schemas that reference them.
func New(opts ...registry.Option) *registry.Registry {
	r := registry.New(opts...)
	validators.RegisterBuiltins(r)
	return r
}

var defaultRegistry = sync.OnceValue(func() *registry.Registry {
	return New()
})

// Default returns a shared registry holding only the built-in types,
// created on first use. Prefer New when registering custom types.
func Default() *registry.Registry {
	return defaultRegistry()
}

// Build builds s with the Default registry.
func Build(s schema.Schema) (domain.Validator, error) {
	return Default().Build(s)
}

// Validate builds s with the Default registry and runs it on input.
// It returns the normalized value, a *domain.Failure if input does not
// conform, or a *domain.ConfigError if s cannot be built.
func Validate(s schema.Schema, input any) (any, error) {
	v, err := Build(s)
	if err != nil {
		return nil, err
	}
	res := v.Run(input)
	if err := res.Err(); err != nil {
		return nil, err
	}
	return res.Out, nil
}
