package roentgen_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/roentgen"
	"github.com/aretw0/roentgen/pkg/domain"
	"github.com/aretw0/roentgen/pkg/registry"
	"github.com/aretw0/roentgen/pkg/schema"
)

func TestNew_RegistersBuiltins(t *testing.T) {
	r := roentgen.New()
	assert.Equal(t, []string{"array", "number", "object", "string", "timestamp", "url"}, r.Types())
}

func TestNew_RegistriesAreIndependent(t *testing.T) {
	a := roentgen.New()
	b := roentgen.New()

	a.RegisterFunc("even", domain.Ok)

	_, err := a.Build(schema.Map{"type": "even"})
	require.NoError(t, err)

	_, err = b.Build(schema.Map{"type": "even"})
	assert.ErrorIs(t, err, domain.ErrUnknownType)

	_, ok := roentgen.Default().Lookup("even")
	assert.False(t, ok)
}

func TestNew_Options(t *testing.T) {
	calls := 0
	r := roentgen.New(registry.WithMiddleware(func(_ string, v domain.Validator) domain.Validator {
		return domain.ValidatorFunc(func(input any) domain.Result {
			calls++
			return v.Run(input)
		})
	}))

	v, err := r.Build(schema.Map{"type": "number"})
	require.NoError(t, err)
	v.Run(1)
	assert.Equal(t, 1, calls)
}

func TestDefault_IsShared(t *testing.T) {
	assert.Same(t, roentgen.Default(), roentgen.Default())
}

func TestValidate(t *testing.T) {
	s := schema.Map{
		"type": "object",
		"properties": map[string]any{
			"a": map[string]any{"type": "number"},
			"b": map[string]any{"type": "number"},
		},
	}

	t.Run("conforming", func(t *testing.T) {
		out, err := roentgen.Validate(s, map[string]any{"a": 1, "b": 2})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": 1, "b": 2}, out)
	})

	t.Run("failure", func(t *testing.T) {
		out, err := roentgen.Validate(s, map[string]any{"a": 1})
		assert.Nil(t, out)

		var failure *domain.Failure
		require.True(t, errors.As(err, &failure))
		assert.Equal(t, domain.MsgMissingProperty, failure.Message)
		assert.Equal(t, []any{"b"}, failure.Location.Values())
	})

	t.Run("config error", func(t *testing.T) {
		_, err := roentgen.Validate(schema.Map{"type": "nope"}, 1)

		var cfgErr *domain.ConfigError
		require.True(t, errors.As(err, &cfgErr))
		assert.Contains(t, err.Error(), "nope")
	})
}
