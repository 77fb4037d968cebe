package validators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/roentgen/internal/testutils"
	"github.com/aretw0/roentgen/pkg/domain"
	"github.com/aretw0/roentgen/pkg/registry"
	"github.com/aretw0/roentgen/pkg/schema"
	"github.com/aretw0/roentgen/pkg/validators"
)

func TestBuiltins(t *testing.T) {
	r := testutils.Registry()

	assert.Equal(t, []string{"array", "number", "object", "string", "timestamp", "url"}, r.Types())

	b := validators.Builtins()
	delete(b, schema.TypeArray)
	assert.Len(t, validators.Builtins(), 6, "Builtins must return a fresh map")
}

func TestRegisterBuiltins_KeepsOtherTypes(t *testing.T) {
	r := registry.New()
	r.RegisterFunc("custom", domain.Ok)
	validators.RegisterBuiltins(r)

	_, ok := r.Lookup("custom")
	assert.True(t, ok)
}

func TestNestedContainers(t *testing.T) {
	v := testutils.Build(t, schema.Map{
		"type": "object",
		"properties": map[string]any{
			"items": map[string]any{"type": "array", "item": map[string]any{"type": "number"}},
		},
	})

	t.Run("failure location", func(t *testing.T) {
		res := v.Run(map[string]any{"items": []any{1, "x"}})
		testutils.AssertFailure(t, res, domain.MsgNumberRequired, "items", 1)
		assert.Equal(t, "items[1]: number required", res.Failure.Error())
	})

	t.Run("success", func(t *testing.T) {
		res := v.Run(map[string]any{"items": []any{1, 2.5}})
		require.True(t, res.OK())
		assert.Equal(t, map[string]any{"items": []any{1, 2.5}}, res.Out)
		testutils.AssertIdempotent(t, v, res.Out)
	})
}

func TestNestedConfigErrorLocation(t *testing.T) {
	_, err := testutils.Registry().Build(schema.Map{
		"type": "object",
		"properties": map[string]any{
			"tags": map[string]any{"type": "array", "item": map[string]any{"type": "nope"}},
		},
	})

	var cfgErr *domain.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "nope", cfgErr.Type)
	assert.Equal(t, []any{"properties", "tags", "item"}, cfgErr.Location.Values())
	assert.ErrorIs(t, err, domain.ErrUnknownType)
}

func TestTypedSchemas(t *testing.T) {
	v := testutils.Build(t, schema.Object{Properties: map[string]schema.Schema{
		"name": schema.String{Length: &schema.Range{1, 10}},
		"tags": schema.Array{Item: schema.String{}},
		"site": schema.URL{Hostname: schema.Flag(true)},
	}})

	res := v.Run(map[string]any{"name": "ann", "tags": []string{"a"}, "site": "https://example.com"})
	require.True(t, res.OK(), res.Err())
	assert.Equal(t, map[string]any{"name": "ann", "tags": []any{"a"}, "site": "https://example.com"}, res.Out)
}

func TestRun_NeverPanics(t *testing.T) {
	schemas := []schema.Map{
		{"type": "array", "item": map[string]any{"type": "number"}},
		{"type": "object", "properties": map[string]any{"a": map[string]any{"type": "string"}}},
		{"type": "object"},
		{"type": "number", "range": []any{0, 1}},
		{"type": "string", "length": []any{0, 1}},
		{"type": "timestamp", "toDate": true},
		{"type": "url"},
	}

	var nilMap map[string]any
	var nilSlice []any
	inputs := []any{
		nil, nilMap, nilSlice, (*int)(nil), make(chan int), func() {}, struct{ A int }{1},
		complex(1, 2), []byte{0xff}, map[any]any{1: 2}, "\xff\xfe", uintptr(3),
	}

	for _, s := range schemas {
		v := testutils.Build(t, s)
		for _, in := range inputs {
			assert.NotPanics(t, func() { v.Run(in) }, "%v on %#v", s["type"], in)
		}
	}
}
