// Package testutils holds test helpers shared by the validator packages.
package testutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/roentgen/pkg/domain"
	"github.com/aretw0/roentgen/pkg/registry"
	"github.com/aretw0/roentgen/pkg/schema"
	"github.com/aretw0/roentgen/pkg/validators"
)

// Registry returns a new registry holding the built-in types, with each
// install applied on top.
func Registry(install ...func(*registry.Registry)) *registry.Registry {
	r := registry.New()
	validators.RegisterBuiltins(r)
	for _, fn := range install {
		fn(r)
	}
	return r
}

// Build builds s with a fresh Registry.
// It fails the test immediately on error.
func Build(t *testing.T, s schema.Schema) domain.Validator {
	t.Helper()
	v, err := Registry().Build(s)
	require.NoError(t, err, "Failed to build schema")
	return v
}

// AssertFailure checks the message and location of a failed result.
// The location is given as keys and indices, outermost first.
func AssertFailure(t *testing.T, res domain.Result, message string, location ...any) {
	t.Helper()
	require.False(t, res.OK(), "expected failure %q, got success with %v", message, res.Out)
	assert.Nil(t, res.Out)
	assert.Equal(t, message, res.Failure.Message)
	assert.Equal(t, append([]any{}, location...), res.Failure.Location.Values())
}

// AssertIdempotent re-runs v on its own output and checks nothing changes.
func AssertIdempotent(t *testing.T, v domain.Validator, out any) {
	t.Helper()
	again := v.Run(out)
	require.True(t, again.OK(), "re-running output failed: %v", again.Err())
	assert.Equal(t, out, again.Out)
}
