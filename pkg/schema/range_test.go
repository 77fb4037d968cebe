package schema_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/roentgen/pkg/domain"
	"github.com/aretw0/roentgen/pkg/schema"
)

func TestRange_Contains(t *testing.T) {
	r := schema.Between(1, 3)

	assert.True(t, r.Contains(1))
	assert.True(t, r.Contains(3))
	assert.False(t, r.Contains(0.5))
	assert.False(t, r.Contains(3.5))
	assert.False(t, r.Contains(math.NaN()))

	assert.True(t, schema.Unbounded().Contains(math.Inf(1)))
	assert.True(t, schema.Unbounded().Contains(math.Inf(-1)))
	assert.True(t, schema.AtLeast(2).Contains(1e300))
	assert.True(t, schema.AtMost(2).Contains(-1e300))
	assert.True(t, schema.Exactly(4).Contains(4))
}

func TestResolveRanges(t *testing.T) {
	single := schema.Between(1, 2)

	t.Run("Plural Wins", func(t *testing.T) {
		got, err := schema.ResolveRanges(&single, []schema.Range{{5, 6}})
		require.NoError(t, err)
		assert.Equal(t, []schema.Range{{5, 6}}, got)
	})

	t.Run("Singular", func(t *testing.T) {
		got, err := schema.ResolveRanges(&single, nil)
		require.NoError(t, err)
		assert.Equal(t, []schema.Range{{1, 2}}, got)
	})

	t.Run("Default Unbounded", func(t *testing.T) {
		got, err := schema.ResolveRanges(nil, nil)
		require.NoError(t, err)
		assert.Equal(t, []schema.Range{schema.Unbounded()}, got)
	})

	t.Run("Empty Plural Is Unbounded", func(t *testing.T) {
		got, err := schema.ResolveRanges(nil, []schema.Range{})
		require.NoError(t, err)
		assert.Equal(t, []schema.Range{schema.Unbounded()}, got)
	})

	t.Run("Min Greater Than Max", func(t *testing.T) {
		_, err := schema.ResolveRanges(nil, []schema.Range{{0, 1}, {3, 2}})
		assert.ErrorIs(t, err, domain.ErrInvalidSchema)
	})

	t.Run("NaN Bound", func(t *testing.T) {
		bad := schema.Range{math.NaN(), 1}
		_, err := schema.ResolveRanges(&bad, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidSchema)
	})
}

func TestAnyContains(t *testing.T) {
	ranges := []schema.Range{{0, 1}, {10, 20}}

	assert.True(t, schema.AnyContains(ranges, 15))
	assert.False(t, schema.AnyContains(ranges, 5))
	assert.False(t, schema.AnyContains(nil, 5))
}
