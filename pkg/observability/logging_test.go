package observability_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/roentgen/internal/logging"
	"github.com/aretw0/roentgen/pkg/observability"
	"github.com/aretw0/roentgen/pkg/registry"
	"github.com/aretw0/roentgen/pkg/schema"
	"github.com/aretw0/roentgen/pkg/validators"
)

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelDebug)

	r := registry.New(registry.WithMiddleware(observability.Logging(logger)))
	validators.RegisterBuiltins(r)

	v, err := r.Build(schema.Map{
		"type": "object",
		"properties": map[string]any{
			"tags": map[string]any{"type": "array", "item": map[string]any{"type": "string"}},
		},
	})
	require.NoError(t, err)

	require.True(t, v.Run(map[string]any{"tags": []any{"a"}}).OK())
	assert.Empty(t, buf.String(), "successful runs are not logged")

	require.False(t, v.Run(map[string]any{"tags": []any{"a", 2}}).OK())

	out := buf.String()
	assert.Equal(t, 3, bytes.Count(buf.Bytes(), []byte("validation failed")), out)
	assert.Contains(t, out, "type=string")
	assert.Contains(t, out, "location=tags[1]")
	assert.Contains(t, out, `message="string required"`)
}
