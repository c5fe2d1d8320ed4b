package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("HONEYCOMB_SKIRMISH_API_KEY", "")
	t.Setenv("SKIRMISH_TELEMETRY_DISABLED", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "skirmish", cfg.Dataset)
	assert.Equal(t, "https://api.honeycomb.io", cfg.Endpoint)
	assert.False(t, cfg.Enabled(), "no API key means no export")
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("HONEYCOMB_SKIRMISH_API_KEY", "secret")
	t.Setenv("HONEYCOMB_SKIRMISH_DATASET", "arena-runs")
	t.Setenv("SKIRMISH_TELEMETRY_DISABLED", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.Enabled())
	assert.Equal(t, map[string]string{
		"x-honeycomb-team":    "secret",
		"x-honeycomb-dataset": "arena-runs",
	}, cfg.Headers())

	t.Setenv("SKIRMISH_TELEMETRY_DISABLED", "true")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.False(t, cfg.Enabled())
}

func TestLoadConfigRejectsBadBool(t *testing.T) {
	t.Setenv("SKIRMISH_TELEMETRY_DISABLED", "maybe")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestSetupDisabledIsNoop(t *testing.T) {
	shutdown, err := Setup(context.Background(), Config{Disabled: true})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))

	_, span := Tracer("test").Start(context.Background(), "noop")
	assert.False(t, span.SpanContext().IsValid())
	span.End()
}
