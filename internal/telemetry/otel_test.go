package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"mockgraph/internal/config"
)

func TestInitWithoutEndpoint(t *testing.T) {
	shutdown, err := Init(context.Background(), &config.Config{}, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestNormalizeOTLPEndpoint(t *testing.T) {
	cases := map[string]string{
		"collector:4317":             "collector:4317",
		"http://collector:4317":      "collector:4317",
		"https://otel.example.com/x": "otel.example.com",
	}
	for raw, want := range cases {
		got, err := normalizeOTLPEndpoint(raw)
		require.NoError(t, err, raw)
		require.Equal(t, want, got, raw)
	}

	_, err := normalizeOTLPEndpoint("http://")
	require.Error(t, err)
}
