package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "BEDROCK_MAX_CONNECTIONS",
		"RELAY_TIMEOUT", "BEDROCK_CROSS_REGION_INFERENCE", "MODEL_NAME", "SEGMENT_SIZE", "SUMMARY_CONCURRENCY", "ENABLE_PROMETHEUS_METRICS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("AWS_REGION", "us-east-1")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 3000, cfg.Server.Port)
	require.Equal(t, "us-east-1", cfg.Bedrock.Region)
	require.Equal(t, DefaultMaxConnections, cfg.Bedrock.MaxConnections)
	require.Zero(t, cfg.Bedrock.Timeout)
	require.False(t, cfg.Bedrock.StaticCredentials())
	require.False(t, cfg.Bedrock.CrossRegionInference)
	require.Equal(t, DefaultModelName, cfg.Content.ModelName)
	require.Equal(t, DefaultSegmentSize, cfg.Content.SegmentSize)
	require.Equal(t, 1, cfg.Content.Concurrency)
	require.True(t, cfg.EnablePrometheusMetrics)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("AWS_REGION", "ap-northeast-1")
	t.Setenv("AWS_ACCESS_KEY_ID", "AKIDEXAMPLE")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
	t.Setenv("RELAY_TIMEOUT", "30")
	t.Setenv("SEGMENT_SIZE", "5")
	t.Setenv("SUMMARY_CONCURRENCY", "4")
	t.Setenv("MODEL_NAME", "anthropic.claude-v2")
	t.Setenv("BEDROCK_CROSS_REGION_INFERENCE", "true")

	cfg, err := Load()
	require.NoError(t, err)
	require.True(t, cfg.Bedrock.StaticCredentials())
	require.True(t, cfg.Bedrock.CrossRegionInference)
	require.Equal(t, 30*time.Second, cfg.Bedrock.Timeout)
	require.Equal(t, 5, cfg.Content.SegmentSize)
	require.Equal(t, 4, cfg.Content.Concurrency)
	require.Equal(t, "anthropic.claude-v2", cfg.Content.ModelName)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	clearEnv(t)

	t.Run("missing region", func(t *testing.T) {
		t.Setenv("AWS_REGION", "")
		_, err := Load()
		require.ErrorContains(t, err, "Region")
	})

	t.Run("zero segment size", func(t *testing.T) {
		t.Setenv("AWS_REGION", "us-east-1")
		t.Setenv("SEGMENT_SIZE", "0")
		_, err := Load()
		require.ErrorContains(t, err, "SegmentSize")
	})

	t.Run("half a key pair", func(t *testing.T) {
		t.Setenv("AWS_REGION", "us-east-1")
		t.Setenv("AWS_ACCESS_KEY_ID", "AKIDEXAMPLE")
		t.Setenv("AWS_SECRET_ACCESS_KEY", "")
		_, err := Load()
		require.ErrorContains(t, err, "must be set together")
	})
}
