package config

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/simple-strings/pkg/simplestrings"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "development", cfg.Environment)
	assert.True(t, cfg.EnableEventLogging)
	assert.True(t, cfg.EnableMetrics)
	assert.Zero(t, cfg.RateLimitPerSecond)
	assert.Equal(t, 60*time.Second, cfg.RequestTimeout)
}

func TestLoad_Options(t *testing.T) {
	cfg, err := Load(
		WithPort("9090"),
		WithEnvironment("testing"),
		WithEventLogging(false),
		WithMetrics(false),
		WithRateLimit(25),
		WithRequestTimeout(5*time.Second),
		nil,
	)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "testing", cfg.Environment)
	assert.False(t, cfg.EnableEventLogging)
	assert.False(t, cfg.EnableMetrics)
	assert.Equal(t, 25.0, cfg.RateLimitPerSecond)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func TestLoad_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"empty port", WithPort("")},
		{"non-numeric port", WithPort("http")},
		{"port out of range", WithPort("70000")},
		{"zero port", WithPort("0")},
		{"empty environment", WithEnvironment("")},
		{"negative rate limit", WithRateLimit(-1)},
		{"zero timeout", WithRequestTimeout(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.opt)
			assert.Error(t, err)
		})
	}
}

func TestWithEnv_Port(t *testing.T) {
	t.Setenv("PORT", "3000")

	cfg, err := Load(WithEnv())
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
}

func TestWithEnv_DefaultPort(t *testing.T) {
	// Setenv restores the original value after the test
	t.Setenv("PORT", "")
	require.NoError(t, os.Unsetenv("PORT"))

	cfg, err := Load(WithEnv())
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
}

func TestWithEnv_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	_, err := Load(WithEnv())
	assert.Error(t, err)
}

func TestWithEnv_LaterOptionWins(t *testing.T) {
	t.Setenv("PORT", "3000")

	cfg, err := Load(WithEnv(), WithPort("4000"))
	require.NoError(t, err)
	assert.Equal(t, "4000", cfg.Port)
}

func TestEnvUsage(t *testing.T) {
	usage, err := EnvUsage()
	require.NoError(t, err)
	assert.Contains(t, usage, "PORT")
}

type countingSink struct {
	created int
}

func (s *countingSink) RecordCreated(ctx context.Context, record *simplestrings.StringRecord) error {
	s.created++
	return nil
}

func (s *countingSink) RecordDeleted(ctx context.Context, id string) error {
	return nil
}

func TestBuildService(t *testing.T) {
	cfg, err := Load(WithEventLogging(false))
	require.NoError(t, err)

	sink := &countingSink{}
	svc, err := cfg.BuildService(sink)
	require.NoError(t, err)

	ctx := context.Background()
	record, err := svc.CreateString(ctx, "racecar")
	require.NoError(t, err)
	assert.True(t, record.Properties.IsPalindrome)
	assert.Equal(t, 1, sink.created)

	got, err := svc.GetString(ctx, "racecar")
	require.NoError(t, err)
	assert.Equal(t, record.ID, got.ID)
}
