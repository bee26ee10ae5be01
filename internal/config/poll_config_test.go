package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvRegion, EnvEnvironmentName, EnvVersionLabel, EnvTimeout,
		EnvPollInterval, EnvOutputFile, EnvEndpoint,
	} {
		t.Setenv(key, "")
	}
}

func TestNewPollConfig(t *testing.T) {
	t.Parallel()
	cfg := NewPollConfig()

	assert.Equal(t, 60*time.Second, cfg.Timeout)
	assert.Equal(t, 5*time.Second, cfg.PollInterval)
	assert.Empty(t, cfg.ExpectedVersion)
	assert.False(t, cfg.VersionCheckEnabled())
}

func TestLoadFromEnv(t *testing.T) { //nolint:paralleltest // Cannot use t.Parallel() with t.Setenv
	clearEnv(t)
	t.Setenv(EnvRegion, "eu-west-1")
	t.Setenv(EnvEnvironmentName, " my-env ")
	t.Setenv(EnvVersionLabel, "v1.2.3")
	t.Setenv(EnvTimeout, "300")
	t.Setenv(EnvPollInterval, "10")
	t.Setenv(EnvOutputFile, "/runner/output")
	t.Setenv(EnvEndpoint, DefaultLocalStackURL)

	cfg := NewPollConfig()
	require.NoError(t, cfg.LoadFromEnv())

	assert.Equal(t, "eu-west-1", cfg.Region)
	assert.Equal(t, "my-env", cfg.EnvironmentName)
	assert.Equal(t, "v1.2.3", cfg.ExpectedVersion)
	assert.True(t, cfg.VersionCheckEnabled())
	assert.Equal(t, 300*time.Second, cfg.Timeout)
	assert.Equal(t, 10*time.Second, cfg.PollInterval)
	assert.Equal(t, "/runner/output", cfg.OutputFile)
	assert.Equal(t, DefaultLocalStackURL, cfg.Endpoint)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnvDefaults(t *testing.T) { //nolint:paralleltest // Cannot use t.Parallel() with t.Setenv
	clearEnv(t)
	t.Setenv(EnvRegion, "us-east-1")
	t.Setenv(EnvEnvironmentName, "my-env")

	cfg := NewPollConfig()
	require.NoError(t, cfg.LoadFromEnv())

	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, DefaultPollInterval, cfg.PollInterval)
	assert.Empty(t, cfg.ExpectedVersion)
	assert.Empty(t, cfg.OutputFile)
}

func TestLoadFromEnvInvalidNumbers(t *testing.T) { //nolint:paralleltest // Cannot use t.Parallel() with t.Setenv
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"timeout not a number", EnvTimeout, "sixty"},
		{"timeout as duration", EnvTimeout, "1m"},
		{"interval not a number", EnvPollInterval, "5.5"},
		{"timeout overflows duration", EnvTimeout, "10000000000"},
		{"interval overflows duration", EnvPollInterval, "20000000000"},
		{"timeout overflows int64", EnvTimeout, "99999999999999999999"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			err := NewPollConfig().LoadFromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := func() *PollConfig {
		cfg := NewPollConfig()
		cfg.Region = "us-east-1"
		cfg.EnvironmentName = "my-env"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*PollConfig)
		wantErr string
	}{
		{name: "valid", mutate: func(*PollConfig) {}},
		{name: "zero timeout", mutate: func(c *PollConfig) { c.Timeout = 0 }},
		{name: "missing region", mutate: func(c *PollConfig) { c.Region = "" }, wantErr: "region is required"},
		{name: "missing environment", mutate: func(c *PollConfig) { c.EnvironmentName = "" }, wantErr: "environment name is required"},
		{name: "negative timeout", mutate: func(c *PollConfig) { c.Timeout = -time.Second }, wantErr: "timeout"},
		{name: "zero interval", mutate: func(c *PollConfig) { c.PollInterval = 0 }, wantErr: "poll interval"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestToJSON(t *testing.T) {
	t.Parallel()

	cfg := NewPollConfig()
	cfg.Region = "us-east-1"
	cfg.EnvironmentName = "my-env"
	cfg.Endpoint = "http://localhost:4566"

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(cfg.ToJSON()), &decoded))

	assert.Equal(t, "my-env", decoded["environment_name"])
	assert.InDelta(t, 60, decoded["timeout_seconds"], 0)
	assert.Equal(t, true, decoded["endpoint_configured"])
	assert.NotContains(t, decoded, "endpoint")
}

func TestSecondsToDurationRange(t *testing.T) {
	t.Parallel()

	d, err := SecondsToDuration(maxSeconds)
	require.NoError(t, err)
	assert.Positive(t, d)

	_, err = SecondsToDuration(maxSeconds + 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")

	_, err = ParseSeconds("10000000000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestLoadFromEnvKeepsRawVersionLabel(t *testing.T) { //nolint:paralleltest // Cannot use t.Parallel() with t.Setenv
	clearEnv(t)
	t.Setenv(EnvVersionLabel, " ")

	cfg := NewPollConfig()
	require.NoError(t, cfg.LoadFromEnv())

	assert.Equal(t, " ", cfg.ExpectedVersion)
	assert.True(t, cfg.VersionCheckEnabled())
}

func TestEnvVars(t *testing.T) {
	t.Parallel()

	vars := EnvVars()
	names := make([]string, 0, len(vars))
	for _, v := range vars {
		names = append(names, v.Name)
		assert.NotEmpty(t, v.Description, v.Name)
		assert.NotEmpty(t, v.Flag, v.Name)
	}

	assert.Equal(t, []string{
		EnvRegion, EnvEnvironmentName, EnvVersionLabel, EnvTimeout,
		EnvPollInterval, EnvEndpoint, EnvOutputFile,
	}, names)
	assert.Equal(t, "Seconds to wait before giving up (default 60)", vars[3].Description)
	assert.Equal(t, "timeout", vars[3].Flag)
}
