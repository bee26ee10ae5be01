// Package config builds the immutable configuration for a readiness run
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// PollConfig holds everything a readiness run needs. It is built once by the
// CLI and passed by value afterwards.
type PollConfig struct {
	Region          string        `json:"region" env:"INPUT_REGION" flag:"region" desc:"AWS region of the environment"`
	EnvironmentName string        `json:"environment_name" env:"INPUT_ENV-NAME" flag:"env-name" desc:"Elastic Beanstalk environment name"`
	ExpectedVersion string        `json:"expected_version" env:"INPUT_APP-VERSION-LABEL" flag:"version-label" desc:"Version label to wait for (empty = any)"`
	Timeout         time.Duration `json:"timeout" env:"INPUT_TIMEOUT" flag:"timeout" default:"60" desc:"Seconds to wait before giving up"`
	PollInterval    time.Duration `json:"poll_interval" env:"TIME_SLEEP" flag:"poll-interval" default:"5" desc:"Seconds between status lookups"`
	Endpoint        string        `json:"endpoint,omitempty" env:"EBWAIT_ENDPOINT" flag:"endpoint" desc:"Custom AWS endpoint (for LocalStack)"`
	OutputFile      string        `json:"output_file,omitempty" env:"GITHUB_OUTPUT" flag:"output-file" desc:"File outputs are appended to (empty = stdout)"`
}

// NewPollConfig creates a configuration with defaults
func NewPollConfig() *PollConfig {
	return &PollConfig{
		Timeout:      DefaultTimeout,
		PollInterval: DefaultPollInterval,
	}
}

// LoadFromEnv loads configuration from environment variables
func (c *PollConfig) LoadFromEnv() error {
	if region := os.Getenv(EnvRegion); region != "" {
		c.Region = strings.TrimSpace(region)
	}
	if name := os.Getenv(EnvEnvironmentName); name != "" {
		c.EnvironmentName = strings.TrimSpace(name)
	}
	if version, ok := os.LookupEnv(EnvVersionLabel); ok {
		c.ExpectedVersion = version
	}

	if timeout := os.Getenv(EnvTimeout); timeout != "" {
		d, err := ParseSeconds(timeout)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvTimeout, err)
		}
		c.Timeout = d
	}
	if interval := os.Getenv(EnvPollInterval); interval != "" {
		d, err := ParseSeconds(interval)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvPollInterval, err)
		}
		c.PollInterval = d
	}

	if endpoint := os.Getenv(EnvEndpoint); endpoint != "" {
		c.Endpoint = endpoint
	}
	if outputFile := os.Getenv(EnvOutputFile); outputFile != "" {
		c.OutputFile = outputFile
	}

	return nil
}

// ParseSeconds parses a whole number of seconds into a duration
func ParseSeconds(value string) (time.Duration, error) {
	seconds, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number of seconds", value)
	}
	return SecondsToDuration(seconds)
}

// maxSeconds is the largest number of seconds a time.Duration can hold
const maxSeconds = math.MaxInt64 / int64(time.Second)

// SecondsToDuration converts seconds to a duration, rejecting values that
// would overflow
func SecondsToDuration(seconds int64) (time.Duration, error) {
	if seconds > maxSeconds || seconds < -maxSeconds {
		return 0, fmt.Errorf("%d seconds is out of range (max %d)", seconds, maxSeconds)
	}
	return time.Duration(seconds) * time.Second, nil
}

// Validate checks if the configuration is valid
func (c *PollConfig) Validate() error {
	if c.Region == "" {
		return fmt.Errorf("region is required (set %s or --region)", EnvRegion)
	}
	if c.EnvironmentName == "" {
		return fmt.Errorf("environment name is required (set %s or --env-name)", EnvEnvironmentName)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout cannot be negative: %s", c.Timeout)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive: %s", c.PollInterval)
	}
	return nil
}

// VersionCheckEnabled reports whether readiness requires a specific version label
func (c *PollConfig) VersionCheckEnabled() bool {
	return c.ExpectedVersion != ""
}

// GetSanitized returns a view of the config safe for logging
func (c *PollConfig) GetSanitized() map[string]interface{} {
	return map[string]interface{}{
		"region":              c.Region,
		"environment_name":    c.EnvironmentName,
		"expected_version":    c.ExpectedVersion,
		"timeout_seconds":     int(c.Timeout / time.Second),
		"poll_interval":       int(c.PollInterval / time.Second),
		"endpoint_configured": c.Endpoint != "",
		"output_file":         c.OutputFile,
	}
}

// ToJSON returns the configuration as a JSON string
func (c *PollConfig) ToJSON() string {
	data, _ := json.MarshalIndent(c.GetSanitized(), "", "  ")
	return string(data)
}

// EnvVar describes an environment variable read by LoadFromEnv
type EnvVar struct {
	Name        string
	Flag        string
	Description string
}

// EnvVars lists the environment variables PollConfig reads, from its struct tags
func EnvVars() []EnvVar {
	return collectEnvVars(reflect.TypeOf(PollConfig{}))
}

// collectEnvVars recursively collects environment variables from struct tags
func collectEnvVars(t reflect.Type) []EnvVar {
	var vars []EnvVar

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if envTag := field.Tag.Get("env"); envTag != "" {
			desc := field.Tag.Get("desc")
			if def := field.Tag.Get("default"); def != "" {
				desc = fmt.Sprintf("%s (default %s)", desc, def)
			}
			vars = append(vars, EnvVar{Name: envTag, Flag: field.Tag.Get("flag"), Description: desc})
		}

		if field.Type.Kind() == reflect.Struct && field.Type != reflect.TypeOf(time.Time{}) {
			vars = append(vars, collectEnvVars(field.Type)...)
		}
	}

	return vars
}
