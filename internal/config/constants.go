package config

import "time"

// Environment variables read by LoadFromEnv. The INPUT_* names are how the
// GitHub Actions runner passes action inputs.
const (
	EnvRegion          = "INPUT_REGION"
	EnvEnvironmentName = "INPUT_ENV-NAME"
	EnvVersionLabel    = "INPUT_APP-VERSION-LABEL"
	EnvTimeout         = "INPUT_TIMEOUT"
	EnvPollInterval    = "TIME_SLEEP"
	EnvOutputFile      = "GITHUB_OUTPUT"
	EnvEndpoint        = "EBWAIT_ENDPOINT"
)

const (
	// DefaultTimeout is how long to wait for the environment when no timeout is given.
	DefaultTimeout = 60 * time.Second
	// DefaultPollInterval is the delay between two status lookups.
	DefaultPollInterval = 5 * time.Second
	// DefaultLocalStackURL is the default URL for LocalStack.
	DefaultLocalStackURL = "http://localhost:4566"
)
