package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lattiam/ebwait/internal/config"
)

// pollFlags holds flag values that override the environment
type pollFlags struct {
	region       string
	envName      string
	versionLabel string
	timeout      int
	pollInterval int
	endpoint     string
	outputFile   string
}

func (f *pollFlags) register(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVarP(&f.region, "region", "r", "", "AWS region (default $"+config.EnvRegion+")")
	pf.StringVarP(&f.envName, "env-name", "e", "", "Elastic Beanstalk environment name (default $"+config.EnvEnvironmentName+")")
	pf.StringVar(&f.versionLabel, "version-label", "", "Version label to wait for; empty accepts any version (default $"+config.EnvVersionLabel+")")
	pf.IntVarP(&f.timeout, "timeout", "t", int(config.DefaultTimeout/time.Second), "Seconds to wait for the environment (default $"+config.EnvTimeout+")")
	pf.IntVar(&f.pollInterval, "poll-interval", int(config.DefaultPollInterval/time.Second), "Seconds between status checks (default $"+config.EnvPollInterval+")")
	pf.StringVar(&f.endpoint, "endpoint", "", "Custom AWS endpoint, e.g. LocalStack (default $"+config.EnvEndpoint+")")
	pf.StringVarP(&f.outputFile, "output-file", "o", "", "File outputs are appended to; empty prints to stdout (default $"+config.EnvOutputFile+")")
}

// loadConfig builds the configuration from defaults, the environment and any
// flags explicitly set on the command line, in that order of precedence
func (f *pollFlags) loadConfig(cmd *cobra.Command) (config.PollConfig, error) {
	cfg := config.NewPollConfig()
	if err := cfg.LoadFromEnv(); err != nil {
		return config.PollConfig{}, fmt.Errorf("failed to load config from environment: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("region") {
		cfg.Region = f.region
	}
	if flags.Changed("env-name") {
		cfg.EnvironmentName = f.envName
	}
	if flags.Changed("version-label") {
		cfg.ExpectedVersion = f.versionLabel
	}
	if flags.Changed("timeout") {
		d, err := config.SecondsToDuration(int64(f.timeout))
		if err != nil {
			return config.PollConfig{}, fmt.Errorf("invalid --timeout value: %w", err)
		}
		cfg.Timeout = d
	}
	if flags.Changed("poll-interval") {
		d, err := config.SecondsToDuration(int64(f.pollInterval))
		if err != nil {
			return config.PollConfig{}, fmt.Errorf("invalid --poll-interval value: %w", err)
		}
		cfg.PollInterval = d
	}
	if flags.Changed("endpoint") {
		cfg.Endpoint = f.endpoint
	}
	if flags.Changed("output-file") {
		cfg.OutputFile = f.outputFile
	}

	return *cfg, nil
}

// loadValidConfig is loadConfig followed by validation
func (f *pollFlags) loadValidConfig(cmd *cobra.Command) (config.PollConfig, error) {
	cfg, err := f.loadConfig(cmd)
	if err != nil {
		return config.PollConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.PollConfig{}, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}
