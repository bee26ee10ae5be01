// Package environment looks up Elastic Beanstalk environment state and the
// identity of the AWS credentials used to do so
package environment

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

// AWSConfig holds the connection settings shared by every AWS client
type AWSConfig struct {
	Region   string
	Endpoint string // For LocalStack or custom endpoints
}

// localStackOverride reports whether EBWAIT_USE_LOCALSTACK forces emulator mode
func localStackOverride() bool {
	return os.Getenv("EBWAIT_USE_LOCALSTACK") == "true"
}

// isLocalStackEndpoint detects a LocalStack or other local emulator endpoint
func isLocalStackEndpoint(endpoint string) bool {
	if localStackOverride() {
		return true
	}
	if endpoint == "" {
		return false
	}
	endpointLower := strings.ToLower(endpoint)
	return strings.Contains(endpointLower, "localstack") ||
		strings.Contains(endpointLower, "localhost") ||
		strings.Contains(endpointLower, "127.0.0.1")
}

// LoadAWSConfig loads the default credential chain for the region. Local
// emulator endpoints get static test credentials.
func LoadAWSConfig(ctx context.Context, cfg AWSConfig) (aws.Config, error) {
	if cfg.Region == "" {
		return aws.Config{}, fmt.Errorf("AWS region is required")
	}
	if localStackOverride() && cfg.Endpoint == "" {
		return aws.Config{}, fmt.Errorf("EBWAIT_USE_LOCALSTACK is set but no endpoint is configured (set EBWAIT_ENDPOINT or --endpoint)")
	}

	configOptions := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}

	if isLocalStackEndpoint(cfg.Endpoint) {
		configOptions = append(configOptions,
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("test", "test", "")),
		)
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, configOptions...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return awsCfg, nil
}

// VerifyCredentials resolves the configured credentials so a missing or
// broken credential chain fails before any API call is made
func VerifyCredentials(ctx context.Context, awsCfg aws.Config) error {
	if awsCfg.Credentials == nil {
		return NewAuthenticationError("", fmt.Errorf("no credentials provider configured"))
	}
	creds, err := awsCfg.Credentials.Retrieve(ctx)
	if err != nil {
		return NewAuthenticationError("", err)
	}
	if !creds.HasKeys() {
		return NewAuthenticationError("", fmt.Errorf("credentials provider %q returned empty keys", creds.Source))
	}
	return nil
}
