package environment

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/elasticbeanstalk"
	"github.com/aws/smithy-go"

	"github.com/lattiam/ebwait/internal/interfaces"
	"github.com/lattiam/ebwait/pkg/logging"
)

// DescribeEnvironmentsAPI is the subset of the Elastic Beanstalk client used
// by BeanstalkProvider
type DescribeEnvironmentsAPI interface {
	DescribeEnvironments(ctx context.Context, params *elasticbeanstalk.DescribeEnvironmentsInput,
		optFns ...func(*elasticbeanstalk.Options)) (*elasticbeanstalk.DescribeEnvironmentsOutput, error)
}

// BeanstalkProvider implements interfaces.StatusProvider against the Elastic
// Beanstalk DescribeEnvironments API
type BeanstalkProvider struct {
	client DescribeEnvironmentsAPI
	logger *logging.Logger
}

// NewBeanstalkProvider creates a provider for the given AWS configuration.
// Credentials are resolved up front; a failure is returned as an
// authentication error.
func NewBeanstalkProvider(ctx context.Context, awsCfg aws.Config, endpoint string) (*BeanstalkProvider, error) {
	if err := VerifyCredentials(ctx, awsCfg); err != nil {
		return nil, err
	}
	return NewBeanstalkProviderWithClient(createBeanstalkClient(awsCfg, endpoint)), nil
}

// NewBeanstalkProviderWithClient creates a provider around an existing client
func NewBeanstalkProviderWithClient(client DescribeEnvironmentsAPI) *BeanstalkProvider {
	return &BeanstalkProvider{
		client: client,
		logger: logging.Environment,
	}
}

func createBeanstalkClient(awsCfg aws.Config, endpoint string) *elasticbeanstalk.Client {
	if endpoint != "" {
		return elasticbeanstalk.NewFromConfig(awsCfg, func(o *elasticbeanstalk.Options) {
			o.BaseEndpoint = aws.String(endpoint)
		})
	}
	return elasticbeanstalk.NewFromConfig(awsCfg)
}

// Fetch returns the current snapshot of the named environment. Only the first
// matching environment is considered.
func (p *BeanstalkProvider) Fetch(ctx context.Context, environmentName string) (interfaces.EnvironmentSnapshot, error) {
	resp, err := p.client.DescribeEnvironments(ctx, &elasticbeanstalk.DescribeEnvironmentsInput{
		EnvironmentNames: []string{environmentName},
	})
	if err != nil {
		p.logger.Failure(ctx, "describe_environments", err)
		return interfaces.EnvironmentSnapshot{}, classifyError(environmentName, err)
	}

	if resp == nil || len(resp.Environments) == 0 {
		p.logger.Error("Environment %s not found", environmentName)
		return interfaces.EnvironmentSnapshot{}, NewNotFoundError(environmentName)
	}

	env := resp.Environments[0]
	snapshot := interfaces.EnvironmentSnapshot{
		VersionLabel: aws.ToString(env.VersionLabel),
		Status:       string(env.Status),
		HealthStatus: string(env.HealthStatus),
	}

	p.logger.Info("%s", snapshot)
	p.logger.Operation(ctx, "describe_environments", logging.SnapshotFields(
		environmentName, snapshot.VersionLabel, snapshot.Status, snapshot.HealthStatus))

	return snapshot, nil
}

// authErrorCodes are AWS API error codes caused by missing, invalid or
// insufficient credentials
var authErrorCodes = map[string]bool{
	"InvalidClientTokenId":        true,
	"UnrecognizedClientException": true,
	"SignatureDoesNotMatch":       true,
	"IncompleteSignature":         true,
	"MissingAuthenticationToken":  true,
	"ExpiredToken":                true,
	"ExpiredTokenException":       true,
	"InvalidAccessKeyId":          true,
	"AccessDenied":                true,
	"AccessDeniedException":       true,
	"AuthFailure":                 true,
}

// classifyError maps an AWS SDK error onto the lookup error taxonomy
func classifyError(environmentName string, err error) error {
	if _, ok := AsError(err); ok {
		return err
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && authErrorCodes[apiErr.ErrorCode()] {
		return NewAuthenticationError(environmentName, err)
	}

	return NewUnexpectedError(environmentName, fmt.Errorf("describe environments: %w", err))
}
