package environment

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/smithy-go"

	"github.com/lattiam/ebwait/internal/interfaces"
	"github.com/lattiam/ebwait/pkg/logging"
)

// GetCallerIdentityAPI is the subset of the STS client used by STSIdentityChecker
type GetCallerIdentityAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput,
		optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// STSIdentityChecker implements interfaces.IdentityChecker using STS
type STSIdentityChecker struct {
	client GetCallerIdentityAPI
	logger *logging.Logger
}

// NewSTSIdentityChecker creates an identity checker for the AWS configuration
func NewSTSIdentityChecker(awsCfg aws.Config, endpoint string) *STSIdentityChecker {
	var client *sts.Client
	if endpoint != "" {
		client = sts.NewFromConfig(awsCfg, func(o *sts.Options) {
			o.BaseEndpoint = aws.String(endpoint)
		})
	} else {
		client = sts.NewFromConfig(awsCfg)
	}
	return NewSTSIdentityCheckerWithClient(client)
}

// NewSTSIdentityCheckerWithClient creates an identity checker around an existing client
func NewSTSIdentityCheckerWithClient(client GetCallerIdentityAPI) *STSIdentityChecker {
	return &STSIdentityChecker{
		client: client,
		logger: logging.Environment,
	}
}

// CallerIdentity returns the account and principal behind the credentials
func (c *STSIdentityChecker) CallerIdentity(ctx context.Context) (interfaces.CallerIdentity, error) {
	resp, err := c.client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		c.logger.Failure(ctx, "get_caller_identity", err)
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && authErrorCodes[apiErr.ErrorCode()] {
			return interfaces.CallerIdentity{}, NewAuthenticationError("", err)
		}
		return interfaces.CallerIdentity{}, NewUnexpectedError("", fmt.Errorf("get caller identity: %w", err))
	}

	identity := interfaces.CallerIdentity{
		Account: aws.ToString(resp.Account),
		ARN:     aws.ToString(resp.Arn),
		UserID:  aws.ToString(resp.UserId),
	}
	c.logger.Success(ctx, "get_caller_identity", identity.ARN)
	return identity, nil
}
