package environment

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSTSClient struct {
	output *sts.GetCallerIdentityOutput
	err    error
}

func (f *fakeSTSClient) GetCallerIdentity(_ context.Context, _ *sts.GetCallerIdentityInput,
	_ ...func(*sts.Options),
) (*sts.GetCallerIdentityOutput, error) {
	return f.output, f.err
}

func TestCallerIdentity(t *testing.T) {
	t.Parallel()

	checker := NewSTSIdentityCheckerWithClient(&fakeSTSClient{
		output: &sts.GetCallerIdentityOutput{
			Account: aws.String("123456789012"),
			Arn:     aws.String("arn:aws:iam::123456789012:user/deployer"),
			UserId:  aws.String("AIDAEXAMPLE"),
		},
	})

	identity, err := checker.CallerIdentity(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "123456789012", identity.Account)
	assert.Equal(t, "arn:aws:iam::123456789012:user/deployer", identity.ARN)
	assert.Equal(t, "AIDAEXAMPLE", identity.UserID)
}

func TestCallerIdentityAuthFailure(t *testing.T) {
	t.Parallel()

	checker := NewSTSIdentityCheckerWithClient(&fakeSTSClient{
		err: &smithy.GenericAPIError{Code: "InvalidClientTokenId", Message: "The security token included in the request is invalid"},
	})

	_, err := checker.CallerIdentity(context.Background())
	assert.True(t, IsAuthenticationFailure(err))
}
