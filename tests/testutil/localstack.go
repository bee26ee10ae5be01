// Package testutil provides testing utilities for ebwait integration tests
package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/localstack"
)

// LocalStackImage is the emulator image. Elastic Beanstalk is only emulated by
// the Pro image.
const LocalStackImage = "localstack/localstack-pro:3.8.1"

// LocalStackContainer holds the test LocalStack container and connection details
type LocalStackContainer struct {
	Container testcontainers.Container
	Endpoint  string
}

// SetupLocalStack starts a LocalStack container with Elastic Beanstalk and STS.
// The test is skipped when no LocalStack auth token is available.
func SetupLocalStack(t *testing.T) *LocalStackContainer {
	t.Helper()
	return SetupLocalStackWithServices(t, "elasticbeanstalk,sts,s3")
}

// SetupLocalStackWithServices starts an individual LocalStack container with specific services
func SetupLocalStackWithServices(t *testing.T, services string) *LocalStackContainer {
	t.Helper()

	token := os.Getenv("LOCALSTACK_AUTH_TOKEN")
	if token == "" {
		t.Skip("LOCALSTACK_AUTH_TOKEN not set; Elastic Beanstalk emulation requires LocalStack Pro")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := localstack.Run(ctx,
		LocalStackImage,
		testcontainers.WithEnv(map[string]string{
			"SERVICES":              services,
			"DEBUG":                 "0",
			"LOCALSTACK_AUTH_TOKEN": token,
		}),
	)
	if err != nil {
		t.Fatalf("Failed to start LocalStack container: %v", err)
	}

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cleanupCancel()
		if err := container.Terminate(cleanupCtx); err != nil {
			t.Logf("Failed to terminate LocalStack container: %v", err)
		}
	})

	mappedPort, err := container.MappedPort(ctx, "4566/tcp")
	if err != nil {
		t.Fatalf("Failed to get LocalStack port: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get LocalStack host: %v", err)
	}

	return &LocalStackContainer{
		Container: container,
		Endpoint:  fmt.Sprintf("http://%s:%s", host, mappedPort.Port()),
	}
}
