package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lattiam/ebwait/internal/config"
	"github.com/lattiam/ebwait/internal/environment"
	"github.com/lattiam/ebwait/internal/interfaces"
	"github.com/lattiam/ebwait/internal/poller"
)

var (
	version = "dev"
	commit  = "none"    //nolint:gochecknoglobals // Build-time commit info
	date    = "unknown" //nolint:gochecknoglobals // Build-time date info
)

// errNotReady is returned when the environment did not become ready in time.
// The details have already been reported by the time it reaches main.
var errNotReady = errors.New("environment not ready")

// app wires the CLI to its collaborators so tests can replace them
type app struct {
	stdout io.Writer
	stderr io.Writer
	clock  poller.Clock

	newProvider        func(ctx context.Context, cfg config.PollConfig) (interfaces.StatusProvider, error)
	newIdentityChecker func(ctx context.Context, cfg config.PollConfig) (interfaces.IdentityChecker, error)
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout:             stdout,
		stderr:             stderr,
		newProvider:        newBeanstalkProvider,
		newIdentityChecker: newSTSIdentityChecker,
	}
}

func newBeanstalkProvider(ctx context.Context, cfg config.PollConfig) (interfaces.StatusProvider, error) {
	awsCfg, err := environment.LoadAWSConfig(ctx, environment.AWSConfig{Region: cfg.Region, Endpoint: cfg.Endpoint})
	if err != nil {
		return nil, err
	}
	return environment.NewBeanstalkProvider(ctx, awsCfg, cfg.Endpoint)
}

func newSTSIdentityChecker(ctx context.Context, cfg config.PollConfig) (interfaces.IdentityChecker, error) {
	awsCfg, err := environment.LoadAWSConfig(ctx, environment.AWSConfig{Region: cfg.Region, Endpoint: cfg.Endpoint})
	if err != nil {
		return nil, err
	}
	if err := environment.VerifyCredentials(ctx, awsCfg); err != nil {
		return nil, err
	}
	return environment.NewSTSIdentityChecker(awsCfg, cfg.Endpoint), nil
}

func main() {
	os.Exit(newApp(os.Stdout, os.Stderr).run(context.Background(), os.Args[1:]))
}

// run executes the CLI and returns the process exit code
func (a *app) run(ctx context.Context, args []string) int {
	rootCmd := a.newRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		a.reportError(err)
		return 1
	}
	return 0
}

func (a *app) newRootCommand() *cobra.Command {
	flags := &pollFlags{}

	rootCmd := &cobra.Command{
		Use:   "ebwait",
		Short: "Wait for an Elastic Beanstalk environment to be ready",
		Long: `ebwait polls an Elastic Beanstalk environment until it reports the expected
version label with status Ready, or the timeout elapses.

Inputs are read from the GitHub Actions INPUT_* variables and can be overridden
with flags. Outputs (health-status, version-label, status) are appended to
$GITHUB_OUTPUT, or printed to stdout when it is not set.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runWait(cmd, flags)
		},
	}

	flags.register(rootCmd)

	rootCmd.AddCommand(
		a.newWaitCommand(flags),
		a.newStatusCommand(flags),
		a.newIdentityCommand(flags),
		a.newConfigCommand(flags),
	)

	return rootCmd
}

// reportError prints a diagnostic for a failed command
func (a *app) reportError(err error) {
	switch {
	case errors.Is(err, errNotReady):
		// Already reported
	case environment.IsAuthenticationFailure(err):
		printError(a.stderr, "Failed to get AWS credentials: %v", err)
		printError(a.stderr, "Did you set the AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY environment variables?")
	case environment.IsNotFound(err):
		envName := ""
		if envErr, ok := environment.AsError(err); ok {
			envName = envErr.Environment
		}
		printError(a.stderr, "Environment %s not found", envName)
	default:
		printError(a.stderr, "Unexpected error: %v", err)
	}
}
