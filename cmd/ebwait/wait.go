package main

import (
	"github.com/spf13/cobra"

	"github.com/lattiam/ebwait/internal/interfaces"
	"github.com/lattiam/ebwait/internal/output"
	"github.com/lattiam/ebwait/internal/poller"
	"github.com/lattiam/ebwait/pkg/logging"
)

func (a *app) newWaitCommand(flags *pollFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "wait",
		Short: "Wait until the environment runs the expected version and is Ready",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runWait(cmd, flags)
		},
	}
}

func (a *app) runWait(cmd *cobra.Command, flags *pollFlags) error {
	cfg, err := flags.loadValidConfig(cmd)
	if err != nil {
		return err
	}
	logging.Config.Operation(cmd.Context(), "load_config", cfg.GetSanitized())
	if !cfg.VersionCheckEnabled() {
		logging.Config.Info("No version label given, waiting for status %s only", interfaces.ReadyStatus)
	}

	ctx := cmd.Context()
	provider, err := a.newProvider(ctx, cfg)
	if err != nil {
		return err
	}

	var opts []poller.Option
	if a.clock != nil {
		opts = append(opts, poller.WithClock(a.clock))
	}

	outcome, err := poller.New(provider, output.NewSink(cfg.OutputFile, a.stdout), opts...).Run(ctx, cfg)
	if err != nil {
		return err
	}

	snapshot := outcome.FinalSnapshot
	if !outcome.Success {
		printError(a.stderr, "Fail. Expected version %s but got %s. Status: %s",
			cfg.ExpectedVersion, snapshot.VersionLabel, snapshot.Status)
		return errNotReady
	}

	if snapshot.HealthStatus != "" && snapshot.HealthStatus != "Ok" {
		printWarning(a.stderr, "Environment %s is Ready but health status is %s", cfg.EnvironmentName, snapshot.HealthStatus)
	}
	printSuccess(a.stderr, "Environment %s is Ready with version %s", cfg.EnvironmentName, snapshot.VersionLabel)
	return nil
}
