//nolint:forbidigo // CLI command needs fmt.Print* for user output
package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lattiam/ebwait/internal/output"
	"github.com/lattiam/ebwait/internal/poller"
)

func (a *app) newStatusCommand(flags *pollFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current state of the environment without waiting",
		Long: `Fetch the environment once, print its version label, status and health, and
write the usual outputs. The exit code does not depend on readiness.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.loadValidConfig(cmd)
			if err != nil {
				return err
			}

			provider, err := a.newProvider(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			snapshot, err := provider.Fetch(cmd.Context(), cfg.EnvironmentName)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(a.stderr, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintf(w, "ENVIRONMENT\t%s\n", cfg.EnvironmentName)
			_, _ = fmt.Fprintf(w, "VERSION LABEL\t%s\n", snapshot.VersionLabel)
			_, _ = fmt.Fprintf(w, "STATUS\t%s\n", snapshot.Status)
			_, _ = fmt.Fprintf(w, "HEALTH STATUS\t%s\n", snapshot.HealthStatus)
			_, _ = fmt.Fprintf(w, "READY\t%t\n", poller.IsReady(snapshot, cfg.ExpectedVersion))
			_ = w.Flush() // Ignore error - output formatting

			return output.WriteSnapshot(output.NewSink(cfg.OutputFile, a.stdout), snapshot)
		},
	}
}
