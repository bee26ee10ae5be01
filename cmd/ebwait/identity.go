package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lattiam/ebwait/internal/config"
)

func (a *app) newIdentityCommand(flags *pollFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "identity",
		Short: "Show the AWS account and principal used for status lookups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.loadConfig(cmd)
			if err != nil {
				return err
			}
			if cfg.Region == "" {
				return fmt.Errorf("region is required (set %s or --region)", config.EnvRegion)
			}

			checker, err := a.newIdentityChecker(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			identity, err := checker.CallerIdentity(cmd.Context())
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(a.stdout, "account=%s\narn=%s\nuser-id=%s\n", identity.Account, identity.ARN, identity.UserID)
			return nil
		},
	}
}
