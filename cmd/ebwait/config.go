//nolint:forbidigo // CLI command needs fmt.Print* for user output
package main

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lattiam/ebwait/internal/config"
)

func (a *app) newConfigCommand(flags *pollFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect ebwait configuration",
	}

	cmd.AddCommand(a.newConfigShowCommand(flags))
	return cmd
}

func (a *app) newConfigShowCommand(flags *pollFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		Long:  "Display the configuration built from defaults, environment variables and command-line flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.loadConfig(cmd)
			if err != nil {
				return err
			}

			switch format {
			case "json":
				_, _ = fmt.Fprintln(a.stdout, cfg.ToJSON())
				return nil
			case "table":
				sanitized := cfg.GetSanitized()
				keys := make([]string, 0, len(sanitized))
				for k := range sanitized {
					keys = append(keys, k)
				}
				sort.Strings(keys)

				w := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
				_, _ = fmt.Fprintln(w, "SETTING\tVALUE")
				for _, k := range keys {
					_, _ = fmt.Fprintf(w, "%s\t%v\n", k, sanitized[k])
				}
				if err := w.Flush(); err != nil {
					return err
				}

				_, _ = fmt.Fprintln(a.stdout, "\nEnvironment Variables:")
				a.printEnvironmentVariables()
				return nil
			default:
				return fmt.Errorf("unknown format: %s. Supported formats: table, json", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, json)")
	return cmd
}

// printEnvironmentVariables lists the variables read from the environment,
// with the flag that overrides each one
func (a *app) printEnvironmentVariables() {
	vars := config.EnvVars()

	maxLen := 0
	for _, v := range vars {
		if len(v.Name) > maxLen {
			maxLen = len(v.Name)
		}
	}

	for _, v := range vars {
		flag := ""
		if v.Flag != "" {
			flag = fmt.Sprintf(" [--%s]", v.Flag)
		}
		_, _ = fmt.Fprintf(a.stdout, "  %-*s - %s%s\n", maxLen, v.Name, v.Description, flag)
	}
}
