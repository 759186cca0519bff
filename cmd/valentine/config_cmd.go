package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/valentine/internal/config"
)

func newConfigCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective page configuration",
		Long: `Load the configuration (defaults, overlaid with --config when given),
validate it, and print the result as YAML. The output is a complete starting
point for a custom page.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			out, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	return cmd
}
