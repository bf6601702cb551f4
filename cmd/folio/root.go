package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configFile string
	envFile    string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "folio",
		Short:         "Folio presents a personal portfolio in the terminal or as a web page",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// With no subcommand, open the viewer
			return runView(cmd, flags, viewOptions{})
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", "Path to folio.yaml")
	cmd.PersistentFlags().StringVar(&flags.envFile, "env-file", "", "Path to a .env file")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Override the configured log level")

	cmd.AddCommand(newViewCmd(flags))
	cmd.AddCommand(newBuildCmd(flags))
	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
