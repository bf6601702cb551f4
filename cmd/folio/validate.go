package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/folio/internal/portfolio"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <data-file>",
		Short: "Check a portfolio data file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := strings.TrimSpace(args[0])
			if path == "" {
				return fmt.Errorf("data file is required")
			}

			data, err := portfolio.Load(path)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid: %d experiences, %d projects\n",
				path, len(data.Experiences), len(data.Projects))
			return nil
		},
	}

	return cmd
}
