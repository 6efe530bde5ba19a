package main

import (
	"github.com/spf13/cobra"
	"github.com/yacobolo/twconfig"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the declarative configuration",
	Long: `Print the JSON schema used to check configurations. Point your editor's
YAML or JSON language server at it for completion and inline errors.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(twconfig.Schema())
		return err
	},
}
