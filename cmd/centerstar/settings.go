package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aria-lang/centerstar-go/internal/config"
)

// settingsCmd writes the effective settings to a file.
var settingsCmd = &cobra.Command{
	Use:   "settings [path]",
	Short: "Write the effective settings to a file",
	Long: `Write the settings in effect, after defaults, the environment, a settings
file and flags are merged, to path. The format follows the extension
(yaml, json or toml). The file can be passed back with --settings.`,
	Example: "  centerstar settings --gap -3 centerstar.yaml",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, _, err := loadConfig(); err != nil {
			return err
		}
		if err := config.Save(settings, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "settings written to %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}
