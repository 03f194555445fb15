package main

import (
	"github.com/spf13/cobra"

	"github.com/loomhq/loom/internal/configfile"
	"github.com/loomhq/loom/internal/debug"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the .loom directory with a default config",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configfile.Init(projectDir)
		if err != nil {
			return err
		}
		debug.PrintNormal("Initialized %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
