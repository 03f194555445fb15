package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/loomhq/loom/internal/backlog"
)

var queryBacklogPath string

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Check whether the backlog still has actionable work",
	Long: `Print "true" and exit 0 when any task is open or in progress;
print "false" and exit 1 otherwise.

This command never fails: a missing, empty, or malformed backlog answers
"false". It is meant as a loop condition for the outer automation driver.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		path := resolvePath(queryBacklogPath, cfg.Backlog)

		// Read errors degrade to "no open work" on purpose.
		data, _ := os.ReadFile(path)
		if backlog.HasOpenWork(data) {
			fmt.Println("true")
			return
		}
		fmt.Println("false")
		os.Exit(1)
	},
}

func init() {
	queryCmd.Flags().StringVar(&queryBacklogPath, "backlog", "", "Backlog document path (default from config)")
	rootCmd.AddCommand(queryCmd)
}
