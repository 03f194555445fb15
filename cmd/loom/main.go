// Command loom regenerates an actionable task backlog from a JSON issue
// collection and answers whether open work remains. It is the reference
// driver for the loom engine: all file I/O lives here, the engine stays
// pure.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/loomhq/loom/internal/configfile"
	"github.com/loomhq/loom/internal/debug"
)

var (
	projectDir  string
	jsonOutput  bool
	verboseFlag bool
	quietFlag   bool

	cfg *configfile.Config
)

var rootCmd = &cobra.Command{
	Use:   "loom",
	Short: "Weave issue markdown into an actionable task backlog",
	Long: `loom extracts small actionable tasks from free-form issue descriptions
and keeps the resulting backlog in sync across regenerations: a task that
was marked done stays done even when the surrounding text shifts.

Typical loop:
  loom generate                 # (re)build the backlog from issues.json
  loom query                    # exit 0 while open work remains
  loom list                     # inspect the backlog`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		debug.SetVerbose(verboseFlag)

		loaded, err := configfile.Load(projectDir)
		if err != nil {
			return err
		}
		cfg = loaded
		if !cmd.Flags().Changed("json") {
			jsonOutput = cfg.JSON
		}
		debug.SetQuiet(quietFlag || cfg.Quiet)
		debug.Logf("config: issues=%s backlog=%s\n", cfg.Issues, cfg.Backlog)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&projectDir, "dir", ".", "Project root (location of .loom)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "JSON output")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress non-essential output")
}

// resolvePath applies the config default when the flag was not given, then
// anchors relative paths at the project root.
func resolvePath(flagValue, configValue string) string {
	path := flagValue
	if path == "" {
		path = configValue
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(projectDir, path)
	}
	return path
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
