package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/loomhq/loom/internal/textnorm"
	"github.com/loomhq/loom/internal/types"
	"github.com/loomhq/loom/internal/ui"
)

var (
	listBacklogPath  string
	listStatusFilter string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the backlog grouped by issue",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolvePath(listBacklogPath, cfg.Backlog)
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read backlog: %w", err)
		}
		var doc types.BacklogDocument
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parse backlog %s: %w", path, err)
		}

		tasks := doc.Tasks
		if listStatusFilter != "" {
			want := types.NormalizeStatus(listStatusFilter)
			filtered := tasks[:0:0]
			for _, t := range tasks {
				if types.NormalizeStatus(string(t.Status)) == want {
					filtered = append(filtered, t)
				}
			}
			tasks = filtered
		}

		if jsonOutput {
			out, err := json.MarshalIndent(tasks, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal tasks: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		displayTasks(doc, tasks)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listBacklogPath, "backlog", "", "Backlog document path (default from config)")
	listCmd.Flags().StringVar(&listStatusFilter, "status", "", "Filter by status (open, done, in_progress, blocked)")
	rootCmd.AddCommand(listCmd)
}

// displayTasks pretty-prints tasks grouped by issue. Styling is dropped when
// stdout is not a terminal or NO_COLOR is set.
func displayTasks(doc types.BacklogDocument, tasks []types.GeneratedTask) {
	styled := ui.ColorEnabled()
	width := ui.TerminalWidth(100)

	if len(tasks) == 0 {
		fmt.Println("No tasks.")
		return
	}

	lastIssue := 0
	for _, t := range tasks {
		if t.IssueNumber != lastIssue {
			header := fmt.Sprintf("#%d %s", t.IssueNumber, t.IssueTitle)
			if styled {
				header = ui.HeaderStyle.Render(header)
			}
			if lastIssue != 0 {
				fmt.Println()
			}
			fmt.Println(header)
			lastIssue = t.IssueNumber
		}

		icon := ui.StatusIcon(t.Status)
		line := fmt.Sprintf("  %s %-10s %s  %s", icon, t.ID, t.Title, t.StableKey)
		line = textnorm.Truncate(line, width)
		if styled {
			line = ui.StatusStyle(t.Status).Render(line)
		}
		fmt.Println(line)
	}

	fmt.Printf("\n%d task(s), generated %s from %d issue(s)\n",
		len(tasks), doc.GeneratedAtUTC, doc.SourceIssueCount)
}
