package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/loomhq/loom/internal/backlog"
	"github.com/loomhq/loom/internal/debug"
	"github.com/loomhq/loom/internal/engine"
)

var (
	generateIssuesPath  string
	generateBacklogPath string
	generateWatch       bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Regenerate the backlog from the issue collection",
	Long: `Read the issue collection, re-run task extraction, and write the backlog.

Existing task statuses are carried forward by stable key, so a completed
task stays completed even when the issue text around it changed. When the
regenerated backlog is content-equivalent to the previous one, the previous
generation timestamp is kept and the file is left byte-identical.

With --watch, loom keeps running and regenerates whenever the issue
collection file changes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		issuesPath := resolvePath(generateIssuesPath, cfg.Issues)
		backlogPath := resolvePath(generateBacklogPath, cfg.Backlog)

		if err := generateOnce(issuesPath, backlogPath); err != nil {
			return err
		}
		if generateWatch {
			return watchIssues(issuesPath, backlogPath)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&generateIssuesPath, "issues", "", "Issue collection path (default from config)")
	generateCmd.Flags().StringVar(&generateBacklogPath, "backlog", "", "Backlog document path (default from config)")
	generateCmd.Flags().BoolVarP(&generateWatch, "watch", "w", false, "Regenerate whenever the issue collection changes")
	rootCmd.AddCommand(generateCmd)
}

// generateMu serializes rebuilds: watch-mode debounce callbacks run on their
// own goroutines, and the backlog read-modify-write cycle requires a single
// writer at a time.
var generateMu sync.Mutex

// generateOnce runs one full read-build-write cycle.
func generateOnce(issuesPath, backlogPath string) error {
	generateMu.Lock()
	defer generateMu.Unlock()

	issuesJSON, err := os.ReadFile(issuesPath)
	if err != nil {
		return fmt.Errorf("read issue collection: %w", err)
	}

	// A missing or corrupt previous backlog means no carry-forward; the
	// engine tolerates both.
	prev, err := os.ReadFile(backlogPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("read previous backlog: %w", err)
	}

	out, err := engine.BuildText(issuesJSON, prev, time.Now())
	if err != nil {
		return err
	}

	if err := writeFileAtomic(backlogPath, out); err != nil {
		return err
	}

	if jsonOutput {
		fmt.Print(string(out))
	} else {
		open := "no open work"
		if backlog.HasOpenWork(out) {
			open = "open work remains"
		}
		debug.PrintNormal("Wrote %s (%s)\n", backlogPath, open)
	}
	return nil
}

// writeFileAtomic writes via a temp file plus rename so a crashed run never
// leaves a half-written backlog for the next reader.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("rename to %s: %w", path, err)
	}
	return nil
}

// watchIssues regenerates the backlog whenever the issue collection file is
// written. Rapid editor save sequences are debounced.
func watchIssues(issuesPath, backlogPath string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory, not the file: editors replace files on save,
	// which drops a file-level watch.
	if err := watcher.Add(filepath.Dir(issuesPath)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(issuesPath), err)
	}

	fmt.Fprintf(os.Stderr, "Watching %s for changes... (Press Ctrl+C to exit)\n", issuesPath)

	var debounceTimer *time.Timer
	debounceDelay := 500 * time.Millisecond

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if filepath.Base(event.Name) != filepath.Base(issuesPath) {
				continue
			}
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceDelay, func() {
				if err := generateOnce(issuesPath, backlogPath); err != nil {
					fmt.Fprintf(os.Stderr, "Error regenerating: %v\n", err)
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
		}
	}
}
