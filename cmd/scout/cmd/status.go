package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/corey/scout/internal/app"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the persisted snapshot and compare it against the disk",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	a, err := app.New(app.Config{ProjectRoot: projectRoot()})
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	defer a.Stop()

	label := color.New(color.FgCyan).SprintFunc()

	snap, err := a.Store.LoadSnapshot(a.ProjectID)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	savedAt, err := a.Store.SavedAt(a.ProjectID)
	if err != nil {
		return fmt.Errorf("read snapshot time: %w", err)
	}

	fmt.Printf("%s %s\n", label("project:"), a.ProjectRoot)

	if snap == nil {
		fmt.Println("no snapshot: run `scout ls` or start the daemon")
	} else {
		files := 0
		for _, names := range snap {
			files += len(names)
		}
		fmt.Printf("%s %d files in %d directories\n", label("snapshot:"), files, len(snap))
		fmt.Printf("%s %s\n", label("saved:"), time.Unix(savedAt, 0).Format(time.RFC1123))
	}

	// Fresh synchronous scan for comparison.
	a.Files.Reload(app.Synchronous)
	stats := a.Files.Stats()
	fmt.Printf("%s %d files in %d directories\n", label("on disk:"), stats.Files, stats.Directories)
	return nil
}

// sortedKeys returns a snapshot's directory keys in sorted order.
func sortedKeys(snap map[string][]string) []string {
	keys := make([]string, 0, len(snap))
	for k := range snap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
