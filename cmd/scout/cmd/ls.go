package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/corey/scout/internal/app"
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the project's indexed files",
	Long:  "Runs a synchronous scan and prints every indexed file, grouped by directory.",
	RunE:  runLs,
}

func runLs(cmd *cobra.Command, args []string) error {
	a, err := app.New(app.Config{ProjectRoot: projectRoot()})
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	defer a.Stop()

	a.Files.Reload(app.Synchronous)

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		// Piped: plain absolute paths, one per line.
		snap := a.Files.Snapshot()
		for _, dir := range sortedKeys(snap) {
			for _, name := range snap[dir] {
				fmt.Println(filepath.Join(dir, name))
			}
		}
		return nil
	}

	dirColor := color.New(color.FgCyan, color.Bold)
	snap := a.Files.Snapshot()
	for _, dir := range sortedKeys(snap) {
		dirColor.Println(dir)
		for _, name := range snap[dir] {
			fmt.Printf("  %s\n", name)
		}
	}

	stats := a.Files.Stats()
	fmt.Printf("\n%d files in %d directories\n", stats.Files, stats.Directories)
	return nil
}
