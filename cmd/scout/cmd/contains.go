package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/corey/scout/internal/app"
)

var containsCmd = &cobra.Command{
	Use:   "contains <path>",
	Short: "Check whether a path belongs to the project",
	Args:  cobra.ExactArgs(1),
	RunE:  runContains,
}

func runContains(cmd *cobra.Command, args []string) error {
	a, err := app.New(app.Config{ProjectRoot: projectRoot()})
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	defer a.Stop()

	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve %s: %w", args[0], err)
	}

	if a.Files.Contains(path) {
		fmt.Println("yes")
	} else {
		fmt.Println("no")
	}
	return nil
}
