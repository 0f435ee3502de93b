package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corey/scout/internal/app"
)

var wipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Delete the project's persisted snapshot",
	RunE:  runWipe,
}

func runWipe(cmd *cobra.Command, args []string) error {
	a, err := app.New(app.Config{ProjectRoot: projectRoot()})
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	defer a.Stop()

	if err := a.Store.DeleteProject(a.ProjectID); err != nil {
		return fmt.Errorf("wipe: %w", err)
	}
	fmt.Printf("snapshot for %s wiped\n", a.ProjectID)
	return nil
}
