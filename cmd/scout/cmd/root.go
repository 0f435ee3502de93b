package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scout",
	Short: "Live project file index",
	Long:  "Tracks which files belong to a project and which directory holds each one, kept fresh through file system watch events.",
}

// projectRoot returns the project root (cwd by default, --root override).
func projectRoot() string {
	if flagRoot != "" {
		return flagRoot
	}
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	return dir
}

var flagRoot string

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagRoot, "root", "", "project root (default: current directory)")
	rootCmd.AddCommand(daemonCmd)
	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(containsCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(wipeCmd)
}
