package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"github.com/corey/scout/internal/app"
	"github.com/corey/scout/internal/config"
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Run the index daemon in the foreground",
	RunE:  runDaemon,
}

func runDaemon(cmd *cobra.Command, args []string) error {
	root := projectRoot()

	if err := os.MkdirAll(filepath.Join(root, config.Dir), 0755); err != nil {
		return fmt.Errorf("create %s: %w", config.Dir, err)
	}

	// One daemon per project.
	lock := flock.New(filepath.Join(root, config.Dir, "daemon.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !locked {
		fmt.Println("daemon already running")
		return nil
	}
	defer lock.Unlock()

	a, err := app.New(app.Config{ProjectRoot: root})
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	if err := a.Start(); err != nil {
		return err
	}

	fmt.Printf("scout daemon watching %s\n", a.ProjectRoot)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	fmt.Println("\nshutting down...")
	return a.Stop()
}
