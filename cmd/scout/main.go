// scout maintains a live, queryable index of a project's files.
// Single binary: scan once, stay fresh through watch events.
package main

import (
	"os"

	"github.com/corey/scout/cmd/scout/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
