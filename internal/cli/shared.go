package cli

import (
	"fmt"

	"github.com/mhess/twophase/internal/cube"
	"github.com/mhess/twophase/internal/tablecache"
)

// loadTables opens the on-disk table cache, building and persisting
// a fresh set of move and pruning tables the first time it's called
// on a machine. verbose controls whether construction progress is
// printed; commands that need machine-readable stdout (--headless)
// pass false.
func loadTables(verbose bool) (*cube.Tables, error) {
	store, err := tablecache.OpenDefault()
	if err != nil {
		return nil, fmt.Errorf("opening table cache: %w", err)
	}
	defer store.Close()

	var progress func(string)
	if verbose {
		progress = func(stage string) {
			fmt.Printf("tables: %s done\n", stage)
		}
	}

	return tablecache.LoadOrBuild(store, progress)
}
