package tablecache

import (
	"path/filepath"
	"testing"

	"github.com/mhess/twophase/internal/cube"
)

// fakeTables builds a small, internally-consistent Tables value for
// exercising Save/Load without paying the cost of a full production
// build (NEdge4*NEdge8-sized tables would make a round-trip test
// slow for no benefit: gob encoding doesn't care about slice length).
func fakeTables() *cube.Tables {
	mt := &cube.MoveTables{
		Twist:   make([][cube.NMoves]int, 3),
		Flip:    make([][cube.NMoves]int, 3),
		UDSlice: make([][cube.NMoves]int, 3),
		Edge4:   make([][cube.NMoves]int, 3),
		Edge8:   make([][cube.NMoves]int, 3),
		Corner:  make([][cube.NMoves]int, 3),
	}
	for i := range mt.Twist {
		for mv := 0; mv < cube.NMoves; mv++ {
			mt.Twist[i][mv] = (i + mv) % 3
			mt.Flip[i][mv] = (i + mv) % 3
			mt.UDSlice[i][mv] = (i + mv) % 3
			mt.Edge4[i][mv] = (i + mv) % 3
			mt.Edge8[i][mv] = (i + mv) % 3
			mt.Corner[i][mv] = (i + mv) % 3
		}
	}
	pt := &cube.PruningTables{
		UDSliceTwist: []int{0, 1, 2},
		UDSliceFlip:  []int{0, 1, 2},
		Edge4Edge8:   []int{0, 1, 2},
		Edge4Corner:  []int{0, 1, 2},
	}
	return &cube.Tables{Move: mt, Prune: pt}
}

func TestOpenCreatesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	if store.Path() != path {
		t.Errorf("Path() = %q, want %q", store.Path(), path)
	}

	_, ok, err := store.Load()
	if err != nil {
		t.Fatalf("Load on empty store: %v", err)
	}
	if ok {
		t.Fatal("Load on a freshly created store should report ok=false")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	want := fakeTables()
	if err := store.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, ok, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatal("Load after Save reported ok=false")
	}

	if len(got.Move.Twist) != len(want.Move.Twist) || got.Move.Twist[1] != want.Move.Twist[1] {
		t.Errorf("Twist table mismatch: got %v, want %v", got.Move.Twist, want.Move.Twist)
	}
	if len(got.Prune.UDSliceTwist) != len(want.Prune.UDSliceTwist) {
		t.Errorf("UDSliceTwist length mismatch: got %d, want %d", len(got.Prune.UDSliceTwist), len(want.Prune.UDSliceTwist))
	}
}

func TestSaveOverwritesPreviousContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	first := fakeTables()
	if err := store.Save(first); err != nil {
		t.Fatalf("Save (first): %v", err)
	}

	second := fakeTables()
	second.Prune.UDSliceTwist = []int{9, 9, 9}
	if err := store.Save(second); err != nil {
		t.Fatalf("Save (second): %v", err)
	}

	got, ok, err := store.Load()
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	if got.Prune.UDSliceTwist[0] != 9 {
		t.Fatalf("Load after second Save = %v, want overwritten values", got.Prune.UDSliceTwist)
	}
}

func TestLoadOrBuildBuildsWhenCacheEmpty(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the full table set; skipped in -short mode")
	}
	path := filepath.Join(t.TempDir(), "tables.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	var stages []string
	tables, err := LoadOrBuild(store, func(stage string) { stages = append(stages, stage) })
	if err != nil {
		t.Fatalf("LoadOrBuild: %v", err)
	}
	if tables.Move == nil || tables.Prune == nil {
		t.Fatal("LoadOrBuild returned incomplete tables")
	}
	if len(stages) != 3 {
		t.Fatalf("progress callback fired %d times, want 3", len(stages))
	}

	_, ok, err := store.Load()
	if err != nil {
		t.Fatalf("Load after LoadOrBuild: %v", err)
	}
	if !ok {
		t.Fatal("LoadOrBuild should persist the freshly built tables")
	}
}

func TestLoadOrBuildUsesCacheWhenPresent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	want := fakeTables()
	if err := store.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	called := false
	got, err := LoadOrBuild(store, func(string) { called = true })
	if err != nil {
		t.Fatalf("LoadOrBuild: %v", err)
	}
	if called {
		t.Fatal("LoadOrBuild should not report progress when the cache already has tables")
	}
	if got.Move.Twist[1] != want.Move.Twist[1] {
		t.Fatalf("LoadOrBuild returned different tables than were cached")
	}
}
