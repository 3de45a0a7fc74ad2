package storage

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/amazer/internal/config"
	"github.com/vovakirdan/amazer/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testRecord(t *testing.T, name, gen string, seed int64) AreaRecord {
	t.Helper()
	cfg := config.AreaConfig{
		Size:      core.S(15, 11),
		Generator: config.MustGenerator(gen),
		Seed:      seed,
	}
	area, err := cfg.Generator.Value.Generate(cfg.Size, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	rec, err := NewAreaRecord(name, cfg, area)
	if err != nil {
		t.Fatalf("NewAreaRecord() failed: %v", err)
	}
	return rec
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	rec := testRecord(t, "first", "kruskal", 3)
	id, err := store.SaveArea(rec)
	if err != nil {
		t.Fatalf("SaveArea() failed: %v", err)
	}

	loaded, err := store.AreaByID(id)
	if err != nil {
		t.Fatalf("AreaByID() failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("AreaByID() returned nil for a saved record")
	}
	if loaded.Name != "first" || loaded.Generator != "kruskal" || loaded.Seed != 3 {
		t.Errorf("loaded record = %+v", loaded)
	}
	if loaded.Width != 15 || loaded.Height != 11 {
		t.Errorf("size = %dx%d, expected 15x11", loaded.Width, loaded.Height)
	}
	if loaded.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	area, err := loaded.Area()
	if err != nil {
		t.Fatalf("Area() failed: %v", err)
	}
	original, err := rec.Area()
	if err != nil {
		t.Fatalf("Area() failed: %v", err)
	}
	if !area.Equal(original) {
		t.Error("stored area differs from the saved one")
	}
	if area.Count(core.IsPassable) != loaded.FloorCount {
		t.Errorf("FloorCount = %d, expected %d", loaded.FloorCount, area.Count(core.IsPassable))
	}

	cfg, err := loaded.AreaConfig()
	if err != nil {
		t.Fatalf("AreaConfig() failed: %v", err)
	}
	if cfg.Generator.Name != "kruskal" || cfg.Seed != 3 {
		t.Errorf("AreaConfig() = %+v", cfg)
	}
}

func TestAreaByIDMissing(t *testing.T) {
	store := openTestStore(t)

	rec, err := store.AreaByID(42)
	if err != nil {
		t.Fatalf("AreaByID() failed: %v", err)
	}
	if rec != nil {
		t.Errorf("AreaByID() = %+v, expected nil", rec)
	}
}

func TestSaveAreaRejectsIncompleteRecords(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveArea(AreaRecord{Data: []byte{0, 1, 0, 1, 0}}); err == nil {
		t.Error("SaveArea() without generator should fail")
	}
	if _, err := store.SaveArea(AreaRecord{Generator: "prim"}); err == nil {
		t.Error("SaveArea() without data should fail")
	}
}

func TestRecentAreas(t *testing.T) {
	store := openTestStore(t)

	for i, gen := range []string{"backtracker", "prim", "kruskal"} {
		if _, err := store.SaveArea(testRecord(t, "", gen, int64(i+1))); err != nil {
			t.Fatalf("SaveArea() failed: %v", err)
		}
	}

	recent, err := store.RecentAreas(2)
	if err != nil {
		t.Fatalf("RecentAreas() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 areas, got %d", len(recent))
	}
	// Newest first
	if recent[0].Generator != "kruskal" || recent[1].Generator != "prim" {
		t.Errorf("order = %s, %s; expected kruskal, prim", recent[0].Generator, recent[1].Generator)
	}
	if recent[0].Label() != "kruskal-3" {
		t.Errorf("Label() = %q, expected %q", recent[0].Label(), "kruskal-3")
	}
}

func TestDeleteArea(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveArea(testRecord(t, "doomed", "prim", 1))
	if err != nil {
		t.Fatalf("SaveArea() failed: %v", err)
	}

	deleted, err := store.DeleteArea(id)
	if err != nil {
		t.Fatalf("DeleteArea() failed: %v", err)
	}
	if !deleted {
		t.Error("DeleteArea() should report the record existed")
	}

	deleted, err = store.DeleteArea(id)
	if err != nil {
		t.Fatalf("DeleteArea() failed: %v", err)
	}
	if deleted {
		t.Error("second DeleteArea() should report nothing was deleted")
	}

	if rec, _ := store.AreaByID(id); rec != nil {
		t.Error("deleted area still retrievable")
	}
}

func TestGeneratorStats(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 3; i++ {
		if _, err := store.SaveArea(testRecord(t, "", "prim", int64(i+1))); err != nil {
			t.Fatalf("SaveArea() failed: %v", err)
		}
	}
	if _, err := store.SaveArea(testRecord(t, "", "random", 9)); err != nil {
		t.Fatalf("SaveArea() failed: %v", err)
	}

	stats, err := store.GeneratorStats()
	if err != nil {
		t.Fatalf("GeneratorStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 generators, got %d", len(stats))
	}

	prim := stats["prim"]
	if prim == nil || prim.AreasCount != 3 {
		t.Fatalf("prim stats = %+v, expected 3 areas", prim)
	}
	// A perfect 15x11 maze has 8*6 cells and 47 carved walls.
	want := float64(2*48-1) / float64(15*11)
	if diff := prim.AvgFloorRatio - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("AvgFloorRatio = %f, expected %f", prim.AvgFloorRatio, want)
	}
	if prim.LastCreated.IsZero() {
		t.Error("LastCreated should be set")
	}
}
