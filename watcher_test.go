package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"shaban/pkg/plate"
)

func waitForCatalog(t *testing.T, want string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		rs := parser.get().Regions()
		if len(rs) == 1 && rs[0] == want {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("catalog did not reload to %q (have %v)", want, parser.get().Regions())
}

func TestWatchRegionsSurvivesRenameReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "regions.txt")
	if err := os.WriteFile(path, []byte("品川\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg = Config{Separators: plate.DefaultSeparators}
	parser.set(plate.NewParser([]string{"品川"}, ""))

	stop, err := watchRegions(path)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer stop()

	// the standard atomic-update pattern: write a temp file, rename it over
	// the catalog
	tmp := filepath.Join(dir, "regions.txt.tmp")
	if err := os.WriteFile(tmp, []byte("横浜\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}
	waitForCatalog(t, "横浜")

	// an in-place write after the rename must still be picked up
	if err := os.WriteFile(path, []byte("大阪\n"), 0644); err != nil {
		t.Fatal(err)
	}
	waitForCatalog(t, "大阪")
}

func TestWatchRegionsKeepsCatalogOnBadReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "regions.txt")
	if err := os.WriteFile(path, []byte("品川\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg = Config{Separators: plate.DefaultSeparators}
	parser.set(plate.NewParser([]string{"品川"}, ""))

	stop, err := watchRegions(path)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer stop()

	// emptying the file is a bad update: the previous catalog must survive
	if err := os.WriteFile(path, []byte("# nothing\n"), 0644); err != nil {
		t.Fatal(err)
	}
	// then a good update must still land on the same watch
	if err := os.WriteFile(path, []byte("横浜\n"), 0644); err != nil {
		t.Fatal(err)
	}
	waitForCatalog(t, "横浜")
}
