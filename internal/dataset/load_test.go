package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/zssl-sudo/projeto-steam-analitics/internal/config"
	"github.com/zssl-sudo/projeto-steam-analitics/internal/models"
)

func testConfig(dir string) *config.Config {
	return &config.Config{
		DataDir:         dir,
		YearsBack:       0,
		CacheTTLSeconds: 600,
	}
}

func writeSampleCSV(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "games.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestServiceLoadsFromCSV(t *testing.T) {
	dir := t.TempDir()
	path := writeSampleCSV(t, dir)

	svc := NewService(testConfig(dir))
	snap := svc.Load(context.Background())

	// Free Thing is free with a zero Metacritic score and gets cleaned out.
	if len(snap.Games) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(snap.Games))
	}
	if snap.Source != path {
		t.Fatalf("expected source %q, got %q", path, snap.Source)
	}

	// A successful CSV prepare writes the parquet cache as a side effect.
	if _, err := os.Stat(filepath.Join(dir, "games.parquet")); err != nil {
		t.Fatalf("expected parquet cache to be written: %v", err)
	}
}

func TestServiceServesCachedSnapshot(t *testing.T) {
	dir := t.TempDir()
	writeSampleCSV(t, dir)

	svc := NewService(testConfig(dir))
	first := svc.Load(context.Background())
	second := svc.Load(context.Background())
	if first != second {
		t.Fatalf("expected the cached snapshot to be reused within the TTL")
	}

	refreshed := svc.Refresh(context.Background())
	if refreshed == first {
		t.Fatalf("expected refresh to rebuild the snapshot")
	}
}

func TestServiceReadsParquetCache(t *testing.T) {
	dir := t.TempDir()
	writeSampleCSV(t, dir)

	// First service builds the cache from CSV.
	NewService(testConfig(dir)).Load(context.Background())

	// Drop the CSV; a fresh service must come up from the parquet cache.
	if err := os.Remove(filepath.Join(dir, "games.csv")); err != nil {
		t.Fatalf("remove csv: %v", err)
	}

	svc := NewService(testConfig(dir))
	snap := svc.Load(context.Background())
	if len(snap.Games) != 2 {
		t.Fatalf("expected 2 rows from parquet cache, got %d", len(snap.Games))
	}
	if snap.Source != filepath.Join(dir, "games.parquet") {
		t.Fatalf("expected parquet source, got %q", snap.Source)
	}

	portal := snap.Games[0]
	if portal.Name != "Portal" || portal.UserScore == nil || *portal.UserScore != 7.6 {
		t.Fatalf("parquet roundtrip lost data: %+v", portal)
	}
}

func TestServiceKeepsYearsForSingleYearParquet(t *testing.T) {
	dir := t.TempDir()

	// A legitimate single-year cache with no CSV next to it: the staleness
	// check re-derives years, which must recover them from the stored dates.
	d1 := time.Date(2020, time.March, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2020, time.July, 9, 0, 0, 0, 0, time.UTC)
	y := 2020
	games := []models.Game{
		{AppID: 1, Name: "Only", ReleaseDate: &d1, ReleaseYear: &y, Price: fptr(9.99), PrimaryGenre: "Action"},
		{AppID: 2, Name: "Other", ReleaseDate: &d2, ReleaseYear: &y, Price: fptr(4.99), PrimaryGenre: "Indie"},
	}
	if err := WriteParquetFile(filepath.Join(dir, "games.parquet"), games); err != nil {
		t.Fatalf("write parquet: %v", err)
	}

	snap := NewService(testConfig(dir)).Load(context.Background())
	if len(snap.Games) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(snap.Games))
	}
	for _, g := range snap.Games {
		if g.ReleaseYear == nil || *g.ReleaseYear != 2020 {
			t.Fatalf("row %q lost its release year: %v", g.Name, g.ReleaseYear)
		}
	}
}

func TestServiceEmptyWithoutSources(t *testing.T) {
	svc := NewService(testConfig(t.TempDir()))
	snap := svc.Load(context.Background())
	if !snap.Empty() {
		t.Fatalf("expected empty snapshot, got %d rows", len(snap.Games))
	}
	if snap.Source != "empty" {
		t.Fatalf("expected empty source, got %q", snap.Source)
	}
}

func TestSmallCSVBeatsParquetCache(t *testing.T) {
	dir := t.TempDir()
	writeSampleCSV(t, dir)
	NewService(testConfig(dir)).Load(context.Background())

	small := "AppID,Name,Release date,Price\n1,Only One,\"Feb 2, 2020\",1.99\n"
	if err := os.WriteFile(filepath.Join(dir, "games_small.csv"), []byte(small), 0o644); err != nil {
		t.Fatalf("write small csv: %v", err)
	}

	snap := NewService(testConfig(dir)).Load(context.Background())
	if len(snap.Games) != 1 || snap.Games[0].Name != "Only One" {
		t.Fatalf("expected the small csv to win, got %d rows from %q", len(snap.Games), snap.Source)
	}
}
