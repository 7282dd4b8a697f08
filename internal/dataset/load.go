package dataset

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/zssl-sudo/projeto-steam-analitics/internal/database"
	"github.com/zssl-sudo/projeto-steam-analitics/internal/metrics"
	"github.com/zssl-sudo/projeto-steam-analitics/internal/models"
)

// A trimmed games_small.csv is preferred over everything else so deployments
// can ship a light dataset; the parquet cache is only trusted otherwise.
func csvCandidates(dataDir string) []string {
	return []string{
		filepath.Join(dataDir, "games_small.csv"),
		"games_small.csv",
		filepath.Join(dataDir, "games.csv"),
		"games.csv",
	}
}

func parquetCandidates(dataDir string) []string {
	return []string{
		filepath.Join(dataDir, "games.parquet"),
		"games.parquet",
	}
}

func findFirst(paths []string) string {
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// reload resolves the dataset source and rebuilds the snapshot. The order is:
// small CSV, parquet cache, full CSV, remote DATA_URL, database snapshot,
// empty. Every failure degrades to the next source.
func (s *Service) reload(ctx context.Context) *Snapshot {
	started := time.Now()
	snap := s.resolve(ctx)
	metrics.ObserveDatasetLoad(time.Since(started), len(snap.Games))

	slog.Info("dataset loaded",
		slog.String("source", snap.Source),
		slog.Int("rows", len(snap.Games)),
		slog.Int("year_min", snap.YearMin),
		slog.Int("year_max", snap.YearMax),
	)
	return snap
}

func (s *Service) resolve(ctx context.Context) *Snapshot {
	csvPath := findFirst(csvCandidates(s.dataDir))
	if csvPath != "" && IsLFSPointer(csvPath) {
		slog.Warn("csv is a git-lfs pointer, ignoring", slog.String("path", csvPath))
		csvPath = ""
	}

	parquetPath := findFirst(parquetCandidates(s.dataDir))
	if csvPath != "" && strings.HasPrefix(strings.ToLower(filepath.Base(csvPath)), "games_small") {
		parquetPath = ""
	}

	if parquetPath != "" {
		if snap := s.fromParquet(parquetPath, csvPath); snap != nil {
			return snap
		}
	}

	if csvPath != "" {
		if snap := s.fromCSV(csvPath); snap != nil {
			return snap
		}
	}

	if s.dataURL != "" {
		if snap := s.fromRemote(ctx, s.dataURL); snap != nil {
			return snap
		}
	}

	if games, err := database.LoadSnapshot(); err == nil && len(games) > 0 {
		snap := Prepare(games, s.yearsBack)
		snap.Source = "database"
		return snap
	}

	slog.Warn("no dataset found; add data/games.parquet or data/games.csv, or set DATA_URL")
	return &Snapshot{Source: "empty", LoadedAt: time.Now()}
}

func (s *Service) fromParquet(parquetPath, csvPath string) *Snapshot {
	games, err := ReadParquetFile(parquetPath)
	if err != nil {
		slog.Warn("parquet cache unreadable", slog.String("path", parquetPath), slog.Any("error", err))
		return nil
	}

	// A cache with fewer than two distinct years is stale or was written
	// from a broken date column; rebuild from CSV when one is around.
	if DistinctYears(games) < 2 {
		RederiveYears(games)
	}
	if DistinctYears(games) < 2 && csvPath != "" {
		if snap := s.fromCSV(csvPath); snap != nil {
			return snap
		}
	}

	snap := Prepare(games, s.yearsBack)
	snap.Source = parquetPath
	return snap
}

func (s *Service) fromCSV(csvPath string) *Snapshot {
	games, err := ReadCSVFile(csvPath)
	if err != nil {
		slog.Warn("csv unreadable", slog.String("path", csvPath), slog.Any("error", err))
		return nil
	}

	snap := Prepare(games, s.yearsBack)
	snap.Source = csvPath
	s.persist(snap)
	return snap
}

func (s *Service) fromRemote(ctx context.Context, url string) *Snapshot {
	games, err := fetchRemote(ctx, url)
	if err != nil {
		slog.Warn("remote dataset fetch failed", slog.String("url", url), slog.Any("error", err))
		return nil
	}

	snap := Prepare(games, s.yearsBack)
	snap.Source = url
	s.persist(snap)
	return snap
}

// persist writes the prepared snapshot to the parquet cache and the database
// store. Both are side effects; failures are logged and ignored.
func (s *Service) persist(snap *Snapshot) {
	if snap.Empty() {
		return
	}
	target := parquetCandidates(s.dataDir)[0]
	if err := WriteParquetFile(target, snap.Games); err != nil {
		slog.Warn("parquet cache write failed", slog.String("path", target), slog.Any("error", err))
	}
	if err := database.SaveSnapshot(snap.Games); err != nil {
		slog.Warn("database snapshot write failed", slog.Any("error", err))
	}
}

func fetchRemote(ctx context.Context, url string) ([]models.Game, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	client := &http.Client{Timeout: 2 * time.Minute}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}

	if strings.HasSuffix(strings.ToLower(url), ".parquet") {
		// parquet needs random access; spool to a temp file first.
		tmp, err := os.CreateTemp("", "games-*.parquet")
		if err != nil {
			return nil, fmt.Errorf("spool remote parquet: %w", err)
		}
		defer os.Remove(tmp.Name())
		if _, err := io.Copy(tmp, resp.Body); err != nil {
			tmp.Close()
			return nil, fmt.Errorf("spool remote parquet: %w", err)
		}
		if err := tmp.Close(); err != nil {
			return nil, fmt.Errorf("spool remote parquet: %w", err)
		}
		return ReadParquetFile(tmp.Name())
	}

	return ReadCSV(resp.Body)
}
