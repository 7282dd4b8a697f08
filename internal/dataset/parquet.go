package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/zssl-sudo/projeto-steam-analitics/internal/models"
)

// parquetRow is the on-disk snapshot schema. Kept flat and explicit so the
// cache survives model changes that do not touch these columns.
type parquetRow struct {
	AppID           int64    `parquet:"app_id"`
	Name            string   `parquet:"name"`
	ReleaseDateMs   *int64   `parquet:"release_date_ms,optional"`
	ReleaseYear     *int32   `parquet:"release_year,optional"`
	Price           *float64 `parquet:"price,optional"`
	IsFree          bool     `parquet:"is_free"`
	Windows         bool     `parquet:"windows"`
	Mac             bool     `parquet:"mac"`
	Linux           bool     `parquet:"linux"`
	Genres          []string `parquet:"genres,list"`
	PrimaryGenre    string   `parquet:"primary_genre"`
	Publishers      string   `parquet:"publishers"`
	EstimatedOwners string   `parquet:"estimated_owners"`
	OwnersMin       *int64   `parquet:"owners_min,optional"`
	OwnersMax       *int64   `parquet:"owners_max,optional"`
	OwnersMid       *float64 `parquet:"owners_mid,optional"`
	Positive        int64    `parquet:"positive"`
	Negative        int64    `parquet:"negative"`
	SentimentRatio  *float64 `parquet:"sentiment_ratio,optional"`
	UserScore       *float64 `parquet:"user_score,optional"`
	MetacriticScore *float64 `parquet:"metacritic_score,optional"`
	Recommendations int64    `parquet:"recommendations"`
	PeakCCU         int64    `parquet:"peak_ccu"`
	RequiredAge     int32    `parquet:"required_age"`
}

func toParquetRow(g models.Game) parquetRow {
	row := parquetRow{
		AppID:           g.AppID,
		Name:            g.Name,
		Price:           g.Price,
		IsFree:          g.IsFree,
		Windows:         g.Windows,
		Mac:             g.Mac,
		Linux:           g.Linux,
		Genres:          g.Genres,
		PrimaryGenre:    g.PrimaryGenre,
		Publishers:      g.Publishers,
		EstimatedOwners: g.EstimatedOwners,
		OwnersMin:       g.OwnersMin,
		OwnersMax:       g.OwnersMax,
		OwnersMid:       g.OwnersMid,
		Positive:        g.Positive,
		Negative:        g.Negative,
		SentimentRatio:  g.SentimentRatio,
		UserScore:       g.UserScore,
		MetacriticScore: g.MetacriticScore,
		Recommendations: g.Recommendations,
		PeakCCU:         g.PeakCCU,
		RequiredAge:     int32(g.RequiredAge),
	}
	if g.ReleaseDate != nil {
		ms := g.ReleaseDate.UnixMilli()
		row.ReleaseDateMs = &ms
	}
	if g.ReleaseYear != nil {
		y := int32(*g.ReleaseYear)
		row.ReleaseYear = &y
	}
	return row
}

func fromParquetRow(row parquetRow) models.Game {
	g := models.Game{
		AppID:           row.AppID,
		Name:            row.Name,
		Price:           row.Price,
		IsFree:          row.IsFree,
		Windows:         row.Windows,
		Mac:             row.Mac,
		Linux:           row.Linux,
		Genres:          row.Genres,
		PrimaryGenre:    row.PrimaryGenre,
		Publishers:      row.Publishers,
		EstimatedOwners: row.EstimatedOwners,
		OwnersMin:       row.OwnersMin,
		OwnersMax:       row.OwnersMax,
		OwnersMid:       row.OwnersMid,
		Positive:        row.Positive,
		Negative:        row.Negative,
		SentimentRatio:  row.SentimentRatio,
		UserScore:       row.UserScore,
		MetacriticScore: row.MetacriticScore,
		Recommendations: row.Recommendations,
		PeakCCU:         row.PeakCCU,
		RequiredAge:     int(row.RequiredAge),
	}
	if row.ReleaseDateMs != nil {
		t := time.UnixMilli(*row.ReleaseDateMs).UTC()
		g.ReleaseDate = &t
	}
	if row.ReleaseYear != nil {
		y := int(*row.ReleaseYear)
		g.ReleaseYear = &y
	}
	return g
}

// ReadParquetFile loads a snapshot parquet file from disk.
func ReadParquetFile(path string) ([]models.Game, error) {
	rows, err := parquet.ReadFile[parquetRow](path)
	if err != nil {
		return nil, fmt.Errorf("read parquet %s: %w", path, err)
	}
	games := make([]models.Game, len(rows))
	for i, row := range rows {
		games[i] = fromParquetRow(row)
	}
	return games, nil
}

// WriteParquetFile writes the prepared rows as a snapshot parquet file,
// creating the parent directory if needed.
func WriteParquetFile(path string, games []models.Game) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create cache dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create parquet %s: %w", path, err)
	}

	rows := make([]parquetRow, len(games))
	for i, g := range games {
		rows[i] = toParquetRow(g)
	}

	w := parquet.NewGenericWriter[parquetRow](f)
	if _, err := w.Write(rows); err != nil {
		f.Close()
		return fmt.Errorf("write parquet rows: %w", err)
	}
	if err := w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("close parquet writer: %w", err)
	}
	return f.Close()
}
