package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/zssl-sudo/projeto-steam-analitics/internal/models"
)

const lfsPointerMarker = "https://git-lfs.github.com/spec/v1"

// Column aliases, checked in order. The first matching header wins, so an
// explicit year column beats a full date, which beats scraping the name.
var dateColumns = []string{
	"Year", "year",
	"Release date", "Release Date", "release_date", "ReleaseDate",
	"Date", "date",
	"Name", "name",
}

var columnAliases = map[string][]string{
	"appid":      {"AppID", "appid", "app_id", "ID", "id"},
	"name":       {"Name", "name", "Title", "title"},
	"price":      {"Price", "price"},
	"owners":     {"Estimated owners", "estimated_owners", "Owners", "owners"},
	"windows":    {"Windows", "windows"},
	"mac":        {"Mac", "mac"},
	"linux":      {"Linux", "linux"},
	"genres":     {"Genres", "genres"},
	"publishers": {"Publishers", "publishers", "Publisher", "publisher"},
	"positive":   {"Positive", "positive"},
	"negative":   {"Negative", "negative"},
	"metacritic": {"Metacritic score", "metacritic_score", "Metacritic", "metacritic"},
	"userscore":  {"User score", "user_score"},
	"recs":       {"Recommendations", "recommendations"},
	"peakccu":    {"Peak CCU", "peak_ccu"},
	"reqage":     {"Required age", "required_age"},
	"categories": {"Categories", "categories"},
	"tags":       {"Tags", "tags"},
	"languages":  {"Supported languages", "supported_languages"},
}

type columnIndex map[string]int

func indexColumns(header []string) columnIndex {
	byName := make(map[string]int, len(header))
	for i, h := range header {
		byName[strings.TrimSpace(h)] = i
	}

	idx := make(columnIndex, len(columnAliases)+1)
	for key, aliases := range columnAliases {
		for _, alias := range aliases {
			if i, ok := byName[alias]; ok {
				idx[key] = i
				break
			}
		}
	}
	for _, candidate := range dateColumns {
		if i, ok := byName[candidate]; ok {
			idx["date"] = i
			break
		}
	}
	return idx
}

func (idx columnIndex) cell(record []string, key string) string {
	i, ok := idx[key]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}

// IsLFSPointer reports whether the file at path is a Git LFS pointer stub
// rather than real data.
func IsLFSPointer(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	head := make([]byte, 256)
	n, _ := f.Read(head)
	return bytes.Contains(head[:n], []byte(lfsPointerMarker))
}

// ReadCSVFile decodes a games CSV from disk.
func ReadCSVFile(path string) ([]models.Game, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV decodes a games CSV stream into raw records. Cell-level problems
// never fail the read; bad cells coerce to their null/zero value.
func ReadCSV(r io.Reader) ([]models.Game, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	idx := indexColumns(header)

	var games []models.Game
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv record: %w", err)
		}
		games = append(games, decodeRecord(idx, record))
	}
	return games, nil
}

func decodeRecord(idx columnIndex, record []string) models.Game {
	g := models.Game{
		AppID:              parseIntCell(idx.cell(record, "appid")),
		Name:               strings.TrimSpace(idx.cell(record, "name")),
		Price:              parseFloatCell(idx.cell(record, "price")),
		EstimatedOwners:    strings.TrimSpace(idx.cell(record, "owners")),
		Windows:            ParseFlag(idx.cell(record, "windows")),
		Mac:                ParseFlag(idx.cell(record, "mac")),
		Linux:              ParseFlag(idx.cell(record, "linux")),
		Genres:             ParseList(idx.cell(record, "genres")),
		Publishers:         strings.TrimSpace(idx.cell(record, "publishers")),
		Positive:           parseIntCell(idx.cell(record, "positive")),
		Negative:           parseIntCell(idx.cell(record, "negative")),
		MetacriticScore:    parseFloatCell(idx.cell(record, "metacritic")),
		UserScore:          CoerceUserScore(idx.cell(record, "userscore")),
		Recommendations:    parseIntCell(idx.cell(record, "recs")),
		PeakCCU:            parseIntCell(idx.cell(record, "peakccu")),
		RequiredAge:        int(parseIntCell(idx.cell(record, "reqage"))),
		Categories:         ParseList(idx.cell(record, "categories")),
		Tags:               ParseList(idx.cell(record, "tags")),
		SupportedLanguages: ParseList(idx.cell(record, "languages")),
		ReleaseDateRaw:     strings.TrimSpace(idx.cell(record, "date")),
	}
	return g
}
