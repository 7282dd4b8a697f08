package dataset

import (
	"sort"
	"strings"
	"time"

	"github.com/zssl-sudo/projeto-steam-analitics/internal/models"
)

// Date layouts seen across the Steam dumps, tried in order before falling
// back to scraping a bare year.
var dateLayouts = []string{
	"Jan 2, 2006",
	"Jan 02, 2006",
	"2 Jan, 2006",
	"02 Jan, 2006",
	"2006-01-02",
	"01/02/2006",
	"Jan 2006",
	"January 2, 2006",
	"2006",
}

// Snapshot is the prepared, immutable dataset the rest of the service reads.
type Snapshot struct {
	Games    []models.Game
	Genres   []models.GenreCount
	Source   string
	YearMin  int
	YearMax  int
	LoadedAt time.Time
}

// Empty reports whether the snapshot carries no rows.
func (s *Snapshot) Empty() bool {
	return s == nil || len(s.Games) == 0
}

// Prepare runs the full cleaning pass over raw records: deduplication,
// year derivation, derived columns, the free/zero-metacritic drop and the
// lookback cut, then builds the genre dimension.
func Prepare(games []models.Game, yearsBack int) *Snapshot {
	games = dedupe(games)

	for i := range games {
		deriveRow(&games[i])
	}

	games = dropFreeZeroMetacritic(games)
	games, yearMin, yearMax := applyLookback(games, yearsBack)

	return &Snapshot{
		Games:    games,
		Genres:   genreDimension(games),
		YearMin:  yearMin,
		YearMax:  yearMax,
		LoadedAt: time.Now(),
	}
}

// dedupe drops rows without a name and keeps the first row per AppID. Rows
// with a missing AppID all share key 0 and collapse to one, which also keeps
// the store's primary key unique.
func dedupe(games []models.Game) []models.Game {
	seen := make(map[int64]bool, len(games))
	out := games[:0]
	for _, g := range games {
		if g.Name == "" {
			continue
		}
		if seen[g.AppID] {
			continue
		}
		seen[g.AppID] = true
		out = append(out, g)
	}
	return out
}

func deriveRow(g *models.Game) {
	if g.ReleaseYear == nil {
		deriveReleaseYear(g)
	}

	if g.OwnersMid == nil && g.EstimatedOwners != "" {
		if min, max, mid, ok := ParseOwners(g.EstimatedOwners); ok {
			g.OwnersMin, g.OwnersMax, g.OwnersMid = &min, &max, &mid
		}
	}

	g.IsFree = g.Price == nil || *g.Price <= 0

	if g.SentimentRatio == nil {
		if denom := g.Positive + g.Negative; denom > 0 {
			ratio := float64(g.Positive) / float64(denom)
			g.SentimentRatio = &ratio
		}
	}

	if g.PrimaryGenre == "" {
		g.PrimaryGenre = "Unknown"
		if len(g.Genres) > 0 {
			g.PrimaryGenre = g.Genres[0]
		}
	}
}

// deriveReleaseYear fills ReleaseDate/ReleaseYear from the raw date cell,
// falling back to an already-parsed release date when the raw cell is gone
// (cache loads do not carry it).
func deriveReleaseYear(g *models.Game) {
	raw := strings.TrimSpace(g.ReleaseDateRaw)
	if raw == "" {
		if g.ReleaseDate != nil {
			if y := g.ReleaseDate.Year(); y >= 1970 && y <= 2100 {
				g.ReleaseYear = &y
			}
		}
		return
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			y := t.Year()
			if y >= 1970 && y <= 2100 {
				g.ReleaseDate = &t
				g.ReleaseYear = &y
				return
			}
		}
	}

	if y, ok := ExtractYear(raw); ok {
		g.ReleaseYear = &y
	}
}

// RederiveYears re-runs year derivation over a loaded snapshot. Used when a
// stale cache comes back with too few distinct years to be plausible.
func RederiveYears(games []models.Game) {
	for i := range games {
		games[i].ReleaseYear = nil
		deriveReleaseYear(&games[i])
	}
}

// DistinctYears counts the unique known release years.
func DistinctYears(games []models.Game) int {
	years := make(map[int]bool)
	for _, g := range games {
		if g.ReleaseYear != nil {
			years[*g.ReleaseYear] = true
		}
	}
	return len(years)
}

// dropFreeZeroMetacritic removes free games whose Metacritic score is
// exactly 0. A missing score never matches.
func dropFreeZeroMetacritic(games []models.Game) []models.Game {
	out := games[:0]
	for _, g := range games {
		if g.IsFree && g.MetacriticScore != nil && *g.MetacriticScore == 0 {
			continue
		}
		out = append(out, g)
	}
	return out
}

// applyLookback keeps only the last yearsBack years of releases. Rows with
// an unknown year fall outside any band and are dropped by the cut.
func applyLookback(games []models.Game, yearsBack int) ([]models.Game, int, int) {
	yearMin, yearMax := 0, 0
	for _, g := range games {
		if g.ReleaseYear == nil {
			continue
		}
		y := *g.ReleaseYear
		if yearMin == 0 || y < yearMin {
			yearMin = y
		}
		if y > yearMax {
			yearMax = y
		}
	}
	if yearMax == 0 || yearsBack <= 0 {
		return games, yearMin, yearMax
	}

	cutoff := yearMax - yearsBack + 1
	if cutoff < yearMin {
		cutoff = yearMin
	}

	out := games[:0]
	for _, g := range games {
		if g.ReleaseYear == nil {
			continue
		}
		if y := *g.ReleaseYear; y >= cutoff && y <= yearMax {
			out = append(out, g)
		}
	}
	return out, cutoff, yearMax
}

// genreDimension explodes the genre lists into (genre, count) rows sorted by
// count descending, ties alphabetical.
func genreDimension(games []models.Game) []models.GenreCount {
	counts := make(map[string]int)
	for _, g := range games {
		for _, genre := range g.Genres {
			genre = strings.TrimSpace(genre)
			if genre != "" {
				counts[genre]++
			}
		}
	}

	dim := make([]models.GenreCount, 0, len(counts))
	for genre, n := range counts {
		dim = append(dim, models.GenreCount{Genre: genre, N: n})
	}
	sort.Slice(dim, func(i, j int) bool {
		if dim[i].N != dim[j].N {
			return dim[i].N > dim[j].N
		}
		return dim[i].Genre < dim[j].Genre
	})
	return dim
}
