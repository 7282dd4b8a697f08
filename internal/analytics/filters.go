package analytics

import (
	"strings"

	"github.com/zssl-sudo/projeto-steam-analitics/internal/models"
)

// Filters is the set of global dashboard filters. Nil bounds are open.
type Filters struct {
	YearFrom *int
	YearTo   *int

	PriceMin *float64
	PriceMax *float64

	// Platform names ("windows", "mac", "linux"); a game matches when ANY
	// selected platform flag is set. Empty means all platforms.
	Platforms []string

	// Primary-genre whitelist. Empty means all genres.
	Genres []string

	// Minimum user score on the 0-10 scale; games with no score count as 0.
	MinScore float64
}

// Apply returns the subset of games matching the filters. Rows with an
// unknown release year count as year 0, so any lower bound excludes them;
// rows with an unknown price are kept by the price band.
func Apply(games []models.Game, f Filters) []models.Game {
	genres := toSet(f.Genres)
	platforms := toSet(f.Platforms)

	out := make([]models.Game, 0, len(games))
	for _, g := range games {
		if !matchYear(g, f) {
			continue
		}
		if !matchPrice(g, f) {
			continue
		}
		if len(platforms) > 0 && !matchPlatform(g, platforms) {
			continue
		}
		if len(genres) > 0 && !genres[strings.ToLower(g.PrimaryGenre)] {
			continue
		}
		score := 0.0
		if g.UserScore != nil {
			score = *g.UserScore
		}
		if score < f.MinScore {
			continue
		}
		out = append(out, g)
	}
	return out
}

func matchYear(g models.Game, f Filters) bool {
	if f.YearFrom == nil && f.YearTo == nil {
		return true
	}
	year := 0
	if g.ReleaseYear != nil {
		year = *g.ReleaseYear
	}
	if f.YearFrom != nil && year < *f.YearFrom {
		return false
	}
	if f.YearTo != nil && year > *f.YearTo {
		return false
	}
	return true
}

func matchPrice(g models.Game, f Filters) bool {
	if g.Price == nil {
		return true
	}
	if f.PriceMin != nil && *g.Price < *f.PriceMin {
		return false
	}
	if f.PriceMax != nil && *g.Price > *f.PriceMax {
		return false
	}
	return true
}

func matchPlatform(g models.Game, platforms map[string]bool) bool {
	return (platforms["windows"] && g.Windows) ||
		(platforms["mac"] && g.Mac) ||
		(platforms["linux"] && g.Linux)
}

func toSet(items []string) map[string]bool {
	if len(items) == 0 {
		return nil
	}
	set := make(map[string]bool, len(items))
	for _, item := range items {
		item = strings.ToLower(strings.TrimSpace(item))
		if item != "" {
			set[item] = true
		}
	}
	return set
}
