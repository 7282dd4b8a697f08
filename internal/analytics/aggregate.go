package analytics

import (
	"math"
	"math/rand"
	"sort"
	"strings"

	"github.com/zssl-sudo/projeto-steam-analitics/internal/models"
)

// Rendering degradation thresholds for the scatter endpoint.
const (
	maxScatterPoints = 8_000
	detailFullMax    = 2_000
	detailMinimalMax = 10_000
	heatmapThreshold = 30_000
	heatmapBins      = 40

	topPublisherCount = 15
	boxplotGenreCount = 10
	trendBoardSize    = 5
)

// Scatter detail levels, from richest to bare coordinates.
const (
	DetailFull    = "full"
	DetailMinimal = "minimal"
	DetailNone    = "none"
)

// Scatter modes.
const (
	ModePoints  = "points"
	ModeHeatmap = "heatmap"
)

// Summary carries the KPI card values. Aggregates over an empty or all-null
// column report 0.
type Summary struct {
	Games         int     `json:"games"`
	FreeSharePct  float64 `json:"free_share_pct"`
	MedianPrice   float64 `json:"median_price"`
	MeanUserScore float64 `json:"mean_user_score"`
	MedianOwners  float64 `json:"median_owners"`
}

// Summarize computes the KPI cards over an already-filtered subset.
func Summarize(games []models.Game) Summary {
	s := Summary{Games: len(games)}
	if len(games) == 0 {
		return s
	}

	var free int
	var prices, scores, owners []float64
	for _, g := range games {
		if g.IsFree {
			free++
		}
		if g.Price != nil {
			prices = append(prices, *g.Price)
		}
		if g.UserScore != nil {
			scores = append(scores, *g.UserScore)
		}
		if g.OwnersMid != nil {
			owners = append(owners, *g.OwnersMid)
		}
	}

	s.FreeSharePct = float64(free) / float64(len(games)) * 100
	s.MedianPrice = median(prices)
	s.MeanUserScore = mean(scores)
	s.MedianOwners = median(owners)
	return s
}

// YearStat is one bar of the releases-by-year chart: release count plus the
// average user score of that year's releases.
type YearStat struct {
	Year          int      `json:"year"`
	Releases      int      `json:"releases"`
	UserScoreMean *float64 `json:"user_score_mean,omitempty"`
}

// ReleasesByYear groups the filtered subset by release year.
func ReleasesByYear(games []models.Game) []YearStat {
	type acc struct {
		releases int
		scoreSum float64
		scoreN   int
	}
	byYear := make(map[int]*acc)
	for _, g := range games {
		if g.ReleaseYear == nil {
			continue
		}
		a := byYear[*g.ReleaseYear]
		if a == nil {
			a = &acc{}
			byYear[*g.ReleaseYear] = a
		}
		a.releases++
		if g.UserScore != nil {
			a.scoreSum += *g.UserScore
			a.scoreN++
		}
	}

	stats := make([]YearStat, 0, len(byYear))
	for year, a := range byYear {
		stat := YearStat{Year: year, Releases: a.releases}
		if a.scoreN > 0 {
			m := a.scoreSum / float64(a.scoreN)
			stat.UserScoreMean = &m
		}
		stats = append(stats, stat)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Year < stats[j].Year })
	return stats
}

// ScatterPoint is one game in the price-vs-owners chart. Fields beyond the
// coordinates are populated according to the detail level.
type ScatterPoint struct {
	AppID           int64    `json:"app_id"`
	Name            string   `json:"name,omitempty"`
	Price           float64  `json:"price"`
	OwnersMid       float64  `json:"owners_mid"`
	PrimaryGenre    string   `json:"primary_genre,omitempty"`
	Publishers      string   `json:"publishers,omitempty"`
	UserScore       *float64 `json:"user_score,omitempty"`
	Recommendations int64    `json:"recommendations,omitempty"`
}

// HeatCell is one bucket of the binned fallback used when the selection is
// too large to ship as points.
type HeatCell struct {
	PriceLo  float64 `json:"price_lo"`
	PriceHi  float64 `json:"price_hi"`
	OwnersLo float64 `json:"owners_lo"`
	OwnersHi float64 `json:"owners_hi"`
	Count    int     `json:"count"`
}

// ScatterResult is the price-vs-owners payload with its degradation
// decisions spelled out for the client.
type ScatterResult struct {
	Mode    string         `json:"mode"`
	Detail  string         `json:"detail"`
	Total   int            `json:"total"`
	Sampled bool           `json:"sampled"`
	Relaxed bool           `json:"relaxed"`
	Points  []ScatterPoint `json:"points,omitempty"`
	Cells   []HeatCell     `json:"cells,omitempty"`
}

// PriceVsOwners builds the scatter payload. It takes the unfiltered rows so
// it can relax score and genre filters when the selection comes back empty.
func PriceVsOwners(all []models.Game, f Filters) ScatterResult {
	rows := scatterRows(Apply(all, f))

	relaxed := false
	if len(rows) == 0 {
		loose := f
		loose.MinScore = 0
		loose.Genres = nil
		rows = scatterRows(Apply(all, loose))
		relaxed = len(rows) > 0
	}

	total := len(rows)
	if total > heatmapThreshold {
		return ScatterResult{
			Mode:    ModeHeatmap,
			Detail:  DetailNone,
			Total:   total,
			Relaxed: relaxed,
			Cells:   binHeatmap(rows),
		}
	}

	sampled := false
	if total > maxScatterPoints {
		rows = sampleRows(rows, maxScatterPoints)
		sampled = true
	}

	detail := DetailFull
	switch {
	case len(rows) > detailMinimalMax:
		detail = DetailNone
	case len(rows) > detailFullMax:
		detail = DetailMinimal
	}

	points := make([]ScatterPoint, len(rows))
	for i, g := range rows {
		p := ScatterPoint{
			AppID:     g.AppID,
			Price:     *g.Price,
			OwnersMid: *g.OwnersMid,
		}
		if detail != DetailNone {
			p.Name = g.Name
			p.PrimaryGenre = g.PrimaryGenre
			p.Recommendations = g.Recommendations
		}
		if detail == DetailFull {
			p.Publishers = g.Publishers
			p.UserScore = g.UserScore
		}
		points[i] = p
	}

	return ScatterResult{
		Mode:    ModePoints,
		Detail:  detail,
		Total:   total,
		Sampled: sampled,
		Relaxed: relaxed,
		Points:  points,
	}
}

// scatterRows keeps rows with a known price and a positive owners midpoint.
func scatterRows(games []models.Game) []models.Game {
	out := make([]models.Game, 0, len(games))
	for _, g := range games {
		if g.Price == nil || g.OwnersMid == nil || *g.OwnersMid <= 0 {
			continue
		}
		out = append(out, g)
	}
	return out
}

// sampleRows takes a deterministic sample so repeated requests see the same
// picture.
func sampleRows(games []models.Game, n int) []models.Game {
	r := rand.New(rand.NewSource(42))
	perm := r.Perm(len(games))
	out := make([]models.Game, n)
	for i := 0; i < n; i++ {
		out[i] = games[perm[i]]
	}
	return out
}

func binHeatmap(games []models.Game) []HeatCell {
	priceLo, priceHi := math.Inf(1), math.Inf(-1)
	ownersLo, ownersHi := math.Inf(1), math.Inf(-1)
	for _, g := range games {
		priceLo = math.Min(priceLo, *g.Price)
		priceHi = math.Max(priceHi, *g.Price)
		ownersLo = math.Min(ownersLo, *g.OwnersMid)
		ownersHi = math.Max(ownersHi, *g.OwnersMid)
	}

	priceStep := (priceHi - priceLo) / heatmapBins
	ownersStep := (ownersHi - ownersLo) / heatmapBins
	if priceStep == 0 {
		priceStep = 1
	}
	if ownersStep == 0 {
		ownersStep = 1
	}

	counts := make(map[[2]int]int)
	for _, g := range games {
		px := int((*g.Price - priceLo) / priceStep)
		oy := int((*g.OwnersMid - ownersLo) / ownersStep)
		if px >= heatmapBins {
			px = heatmapBins - 1
		}
		if oy >= heatmapBins {
			oy = heatmapBins - 1
		}
		counts[[2]int{px, oy}]++
	}

	cells := make([]HeatCell, 0, len(counts))
	for key, count := range counts {
		cells = append(cells, HeatCell{
			PriceLo:  priceLo + float64(key[0])*priceStep,
			PriceHi:  priceLo + float64(key[0]+1)*priceStep,
			OwnersLo: ownersLo + float64(key[1])*ownersStep,
			OwnersHi: ownersLo + float64(key[1]+1)*ownersStep,
			Count:    count,
		})
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].PriceLo != cells[j].PriceLo {
			return cells[i].PriceLo < cells[j].PriceLo
		}
		return cells[i].OwnersLo < cells[j].OwnersLo
	})
	return cells
}

// GenrePriceStats summarizes the price distribution of one genre.
type GenrePriceStats struct {
	Genre  string  `json:"genre"`
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// PriceByGenre returns price quantiles for the ten most common primary
// genres of the filtered subset, ordered by genre size.
func PriceByGenre(games []models.Game) []GenrePriceStats {
	counts := make(map[string]int)
	prices := make(map[string][]float64)
	for _, g := range games {
		counts[g.PrimaryGenre]++
		if g.Price != nil {
			prices[g.PrimaryGenre] = append(prices[g.PrimaryGenre], *g.Price)
		}
	}

	genres := make([]string, 0, len(counts))
	for genre := range counts {
		genres = append(genres, genre)
	}
	sort.Slice(genres, func(i, j int) bool {
		if counts[genres[i]] != counts[genres[j]] {
			return counts[genres[i]] > counts[genres[j]]
		}
		return genres[i] < genres[j]
	})
	if len(genres) > boxplotGenreCount {
		genres = genres[:boxplotGenreCount]
	}

	stats := make([]GenrePriceStats, 0, len(genres))
	for _, genre := range genres {
		p := prices[genre]
		sort.Float64s(p)
		stats = append(stats, GenrePriceStats{
			Genre:  genre,
			Count:  counts[genre],
			Min:    quantile(p, 0),
			Q1:     quantile(p, 0.25),
			Median: quantile(p, 0.5),
			Q3:     quantile(p, 0.75),
			Max:    quantile(p, 1),
		})
	}
	return stats
}

// PublisherStat is one bar of the top-publishers chart.
type PublisherStat struct {
	Publisher   string  `json:"publisher"`
	OwnersTotal float64 `json:"owners_total"`
	Games       int     `json:"games"`
}

// TopPublishers ranks publishers by summed owners midpoint. Only the first
// name of a comma-separated publisher list is credited.
func TopPublishers(games []models.Game) []PublisherStat {
	owners := make(map[string]float64)
	counts := make(map[string]int)
	for _, g := range games {
		publisher := strings.TrimSpace(strings.SplitN(g.Publishers, ",", 2)[0])
		if publisher == "" {
			continue
		}
		counts[publisher]++
		if g.OwnersMid != nil {
			owners[publisher] += *g.OwnersMid
		}
	}

	stats := make([]PublisherStat, 0, len(counts))
	for publisher, count := range counts {
		stats = append(stats, PublisherStat{
			Publisher:   publisher,
			OwnersTotal: owners[publisher],
			Games:       count,
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].OwnersTotal != stats[j].OwnersTotal {
			return stats[i].OwnersTotal > stats[j].OwnersTotal
		}
		return stats[i].Publisher < stats[j].Publisher
	})
	if len(stats) > topPublisherCount {
		stats = stats[:topPublisherCount]
	}
	return stats
}

// GenreTrend is one row of the emerging/declining genres board. Slope is the
// least-squares trend of yearly release counts across the visible window.
type GenreTrend struct {
	Genre         string  `json:"genre"`
	Slope         float64 `json:"slope"`
	FirstReleases int     `json:"first_releases"`
	LastReleases  int     `json:"last_releases"`
	Total         int     `json:"total"`
}

// TrendBoard pairs the strongest rising and falling genres.
type TrendBoard struct {
	YearMin   int          `json:"year_min"`
	YearMax   int          `json:"year_max"`
	Emerging  []GenreTrend `json:"emerging"`
	Declining []GenreTrend `json:"declining"`
}

// TrendingGenres fits a linear trend to each genre's yearly release counts.
// Genres need at least three active years to qualify; gap years count as
// zero releases.
func TrendingGenres(games []models.Game) TrendBoard {
	yearMin, yearMax := 0, 0
	byGenreYear := make(map[string]map[int]int)
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
		years := byGenreYear[g.PrimaryGenre]
		if years == nil {
			years = make(map[int]int)
			byGenreYear[g.PrimaryGenre] = years
		}
		years[y]++
	}

	board := TrendBoard{
		YearMin:   yearMin,
		YearMax:   yearMax,
		Emerging:  []GenreTrend{},
		Declining: []GenreTrend{},
	}
	if yearMin == 0 || yearMax == yearMin {
		return board
	}

	var trends []GenreTrend
	for genre, years := range byGenreYear {
		if len(years) < 3 {
			continue
		}
		trend := GenreTrend{
			Genre:         genre,
			Slope:         slope(years, yearMin, yearMax),
			FirstReleases: years[yearMin],
			LastReleases:  years[yearMax],
		}
		for _, n := range years {
			trend.Total += n
		}
		trends = append(trends, trend)
	}

	sort.Slice(trends, func(i, j int) bool {
		if trends[i].Slope != trends[j].Slope {
			return trends[i].Slope > trends[j].Slope
		}
		return trends[i].Genre < trends[j].Genre
	})
	for _, t := range trends {
		if t.Slope > 0 && len(board.Emerging) < trendBoardSize {
			board.Emerging = append(board.Emerging, t)
		}
	}
	for i := len(trends) - 1; i >= 0; i-- {
		if trends[i].Slope < 0 && len(board.Declining) < trendBoardSize {
			board.Declining = append(board.Declining, trends[i])
		}
	}
	return board
}

// slope is the least-squares slope of release counts over [yearMin, yearMax]
// with missing years counted as zero.
func slope(years map[int]int, yearMin, yearMax int) float64 {
	n := float64(yearMax - yearMin + 1)
	xMean := float64(yearMin+yearMax) / 2

	var ySum float64
	for y := yearMin; y <= yearMax; y++ {
		ySum += float64(years[y])
	}
	yMean := ySum / n

	var num, den float64
	for y := yearMin; y <= yearMax; y++ {
		dx := float64(y) - xMean
		num += dx * (float64(years[y]) - yMean)
		den += dx * dx
	}
	if den == 0 {
		return 0
	}
	return num / den
}

// FilterOptions mirrors the sidebar controls: slider bounds, defaults and
// whether a control is meaningful for the loaded data.
type FilterOptions struct {
	YearMin          int  `json:"year_min"`
	YearMax          int  `json:"year_max"`
	YearDefaultFrom  int  `json:"year_default_from"`
	YearFilterUsable bool `json:"year_filter_usable"`

	PriceMin          float64 `json:"price_min"`
	PriceMax          float64 `json:"price_max"`
	PriceFilterUsable bool    `json:"price_filter_usable"`

	Platforms []string `json:"platforms"`
	Genres    []string `json:"genres"`
}

const topGenreOptions = 30

// Options derives the filter controls from the snapshot. The genre list is
// capped to the thirty most common genres.
func Options(games []models.Game, dim []models.GenreCount, yearsBackDefault int) FilterOptions {
	var opts FilterOptions

	for _, g := range games {
		if g.ReleaseYear != nil {
			y := *g.ReleaseYear
			if opts.YearMin == 0 || y < opts.YearMin {
				opts.YearMin = y
			}
			if y > opts.YearMax {
				opts.YearMax = y
			}
		}
	}
	opts.YearFilterUsable = opts.YearMin < opts.YearMax
	opts.YearDefaultFrom = opts.YearMin
	if yearsBackDefault > 0 && opts.YearMax-yearsBackDefault+1 > opts.YearMin {
		opts.YearDefaultFrom = opts.YearMax - yearsBackDefault + 1
	}

	first := true
	for _, g := range games {
		if g.Price == nil || math.IsInf(*g.Price, 0) || math.IsNaN(*g.Price) {
			continue
		}
		if first {
			opts.PriceMin, opts.PriceMax = *g.Price, *g.Price
			first = false
			continue
		}
		opts.PriceMin = math.Min(opts.PriceMin, *g.Price)
		opts.PriceMax = math.Max(opts.PriceMax, *g.Price)
	}
	opts.PriceFilterUsable = opts.PriceMin < opts.PriceMax

	opts.Platforms = availablePlatforms(games)

	limit := topGenreOptions
	if len(dim) < limit {
		limit = len(dim)
	}
	opts.Genres = make([]string, 0, limit)
	for _, gc := range dim[:limit] {
		opts.Genres = append(opts.Genres, gc.Genre)
	}
	return opts
}

func availablePlatforms(games []models.Game) []string {
	var windows, mac, linux bool
	for _, g := range games {
		windows = windows || g.Windows
		mac = mac || g.Mac
		linux = linux || g.Linux
	}

	platforms := []string{}
	if windows {
		platforms = append(platforms, "windows")
	}
	if mac {
		platforms = append(platforms, "mac")
	}
	if linux {
		platforms = append(platforms, "linux")
	}
	return platforms
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func median(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	return quantile(sorted, 0.5)
}

// quantile uses linear interpolation over an already-sorted slice.
func quantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	pos := q * float64(n-1)
	lo := int(math.Floor(pos))
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[lo+1]*frac
}
