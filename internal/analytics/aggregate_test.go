package analytics

import (
	"fmt"
	"math"
	"testing"

	"github.com/zssl-sudo/projeto-steam-analitics/internal/models"
)

func TestSummarize(t *testing.T) {
	games := []models.Game{
		{AppID: 1, Name: "A", IsFree: true, UserScore: fptr(8), OwnersMid: fptr(1000)},
		{AppID: 2, Name: "B", Price: fptr(10), UserScore: fptr(6), OwnersMid: fptr(3000)},
		{AppID: 3, Name: "C", Price: fptr(20), OwnersMid: fptr(2000)},
		{AppID: 4, Name: "D", Price: fptr(30)},
	}

	s := Summarize(games)
	if s.Games != 4 {
		t.Fatalf("expected 4 games, got %d", s.Games)
	}
	if s.FreeSharePct != 25 {
		t.Fatalf("expected free share 25, got %v", s.FreeSharePct)
	}
	if s.MedianPrice != 20 {
		t.Fatalf("expected median price 20, got %v", s.MedianPrice)
	}
	if s.MeanUserScore != 7 {
		t.Fatalf("expected mean score 7, got %v", s.MeanUserScore)
	}
	if s.MedianOwners != 2000 {
		t.Fatalf("expected median owners 2000, got %v", s.MedianOwners)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Games != 0 || s.MedianPrice != 0 || s.MeanUserScore != 0 {
		t.Fatalf("expected zeroed summary, got %+v", s)
	}
}

func TestReleasesByYear(t *testing.T) {
	games := []models.Game{
		{AppID: 1, ReleaseYear: iptr(2021), UserScore: fptr(8)},
		{AppID: 2, ReleaseYear: iptr(2021), UserScore: fptr(6)},
		{AppID: 3, ReleaseYear: iptr(2020)},
		{AppID: 4},
	}

	stats := ReleasesByYear(games)
	if len(stats) != 2 {
		t.Fatalf("expected 2 years, got %d", len(stats))
	}
	if stats[0].Year != 2020 || stats[1].Year != 2021 {
		t.Fatalf("expected ascending years, got %d, %d", stats[0].Year, stats[1].Year)
	}
	if stats[0].UserScoreMean != nil {
		t.Fatalf("expected nil mean for unscored year, got %v", *stats[0].UserScoreMean)
	}
	if stats[1].Releases != 2 || stats[1].UserScoreMean == nil || *stats[1].UserScoreMean != 7 {
		t.Fatalf("unexpected 2021 stat: %+v", stats[1])
	}
}

// scatterGames builds n rows with a price, a positive owners midpoint and a
// release year spread across the window.
func scatterGames(n int) []models.Game {
	games := make([]models.Game, n)
	for i := range games {
		games[i] = models.Game{
			AppID:        int64(i + 1),
			Name:         fmt.Sprintf("Game %d", i+1),
			ReleaseYear:  iptr(2015 + i%8),
			Price:        fptr(float64(i%60) + 0.99),
			OwnersMid:    fptr(float64(1000 * (i%50 + 1))),
			PrimaryGenre: "Action",
			UserScore:    fptr(float64(i%10) + 0.5),
		}
	}
	return games
}

func TestPriceVsOwnersFullDetail(t *testing.T) {
	res := PriceVsOwners(scatterGames(50), Filters{})
	if res.Mode != ModePoints || res.Detail != DetailFull {
		t.Fatalf("expected full points, got mode %q detail %q", res.Mode, res.Detail)
	}
	if res.Total != 50 || len(res.Points) != 50 {
		t.Fatalf("expected 50 points, got total %d len %d", res.Total, len(res.Points))
	}
	if res.Sampled || res.Relaxed {
		t.Fatalf("expected no degradation flags, got %+v", res)
	}
	p := res.Points[0]
	if p.Name == "" || p.UserScore == nil {
		t.Fatalf("expected rich point at full detail, got %+v", p)
	}
}

func TestPriceVsOwnersSkipsUnplottable(t *testing.T) {
	games := append(scatterGames(3),
		models.Game{AppID: 100, Name: "No price", OwnersMid: fptr(500)},
		models.Game{AppID: 101, Name: "No owners", Price: fptr(9.99)},
	)
	res := PriceVsOwners(games, Filters{})
	if res.Total != 3 {
		t.Fatalf("expected unplottable rows to be skipped, got %d", res.Total)
	}
}

func TestPriceVsOwnersRelaxesEmptySelection(t *testing.T) {
	res := PriceVsOwners(scatterGames(20), Filters{MinScore: 10, Genres: []string{"Strategy"}})
	if !res.Relaxed {
		t.Fatalf("expected relaxed selection")
	}
	if res.Total != 20 {
		t.Fatalf("expected the full set after relaxing, got %d", res.Total)
	}

	// A year band that matches nothing cannot be relaxed away.
	res = PriceVsOwners(scatterGames(20), Filters{YearFrom: iptr(1990), YearTo: iptr(1991)})
	if res.Relaxed || res.Total != 0 {
		t.Fatalf("expected an empty unrelaxed result, got %+v", res)
	}
}

func TestPriceVsOwnersSamples(t *testing.T) {
	res := PriceVsOwners(scatterGames(9000), Filters{})
	if !res.Sampled {
		t.Fatalf("expected sampling above the point cap")
	}
	if res.Total != 9000 || len(res.Points) != maxScatterPoints {
		t.Fatalf("expected %d of 9000 points, got %d of %d", maxScatterPoints, len(res.Points), res.Total)
	}
	if res.Detail != DetailMinimal {
		t.Fatalf("expected minimal detail, got %q", res.Detail)
	}
	if res.Points[0].UserScore != nil || res.Points[0].Publishers != "" {
		t.Fatalf("expected full-only fields to be dropped at minimal detail")
	}

	again := PriceVsOwners(scatterGames(9000), Filters{})
	if again.Points[0].AppID != res.Points[0].AppID {
		t.Fatalf("expected a deterministic sample")
	}
}

func TestPriceVsOwnersHeatmap(t *testing.T) {
	res := PriceVsOwners(scatterGames(heatmapThreshold+1), Filters{})
	if res.Mode != ModeHeatmap || res.Detail != DetailNone {
		t.Fatalf("expected heatmap fallback, got mode %q detail %q", res.Mode, res.Detail)
	}
	if len(res.Points) != 0 || len(res.Cells) == 0 {
		t.Fatalf("expected cells instead of points, got %d points %d cells", len(res.Points), len(res.Cells))
	}

	var count int
	for _, cell := range res.Cells {
		count += cell.Count
	}
	if count != res.Total {
		t.Fatalf("expected cell counts to cover all %d rows, got %d", res.Total, count)
	}
}

func TestPriceByGenre(t *testing.T) {
	games := []models.Game{
		{AppID: 1, PrimaryGenre: "Action", Price: fptr(10)},
		{AppID: 2, PrimaryGenre: "Action", Price: fptr(20)},
		{AppID: 3, PrimaryGenre: "Action", Price: fptr(30)},
		{AppID: 4, PrimaryGenre: "Indie", Price: fptr(5)},
		{AppID: 5, PrimaryGenre: "Indie"},
	}

	stats := PriceByGenre(games)
	if len(stats) != 2 {
		t.Fatalf("expected 2 genres, got %d", len(stats))
	}
	action := stats[0]
	if action.Genre != "Action" || action.Count != 3 {
		t.Fatalf("expected Action x3 first, got %+v", action)
	}
	if action.Min != 10 || action.Median != 20 || action.Max != 30 {
		t.Fatalf("unexpected quantiles: %+v", action)
	}
	if action.Q1 != 15 || action.Q3 != 25 {
		t.Fatalf("expected interpolated quartiles 15/25, got %v/%v", action.Q1, action.Q3)
	}

	indie := stats[1]
	if indie.Count != 2 || indie.Median != 5 {
		t.Fatalf("unexpected Indie stats: %+v", indie)
	}
}

func TestTopPublishers(t *testing.T) {
	games := []models.Game{
		{AppID: 1, Publishers: "Valve", OwnersMid: fptr(5000)},
		{AppID: 2, Publishers: "Valve, Sierra", OwnersMid: fptr(3000)},
		{AppID: 3, Publishers: "Tiny Studio", OwnersMid: fptr(4000)},
		{AppID: 4, Publishers: ""},
	}

	stats := TopPublishers(games)
	if len(stats) != 2 {
		t.Fatalf("expected 2 publishers, got %d", len(stats))
	}
	if stats[0].Publisher != "Valve" || stats[0].OwnersTotal != 8000 || stats[0].Games != 2 {
		t.Fatalf("unexpected leader: %+v", stats[0])
	}
	if stats[1].Publisher != "Tiny Studio" {
		t.Fatalf("expected Tiny Studio second, got %+v", stats[1])
	}
}

func TestTrendingGenres(t *testing.T) {
	var games []models.Game
	add := func(genre string, year, n int) {
		for i := 0; i < n; i++ {
			games = append(games, models.Game{PrimaryGenre: genre, ReleaseYear: iptr(year)})
		}
	}
	// Rising across four years.
	for i, n := range []int{1, 2, 4, 8} {
		add("Roguelike", 2020+i, n)
	}
	// Falling across four years.
	for i, n := range []int{8, 4, 2, 1} {
		add("MMO", 2020+i, n)
	}
	// Only two active years, too short to score.
	add("Brief", 2020, 3)
	add("Brief", 2023, 3)

	board := TrendingGenres(games)
	if board.YearMin != 2020 || board.YearMax != 2023 {
		t.Fatalf("expected window 2020-2023, got %d-%d", board.YearMin, board.YearMax)
	}
	if len(board.Emerging) != 1 || board.Emerging[0].Genre != "Roguelike" {
		t.Fatalf("unexpected emerging board: %+v", board.Emerging)
	}
	if board.Emerging[0].Slope <= 0 {
		t.Fatalf("expected a positive slope, got %v", board.Emerging[0].Slope)
	}
	if board.Emerging[0].FirstReleases != 1 || board.Emerging[0].LastReleases != 8 || board.Emerging[0].Total != 15 {
		t.Fatalf("unexpected trend stats: %+v", board.Emerging[0])
	}
	if len(board.Declining) != 1 || board.Declining[0].Genre != "MMO" || board.Declining[0].Slope >= 0 {
		t.Fatalf("unexpected declining board: %+v", board.Declining)
	}
}

func TestTrendingGenresSingleYear(t *testing.T) {
	board := TrendingGenres([]models.Game{
		{PrimaryGenre: "Action", ReleaseYear: iptr(2020)},
		{PrimaryGenre: "Action", ReleaseYear: iptr(2020)},
	})
	if len(board.Emerging) != 0 || len(board.Declining) != 0 {
		t.Fatalf("expected an empty board for a single year, got %+v", board)
	}
}

func TestOptions(t *testing.T) {
	games := []models.Game{
		{AppID: 1, ReleaseYear: iptr(2000), Price: fptr(4.99), Windows: true},
		{AppID: 2, ReleaseYear: iptr(2023), Price: fptr(59.99), Linux: true},
		{AppID: 3},
	}
	dim := []models.GenreCount{{Genre: "Action", N: 2}, {Genre: "Indie", N: 1}}

	opts := Options(games, dim, 10)
	if opts.YearMin != 2000 || opts.YearMax != 2023 || !opts.YearFilterUsable {
		t.Fatalf("unexpected year bounds: %+v", opts)
	}
	if opts.YearDefaultFrom != 2014 {
		t.Fatalf("expected default lower bound 2014, got %d", opts.YearDefaultFrom)
	}
	if opts.PriceMin != 4.99 || opts.PriceMax != 59.99 || !opts.PriceFilterUsable {
		t.Fatalf("unexpected price bounds: %+v", opts)
	}
	if len(opts.Platforms) != 2 || opts.Platforms[0] != "windows" || opts.Platforms[1] != "linux" {
		t.Fatalf("unexpected platforms: %v", opts.Platforms)
	}
	if len(opts.Genres) != 2 || opts.Genres[0] != "Action" {
		t.Fatalf("unexpected genres: %v", opts.Genres)
	}
}

func TestOptionsDegenerate(t *testing.T) {
	opts := Options([]models.Game{{AppID: 1, ReleaseYear: iptr(2020), Price: fptr(9.99), Mac: true}}, nil, 10)
	if opts.YearFilterUsable || opts.PriceFilterUsable {
		t.Fatalf("expected single-value controls to be unusable, got %+v", opts)
	}
	if opts.YearDefaultFrom != 2020 {
		t.Fatalf("expected default to clamp to the only year, got %d", opts.YearDefaultFrom)
	}
}

func TestQuantile(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}
	cases := []struct{ q, want float64 }{
		{0, 1},
		{0.25, 1.75},
		{0.5, 2.5},
		{0.75, 3.25},
		{1, 4},
	}
	for _, tc := range cases {
		if got := quantile(sorted, tc.q); math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("quantile(%v): expected %v, got %v", tc.q, tc.want, got)
		}
	}
	if got := quantile(nil, 0.5); got != 0 {
		t.Fatalf("expected 0 for empty input, got %v", got)
	}
}
