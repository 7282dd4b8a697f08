package analytics

import (
	"testing"

	"github.com/zssl-sudo/projeto-steam-analitics/internal/models"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func sampleGames() []models.Game {
	return []models.Game{
		{AppID: 1, Name: "Windows Shooter", ReleaseYear: iptr(2018), Price: fptr(19.99), Windows: true, PrimaryGenre: "Action", UserScore: fptr(8)},
		{AppID: 2, Name: "Mac Puzzle", ReleaseYear: iptr(2020), Price: fptr(4.99), Mac: true, PrimaryGenre: "Puzzle", UserScore: fptr(6)},
		{AppID: 3, Name: "Linux Indie", ReleaseYear: iptr(2022), Price: nil, Linux: true, PrimaryGenre: "Indie"},
		{AppID: 4, Name: "Undated", ReleaseYear: nil, Price: fptr(59.99), Windows: true, PrimaryGenre: "Action", UserScore: fptr(9)},
	}
}

func TestApplyYearBand(t *testing.T) {
	got := Apply(sampleGames(), Filters{YearFrom: iptr(2019), YearTo: iptr(2022)})
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	// The undated row counts as year 0 and falls below any lower bound.
	for _, g := range got {
		if g.ReleaseYear == nil {
			t.Fatalf("expected undated row to be excluded")
		}
	}
}

func TestApplyPriceKeepsUnknown(t *testing.T) {
	got := Apply(sampleGames(), Filters{PriceMin: fptr(10), PriceMax: fptr(30)})
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	// One is the 19.99 game, the other the unknown-price game.
	var sawUnknown bool
	for _, g := range got {
		if g.Price == nil {
			sawUnknown = true
		}
	}
	if !sawUnknown {
		t.Fatalf("expected the unknown-price row to survive the price band")
	}
}

func TestApplyPlatformsOr(t *testing.T) {
	got := Apply(sampleGames(), Filters{Platforms: []string{"mac", "linux"}})
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	for _, g := range got {
		if !g.Mac && !g.Linux {
			t.Fatalf("row %q matches neither platform", g.Name)
		}
	}
}

func TestApplyGenreAndScore(t *testing.T) {
	got := Apply(sampleGames(), Filters{Genres: []string{"Action"}})
	if len(got) != 2 {
		t.Fatalf("expected 2 action rows, got %d", len(got))
	}

	got = Apply(sampleGames(), Filters{MinScore: 7})
	if len(got) != 2 {
		t.Fatalf("expected 2 rows with score >= 7, got %d", len(got))
	}
	for _, g := range got {
		// A missing score counts as 0 and is excluded by a positive minimum.
		if g.UserScore == nil {
			t.Fatalf("expected unscored rows to be excluded")
		}
	}
}

func TestApplyEmptyFiltersKeepAll(t *testing.T) {
	if got := Apply(sampleGames(), Filters{}); len(got) != len(sampleGames()) {
		t.Fatalf("expected all rows, got %d", len(got))
	}
}
