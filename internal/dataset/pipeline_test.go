package dataset

import (
	"testing"
	"time"

	"github.com/zssl-sudo/projeto-steam-analitics/internal/models"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func TestPrepareDerivesColumns(t *testing.T) {
	games := []models.Game{
		{
			AppID:           10,
			Name:            "Portal",
			ReleaseDateRaw:  "Oct 10, 2007",
			Price:           fptr(9.99),
			EstimatedOwners: "1,000,000 - 2,000,000",
			Genres:          []string{"Puzzle", "Action"},
			Positive:        90,
			Negative:        10,
		},
		{
			AppID:          20,
			Name:           "Mystery",
			ReleaseDateRaw: "Mar 3, 2008",
		},
	}

	snap := Prepare(games, 0)
	if len(snap.Games) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(snap.Games))
	}

	portal := snap.Games[0]
	if portal.ReleaseYear == nil || *portal.ReleaseYear != 2007 {
		t.Fatalf("expected release year 2007, got %v", portal.ReleaseYear)
	}
	if portal.OwnersMid == nil || *portal.OwnersMid != 1500000 {
		t.Fatalf("expected owners mid 1500000, got %v", portal.OwnersMid)
	}
	if portal.SentimentRatio == nil || *portal.SentimentRatio != 0.9 {
		t.Fatalf("expected sentiment 0.9, got %v", portal.SentimentRatio)
	}
	if portal.PrimaryGenre != "Puzzle" {
		t.Fatalf("expected primary genre Puzzle, got %q", portal.PrimaryGenre)
	}
	if portal.IsFree {
		t.Fatalf("expected paid game")
	}

	mystery := snap.Games[1]
	if !mystery.IsFree {
		t.Fatalf("expected game without price to count as free")
	}
	if mystery.SentimentRatio != nil {
		t.Fatalf("expected nil sentiment without reviews, got %v", *mystery.SentimentRatio)
	}
	if mystery.PrimaryGenre != "Unknown" {
		t.Fatalf("expected Unknown primary genre, got %q", mystery.PrimaryGenre)
	}
}

func TestPrepareDedupesAndDropsNameless(t *testing.T) {
	games := []models.Game{
		{AppID: 1, Name: "First", ReleaseDateRaw: "2015"},
		{AppID: 1, Name: "Duplicate", ReleaseDateRaw: "2016"},
		{AppID: 2, Name: "", ReleaseDateRaw: "2017"},
		{AppID: 3, Name: "Kept", ReleaseDateRaw: "2018"},
	}

	snap := Prepare(games, 0)
	if len(snap.Games) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(snap.Games))
	}
	if snap.Games[0].Name != "First" || snap.Games[1].Name != "Kept" {
		t.Fatalf("unexpected rows: %q, %q", snap.Games[0].Name, snap.Games[1].Name)
	}
}

func TestPrepareCollapsesMissingAppIDs(t *testing.T) {
	games := []models.Game{
		{Name: "No ID A"},
		{Name: "No ID B"},
		{AppID: 5, Name: "Real"},
	}

	snap := Prepare(games, 0)
	if len(snap.Games) != 2 {
		t.Fatalf("expected missing-id rows to collapse to one, got %d", len(snap.Games))
	}
	if snap.Games[0].Name != "No ID A" || snap.Games[1].Name != "Real" {
		t.Fatalf("unexpected rows: %q, %q", snap.Games[0].Name, snap.Games[1].Name)
	}
}

func TestPrepareDropsFreeZeroMetacritic(t *testing.T) {
	games := []models.Game{
		{AppID: 1, Name: "Free junk", MetacriticScore: fptr(0)},
		{AppID: 2, Name: "Free unscored"},
		{AppID: 3, Name: "Paid zero", Price: fptr(19.99), MetacriticScore: fptr(0)},
		{AppID: 4, Name: "Free scored", MetacriticScore: fptr(80)},
	}

	snap := Prepare(games, 0)
	if len(snap.Games) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(snap.Games))
	}
	for _, g := range snap.Games {
		if g.AppID == 1 {
			t.Fatalf("expected free zero-metacritic row to be dropped")
		}
	}
}

func TestPrepareLookbackCut(t *testing.T) {
	games := []models.Game{
		{AppID: 1, Name: "Old", ReleaseDateRaw: "2005"},
		{AppID: 2, Name: "Mid", ReleaseDateRaw: "2019"},
		{AppID: 3, Name: "New", ReleaseDateRaw: "2023"},
		{AppID: 4, Name: "Undated"},
	}

	snap := Prepare(games, 10)
	if len(snap.Games) != 2 {
		t.Fatalf("expected 2 rows after cut, got %d", len(snap.Games))
	}
	if snap.YearMin != 2014 || snap.YearMax != 2023 {
		t.Fatalf("expected window 2014-2023, got %d-%d", snap.YearMin, snap.YearMax)
	}

	// Without a lookback everything with a name survives.
	all := Prepare([]models.Game{
		{AppID: 1, Name: "Old", ReleaseDateRaw: "2005"},
		{AppID: 4, Name: "Undated"},
	}, 0)
	if len(all.Games) != 2 {
		t.Fatalf("expected no cut with yearsBack=0, got %d rows", len(all.Games))
	}
}

func TestGenreDimension(t *testing.T) {
	snap := Prepare([]models.Game{
		{AppID: 1, Name: "A", Genres: []string{"Action", "Indie"}},
		{AppID: 2, Name: "B", Genres: []string{"Action"}},
		{AppID: 3, Name: "C", Genres: []string{"Indie", "Action", ""}},
		{AppID: 4, Name: "D"},
	}, 0)

	if len(snap.Genres) != 2 {
		t.Fatalf("expected 2 genres, got %d", len(snap.Genres))
	}
	if snap.Genres[0].Genre != "Action" || snap.Genres[0].N != 3 {
		t.Fatalf("expected Action x3 first, got %+v", snap.Genres[0])
	}
	if snap.Genres[1].Genre != "Indie" || snap.Genres[1].N != 2 {
		t.Fatalf("expected Indie x2 second, got %+v", snap.Genres[1])
	}
}

func TestRederiveYears(t *testing.T) {
	games := []models.Game{
		{AppID: 1, Name: "A", ReleaseYear: iptr(2020), ReleaseDateRaw: "Jun 1, 2015"},
		{AppID: 2, Name: "B", ReleaseYear: iptr(2020), ReleaseDateRaw: "Jun 1, 2016"},
	}
	if DistinctYears(games) != 1 {
		t.Fatalf("expected 1 distinct year before rederive")
	}

	RederiveYears(games)
	if DistinctYears(games) != 2 {
		t.Fatalf("expected 2 distinct years after rederive")
	}
	if *games[0].ReleaseYear != 2015 || *games[1].ReleaseYear != 2016 {
		t.Fatalf("unexpected years: %d, %d", *games[0].ReleaseYear, *games[1].ReleaseYear)
	}
}

func TestRederiveYearsFallsBackToParsedDate(t *testing.T) {
	// Cache loads carry a parsed date but no raw cell; the year must come
	// back from the date instead of being wiped.
	d := time.Date(2019, time.May, 4, 0, 0, 0, 0, time.UTC)
	games := []models.Game{{AppID: 1, Name: "Cached", ReleaseDate: &d, ReleaseYear: iptr(2024)}}

	RederiveYears(games)
	if games[0].ReleaseYear == nil || *games[0].ReleaseYear != 2019 {
		t.Fatalf("expected year 2019 from the parsed date, got %v", games[0].ReleaseYear)
	}
}
