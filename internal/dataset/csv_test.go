package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCSV = `AppID,Name,Release date,Price,Estimated owners,Windows,Mac,Linux,Genres,Publishers,Positive,Negative,Metacritic score,User score,Recommendations,Peak CCU,Required age
10,Portal,"Oct 10, 2007",9.99,"1,000,000 - 2,000,000",True,True,False,"['Puzzle', 'Action']",Valve,100,10,90,76%,50,1200,0
20,Broken Cell,"May 5, 2018",,0 - 20000,True,False,False,"Action,Indie","Tiny Studio, Big Corp",5,5,,not-a-score,0,0,18
30,Free Thing,"Jan 1, 2019",0,0 - 20000,True,False,True,Casual,,0,0,0,,0,0,0
`

func TestReadCSV(t *testing.T) {
	games, err := ReadCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(games) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(games))
	}

	portal := games[0]
	if portal.AppID != 10 || portal.Name != "Portal" {
		t.Fatalf("unexpected first row: %+v", portal)
	}
	if portal.Price == nil || *portal.Price != 9.99 {
		t.Fatalf("expected price 9.99, got %v", portal.Price)
	}
	if !portal.Windows || !portal.Mac || portal.Linux {
		t.Fatalf("unexpected platform flags: %v %v %v", portal.Windows, portal.Mac, portal.Linux)
	}
	if len(portal.Genres) != 2 || portal.Genres[0] != "Puzzle" {
		t.Fatalf("unexpected genres: %v", portal.Genres)
	}
	if portal.UserScore == nil || *portal.UserScore != 7.6 {
		t.Fatalf("expected user score 7.6, got %v", portal.UserScore)
	}
	if portal.ReleaseDateRaw != "Oct 10, 2007" {
		t.Fatalf("unexpected raw date: %q", portal.ReleaseDateRaw)
	}

	broken := games[1]
	if broken.Price != nil {
		t.Fatalf("expected missing price to stay nil, got %v", *broken.Price)
	}
	if broken.UserScore != nil {
		t.Fatalf("expected unparseable score to stay nil, got %v", *broken.UserScore)
	}
	if broken.RequiredAge != 18 {
		t.Fatalf("expected required age 18, got %d", broken.RequiredAge)
	}
}

func TestReadCSVAliasHeaders(t *testing.T) {
	csv := "app_id,name,year,price,genres\n1,Old Game,1999,4.99,Arcade\n"
	games, err := ReadCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("expected 1 row, got %d", len(games))
	}
	g := games[0]
	if g.AppID != 1 || g.Name != "Old Game" || g.ReleaseDateRaw != "1999" {
		t.Fatalf("alias columns not mapped: %+v", g)
	}
}

func TestIsLFSPointer(t *testing.T) {
	dir := t.TempDir()

	pointer := filepath.Join(dir, "games.csv")
	content := "version https://git-lfs.github.com/spec/v1\noid sha256:abc\nsize 12345\n"
	if err := os.WriteFile(pointer, []byte(content), 0o644); err != nil {
		t.Fatalf("write pointer: %v", err)
	}
	if !IsLFSPointer(pointer) {
		t.Fatalf("expected pointer file to be detected")
	}

	real := filepath.Join(dir, "real.csv")
	if err := os.WriteFile(real, []byte(sampleCSV), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	if IsLFSPointer(real) {
		t.Fatalf("expected real csv to pass")
	}
}
