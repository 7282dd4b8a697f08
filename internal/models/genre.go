package models

// GenreCount is one row of the genre dimension: a genre label and how many
// games carry it.
type GenreCount struct {
	Genre string `json:"genre"`
	N     int    `json:"n"`
}
