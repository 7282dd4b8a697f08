package models

import "time"

// Game is one row of the games dataset after preparation.
// Nullable numeric columns are pointers; nil means the source cell was
// missing or could not be coerced.
type Game struct {
	AppID       int64      `gorm:"primaryKey"`
	Name        string     `gorm:"size:512;not null;index"`
	ReleaseDate *time.Time
	ReleaseYear *int `gorm:"index"`

	Price  *float64
	IsFree bool

	Windows bool
	Mac     bool
	Linux   bool

	Genres       []string `gorm:"serializer:json"`
	PrimaryGenre string   `gorm:"size:128;index"`
	Publishers   string   `gorm:"size:512"`

	EstimatedOwners string `gorm:"size:64"`
	OwnersMin       *int64
	OwnersMax       *int64
	OwnersMid       *float64

	Positive        int64
	Negative        int64
	SentimentRatio  *float64
	UserScore       *float64
	MetacriticScore *float64
	Recommendations int64
	PeakCCU         int64
	RequiredAge     int

	Categories         []string `gorm:"serializer:json"`
	Tags               []string `gorm:"serializer:json"`
	SupportedLanguages []string `gorm:"serializer:json"`

	// Raw release-date cell, kept around so the year can be re-derived
	// after a stale snapshot load. Never persisted.
	ReleaseDateRaw string `gorm:"-"`
}
