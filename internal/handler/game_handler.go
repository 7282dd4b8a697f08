package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/zssl-sudo/projeto-steam-analitics/internal/analytics"
	"github.com/zssl-sudo/projeto-steam-analitics/internal/models"
)

// region --- DTOs ---

// GameResponse is the public view of one dataset row.
type GameResponse struct {
	AppID           int64    `json:"app_id"`
	Name            string   `json:"name"`
	ReleaseYear     *int     `json:"release_year,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	IsFree          bool     `json:"is_free"`
	Windows         bool     `json:"windows"`
	Mac             bool     `json:"mac"`
	Linux           bool     `json:"linux"`
	Genres          []string `json:"genres,omitempty"`
	PrimaryGenre    string   `json:"primary_genre"`
	Publishers      string   `json:"publishers,omitempty"`
	OwnersMid       *float64 `json:"owners_mid,omitempty"`
	UserScore       *float64 `json:"user_score,omitempty"`
	MetacriticScore *float64 `json:"metacritic_score,omitempty"`
	SentimentRatio  *float64 `json:"sentiment_ratio,omitempty"`
	Positive        int64    `json:"positive"`
	Negative        int64    `json:"negative"`
	Recommendations int64    `json:"recommendations"`
}

func newGameResponse(g models.Game) GameResponse {
	return GameResponse{
		AppID:           g.AppID,
		Name:            g.Name,
		ReleaseYear:     g.ReleaseYear,
		Price:           g.Price,
		IsFree:          g.IsFree,
		Windows:         g.Windows,
		Mac:             g.Mac,
		Linux:           g.Linux,
		Genres:          g.Genres,
		PrimaryGenre:    g.PrimaryGenre,
		Publishers:      g.Publishers,
		OwnersMid:       g.OwnersMid,
		UserScore:       g.UserScore,
		MetacriticScore: g.MetacriticScore,
		SentimentRatio:  g.SentimentRatio,
		Positive:        g.Positive,
		Negative:        g.Negative,
		Recommendations: g.Recommendations,
	}
}

// PaginatedGameResponse defines the structure for a paginated list of games.
type PaginatedGameResponse struct {
	Data []GameResponse `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// endregion

// GetGames godoc
// @Summary      List games
// @Description  Retrieves a paginated slice of the filtered dataset, with optional name search.
// @Tags         games
// @Produce      json
// @Param        q          query string  false "Search query for game name"
// @Param        year_from  query int     false "Earliest release year"
// @Param        year_to    query int     false "Latest release year"
// @Param        price_min  query number  false "Minimum price (USD)"
// @Param        price_max  query number  false "Maximum price (USD)"
// @Param        platforms  query string  false "Comma-separated platforms (windows,mac,linux)"
// @Param        genres     query string  false "Comma-separated primary genres"
// @Param        min_score  query number  false "Minimum user score (0-10)"
// @Param        page       query int     false "Page number" default(1)
// @Param        limit      query int     false "Items per page" default(20)
// @Success      200 {object} PaginatedGameResponse
// @Failure      400 {object} ErrorResponse
// @Router       /games [get]
func GetGames(c *gin.Context) {
	f, ok := filtersFromQuery(c)
	if !ok {
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100 // Max limit
	}

	snap := Data.Load(c.Request.Context())
	games := analytics.Apply(snap.Games, f)

	if q := strings.ToLower(strings.TrimSpace(c.Query("q"))); q != "" {
		matched := games[:0:0]
		for _, g := range games {
			if strings.Contains(strings.ToLower(g.Name), q) {
				matched = append(matched, g)
			}
		}
		games = matched
	}

	response := make([]GameResponse, 0, len(games))
	for _, g := range games {
		response = append(response, newGameResponse(g))
	}

	c.JSON(http.StatusOK, PaginateSlice(response, page, limit))
}
