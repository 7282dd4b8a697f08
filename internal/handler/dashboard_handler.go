package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zssl-sudo/projeto-steam-analitics/internal/analytics"
	"github.com/zssl-sudo/projeto-steam-analitics/internal/config"
	"github.com/zssl-sudo/projeto-steam-analitics/internal/models"
)

// region --- DTOs ---

// SummaryResponse carries the KPI cards.
type SummaryResponse struct {
	Info    string            `json:"info,omitempty"`
	Summary analytics.Summary `json:"summary"`
}

// ReleasesResponse is the releases-by-year series.
type ReleasesResponse struct {
	Info  string               `json:"info,omitempty"`
	Years []analytics.YearStat `json:"years"`
}

// ScatterResponse is the price-vs-owners payload.
type ScatterResponse struct {
	Info string `json:"info,omitempty"`
	analytics.ScatterResult
}

// GenrePricesResponse is the per-genre price distribution.
type GenrePricesResponse struct {
	Info   string                      `json:"info,omitempty"`
	Genres []analytics.GenrePriceStats `json:"genres"`
}

// PublishersResponse is the top-publishers ranking.
type PublishersResponse struct {
	Info       string                    `json:"info,omitempty"`
	Publishers []analytics.PublisherStat `json:"publishers"`
}

// GenreTrendsResponse is the emerging/declining genres board.
type GenreTrendsResponse struct {
	Info string `json:"info,omitempty"`
	analytics.TrendBoard
}

// FilterOptionsResponse describes the filter controls for the loaded data.
type FilterOptionsResponse struct {
	analytics.FilterOptions
	YearsBack int `json:"years_back"`
}

const noDataInfo = "No data for the current filters. Refine the filters or load a dataset."

// endregion

// GetSummary godoc
// @Summary      Dashboard KPI cards
// @Description  Game count, free-to-play share, median price, mean user score and median owners for the filtered selection.
// @Tags         dashboard
// @Produce      json
// @Param        year_from  query int     false "Earliest release year"
// @Param        year_to    query int     false "Latest release year"
// @Param        price_min  query number  false "Minimum price (USD)"
// @Param        price_max  query number  false "Maximum price (USD)"
// @Param        platforms  query string  false "Comma-separated platforms (windows,mac,linux)"
// @Param        genres     query string  false "Comma-separated primary genres"
// @Param        min_score  query number  false "Minimum user score (0-10)"
// @Success      200 {object} SummaryResponse
// @Failure      400 {object} ErrorResponse
// @Router       /dashboard/summary [get]
func GetSummary(c *gin.Context) {
	f, ok := filtersFromQuery(c)
	if !ok {
		return
	}
	snap := Data.Load(c.Request.Context())

	cachedJSON(c, func() any {
		q := analytics.Apply(snap.Games, f)
		resp := SummaryResponse{Summary: analytics.Summarize(q)}
		if len(q) == 0 {
			resp.Info = noDataInfo
		}
		return resp
	})
}

// GetReleasesByYear godoc
// @Summary      Releases by year
// @Description  Release count and mean user score per year for the filtered selection.
// @Tags         dashboard
// @Produce      json
// @Param        year_from  query int     false "Earliest release year"
// @Param        year_to    query int     false "Latest release year"
// @Param        price_min  query number  false "Minimum price (USD)"
// @Param        price_max  query number  false "Maximum price (USD)"
// @Param        platforms  query string  false "Comma-separated platforms (windows,mac,linux)"
// @Param        genres     query string  false "Comma-separated primary genres"
// @Param        min_score  query number  false "Minimum user score (0-10)"
// @Success      200 {object} ReleasesResponse
// @Failure      400 {object} ErrorResponse
// @Router       /dashboard/releases [get]
func GetReleasesByYear(c *gin.Context) {
	f, ok := filtersFromQuery(c)
	if !ok {
		return
	}
	snap := Data.Load(c.Request.Context())

	cachedJSON(c, func() any {
		years := analytics.ReleasesByYear(analytics.Apply(snap.Games, f))
		resp := ReleasesResponse{Years: years}
		if len(years) == 0 {
			resp.Info = "Not enough release-year data to chart."
		}
		return resp
	})
}

// GetScatter godoc
// @Summary      Price vs popularity scatter
// @Description  Price against estimated-owners midpoint. Large selections degrade to a sampled point set or a binned heatmap; an empty selection is retried with score and genre filters relaxed.
// @Tags         dashboard
// @Produce      json
// @Param        year_from  query int     false "Earliest release year"
// @Param        year_to    query int     false "Latest release year"
// @Param        price_min  query number  false "Minimum price (USD)"
// @Param        price_max  query number  false "Maximum price (USD)"
// @Param        platforms  query string  false "Comma-separated platforms (windows,mac,linux)"
// @Param        genres     query string  false "Comma-separated primary genres"
// @Param        min_score  query number  false "Minimum user score (0-10)"
// @Success      200 {object} ScatterResponse
// @Failure      400 {object} ErrorResponse
// @Router       /dashboard/scatter [get]
func GetScatter(c *gin.Context) {
	f, ok := filtersFromQuery(c)
	if !ok {
		return
	}
	snap := Data.Load(c.Request.Context())

	cachedJSON(c, func() any {
		result := analytics.PriceVsOwners(snap.Games, f)
		resp := ScatterResponse{ScatterResult: result}
		switch {
		case result.Total == 0:
			resp.Info = noDataInfo
		case result.Relaxed:
			resp.Info = "No data for the current filters. Showing results with score and genre filters relaxed."
		case result.Sampled:
			resp.Info = "Selection sampled for performance."
		case result.Mode == analytics.ModeHeatmap:
			resp.Info = "Too many points selected. Showing a binned heatmap instead."
		}
		return resp
	})
}

// GetGenrePrices godoc
// @Summary      Price distribution by genre
// @Description  Price quantiles (min, q1, median, q3, max) for the ten most common primary genres of the filtered selection.
// @Tags         dashboard
// @Produce      json
// @Param        year_from  query int     false "Earliest release year"
// @Param        year_to    query int     false "Latest release year"
// @Param        price_min  query number  false "Minimum price (USD)"
// @Param        price_max  query number  false "Maximum price (USD)"
// @Param        platforms  query string  false "Comma-separated platforms (windows,mac,linux)"
// @Param        genres     query string  false "Comma-separated primary genres"
// @Param        min_score  query number  false "Minimum user score (0-10)"
// @Success      200 {object} GenrePricesResponse
// @Failure      400 {object} ErrorResponse
// @Router       /dashboard/genre-prices [get]
func GetGenrePrices(c *gin.Context) {
	f, ok := filtersFromQuery(c)
	if !ok {
		return
	}
	snap := Data.Load(c.Request.Context())

	cachedJSON(c, func() any {
		genres := analytics.PriceByGenre(analytics.Apply(snap.Games, f))
		resp := GenrePricesResponse{Genres: genres}
		if len(genres) == 0 {
			resp.Info = noDataInfo
		}
		return resp
	})
}

// GetTopPublishers godoc
// @Summary      Top publishers
// @Description  Publishers ranked by summed estimated-owners midpoint over the filtered selection.
// @Tags         dashboard
// @Produce      json
// @Param        year_from  query int     false "Earliest release year"
// @Param        year_to    query int     false "Latest release year"
// @Param        price_min  query number  false "Minimum price (USD)"
// @Param        price_max  query number  false "Maximum price (USD)"
// @Param        platforms  query string  false "Comma-separated platforms (windows,mac,linux)"
// @Param        genres     query string  false "Comma-separated primary genres"
// @Param        min_score  query number  false "Minimum user score (0-10)"
// @Success      200 {object} PublishersResponse
// @Failure      400 {object} ErrorResponse
// @Router       /dashboard/publishers [get]
func GetTopPublishers(c *gin.Context) {
	f, ok := filtersFromQuery(c)
	if !ok {
		return
	}
	snap := Data.Load(c.Request.Context())

	cachedJSON(c, func() any {
		publishers := analytics.TopPublishers(analytics.Apply(snap.Games, f))
		resp := PublishersResponse{Publishers: publishers}
		if len(publishers) == 0 {
			resp.Info = "Not enough publisher data."
		}
		return resp
	})
}

// GetGenreTrends godoc
// @Summary      Emerging and declining genres
// @Description  Genres ranked by the linear trend of their yearly release counts across the visible window.
// @Tags         dashboard
// @Produce      json
// @Param        year_from  query int     false "Earliest release year"
// @Param        year_to    query int     false "Latest release year"
// @Param        price_min  query number  false "Minimum price (USD)"
// @Param        price_max  query number  false "Maximum price (USD)"
// @Param        platforms  query string  false "Comma-separated platforms (windows,mac,linux)"
// @Param        genres     query string  false "Comma-separated primary genres"
// @Param        min_score  query number  false "Minimum user score (0-10)"
// @Success      200 {object} GenreTrendsResponse
// @Failure      400 {object} ErrorResponse
// @Router       /dashboard/genre-trends [get]
func GetGenreTrends(c *gin.Context) {
	f, ok := filtersFromQuery(c)
	if !ok {
		return
	}
	snap := Data.Load(c.Request.Context())

	cachedJSON(c, func() any {
		board := analytics.TrendingGenres(analytics.Apply(snap.Games, f))
		resp := GenreTrendsResponse{TrendBoard: board}
		if len(board.Emerging) == 0 && len(board.Declining) == 0 {
			resp.Info = "Not enough multi-year data to compute genre trends."
		}
		return resp
	})
}

// GetFilterOptions godoc
// @Summary      Filter controls
// @Description  Slider bounds, defaults and available platform/genre choices for the loaded dataset.
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} FilterOptionsResponse
// @Router       /dashboard/filters [get]
func GetFilterOptions(c *gin.Context) {
	snap := Data.Load(c.Request.Context())

	cachedJSON(c, func() any {
		return FilterOptionsResponse{
			FilterOptions: analytics.Options(snap.Games, snap.Genres, config.AppConfig.YearsBackDefault),
			YearsBack:     config.AppConfig.YearsBack,
		}
	})
}

// GetGenres godoc
// @Summary      Genre dimension
// @Description  Every genre present in the dataset with its game count, sorted by count.
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} []models.GenreCount
// @Router       /genres [get]
func GetGenres(c *gin.Context) {
	snap := Data.Load(c.Request.Context())
	genres := snap.Genres
	if genres == nil {
		genres = []models.GenreCount{}
	}
	c.JSON(http.StatusOK, genres)
}
