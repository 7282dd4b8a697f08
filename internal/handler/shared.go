package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zssl-sudo/projeto-steam-analitics/internal/analytics"
	"github.com/zssl-sudo/projeto-steam-analitics/internal/cache"
	"github.com/zssl-sudo/projeto-steam-analitics/internal/dataset"
	"github.com/zssl-sudo/projeto-steam-analitics/internal/metrics"
)

var (
	// Data is the snapshot service, wired at startup.
	Data *dataset.Service

	respCache *cache.TTLCache[string, any]
)

// Setup wires the handlers to the snapshot service and sizes the aggregate
// response cache.
func Setup(svc *dataset.Service, cacheTTL time.Duration) {
	Data = svc
	respCache = cache.NewTTLCache[string, any](256, cacheTTL)
}

// PurgeCache drops cached aggregate responses. Called after a refresh.
func PurgeCache() {
	if respCache != nil {
		respCache.Purge()
	}
}

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// filtersFromQuery binds the shared dashboard filter query parameters.
func filtersFromQuery(c *gin.Context) (analytics.Filters, bool) {
	var f analytics.Filters

	bad := func(msg string) (analytics.Filters, bool) {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return f, false
	}

	if raw := c.Query("year_from"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return bad("year_from must be an integer")
		}
		f.YearFrom = &v
	}
	if raw := c.Query("year_to"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return bad("year_to must be an integer")
		}
		f.YearTo = &v
	}
	if raw := c.Query("price_min"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return bad("price_min must be a number")
		}
		f.PriceMin = &v
	}
	if raw := c.Query("price_max"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return bad("price_max must be a number")
		}
		f.PriceMax = &v
	}
	if raw := c.Query("min_score"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 || v > 10 {
			return bad("min_score must be a number between 0 and 10")
		}
		f.MinScore = v
	}
	f.Platforms = splitCommaSeparated(c.Query("platforms"))
	f.Genres = splitCommaSeparated(c.Query("genres"))

	return f, true
}

// cachedJSON serves the response from the aggregate cache when possible,
// building and storing it otherwise. The full request URI is the cache key.
func cachedJSON(c *gin.Context, build func() any) {
	key := c.Request.URL.RequestURI()
	if cached, ok := respCache.Get(key); ok {
		metrics.CacheHit()
		c.JSON(http.StatusOK, cached)
		return
	}
	metrics.CacheMiss()

	resp := build()
	respCache.Set(key, resp)
	c.JSON(http.StatusOK, resp)
}

// Helper to split comma-separated strings.
func splitCommaSeparated(s string) []string {
	if s == "" {
		return nil
	}
	var result []string
	parts := strings.Split(s, ",")
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
