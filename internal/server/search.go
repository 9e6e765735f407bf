package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/amaranand360/enterprise-search/internal/catalog"
	"github.com/amaranand360/enterprise-search/internal/index"
	"github.com/amaranand360/enterprise-search/internal/query"
	"github.com/amaranand360/enterprise-search/internal/runtime"
	"github.com/amaranand360/enterprise-search/internal/store"
)

// SearchHandler serves query parsing, execution, suggestions and history.
// Store and Rdb may be nil; the handler degrades to stateless operation.
type SearchHandler struct {
	Engine        *index.Engine
	Registry      *catalog.Registry
	Store         *store.Store
	Rdb           *redis.Client
	Limit         int
	SuggestionTTL time.Duration
}

func (h *SearchHandler) Register(g *echo.Group, secret []byte) {
	g.Use(runtime.EchoAuthMiddleware(secret))
	g.POST("", h.search)
	g.POST("/parse", h.parse)
	g.GET("/suggestions", h.suggestions)
	g.GET("/history", h.history)
}

// search parses the query, runs it against the index and records it in
// the user's history when a store is configured.
func (h *SearchHandler) search(c echo.Context) error {
	var req searchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	start := time.Now()
	parsed := query.Parse(req.Query, h.Registry)
	parsesTotal.WithLabelValues(string(parsed.Intent.Type)).Inc()

	limit := req.Limit
	if limit <= 0 || limit > h.Limit {
		limit = h.Limit
	}
	hits, err := h.Engine.Search(parsed, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	searchDuration.Observe(time.Since(start).Seconds())

	if h.Store != nil {
		if userID, ok := c.Get("user_id").(string); ok {
			parsedJSON, _ := json.Marshal(parsed)
			if _, err := h.Store.SaveSearch(c.Request().Context(), userID, req.Query, parsedJSON); err != nil {
				log.Printf("save search history: %v", err)
			}
		}
	}

	if hits == nil {
		hits = []index.Hit{}
	}
	return c.JSON(http.StatusOK, searchResponse{
		Parsed:      parsed,
		Results:     hits,
		Explanation: query.Explain(parsed, h.Registry),
	})
}

// parse exposes the interpreter without executing the search.
func (h *SearchHandler) parse(c echo.Context) error {
	var req searchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	parsed := query.Parse(req.Query, h.Registry)
	parsesTotal.WithLabelValues(string(parsed.Intent.Type)).Inc()
	return c.JSON(http.StatusOK, parsed)
}

func (h *SearchHandler) suggestions(c echo.Context) error {
	q := c.QueryParam("q")

	cacheKey := "suggest:" + q
	if h.Rdb != nil {
		if cached, err := h.Rdb.Get(c.Request().Context(), cacheKey).Result(); err == nil {
			var out []string
			if json.Unmarshal([]byte(cached), &out) == nil {
				suggestionCacheHits.Inc()
				return c.JSON(http.StatusOK, suggestionsResponse{Suggestions: out})
			}
		}
		suggestionCacheMisses.Inc()
	}

	out := query.Suggestions(q, h.Registry)
	if out == nil {
		out = []string{}
	}

	if h.Rdb != nil {
		ttl := h.SuggestionTTL
		if ttl <= 0 {
			ttl = 5 * time.Minute
		}
		if payload, err := json.Marshal(out); err == nil {
			if err := h.Rdb.Set(c.Request().Context(), cacheKey, payload, ttl).Err(); err != nil {
				log.Printf("cache suggestions: %v", err)
			}
		}
	}

	return c.JSON(http.StatusOK, suggestionsResponse{Suggestions: out})
}

func (h *SearchHandler) history(c echo.Context) error {
	if h.Store == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "history not configured")
	}
	userID, _ := c.Get("user_id").(string)

	limit := 10
	if raw := c.QueryParam("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	recs, err := h.Store.RecentSearches(c.Request().Context(), userID, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if recs == nil {
		recs = []store.SearchRecord{}
	}
	return c.JSON(http.StatusOK, recs)
}
