package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/amaranand360/enterprise-search/internal/catalog"
	"github.com/amaranand360/enterprise-search/internal/index"
	"github.com/amaranand360/enterprise-search/internal/ingest"
	"github.com/amaranand360/enterprise-search/internal/query"
	"github.com/amaranand360/enterprise-search/internal/runtime"
)

// IngestHandler accepts raw HTML pages and adds them to the live index.
type IngestHandler struct {
	Engine   *index.Engine
	Registry *catalog.Registry
}

func (h *IngestHandler) Register(g *echo.Group, secret []byte) {
	g.Use(runtime.EchoAuthMiddleware(secret))
	g.POST("", h.ingest)
}

func (h *IngestHandler) ingest(c echo.Context) error {
	var req ingestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if _, ok := h.Registry.Get(req.Tool); !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown tool: "+req.Tool)
	}

	doc, err := ingest.FromHTML(req.HTML, req.URL, req.Tool, req.Title, req.Author, query.ContentType(req.ContentType))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.Engine.Index(doc); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	documentsIngested.Inc()
	return c.JSON(http.StatusCreated, doc)
}
