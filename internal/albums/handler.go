package albums

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"albumfeed/internal/scraper"
)

// Merger runs one fetch-and-merge pass; *scraper.Aggregator implements it.
type Merger interface {
	FetchAndMerge(ctx context.Context) scraper.Report
}

// Handler serves the merged album list. It carries everything a request
// needs, so the server has no package-level state.
type Handler struct {
	Agg     Merger
	Timeout time.Duration
}

func NewHandler(agg Merger, timeout time.Duration) *Handler {
	return &Handler{Agg: agg, Timeout: timeout}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.index) // GET /
}

// index always answers 200. When both sites fail the page is simply empty.
func (h *Handler) index(c *gin.Context) {
	ctx := c.Request.Context()
	if h.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.Timeout)
		defer cancel()
	}

	rep := h.Agg.FetchAndMerge(ctx)

	c.Negotiate(http.StatusOK, gin.Negotiate{
		Offered:  []string{gin.MIMEHTML, gin.MIMEJSON},
		HTMLName: "index.html",
		HTMLData: gin.H{
			"Reviews": rep.Reviews,
			"Count":   len(rep.Reviews),
		},
		JSONData: gin.H{
			"count": len(rep.Reviews),
			"items": rep.Reviews,
		},
	})
}
