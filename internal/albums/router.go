package albums

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"albumfeed/internal/present"
)

//go:embed templates/index.html
var templatesFS embed.FS

// NewRouter builds the gin engine serving h with request logging through log.
func NewRouter(h *Handler, log *slog.Logger) (*gin.Engine, error) {
	tmpl, err := template.New("").
		Funcs(template.FuncMap{"primary": present.PrimaryRating}).
		ParseFS(templatesFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(log))
	router.SetHTMLTemplate(tmpl)
	if err := router.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	h.RegisterRoutes(router.Group(""))
	return router, nil
}

// RequestLogger logs one line per request.
func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	if log == nil {
		log = slog.Default()
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"client_ip", c.ClientIP(),
			"duration", time.Since(start),
		)
	}
}
