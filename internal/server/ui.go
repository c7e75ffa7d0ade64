package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// RegisterUIRoutes wires redirects kept for backwards compatibility with
// older storefront links.
func (s *Server) RegisterUIRoutes() {
	s.engine.GET("/quality", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/about")
	})
}

// RegisterFallback serves the single-page UI bundle from cfg.UIDir when
// one is configured. Unknown non-API paths fall back to index.html so
// client-side routing keeps working after a hard refresh.
func (s *Server) RegisterFallback() {
	if s.cfg.UIDir == "" {
		return
	}

	uiDir := s.cfg.UIDir
	index := filepath.Join(uiDir, "index.html")

	s.engine.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead ||
			strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, errorResponse{Error: errorPayload{
				Type:    "not_found",
				Message: "route not found",
			}})
			return
		}

		requested := filepath.Join(uiDir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			c.File(requested)
			return
		}
		c.File(index)
	})
}
