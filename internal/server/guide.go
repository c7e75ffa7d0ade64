package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) ListGuides(c *gin.Context) {
	guides, err := s.guideSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": guides})
}

func (s *Server) GetGuideBySlug(c *gin.Context) {
	g, err := s.guideSvc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": g})
}
