package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	finderdomain "github.com/octolab/storefront/internal/finder/domain"
)

func (s *Server) FinderQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": s.finderSvc.Questions()})
}

func (s *Server) FinderRecommend(c *gin.Context) {
	var req finderdomain.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	recommendations, err := s.finderSvc.Recommend(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": recommendations})
}
