package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	contactdomain "github.com/octolab/storefront/internal/contact/domain"
	"go.uber.org/zap"
)

func (s *Server) SubmitContact(c *gin.Context) {
	if s.limiter != nil {
		result, err := s.limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			s.log.Warn("contact rate limit check failed", zap.Error(err))
		} else if !result.Allowed {
			c.Header("Retry-After", fmt.Sprintf("%d", int(result.RetryAfter.Seconds())))
			AbortWithError(c, ErrTooManyRequests)
			return
		}
	}

	var req contactdomain.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	submission, err := s.contactSvc.Submit(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": submission})
}

func (s *Server) GetContact(c *gin.Context) {
	submission, err := s.contactSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": submission})
}

func (s *Server) RetryContact(c *gin.Context) {
	submission, err := s.contactSvc.Retry(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": submission})
}
