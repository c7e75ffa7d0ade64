package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type navigateRequest struct {
	View string `json:"view"`
}

type selectProductRequest struct {
	Slug string `json:"slug"`
}

func (s *Server) GetSession(c *gin.Context) {
	sess, err := s.ensureSession(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": sess})
}

func (s *Server) Navigate(c *gin.Context) {
	sess, err := s.ensureSession(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var req navigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	sess, err = s.sessionSvc.NavigateTo(c.Request.Context(), sess.Token, req.View)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": sess})
}

func (s *Server) SelectProduct(c *gin.Context) {
	sess, err := s.ensureSession(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var req selectProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if req.Slug == "" {
		AbortWithError(c, newValidationError("slug", "required", "slug is required"))
		return
	}

	sess, err = s.sessionSvc.SelectProduct(c.Request.Context(), sess.Token, req.Slug)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": sess})
}
