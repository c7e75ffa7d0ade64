package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type addCartItemRequest struct {
	ProductID string `json:"product_id"`
}

type updateQuantityRequest struct {
	Delta int `json:"delta"`
}

func (s *Server) GetCart(c *gin.Context) {
	sess, err := s.ensureSession(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	cart, err := s.cartSvc.Get(c.Request.Context(), sess.CartID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": cart, "cart_open": sess.CartOpen})
}

// AddCartItem adds one unit of a product to the session cart and opens
// the cart overlay, mirroring the storefront's add-to-cart behavior.
func (s *Server) AddCartItem(c *gin.Context) {
	sess, err := s.ensureSession(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if req.ProductID == "" {
		AbortWithError(c, newValidationError("product_id", "required", "product_id is required"))
		return
	}

	cart, err := s.cartSvc.AddItem(c.Request.Context(), sess.CartID, req.ProductID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	sess, err = s.sessionSvc.OpenCart(c.Request.Context(), sess.Token)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": cart, "cart_open": sess.CartOpen})
}

func (s *Server) UpdateCartItemQuantity(c *gin.Context) {
	sess, err := s.ensureSession(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	cart, err := s.cartSvc.UpdateQuantity(c.Request.Context(), sess.CartID, c.Param("productId"), req.Delta)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": cart, "cart_open": sess.CartOpen})
}

func (s *Server) RemoveCartItem(c *gin.Context) {
	sess, err := s.ensureSession(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	cart, err := s.cartSvc.RemoveItem(c.Request.Context(), sess.CartID, c.Param("productId"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": cart, "cart_open": sess.CartOpen})
}

func (s *Server) ClearCart(c *gin.Context) {
	sess, err := s.ensureSession(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	cart, err := s.cartSvc.Clear(c.Request.Context(), sess.CartID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": cart, "cart_open": sess.CartOpen})
}

func (s *Server) OpenCart(c *gin.Context) {
	sess, err := s.ensureSession(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	sess, err = s.sessionSvc.OpenCart(c.Request.Context(), sess.Token)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": sess})
}

func (s *Server) CloseCart(c *gin.Context) {
	sess, err := s.ensureSession(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	sess, err = s.sessionSvc.CloseCart(c.Request.Context(), sess.Token)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": sess})
}
