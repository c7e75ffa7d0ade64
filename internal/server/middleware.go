package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	sessiondomain "github.com/octolab/storefront/internal/session/domain"
)

// ensureSession resolves the caller's session from the session cookie,
// creating a fresh session (and cart) when the cookie is absent, unknown
// or expired. The cookie is re-issued whenever the token changes.
func (s *Server) ensureSession(c *gin.Context) (*sessiondomain.Response, error) {
	token, _ := c.Cookie(s.cfg.SessionCookieName)

	sess, err := s.sessionSvc.Ensure(c.Request.Context(), token)
	if err != nil {
		return nil, err
	}

	if sess.Token != token {
		s.setSessionCookie(c, sess.Token)
	}
	return sess, nil
}

func (s *Server) setSessionCookie(c *gin.Context, token string) {
	maxAge := int(s.cfg.SessionTTL.Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.cfg.SessionCookieName, token, maxAge, "/", "", s.cfg.SessionCookieSecure, true)
}
