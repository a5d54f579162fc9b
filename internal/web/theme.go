package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mdashik24x7/portfolio/internal/theme"
)

// clientHint is the request header carrying the browser's color-scheme
// preference.
const clientHint = "Sec-CH-Prefers-Color-Scheme"

const (
	themeCookieMaxAge = 365 * 24 * 3600
	controllerKey     = "themeController"
)

// cookieStore persists preferences in the visitor's cookie jar.
type cookieStore struct {
	c      *gin.Context
	secure bool
}

func (s cookieStore) Get(key string) (string, bool, error) {
	v, err := s.c.Cookie(key)
	if errors.Is(err, http.ErrNoCookie) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s cookieStore) Set(key, value string) error {
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(key, value, themeCookieMaxAge, "/", "", s.secure, false)
	return nil
}

// ambientFromRequest reads the color-scheme client hint.
func ambientFromRequest(c *gin.Context) theme.AmbientSignal {
	return func() (theme.Mode, bool) {
		v := strings.Trim(c.GetHeader(clientHint), `" `)
		if v == "" {
			return theme.Dark, false
		}
		m, err := theme.ParseMode(v)
		if err != nil {
			return theme.Dark, false
		}
		return m, true
	}
}

// themeMiddleware gives every request its own theme controller, built from
// the theme cookie and the client hint.
func (s *Server) themeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Accept-CH", clientHint)
		c.Header("Vary", clientHint+", Cookie")

		store := cookieStore{c: c, secure: s.cfg.Mode == gin.ReleaseMode}
		ctrl := theme.NewController(store, ambientFromRequest(c), s.logger)
		c.Set(controllerKey, ctrl)
		c.Next()
	}
}

func controllerFrom(c *gin.Context) *theme.Controller {
	if v, ok := c.Get(controllerKey); ok {
		return v.(*theme.Controller)
	}
	return theme.NewController(nil, ambientFromRequest(c), nil)
}
