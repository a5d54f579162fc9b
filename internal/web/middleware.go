package web

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// requestLogger tags each request with an id and logs it once served.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)
		c.Set(requestIDHeader, id)

		start := time.Now()
		c.Next()

		level := slog.LevelInfo
		if c.Writer.Status() >= 500 {
			level = slog.LevelError
		}
		s.logger.Log(c.Request.Context(), level, "request",
			"id", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

func requestID(c *gin.Context) string {
	return c.GetString(requestIDHeader)
}

var untrackedPrefixes = []string{
	"/static/",
	"/admin",
	"/favicon",
	"/privacy",
	"/healthz",
	"/theme",
	"/skills/",
	"/contact",
}

// visitorTracking records page views with a hashed IP. Requests carrying
// DNT: 1 and non-page paths are skipped.
func (s *Server) visitorTracking() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method != "GET" || c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}
		for _, p := range untrackedPrefixes {
			if strings.HasPrefix(path, p) {
				c.Next()
				return
			}
		}

		ip, ua := c.ClientIP(), c.GetHeader("User-Agent")
		mode := controllerFrom(c).Mode().String()
		ctx := context.WithoutCancel(c.Request.Context())

		s.pending.Add(1)
		go func() {
			defer s.pending.Done()
			if err := s.tracker.Record(ctx, ip, ua, path, mode); err != nil {
				s.logger.Error("recording visit", "err", err)
			}
		}()
		c.Next()
	}
}
