package web

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	visitorCookie = "visitor_id"
	visitorKey    = "visitor"
	cookieMaxAge  = 3600 * 24 * 365
)

// visitorMiddleware gives page visitors a random id so their theme can be
// remembered server side. Static files are skipped, and so is anyone sending
// Do Not Track.
func visitorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/static/") ||
			strings.HasPrefix(path, "/images/") ||
			strings.HasPrefix(path, "/favicon") ||
			path == "/healthz" {
			c.Next()
			return
		}
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		id, err := c.Cookie(visitorCookie)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
			setCookie(c, visitorCookie, id)
		}
		c.Set(visitorKey, id)
		c.Next()
	}
}

// visitorID returns the request's visitor id, or "" when it has none.
func visitorID(c *gin.Context) string {
	return c.GetString(visitorKey)
}

func setCookie(c *gin.Context, name, value string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, cookieMaxAge, "/", "", c.Request.TLS != nil, true)
}
