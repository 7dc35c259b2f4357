package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/store"
	"github.com/Zachkp/portfolio/internal/theme"
)

const (
	contactSuccess = "Thank you! Your message was sent, I'll get back to you soon."
	contactInvalid = "Please check all fields and try again."
	contactFailed  = "Sorry, there was an error sending your message. Please try again later."
)

func (s *Server) index(c *gin.Context) {
	t := s.currentTheme(c)
	var role string
	if len(content.Roles) > 0 {
		role = content.Roles[0]
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"theme":      t,
		"themeIcon":  t.Icon(),
		"aboutMe":    content.AboutMe,
		"sections":   content.Sections(),
		"rowLimit":   s.cfg.RowLimit,
		"firstRole":  role,
		"wasmExec":   "/static/" + WasmExecAsset,
		"wasmClient": "/static/" + WasmClientAsset,
	})
}

func (s *Server) contactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"title": "Contact Me",
	})
}

// submitContact relays the form and answers with a fragment for HTMX to swap
// in. Failures still answer 200 because HTMX only swaps successful responses.
func (s *Server) submitContact(c *gin.Context) {
	var sub contact.Submission
	if err := c.ShouldBind(&sub); err != nil {
		s.contactError(c, contactInvalid)
		return
	}
	sub = sub.Normalize()
	if err := binding.Validator.ValidateStruct(sub); err != nil {
		s.contactError(c, contactInvalid)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.cfg.ContactTimeout)
	defer cancel()
	if err := s.relay.Send(ctx, sub); err != nil {
		s.log.Error("contact relay failed", "error", err)
		_ = c.Error(err)
		s.contactError(c, contactFailed)
		return
	}

	s.log.Info("contact message relayed", "email", sub.Email)
	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": contactSuccess,
	})
}

func (s *Server) contactError(c *gin.Context, msg string) {
	c.HTML(http.StatusOK, "contact-error.html", gin.H{
		"error": msg,
	})
}

type themeResponse struct {
	Theme theme.Theme `json:"theme"`
	Icon  string      `json:"icon"`
}

func (s *Server) getTheme(c *gin.Context) {
	t := s.currentTheme(c)
	c.JSON(http.StatusOK, themeResponse{Theme: t, Icon: t.Icon()})
}

// setTheme stores the posted theme, or flips the current one when none is
// given.
func (s *Server) setTheme(c *gin.Context) {
	var t theme.Theme
	switch v := c.PostForm(theme.Key); {
	case v == "":
		t = s.currentTheme(c).Toggle()
	case theme.Valid(v):
		t = theme.Parse(v)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "theme must be light or dark"})
		return
	}

	if id := visitorID(c); id != "" {
		if err := s.prefs.SetPreference(c.Request.Context(), id, theme.Key, t.String()); err != nil {
			s.log.Error("store theme", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save theme"})
			return
		}
	} else {
		setCookie(c, theme.Key, t.String())
	}
	c.JSON(http.StatusOK, themeResponse{Theme: t, Icon: t.Icon()})
}

// currentTheme resolves the stored preference, then the theme cookie, then
// the configured default.
func (s *Server) currentTheme(c *gin.Context) theme.Theme {
	if id := visitorID(c); id != "" {
		v, err := s.prefs.Preference(c.Request.Context(), id, theme.Key)
		switch {
		case err == nil:
			return theme.Parse(v)
		case !errors.Is(err, store.ErrNotFound):
			s.log.Warn("read theme", "error", err)
		}
	}
	if v, err := c.Cookie(theme.Key); err == nil && theme.Valid(v) {
		return theme.Parse(v)
	}
	return s.cfg.DefaultTheme
}

func (s *Server) timeline(title string, entries []content.Entry) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "timeline.html", gin.H{
			"title":   title,
			"entries": entries,
		})
	}
}

func (s *Server) health(c *gin.Context) {
	if p, ok := s.prefs.(pinger); ok {
		if err := p.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
