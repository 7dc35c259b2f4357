// Package web serves the portfolio pages and their HTMX/JSON endpoints.
package web

import (
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/logging"
)

//go:embed templates/*.html
var templates embed.FS

// Client assets under the static dir, produced by "go generate" at the
// module root.
const (
	WasmExecAsset   = "wasm_exec.js"
	WasmClientAsset = "portfolio.wasm"
)

// Preferences stores per-visitor key-value preferences.
type Preferences interface {
	Preference(ctx context.Context, visitor, key string) (string, error)
	SetPreference(ctx context.Context, visitor, key, value string) error
}

type pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	cfg    config.Config
	log    *slog.Logger
	prefs  Preferences
	relay  contact.Relay
	engine *gin.Engine
}

func New(cfg config.Config, log *slog.Logger, prefs Preferences, relay contact.Relay) *Server {
	s := &Server{
		cfg:    cfg,
		log:    log,
		prefs:  prefs,
		relay:  relay,
		engine: gin.New(),
	}

	r := s.engine
	r.Use(gin.Recovery(), logging.Middleware(log), visitorMiddleware())
	r.SetHTMLTemplate(template.Must(template.New("").ParseFS(templates, "templates/*.html")))

	r.Static("/images", cfg.ImagesDir)
	r.Static("/static", cfg.StaticDir)

	r.GET("/", s.index)
	r.GET("/contact-form", s.contactForm)
	r.POST("/contact", s.submitContact)
	r.GET("/theme", s.getTheme)
	r.POST("/theme", s.setTheme)
	r.GET("/work-content", s.timeline("Work Experience", content.Work))
	r.GET("/education-content", s.timeline("Education", content.Education))
	r.GET("/healthz", s.health)
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}
