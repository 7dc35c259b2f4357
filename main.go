package main

//go:generate sh -c "cp \"$(go env GOROOT)/lib/wasm/wasm_exec.js\" static/wasm_exec.js"
//go:generate env GOOS=js GOARCH=wasm go build -o static/portfolio.wasm ./cmd/portfolio-wasm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/logging"
	"github.com/Zachkp/portfolio/internal/store"
	"github.com/Zachkp/portfolio/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	prefs, err := store.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer prefs.Close()

	go prunePreferences(ctx, log, prefs, cfg.PreferenceRetention)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           web.New(cfg, log, prefs, newRelay(cfg, log)).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown", "error", err)
		}
	}()

	log.Info("listening", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// newRelay prefers the external form endpoint, then SMTP.
func newRelay(cfg config.Config, log *slog.Logger) contact.Relay {
	switch {
	case cfg.ContactEndpoint != "":
		log.Info("contact form relays to endpoint")
		return contact.NewFormRelay(cfg.ContactEndpoint, &http.Client{Timeout: cfg.ContactTimeout})
	case cfg.SMTP.Configured():
		log.Info("contact form relays over SMTP", "host", cfg.SMTP.Host)
		return contact.NewSMTPRelay(cfg.SMTP)
	default:
		log.Warn("contact form not configured; set CONTACT_ENDPOINT or SMTP_USER/SMTP_PASS/TO_EMAIL")
		return contact.Unconfigured{}
	}
}

func prunePreferences(ctx context.Context, log *slog.Logger, prefs *store.Store, retention time.Duration) {
	n, err := prefs.Prune(ctx, retention)
	if err != nil {
		log.Error("prune preferences", "error", err)
		return
	}
	if n > 0 {
		log.Info("pruned stale preferences", "rows", n, "retention", retention)
	}
}
