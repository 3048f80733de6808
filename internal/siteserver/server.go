// Package siteserver hosts a generated study site and its JSON API.
package siteserver

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// Config captures the settings for serving a built site.
type Config struct {
	Addr    string
	SiteDir string
	DBPath  string
}

// Serve starts an HTTP server for the site; it shuts down gracefully when
// the context is cancelled.
func Serve(ctx context.Context, cfg Config) error {
	if ctx == nil {
		return errors.New("siteserver: context is nil")
	}
	if cfg.Addr == "" {
		return errors.New("siteserver: addr is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		err := <-errCh
		if errors.Is(err, http.ErrServerClosed) || err == nil {
			return nil
		}
		return err
	}
}
