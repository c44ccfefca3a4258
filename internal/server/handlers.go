package server

import (
	"bytes"
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/plainterms/plainterms/internal/render"
	"github.com/plainterms/plainterms/internal/site"
)

func (s *Server) handleStylesheet(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write(render.Stylesheet())
}

func (s *Server) handleLanding(w http.ResponseWriter, req *http.Request) {
	var buf bytes.Buffer
	if err := s.render.Landing(&buf, render.ThemeFromRequest(req)); err != nil {
		s.serveError(w, err)
		return
	}
	serveHTML(w, http.StatusOK, buf.Bytes())
}

// handleListing renders the grid page. A store failure degrades to an empty
// grid rather than an error page.
func (s *Server) handleListing(w http.ResponseWriter, req *http.Request) {
	sites, err := s.store.Websites(req.Context())
	if err != nil {
		s.log.Warn("website listing fetch failed", zap.Error(err))
		sites = nil
	}

	var buf bytes.Buffer
	if err := s.render.Listing(&buf, render.ThemeFromRequest(req), site.GroupByCategory(sites)); err != nil {
		s.serveError(w, err)
		return
	}
	serveHTML(w, http.StatusOK, buf.Bytes())
}

// handleDetail serves a detail page through the revalidation cache: a fresh
// copy is served as-is, a stale copy is served while a background
// regeneration runs, and a miss renders blocking (the fallback policy for
// slugs outside the discovered route set).
func (s *Server) handleDetail(w http.ResponseWriter, req *http.Request) {
	slug := chi.URLParam(req, "slug")
	theme := render.ThemeFromRequest(req)

	if page, ok, fresh := s.cache.get(slug); ok {
		if !fresh {
			s.revalidate(slug)
		}
		s.serveCached(w, theme, slug, page)
		return
	}

	html, status := s.renderDetail(req.Context(), theme, slug)
	if status != http.StatusInternalServerError {
		// Cache under the dark default only; other themes render per request.
		if theme == render.ThemeDark {
			s.cache.set(slug, html, status)
		}
	}
	serveHTML(w, status, html)
}

// serveCached serves a cached page, re-rendering when the request's theme
// differs from the cached dark default.
func (s *Server) serveCached(w http.ResponseWriter, theme render.Theme, slug string, page cachedPage) {
	if theme == render.ThemeDark {
		serveHTML(w, page.status, page.html)
		return
	}
	html, status := s.renderDetail(context.Background(), theme, slug)
	serveHTML(w, status, html)
}

// revalidate regenerates one slug in the background. Concurrent stale hits
// for the same slug collapse into a single render.
func (s *Server) revalidate(slug string) {
	go func() {
		s.flight.Do(slug, func() (any, error) {
			html, status := s.renderDetail(context.Background(), render.ThemeDark, slug)
			if status != http.StatusInternalServerError {
				s.cache.set(slug, html, status)
			}
			s.log.Debug("detail page revalidated", zap.String("slug", slug), zap.Int("status", status))
			return nil, nil
		})
	}()
}

// renderDetail resolves and renders one detail page. Resolution failures
// become the not-found view; only a template failure is a server error.
func (s *Server) renderDetail(ctx context.Context, theme render.Theme, slug string) ([]byte, int) {
	var buf bytes.Buffer

	props, found := site.ResolveDetail(ctx, s.store, s.log, slug)
	if !found {
		if err := s.render.NotFound(&buf, theme, slug); err != nil {
			return errorPage(err), http.StatusInternalServerError
		}
		return buf.Bytes(), http.StatusNotFound
	}

	if err := s.render.Detail(&buf, theme, props); err != nil {
		return errorPage(err), http.StatusInternalServerError
	}
	return buf.Bytes(), http.StatusOK
}

func (s *Server) serveError(w http.ResponseWriter, err error) {
	s.log.Error("render failed", zap.Error(err))
	serveHTML(w, http.StatusInternalServerError, errorPage(err))
}

func errorPage(error) []byte {
	return []byte("<!doctype html><html><body><p>Internal Server Error</p></body></html>")
}

func serveHTML(w http.ResponseWriter, status int, html []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(html)
}
