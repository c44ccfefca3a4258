// Package server serves the site over HTTP. Detail pages are regenerated on
// a fixed revalidation interval with stale-while-revalidate semantics; all
// other pages render per request.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/plainterms/plainterms/internal/render"
	"github.com/plainterms/plainterms/internal/site"
)

// Server wires the store, the renderer and the page cache behind a router.
type Server struct {
	store  site.Store
	render *render.Renderer
	cache  *pageCache
	flight singleflight.Group
	log    *zap.Logger
}

// New builds a Server. The cache TTL is the detail-page revalidation
// interval.
func New(st site.Store, r *render.Renderer, log *zap.Logger) *Server {
	return &Server{
		store:  st,
		render: r,
		cache:  newPageCache(site.RevalidateInterval),
		log:    log,
	}
}

// Router returns the route surface: landing, listing, detail, health and
// static assets.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleLanding)
	r.Get("/websites", s.handleListing)
	r.Get("/websites/{slug}", s.handleDetail)
	r.Get("/healthz", s.handleHealth)
	r.Get("/assets/site.css", s.handleStylesheet)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
