// Package render turns resolved props into HTML documents. Templates are
// embedded for production; in development they load from a directory and can
// be re-parsed on change.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"path/filepath"
	"sync"

	"github.com/plainterms/plainterms/internal/config"
	"github.com/plainterms/plainterms/internal/model"
	"github.com/plainterms/plainterms/internal/site"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Logos are stored as SVG markup produced by the ingestion pipeline and are
// emitted as-is.
var funcs = template.FuncMap{
	"svg": func(s string) template.HTML { return template.HTML(s) },
}

const lastCrawledLayout = "January 2, 2006"

// Renderer renders every page of the site wrapped in the layout chrome.
type Renderer struct {
	chrome config.Chrome
	dir    string

	mu  sync.RWMutex
	tpl *template.Template
}

// New parses the embedded templates.
func New(chrome config.Chrome) (*Renderer, error) {
	tpl, err := template.New("site").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse embedded templates: %w", err)
	}
	return &Renderer{chrome: chrome, tpl: tpl}, nil
}

// NewFromDir parses templates from a directory instead of the embedded set,
// for development. Reload re-parses the same directory.
func NewFromDir(chrome config.Chrome, dir string) (*Renderer, error) {
	r := &Renderer{chrome: chrome, dir: dir}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload re-parses the template directory. A parse failure keeps the
// previous template set so a broken edit never takes the site down.
func (r *Renderer) Reload() error {
	if r.dir == "" {
		return nil
	}
	tpl, err := template.New("site").Funcs(funcs).ParseGlob(filepath.Join(r.dir, "*.tmpl"))
	if err != nil {
		return fmt.Errorf("parse templates in %s: %w", r.dir, err)
	}
	r.mu.Lock()
	r.tpl = tpl
	r.mu.Unlock()
	return nil
}

func (r *Renderer) execute(w io.Writer, name string, data any) error {
	r.mu.RLock()
	tpl := r.tpl
	r.mu.RUnlock()
	return tpl.ExecuteTemplate(w, name, data)
}

// Frame is the layout data shared by every page.
type Frame struct {
	Title  string
	Theme  Theme
	Chrome config.Chrome
}

func (r *Renderer) frame(title string, theme Theme) Frame {
	full := r.chrome.Title
	if title != "" {
		full = title + " - " + r.chrome.Title
	}
	return Frame{Title: full, Theme: theme, Chrome: r.chrome}
}

type landingView struct {
	Frame
}

// Landing renders the landing page.
func (r *Renderer) Landing(w io.Writer, theme Theme) error {
	return r.execute(w, "page/landing", landingView{Frame: r.frame("", theme)})
}

type listingView struct {
	Frame
	Groups         []site.CategoryGroup
	HideCategories bool
}

// Listing renders the grid page from pre-grouped cards. Category headers
// are suppressed by the chrome's HideCategories flag; the cards themselves
// always render.
func (r *Renderer) Listing(w io.Writer, theme Theme, groups []site.CategoryGroup) error {
	return r.execute(w, "page/listing", listingView{
		Frame:          r.frame("Websites", theme),
		Groups:         groups,
		HideCategories: r.chrome.HideCategories,
	})
}

type detailView struct {
	Frame
	Website     model.Website
	Content     *model.SimplifiedContent
	TosURL      string
	Category    string
	LastCrawled string
}

// Detail renders a detail page. Content stays nil, and the template shows
// its placeholder, unless the summary payload decodes cleanly.
func (r *Renderer) Detail(w io.Writer, theme Theme, props site.DetailProps) error {
	view := detailView{
		Frame:   r.frame(props.Website.SiteName, theme),
		Website: props.Website,
	}
	if props.Terms != nil {
		view.TosURL = props.Terms.TosURL
		if content, status := model.DecodeSimplified(props.Terms.SimplifiedContent); status == model.DecodeOK {
			view.Content = content
		}
	}
	if props.Website.Category != nil {
		view.Category = *props.Website.Category
	}
	if props.Website.LastCrawled != nil {
		view.LastCrawled = props.Website.LastCrawled.Format(lastCrawledLayout)
	}
	return r.execute(w, "page/detail", view)
}

type notFoundView struct {
	Frame
	Slug string
}

// NotFound renders the dedicated not-found view for a detail route.
func (r *Renderer) NotFound(w io.Writer, theme Theme, slug string) error {
	return r.execute(w, "page/notfound", notFoundView{
		Frame: r.frame("Not found", theme),
		Slug:  slug,
	})
}
