// Package static exports the whole site as prerendered HTML, one file per
// discovered route. It is what a hosting platform's build step invokes.
package static

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/plainterms/plainterms/internal/render"
	"github.com/plainterms/plainterms/internal/site"
)

// Report summarizes an export run.
type Report struct {
	Written []string
	Skipped []string
}

// Exporter renders every route to disk.
type Exporter struct {
	store  site.Store
	render *render.Renderer
	log    *zap.Logger
}

// New builds an Exporter.
func New(st site.Store, r *render.Renderer, log *zap.Logger) *Exporter {
	return &Exporter{store: st, render: r, log: log}
}

// Export writes the landing page, the listing page and one detail page per
// discovered slug under outDir. Data failures are logged and skipped so a
// bad row never fails the build; only filesystem errors abort. Exported
// pages use the default theme.
func (e *Exporter) Export(ctx context.Context, outDir string) (Report, error) {
	var report Report

	write := func(relPath string, renderFn func(*bytes.Buffer) error) error {
		var buf bytes.Buffer
		if err := renderFn(&buf); err != nil {
			e.log.Warn("render failed, page skipped", zap.String("path", relPath), zap.Error(err))
			report.Skipped = append(report.Skipped, relPath)
			return nil
		}
		target := filepath.Join(outDir, relPath)
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("create %s: %w", filepath.Dir(target), err)
		}
		if err := os.WriteFile(target, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", target, err)
		}
		report.Written = append(report.Written, relPath)
		return nil
	}

	if err := write("index.html", func(buf *bytes.Buffer) error {
		return e.render.Landing(buf, render.ThemeDark)
	}); err != nil {
		return report, err
	}

	cssPath := filepath.Join(outDir, "assets", "site.css")
	if err := os.MkdirAll(filepath.Dir(cssPath), 0o755); err != nil {
		return report, fmt.Errorf("create %s: %w", filepath.Dir(cssPath), err)
	}
	if err := os.WriteFile(cssPath, render.Stylesheet(), 0o644); err != nil {
		return report, fmt.Errorf("write %s: %w", cssPath, err)
	}

	sites, err := e.store.Websites(ctx)
	if err != nil {
		e.log.Warn("website listing fetch failed, exporting empty grid", zap.Error(err))
		sites = nil
	}
	if err := write(filepath.Join("websites", "index.html"), func(buf *bytes.Buffer) error {
		return e.render.Listing(buf, render.ThemeDark, site.GroupByCategory(sites))
	}); err != nil {
		return report, err
	}

	routes := site.DiscoverRoutes(ctx, e.store, e.log)
	for _, slug := range routes.Slugs {
		props, found := site.ResolveDetail(ctx, e.store, e.log, slug)
		if !found {
			e.log.Warn("discovered slug did not resolve, page skipped", zap.String("slug", slug))
			report.Skipped = append(report.Skipped, slug)
			continue
		}
		relPath := filepath.Join("websites", slug, "index.html")
		if err := write(relPath, func(buf *bytes.Buffer) error {
			return e.render.Detail(buf, render.ThemeDark, props)
		}); err != nil {
			return report, err
		}
	}

	e.log.Info("export complete",
		zap.Int("written", len(report.Written)),
		zap.Int("skipped", len(report.Skipped)),
		zap.String("out", outDir))
	return report, nil
}
