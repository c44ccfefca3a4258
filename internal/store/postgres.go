// Package store is the Postgres client for the directory tables. Both
// tables are written by external pipelines; this package only reads.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/plainterms/plainterms/internal/model"
)

const websiteColumns = "id, site_name, url, logo_svg, category, last_crawled, description"

// DB wraps a pgx connection pool. Pooling, reconnects and timeouts belong
// to pgxpool; callers bound work through the context they pass in.
type DB struct {
	pool *pgxpool.Pool
}

// Open connects to the database and verifies the connection.
func Open(ctx context.Context, connString string) (*DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &DB{pool: pool}, nil
}

// Close releases the connection pool.
func (db *DB) Close() {
	db.pool.Close()
}

// SiteNames returns every site_name value, duplicates included. Route
// discovery owns trimming and de-duplication.
func (db *DB) SiteNames(ctx context.Context) ([]string, error) {
	rows, err := db.pool.Query(ctx, `SELECT DISTINCT site_name FROM websites`)
	if err != nil {
		return nil, fmt.Errorf("query site names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan site name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read site names: %w", err)
	}
	return names, nil
}

// WebsiteBySlug returns the website whose trimmed site_name equals slug, or
// model.ErrNotFound.
func (db *DB) WebsiteBySlug(ctx context.Context, slug string) (*model.Website, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+websiteColumns+` FROM websites WHERE btrim(site_name) = $1 LIMIT 1`, slug)

	var w model.Website
	err := row.Scan(&w.ID, &w.SiteName, &w.URL, &w.LogoSVG, &w.Category, &w.LastCrawled, &w.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query website %q: %w", slug, err)
	}
	return &w, nil
}

// TermsByWebsiteID returns the terms-of-service row for a website, or
// model.ErrNotFound when the analysis pipeline has not produced one.
func (db *DB) TermsByWebsiteID(ctx context.Context, websiteID int64) (*model.TermsOfService, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT id, website_id, tos_url, simplified_content FROM terms_of_service WHERE website_id = $1 LIMIT 1`,
		websiteID)

	var t model.TermsOfService
	err := row.Scan(&t.ID, &t.WebsiteID, &t.TosURL, &t.SimplifiedContent)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query terms for website %d: %w", websiteID, err)
	}
	return &t, nil
}

// Websites returns all directory entries ordered by site name, for the
// listing page and the static exporter.
func (db *DB) Websites(ctx context.Context) ([]model.Website, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+websiteColumns+` FROM websites ORDER BY site_name`)
	if err != nil {
		return nil, fmt.Errorf("query websites: %w", err)
	}
	defer rows.Close()

	var sites []model.Website
	for rows.Next() {
		var w model.Website
		if err := rows.Scan(&w.ID, &w.SiteName, &w.URL, &w.LogoSVG, &w.Category, &w.LastCrawled, &w.Description); err != nil {
			return nil, fmt.Errorf("scan website: %w", err)
		}
		sites = append(sites, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read websites: %w", err)
	}
	return sites, nil
}
