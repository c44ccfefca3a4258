// Package site holds the build-time pipeline for the directory: route
// discovery, per-route prop resolution and listing grouping. Functions here
// are independent of any HTTP server or build tool so they can be exercised
// directly, by the live server and by the static exporter alike.
package site

import (
	"context"

	"github.com/plainterms/plainterms/internal/model"
)

// Store is the read surface the pipeline needs from the backing database.
type Store interface {
	SiteNames(ctx context.Context) ([]string, error)
	WebsiteBySlug(ctx context.Context, slug string) (*model.Website, error)
	TermsByWebsiteID(ctx context.Context, websiteID int64) (*model.TermsOfService, error)
	Websites(ctx context.Context) ([]model.Website, error)
}
