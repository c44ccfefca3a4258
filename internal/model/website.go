// Package model defines the read-only records served by the site and the
// derived structures decoded from them. Rows are produced by external
// ingestion and analysis processes; nothing here is ever written back.
package model

import (
	"errors"
	"strings"
	"time"
)

// ErrNotFound is returned by stores when a requested row does not exist.
var ErrNotFound = errors.New("model: not found")

// Website is one directory entry. SiteName doubles as the source of the
// routing slug.
type Website struct {
	ID          int64
	SiteName    string
	URL         string
	LogoSVG     string
	Category    *string
	LastCrawled *time.Time
	Description string
}

// Slug returns the route key for the website: the trimmed site name.
// An empty slug means the row is not routable.
func (w Website) Slug() string {
	return strings.TrimSpace(w.SiteName)
}

// TermsOfService is the analysis output for one website. SimplifiedContent
// holds the serialized summary payload and is nil until the analysis
// pipeline has produced one.
type TermsOfService struct {
	ID                int64
	WebsiteID         int64
	TosURL            string
	SimplifiedContent *string
}
