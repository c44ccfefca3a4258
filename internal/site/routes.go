package site

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// FallbackPolicy says what happens to a request for a slug that was not in
// the discovered route set.
type FallbackPolicy int

const (
	// FallbackBlocking renders unknown slugs on first request instead of
	// rejecting them outright.
	FallbackBlocking FallbackPolicy = iota
)

// RouteSet is the result of route discovery: the de-duplicated detail-page
// slugs plus the policy for slugs outside the set.
type RouteSet struct {
	Slugs    []string
	Fallback FallbackPolicy
}

// Contains reports whether slug was discovered.
func (rs RouteSet) Contains(slug string) bool {
	for _, s := range rs.Slugs {
		if s == slug {
			return true
		}
	}
	return false
}

// DiscoverRoutes produces the complete set of valid detail-page slugs ahead
// of a build. Names are trimmed, empty keys dropped and duplicates collapsed
// first-seen. A fetch failure degrades to an empty set with the same
// fallback policy; discovery never fails a build.
func DiscoverRoutes(ctx context.Context, st Store, log *zap.Logger) RouteSet {
	names, err := st.SiteNames(ctx)
	if err != nil {
		log.Warn("route discovery failed, continuing with empty route set", zap.Error(err))
		return RouteSet{Fallback: FallbackBlocking}
	}

	seen := make(map[string]struct{}, len(names))
	var slugs []string
	for _, name := range names {
		slug := strings.TrimSpace(name)
		if slug == "" {
			continue
		}
		if _, dup := seen[slug]; dup {
			continue
		}
		seen[slug] = struct{}{}
		slugs = append(slugs, slug)
	}

	log.Debug("routes discovered", zap.Int("count", len(slugs)))
	return RouteSet{Slugs: slugs, Fallback: FallbackBlocking}
}
