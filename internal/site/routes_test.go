package site

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestDiscoverRoutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		store     *fakeStore
		wantSlugs []string
	}{
		{
			name:      "trims and keeps order",
			store:     &fakeStore{names: []string{" ExampleCo ", "OtherSite"}},
			wantSlugs: []string{"ExampleCo", "OtherSite"},
		},
		{
			name:      "drops empty names",
			store:     &fakeStore{names: []string{"", "   ", "ExampleCo"}},
			wantSlugs: []string{"ExampleCo"},
		},
		{
			name:      "collapses duplicates first-seen",
			store:     &fakeStore{names: []string{"ExampleCo", " ExampleCo", "ExampleCo "}},
			wantSlugs: []string{"ExampleCo"},
		},
		{
			name:      "fetch error degrades to empty set",
			store:     &fakeStore{namesErr: errors.New("connection refused")},
			wantSlugs: nil,
		},
		{
			name:      "empty result degrades to empty set",
			store:     &fakeStore{},
			wantSlugs: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			routes := DiscoverRoutes(context.Background(), tt.store, zap.NewNop())
			assert.Equal(t, tt.wantSlugs, routes.Slugs)
			assert.Equal(t, FallbackBlocking, routes.Fallback)
		})
	}
}

func TestDiscoverRoutesNoDuplicatesOrEmpties(t *testing.T) {
	t.Parallel()

	store := &fakeStore{names: []string{"a", "b", " a", "", "c", "b", "  "}}
	routes := DiscoverRoutes(context.Background(), store, zap.NewNop())

	seen := make(map[string]bool)
	for _, slug := range routes.Slugs {
		assert.NotEmpty(t, slug)
		assert.False(t, seen[slug], "duplicate slug %q", slug)
		seen[slug] = true
	}
	assert.True(t, routes.Contains("a"))
	assert.False(t, routes.Contains("missing"))
}
