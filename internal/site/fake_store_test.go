package site

import (
	"context"

	"github.com/plainterms/plainterms/internal/model"
)

// fakeStore satisfies Store for tests without a database.
type fakeStore struct {
	names    []string
	namesErr error

	websites map[string]*model.Website
	siteErr  error

	terms    map[int64]*model.TermsOfService
	termsErr error

	all    []model.Website
	allErr error
}

func (f *fakeStore) SiteNames(context.Context) ([]string, error) {
	return f.names, f.namesErr
}

func (f *fakeStore) WebsiteBySlug(_ context.Context, slug string) (*model.Website, error) {
	if f.siteErr != nil {
		return nil, f.siteErr
	}
	if w, ok := f.websites[slug]; ok {
		return w, nil
	}
	return nil, model.ErrNotFound
}

func (f *fakeStore) TermsByWebsiteID(_ context.Context, websiteID int64) (*model.TermsOfService, error) {
	if f.termsErr != nil {
		return nil, f.termsErr
	}
	if t, ok := f.terms[websiteID]; ok {
		return t, nil
	}
	return nil, model.ErrNotFound
}

func (f *fakeStore) Websites(context.Context) ([]model.Website, error) {
	return f.all, f.allErr
}
